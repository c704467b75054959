package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOEWS = `STATE,OCC_CODE,OCC_TITLE,OCC_GROUP,TOT_EMP,JOBS_1000
Alabama,00-0000,All Occupations,total,"100,000",1000.000
Alabama,11-0000,Management Occupations,major,"40,000",400.000
Alabama,11-1011,Chief Executives,detailed,"40,000",400.000
Alabama,19-0000,"Life, Physical, and Social Science Occupations",major,"60,000",600.000
Alabama,19-1042,Medical Scientists,detailed,"60,000",600.000
Alaska,00-0000,All Occupations,total,"10,000",1000.000
Alaska,11-0000,Management Occupations,major,"7,000",700.000
Alaska,11-2011,Advertising Managers,detailed,"7,000",700.000
Alaska,19-0000,"Life, Physical, and Social Science Occupations",major,"3,000",300.000
Alaska,19-1042,Medical Scientists,detailed,"3,000",300.000
`

const testEstimates = `Rank,Probability,SOC_code,Occupation
1,0.9,11-1011,Chief Executives
2,0.04,11-2011,Advertising Managers
3,0.2,19-1042,Medical Scientists
`

const testTimeline = `Date,Management,Sales
Jan-2005,14000,15000
Feb-2005,14100,0
Annual 2005,14050,15000
Mar-2005,14200,15100
`

const testRobots = `Year,Units
2014,229261
2004,97000
`

const testMap = `{"type": "FeatureCollection", "features": [
  {"type": "Feature", "id": "01", "properties": {"name": "Alabama"},
   "geometry": {"type": "Point", "coordinates": [-86.8, 32.8]}},
  {"type": "Feature", "id": 2, "properties": {},
   "geometry": {"type": "Point", "coordinates": [-150, 64]}}
]}`

// setupWorkspace writes datasets and a config.yaml into a temp dir and makes
// it the working directory.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"ByState2014.csv":              testOEWS,
		"The-Future-of-Employment.csv": testEstimates,
		"employment-by-occupation.csv": testTimeline,
		"RobotUnitsSold.csv":           testRobots,
		"us-states.json":               testMap,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	config := `
data:
  occupations: ByState2014.csv
  estimates: The-Future-of-Employment.csv
  timeline: employment-by-occupation.csv
  robots: RobotUnitsSold.csv
  temp_dir: tmp
log:
  level: error
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(config), 0o644))

	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) }) //nolint:errcheck
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// mapFlags pins every adjust/project flag so values do not leak between runs.
var mapFlags = []string{"--threshold", "0.5", "--unmatched", "drop"}

func TestClassifyCommand(t *testing.T) {
	setupWorkspace(t)

	out, err := execute(t, "classify", "--format", "table", "11-1011", "53-7062")
	require.NoError(t, err)
	assert.Contains(t, out, "Management")
	assert.Contains(t, out, "Transportation")
}

func TestClassifyCommand_BadFormat(t *testing.T) {
	setupWorkspace(t)

	_, err := execute(t, "classify", "--format", "xml", "11-1011")
	assert.Error(t, err)
}

func TestAdjustCommand_JSON(t *testing.T) {
	setupWorkspace(t)

	out, err := execute(t, append([]string{"adjust", "--format", "json", "--fields=false"}, mapFlags...)...)
	require.NoError(t, err)

	var report adjustReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 1, report.Automated)
	require.Len(t, report.States, 2)
	assert.Equal(t, stateComparison{State: "Alabama", Raw: 100000, Adjusted: 60000, Removed: 40000}, report.States[0])
	assert.Equal(t, stateComparison{State: "Alaska", Raw: 10000, Adjusted: 10000, Removed: 0}, report.States[1])
	assert.Empty(t, report.Fields)
}

func TestAdjustCommand_ThresholdOverride(t *testing.T) {
	setupWorkspace(t)

	out, err := execute(t, "adjust", "--format", "json", "--fields=true", "--threshold", "0.95", "--unmatched", "keep")
	require.NoError(t, err)

	var report adjustReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Zero(t, report.Automated)
	assert.Equal(t, 0.95, report.Threshold)
	assert.Len(t, report.Fields, 4)
}

func TestAdjustCommand_InvalidThreshold(t *testing.T) {
	setupWorkspace(t)

	_, err := execute(t, "adjust", "--format", "table", "--threshold", "1.5", "--unmatched", "drop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "adjust.threshold")
}

func TestProjectCommand_WithMap(t *testing.T) {
	dir := setupWorkspace(t)
	outPath := filepath.Join(dir, "out.geojson")

	out, err := execute(t, append([]string{"project", "--format", "json",
		"--field", "Life", "--metric", "per-thousand-adjusted",
		"--map", "us-states.json", "--out", outPath}, mapFlags...)...)
	require.NoError(t, err)

	var proj struct {
		Values []struct {
			State string  `json:"state"`
			Value float64 `json:"value"`
		} `json:"values"`
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &proj))
	require.Len(t, proj.Values, 2)
	assert.Equal(t, "Alaska", proj.Values[0].State)
	assert.Equal(t, 300.0, proj.Min)
	assert.Equal(t, 1000.0, proj.Max)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"per-thousand-adjusted":1000`)
	assert.Contains(t, string(data), `"per-thousand-adjusted":300`)
}

func TestProjectCommand_UnknownField(t *testing.T) {
	setupWorkspace(t)

	_, err := execute(t, append([]string{"project", "--format", "table", "--map=",
		"--field", "Astronauts", "--metric", "total-jobs"}, mapFlags...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Astronauts")
}

func TestProjectCommand_EmptyField(t *testing.T) {
	setupWorkspace(t)

	_, err := execute(t, append([]string{"project", "--format", "table", "--map=",
		"--field", "", "--metric", "per-thousand"}, mapFlags...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty field")
}

func TestProjectCommand_UnknownMetric(t *testing.T) {
	setupWorkspace(t)

	_, err := execute(t, append([]string{"project", "--format", "table", "--map=",
		"--field", "Management", "--metric", "jobs-per-robot"}, mapFlags...)...)
	assert.Error(t, err)
}

func TestTimelineCommand(t *testing.T) {
	setupWorkspace(t)

	out, err := execute(t, "timeline", "--format", "json", "--from", "2005-02", "--to", "2005-03")
	require.NoError(t, err)

	var report timelineReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Series, 2)
	assert.Len(t, report.Series[0].Points, 2)
	assert.False(t, report.Series[1].Points[0].Defined)
	assert.Equal(t, 15100.0, report.Max)
}

func TestTimelineCommand_Table(t *testing.T) {
	setupWorkspace(t)

	out, err := execute(t, "timeline", "--format", "table", "--from=", "--to=")
	require.NoError(t, err)
	assert.Contains(t, out, "MANAGEMENT")
	assert.Contains(t, out, "14,200")
	assert.Contains(t, out, "-")
}

func TestTimelineCommand_BadRange(t *testing.T) {
	setupWorkspace(t)

	_, err := execute(t, "timeline", "--format", "table", "--from", "2006-01", "--to", "2005-01")
	assert.Error(t, err)

	_, err = execute(t, "timeline", "--format", "table", "--from", "Jan-2005", "--to=")
	assert.Error(t, err)
}

func TestRobotsCommand(t *testing.T) {
	setupWorkspace(t)

	out, err := execute(t, "robots", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "2004-2014")
	assert.Contains(t, out, "229,261")
}

func TestProbabilityCommand(t *testing.T) {
	setupWorkspace(t)

	out, err := execute(t, "probability", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "title: Management")
	assert.Contains(t, out, "occupations: 2")
}
