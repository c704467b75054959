package occupation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTables(t *testing.T) *Tables {
	t.Helper()
	p, err := Partition(alabamaRecords())
	require.NoError(t, err)
	tables, _, err := Build(p, alabamaEstimates(), DefaultAdjustOptions())
	require.NoError(t, err)
	return tables
}

func TestProject_PerThousand(t *testing.T) {
	proj, err := Project(buildTables(t), "Management", PerThousand)
	require.NoError(t, err)

	require.Len(t, proj.Values, 2)
	assert.Equal(t, "Alabama", proj.Values[0].State)
	assert.Equal(t, 40.0, proj.Values[0].Value)
	assert.Equal(t, "Alaska", proj.Values[1].State)
	assert.Equal(t, 70.0, proj.Values[1].Value)
	assert.Equal(t, 40.0, proj.Min)
	assert.Equal(t, 70.0, proj.Max)
}

func TestProject_SortedAscending(t *testing.T) {
	proj, err := Project(buildTables(t), "Life", TotalJobs)
	require.NoError(t, err)

	require.Len(t, proj.Values, 2)
	assert.Equal(t, "Alaska", proj.Values[0].State)
	assert.Equal(t, 3000.0, proj.Min)
	assert.Equal(t, 60000.0, proj.Max)
	for i := 1; i < len(proj.Values); i++ {
		assert.LessOrEqual(t, proj.Values[i-1].Value, proj.Values[i].Value)
	}
}

func TestProject_Adjusted(t *testing.T) {
	proj, err := Project(buildTables(t), "Management", PerThousandAdjusted)
	require.NoError(t, err)

	vals := proj.ByState()
	assert.Equal(t, 0.0, vals["Alabama"])
	assert.Equal(t, 700.0, vals["Alaska"])
	assert.Equal(t, 0.0, proj.Min)
	assert.Equal(t, 700.0, proj.Max)

	jobs, err := Project(buildTables(t), "Management", TotalJobsAdjusted)
	require.NoError(t, err)
	assert.Equal(t, 7000.0, jobs.Max)
}

func TestProject_TotalJobsSumMatchesRaw(t *testing.T) {
	tables := buildTables(t)
	for _, field := range []string{"Management", "Life"} {
		proj, err := Project(tables, field, TotalJobs)
		require.NoError(t, err)

		var projected float64
		for _, v := range proj.Values {
			projected += v.Value
		}
		var raw int
		for _, r := range tables.Raw {
			if MatchesField(r.Field, field) {
				raw += r.TotalJobs
			}
		}
		assert.Equal(t, float64(raw), projected, field)
	}
}

func TestProject_NoMatchingField(t *testing.T) {
	_, err := Project(buildTables(t), "Nonexistent", PerThousand)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMatchingField)
}

func TestProject_NilTables(t *testing.T) {
	_, err := Project(nil, "Management", PerThousand)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProject_UnknownMetric(t *testing.T) {
	p, err := Project(buildTables(t), "Management", Metric("bogus"))
	require.Error(t, err)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "bogus")
}

func TestProject_EmptyField(t *testing.T) {
	for _, field := range []string{"", "   "} {
		p, err := Project(buildTables(t), field, PerThousand)
		require.Error(t, err, "field %q", field)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestMetric_Valid(t *testing.T) {
	for _, m := range Metrics() {
		assert.True(t, m.Valid(), m)
	}
	assert.False(t, Metric("").Valid())
	assert.False(t, Metric("Per-Thousand").Valid())
}

func TestParseMetric(t *testing.T) {
	tests := []struct {
		in   string
		want Metric
	}{
		{"per-thousand", PerThousand},
		{"PER_THOUSAND", PerThousand},
		{"total-jobs", TotalJobs},
		{"per_thousand_adjusted", PerThousandAdjusted},
		{"total-jobs-adjusted", TotalJobsAdjusted},
	}
	for _, tt := range tests {
		got, err := ParseMetric(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseMetric("jobs")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRawTables_TotalFallback(t *testing.T) {
	p, err := Partition([]Record{
		{State: "Ohio", Group: GroupMajor, Code: 110000, Title: "Management", TotalJobs: 10},
		{State: "Ohio", Group: GroupMajor, Code: 130000, Title: "Business", TotalJobs: 5},
		{State: "Iowa", Group: GroupTotal, Code: 0, Title: "All Occupations", TotalJobs: 99},
		{State: "Iowa", Group: GroupMajor, Code: 110000, Title: "Management", TotalJobs: 9},
	})
	require.NoError(t, err)

	fields, totals := RawTables(p)
	assert.Len(t, fields, 3)
	require.Len(t, totals, 2)
	assert.Equal(t, StateTotal{State: "Iowa", TotalJobs: 99}, totals[0])
	assert.Equal(t, StateTotal{State: "Ohio", TotalJobs: 15}, totals[1])
}
