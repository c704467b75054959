package dataset

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

const oewsCSV = `STATE,ST,OCC_CODE,OCC_TITLE,OCC_GROUP,TOT_EMP,JOBS_1000
Alabama,AL,00-0000,All Occupations,total,"1,857,530",1000.000
Alabama,AL,11-0000,Management Occupations,major,"67,500",36.338
Alabama,AL,11-1011,Chief Executives,detailed,"1,480",0.797
Alabama,AL,11-1010,Chief Executives,broad,"1,480",0.797
Alabama,AL,xx-yyyy,Bad Code,detailed,10,0.1
Alabama,AL,11-2011,Advertising Managers,detailed,**,**
`

const estimatesCSV = `Rank,Probability,SOC_code,Occupation
1,0.0028,29-1125,Recreational Therapists
2,0.003,49-1011,"First-Line Supervisors of Mechanics, Installers, and Repairers"
3,1.7,11-1011,Bad Probability
4,0.015,11-1011.00,Chief Executives
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeXLSX(t *testing.T, dir, name string, rows [][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	sh, err := f.AddSheet("State_M2014_dl")
	require.NoError(t, err)
	for _, r := range rows {
		row := sh.AddRow()
		for _, c := range r {
			row.AddCell().SetString(c)
		}
	}
	path := filepath.Join(dir, name)
	require.NoError(t, f.Save(path))
	return path
}

func writeZIP(t *testing.T, files map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "oesm14st.zip")
	out, err := os.Create(path)
	require.NoError(t, err)
	defer out.Close() //nolint:errcheck

	w := zip.NewWriter(out)
	for name, src := range files {
		data, err := os.ReadFile(src)
		require.NoError(t, err)
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return path
}
