package dataset

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/jobviz-cli/internal/fetcher"
	"github.com/sells-group/jobviz-cli/internal/occupation"
)

// Occupations is a loaded BLS OEWS state extract.
type Occupations struct {
	Records []occupation.Record `json:"records"`
	Rejects []Reject            `json:"rejects,omitempty"`
}

// LoadOccupations reads OEWS state rows from a CSV, XLSX, or the ZIP BLS
// publishes (e.g. oesm14st.zip). Rows with unusable codes or counts are
// rejected individually.
func LoadOccupations(ctx context.Context, f fetcher.Fetcher, src, tempDir string) (*Occupations, error) {
	header, rows, err := readTable(ctx, f, src, tempDir, "state")
	if err != nil {
		return nil, loadErr(err, "occupations", src)
	}
	out, err := parseOccupations(header, rows)
	if err != nil {
		return nil, loadErr(err, "occupations", src)
	}

	zap.L().Info("dataset: loaded occupations",
		zap.String("source", src),
		zap.Int("records", len(out.Records)),
		zap.Int("rejects", len(out.Rejects)),
	)
	return out, nil
}

func parseOccupations(header []string, rows [][]string) (*Occupations, error) {
	colIdx := mapColumns(header)
	for _, required := range [][]string{
		{"state", "area_title"},
		{"occ_group", "o_group"},
		{"occ_code"},
		{"tot_emp"},
	} {
		if !hasAny(colIdx, required...) {
			return nil, eris.Errorf("missing column %s", required[0])
		}
	}

	out := &Occupations{Records: make([]occupation.Record, 0, len(rows))}
	for i, row := range rows {
		line := i + 2 // header is line 1

		rec, err := parseOccupationRow(row, colIdx)
		if err != nil {
			out.Rejects = append(out.Rejects, Reject{Line: line, Reason: err.Error()})
			continue
		}
		out.Records = append(out.Records, rec)
	}

	if len(out.Rejects) > 0 {
		zap.L().Warn("dataset: rejected occupation rows",
			zap.Int("count", len(out.Rejects)),
			zap.Int("first_line", out.Rejects[0].Line),
			zap.String("first_reason", out.Rejects[0].Reason),
		)
	}
	return out, nil
}

func parseOccupationRow(row []string, colIdx map[string]int) (occupation.Record, error) {
	rawCode := getCol(row, colIdx, "occ_code")
	code, err := occupation.ParseCode(rawCode)
	if err != nil {
		return occupation.Record{}, err
	}
	jobs, err := occupation.ParseJobs(getCol(row, colIdx, "tot_emp"))
	if err != nil {
		return occupation.Record{}, err
	}
	rate, err := occupation.ParseRate(getCol(row, colIdx, "jobs_1000"))
	if err != nil {
		return occupation.Record{}, err
	}
	state := firstCol(row, colIdx, "state", "area_title")
	if state == "" {
		return occupation.Record{}, eris.Errorf("occupation %s has no state", rawCode)
	}

	return occupation.Record{
		State:           state,
		Group:           occupation.Group(firstCol(row, colIdx, "occ_group", "o_group")),
		Code:            code,
		Title:           getCol(row, colIdx, "occ_title"),
		JobsPerThousand: rate,
		TotalJobs:       jobs,
	}, nil
}
