package dataset

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/jobviz-cli/internal/fetcher"
)

// monthYear is the Date layout of employment-by-occupation.csv ("Jan-2005").
const monthYear = "Jan-2006"

// TimelineRow is one dated row of the employment-by-occupation table. Annual
// summary rows carry no date.
type TimelineRow struct {
	Label  string             `json:"label"`
	Date   time.Time          `json:"date,omitzero"`
	Annual bool               `json:"annual,omitempty"`
	Values map[string]float64 `json:"values"`
}

// Timeline is the employment-by-occupation table: one column per category.
type Timeline struct {
	Categories []string      `json:"categories"`
	Rows       []TimelineRow `json:"rows"`
	Rejects    []Reject      `json:"rejects,omitempty"`
}

// LoadTimeline reads employment-by-occupation.csv.
func LoadTimeline(ctx context.Context, f fetcher.Fetcher, src, tempDir string) (*Timeline, error) {
	header, rows, err := readTable(ctx, f, src, tempDir, "employment")
	if err != nil {
		return nil, loadErr(err, "timeline", src)
	}
	out, err := parseTimeline(header, rows)
	if err != nil {
		return nil, loadErr(err, "timeline", src)
	}

	zap.L().Info("dataset: loaded employment timeline",
		zap.String("source", src),
		zap.Int("categories", len(out.Categories)),
		zap.Int("rows", len(out.Rows)),
	)
	return out, nil
}

func parseTimeline(header []string, rows [][]string) (*Timeline, error) {
	dateIdx := -1
	out := &Timeline{}
	for i, col := range header {
		col = strings.TrimSpace(col)
		if strings.EqualFold(col, "date") {
			dateIdx = i
			continue
		}
		out.Categories = append(out.Categories, col)
	}
	if dateIdx < 0 {
		return nil, eris.New("missing column Date")
	}

	for i, row := range rows {
		line := i + 2
		tr, err := parseTimelineRow(header, row, dateIdx)
		if err != nil {
			out.Rejects = append(out.Rejects, Reject{Line: line, Reason: err.Error()})
			continue
		}
		out.Rows = append(out.Rows, tr)
	}
	return out, nil
}

func parseTimelineRow(header, row []string, dateIdx int) (TimelineRow, error) {
	if dateIdx >= len(row) {
		return TimelineRow{}, eris.New("row has no date")
	}
	tr := TimelineRow{
		Label:  trimQuotes(row[dateIdx]),
		Values: make(map[string]float64, len(header)-1),
	}
	if strings.HasPrefix(tr.Label, "Annual") {
		tr.Annual = true
	} else {
		d, err := time.Parse(monthYear, tr.Label)
		if err != nil {
			return TimelineRow{}, eris.Errorf("date %q is not Mon-YYYY", tr.Label)
		}
		tr.Date = d
	}

	for i, col := range header {
		if i == dateIdx {
			continue
		}
		var raw string
		if i < len(row) {
			raw = strings.ReplaceAll(trimQuotes(row[i]), ",", "")
		}
		if raw == "" {
			tr.Values[strings.TrimSpace(col)] = 0
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return TimelineRow{}, eris.Errorf("column %s: %q is not a number", col, raw)
		}
		tr.Values[strings.TrimSpace(col)] = v
	}
	return tr, nil
}
