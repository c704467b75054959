// Package series reshapes loaded datasets into chart-ready series: the
// employment timeline, robot sales, and automation probability by group.
package series

import (
	"time"

	"github.com/sells-group/jobviz-cli/internal/dataset"
)

// Point is one timeline value. Zero values are not Defined and the line chart
// leaves a gap there.
type Point struct {
	Date    time.Time `json:"date" yaml:"date"`
	Value   float64   `json:"value" yaml:"value"`
	Defined bool      `json:"defined" yaml:"defined"`
}

// Series is the timeline of one occupation category.
type Series struct {
	Name   string  `json:"name" yaml:"name"`
	Points []Point `json:"points" yaml:"points"`
}

// Transpose turns dated timeline rows into one series per category, in header
// order. Annual summary rows are skipped.
func Transpose(tl *dataset.Timeline) []Series {
	if tl == nil {
		return nil
	}
	out := make([]Series, len(tl.Categories))
	for i, cat := range tl.Categories {
		out[i].Name = cat
	}
	for _, row := range tl.Rows {
		if row.Annual || row.Date.IsZero() {
			continue
		}
		for i, cat := range tl.Categories {
			v := row.Values[cat]
			out[i].Points = append(out[i].Points, Point{Date: row.Date, Value: v, Defined: v != 0})
		}
	}
	return out
}

// Extent returns the earliest and latest date across all series.
func Extent(series []Series) (from, to time.Time, ok bool) {
	for _, s := range series {
		for _, p := range s.Points {
			if !ok || p.Date.Before(from) {
				from = p.Date
			}
			if !ok || p.Date.After(to) {
				to = p.Date
			}
			ok = true
		}
	}
	return from, to, ok
}

// MaxValue returns the largest value across all series, the top of the y
// domain. Empty input gives 0.
func MaxValue(series []Series) float64 {
	var maxV float64
	for _, s := range series {
		for _, p := range s.Points {
			maxV = max(maxV, p.Value)
		}
	}
	return maxV
}

// Between keeps the points dated within [from, to]. A zero bound is open.
func Between(series []Series, from, to time.Time) []Series {
	out := make([]Series, len(series))
	for i, s := range series {
		out[i].Name = s.Name
		for _, p := range s.Points {
			if !from.IsZero() && p.Date.Before(from) {
				continue
			}
			if !to.IsZero() && p.Date.After(to) {
				continue
			}
			out[i].Points = append(out[i].Points, p)
		}
	}
	return out
}
