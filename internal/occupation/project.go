package occupation

import (
	"sort"
	"strings"

	"github.com/rotisserie/eris"
)

// Metric selects which aggregate table and value a projection reads.
type Metric string

// Supported metrics.
const (
	PerThousand         Metric = "per-thousand"
	TotalJobs           Metric = "total-jobs"
	PerThousandAdjusted Metric = "per-thousand-adjusted"
	TotalJobsAdjusted   Metric = "total-jobs-adjusted"
)

// Metrics lists every supported metric.
func Metrics() []Metric {
	return []Metric{PerThousand, TotalJobs, PerThousandAdjusted, TotalJobsAdjusted}
}

// ParseMetric accepts a metric name, case-insensitively, with '_' or '-'.
func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	if m.Valid() {
		return m, nil
	}
	return "", eris.Wrapf(ErrInvalidInput, "unknown metric %q", s)
}

// Valid reports whether m is one of Metrics.
func (m Metric) Valid() bool {
	for _, known := range Metrics() {
		if m == known {
			return true
		}
	}
	return false
}

// Adjusted reports whether the metric reads the automation-adjusted table.
func (m Metric) Adjusted() bool {
	return m == PerThousandAdjusted || m == TotalJobsAdjusted
}

func (m Metric) value(f FieldAggregate) float64 {
	if m == TotalJobs || m == TotalJobsAdjusted {
		return float64(f.TotalJobs)
	}
	return f.JobsPerThousand
}

// StateValue is one projected region value.
type StateValue struct {
	State string  `json:"state" yaml:"state"`
	Field string  `json:"field" yaml:"field"`
	Value float64 `json:"value" yaml:"value"`
}

// Projection is the display-ready output for the choropleth: values sorted
// ascending and the color-scale domain.
type Projection struct {
	Field  string       `json:"field" yaml:"field"`
	Metric Metric       `json:"metric" yaml:"metric"`
	Values []StateValue `json:"values" yaml:"values"`
	Min    float64      `json:"min" yaml:"min"`
	Max    float64      `json:"max" yaml:"max"`
}

// ByState maps state names to values. When several rows match one state the
// largest value wins, since rows are sorted ascending.
func (p *Projection) ByState() map[string]float64 {
	out := make(map[string]float64, len(p.Values))
	for _, v := range p.Values {
		out[v.State] = v.Value
	}
	return out
}

// Project filters the metric's table to rows whose field title contains field,
// sorts them ascending by value, and reports the value range.
func Project(t *Tables, field string, metric Metric) (*Projection, error) {
	if t == nil {
		return nil, eris.Wrap(ErrInvalidInput, "project: no tables")
	}
	if !metric.Valid() {
		return nil, eris.Wrapf(ErrInvalidInput, "project: unknown metric %q", metric)
	}
	if strings.TrimSpace(field) == "" {
		return nil, eris.Wrap(ErrInvalidInput, "project: empty field")
	}
	rows := t.Raw
	if metric.Adjusted() {
		rows = t.Adjusted
	}

	var values []StateValue
	for _, r := range rows {
		if MatchesField(r.Field, field) {
			values = append(values, StateValue{State: r.State, Field: r.Field, Value: metric.value(r)})
		}
	}
	if len(values) == 0 {
		return nil, eris.Wrapf(ErrNoMatchingField, "project: field %q", field)
	}

	sort.SliceStable(values, func(i, j int) bool { return values[i].Value < values[j].Value })

	return &Projection{
		Field:  field,
		Metric: metric,
		Values: values,
		Min:    values[0].Value,
		Max:    values[len(values)-1].Value,
	}, nil
}
