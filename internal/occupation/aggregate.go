package occupation

import "go.uber.org/zap"

// FieldAggregate is one (state, job field) row of an aggregate table. Field holds
// the major-group title the row was built from.
type FieldAggregate struct {
	State           string  `json:"state" yaml:"state"`
	Field           string  `json:"field" yaml:"field"`
	TotalJobs       int     `json:"total_jobs" yaml:"total_jobs"`
	JobsPerThousand float64 `json:"jobs_per_thousand" yaml:"jobs_per_thousand"`
}

// StateTotal is the total job count of one state.
type StateTotal struct {
	State     string `json:"state" yaml:"state"`
	TotalJobs int    `json:"total_jobs" yaml:"total_jobs"`
}

// Tables holds the raw and automation-adjusted aggregates of one data load.
// Tables are rebuilt from scratch, never patched.
type Tables struct {
	Raw            []FieldAggregate `json:"raw" yaml:"raw"`
	RawTotals      []StateTotal     `json:"raw_totals" yaml:"raw_totals"`
	Adjusted       []FieldAggregate `json:"adjusted" yaml:"adjusted"`
	AdjustedTotals []StateTotal     `json:"adjusted_totals" yaml:"adjusted_totals"`
}

// RawTables builds the unadjusted field and state tables. Field rows come from
// major records. State totals come from total records; a state with no total
// record falls back to the sum of its major records.
func RawTables(p *Partitioned) ([]FieldAggregate, []StateTotal) {
	fields := make([]FieldAggregate, 0, len(p.Majors))
	sums := newStateSums()
	for _, m := range p.Majors {
		fields = append(fields, FieldAggregate{
			State:           m.State,
			Field:           m.Title,
			TotalJobs:       m.TotalJobs,
			JobsPerThousand: m.JobsPerThousand,
		})
		sums.add(m.State, m.TotalJobs)
	}

	explicit := newStateSums()
	for _, t := range p.Totals {
		explicit.add(t.State, t.TotalJobs)
	}

	totals := make([]StateTotal, 0, len(sums.order))
	totals = append(totals, explicit.totals()...)
	for _, st := range sums.totals() {
		if _, ok := explicit.index[st.State]; !ok {
			totals = append(totals, st)
		}
	}
	return fields, totals
}

// Build derives the raw tables from p and runs the automation adjustment.
func Build(p *Partitioned, estimates []Estimate, opts AdjustOptions) (*Tables, *Adjusted, error) {
	raw, rawTotals := RawTables(p)

	adj, err := Adjust(p, estimates, opts)
	if err != nil {
		return nil, nil, err
	}

	t := &Tables{
		Raw:            raw,
		RawTotals:      rawTotals,
		Adjusted:       adj.Fields,
		AdjustedTotals: adj.Totals,
	}
	checkRemovesOnly(t)
	return t, adj, nil
}

// checkRemovesOnly logs any state whose adjusted total exceeds its raw total.
func checkRemovesOnly(t *Tables) {
	raw := make(map[string]int, len(t.RawTotals))
	for _, st := range t.RawTotals {
		raw[st.State] = st.TotalJobs
	}
	for _, st := range t.AdjustedTotals {
		r, ok := raw[st.State]
		if ok && st.TotalJobs > r {
			zap.L().Warn("occupation: adjusted total exceeds raw total",
				zap.String("state", st.State),
				zap.Int("raw", r),
				zap.Int("adjusted", st.TotalJobs),
			)
		}
	}
}

// stateSums accumulates per-state totals in first-seen order.
type stateSums struct {
	order []string
	index map[string]int
	sum   []int
}

func newStateSums() *stateSums {
	return &stateSums{index: make(map[string]int)}
}

func (s *stateSums) add(state string, n int) {
	i, ok := s.index[state]
	if !ok {
		i = len(s.order)
		s.index[state] = i
		s.order = append(s.order, state)
		s.sum = append(s.sum, 0)
	}
	s.sum[i] += n
}

func (s *stateSums) get(state string) (int, bool) {
	i, ok := s.index[state]
	if !ok {
		return 0, false
	}
	return s.sum[i], true
}

func (s *stateSums) totals() []StateTotal {
	out := make([]StateTotal, len(s.order))
	for i, st := range s.order {
		out[i] = StateTotal{State: st, TotalJobs: s.sum[i]}
	}
	return out
}
