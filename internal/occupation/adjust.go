package occupation

import (
	"math"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// UnmatchedPolicy decides what happens to detail records with no estimate.
type UnmatchedPolicy string

const (
	// UnmatchedDrop excludes unmatched details from the adjusted set.
	UnmatchedDrop UnmatchedPolicy = "drop"
	// UnmatchedKeep passes unmatched details through unchanged.
	UnmatchedKeep UnmatchedPolicy = "keep"
)

// ParseUnmatchedPolicy converts "drop" or "keep" into an UnmatchedPolicy.
func ParseUnmatchedPolicy(s string) (UnmatchedPolicy, error) {
	switch UnmatchedPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case UnmatchedDrop:
		return UnmatchedDrop, nil
	case UnmatchedKeep:
		return UnmatchedKeep, nil
	default:
		return "", eris.Wrapf(ErrInvalidInput, "unknown unmatched policy %q (valid: drop, keep)", s)
	}
}

// DefaultThreshold is the probability at or above which an occupation is
// considered automated away.
const DefaultThreshold = 0.5

// AdjustOptions configures the automation adjustment.
type AdjustOptions struct {
	Threshold float64
	Unmatched UnmatchedPolicy
}

// DefaultAdjustOptions returns the threshold 0.5, drop-unmatched options.
func DefaultAdjustOptions() AdjustOptions {
	return AdjustOptions{Threshold: DefaultThreshold, Unmatched: UnmatchedDrop}
}

// Adjusted is the output of one adjustment pass.
type Adjusted struct {
	Details   []Detail         `json:"details"`
	Fields    []FieldAggregate `json:"fields"`
	Totals    []StateTotal     `json:"totals"`
	Automated int              `json:"automated"`
	Unmatched int              `json:"unmatched"`
}

// IndexEstimates builds the code → estimate join index. Later estimates for
// the same code replace earlier ones.
func IndexEstimates(estimates []Estimate) map[int]Estimate {
	idx := make(map[int]Estimate, len(estimates))
	for _, e := range estimates {
		idx[e.Code] = e
	}
	return idx
}

// Adjust zeroes the jobs of detail occupations whose automation probability
// meets the threshold, then recomputes field totals, state totals, and jobs per
// 1000 from the adjusted details.
func Adjust(p *Partitioned, estimates []Estimate, opts AdjustOptions) (*Adjusted, error) {
	if opts.Threshold <= 0 || opts.Threshold > 1 {
		return nil, eris.Wrapf(ErrInvalidInput, "adjust: threshold %v outside (0, 1]", opts.Threshold)
	}
	if opts.Unmatched == "" {
		opts.Unmatched = UnmatchedDrop
	}

	idx := IndexEstimates(estimates)
	out := &Adjusted{}

	byState := make(map[string][]Detail)
	for _, d := range p.Details {
		est, ok := idx[d.Code]
		if !ok {
			out.Unmatched++
			if opts.Unmatched == UnmatchedDrop {
				continue
			}
		} else if est.Probability >= opts.Threshold {
			d.TotalJobs = 0
			out.Automated++
		}
		out.Details = append(out.Details, d)
		byState[d.State] = append(byState[d.State], d)
	}

	sums := newStateSums()
	out.Fields = make([]FieldAggregate, 0, len(p.Majors))
	for _, m := range p.Majors {
		total := 0
		for _, d := range byState[m.State] {
			if MatchesField(m.Title, string(d.Field)) {
				total += d.TotalJobs
			}
		}
		out.Fields = append(out.Fields, FieldAggregate{
			State:     m.State,
			Field:     m.Title,
			TotalJobs: total,
		})
		sums.add(m.State, total)
	}
	out.Totals = sums.totals()

	for i := range out.Fields {
		f := &out.Fields[i]
		st, _ := sums.get(f.State)
		if st == 0 {
			return nil, eris.Wrapf(ErrDivisionByZero, "adjust: state %q has no remaining jobs", f.State)
		}
		f.JobsPerThousand = math.Round(1000 * float64(f.TotalJobs) / float64(st))
	}

	zap.L().Debug("occupation: adjusted details",
		zap.Int("details", len(p.Details)),
		zap.Int("kept", len(out.Details)),
		zap.Int("automated", out.Automated),
		zap.Int("unmatched", out.Unmatched),
		zap.String("unmatched_policy", string(opts.Unmatched)),
	)

	return out, nil
}
