package series

import (
	"sort"

	"github.com/sells-group/jobviz-cli/internal/occupation"
)

// GroupProbability is the average automation probability of one SOC major
// group.
type GroupProbability struct {
	Prefix      string  `json:"prefix" yaml:"prefix"`
	Title       string  `json:"title" yaml:"title"`
	Probability float64 `json:"probability" yaml:"probability"`
	Occupations int     `json:"occupations" yaml:"occupations"`
}

// ProbabilityByGroup averages estimate probabilities per two-digit SOC major
// group, ordered by prefix. Groups with no estimates are omitted; estimates
// whose prefix is not a known group are ignored.
func ProbabilityByGroup(estimates []occupation.Estimate) []GroupProbability {
	sums := make(map[string]*GroupProbability)
	for _, e := range estimates {
		prefix := occupation.MajorGroupPrefix(e.Code)
		title, ok := occupation.MajorGroupTitle(prefix)
		if !ok {
			continue
		}
		g, ok := sums[prefix]
		if !ok {
			g = &GroupProbability{Prefix: prefix, Title: title}
			sums[prefix] = g
		}
		g.Probability += e.Probability
		g.Occupations++
	}

	out := make([]GroupProbability, 0, len(sums))
	for _, g := range sums {
		g.Probability /= float64(g.Occupations)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Prefix < out[j].Prefix })
	return out
}
