package occupation

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// Group is the OCC_GROUP granularity tag of an OEWS row.
type Group string

// Known group values.
const (
	GroupMajor    Group = "major"
	GroupDetailed Group = "detailed"
	GroupTotal    Group = "total"
)

// Valid reports whether g is one of the three partitioned groups.
func (g Group) Valid() bool {
	switch g {
	case GroupMajor, GroupDetailed, GroupTotal:
		return true
	}
	return false
}

// Record is one parsed OEWS row. Records are not modified after loading.
type Record struct {
	State           string  `json:"state"`
	Group           Group   `json:"occ_group"`
	Code            int     `json:"occ_code"`
	Title           string  `json:"occ_title"`
	JobsPerThousand float64 `json:"jobs_1000"`
	TotalJobs       int     `json:"tot_emp"`
}

// Estimate is one row of the automation-probability reference table.
type Estimate struct {
	Code        int     `json:"soc_code"`
	Probability float64 `json:"probability"`
	Rank        int     `json:"rank,omitempty"`
	Occupation  string  `json:"occupation,omitempty"`
}

// ParseCode strips every non-digit from a SOC code ("11-1011" → 111011).
// Codes with no digits are rejected.
func ParseCode(raw string) (int, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, eris.Wrapf(ErrInvalidInput, "parse code: %q has no digits", raw)
	}
	v, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, eris.Wrapf(ErrInvalidInput, "parse code: %q", raw)
	}
	return v, nil
}

// ParseSOCCode parses an estimate-table SOC code. Any suffix after the first
// '.' is dropped before digits are extracted ("11-1011.00" → 111011).
func ParseSOCCode(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		raw = raw[:i]
	}
	return ParseCode(raw)
}

// suppressed reports BLS markers used in place of a number.
func suppressed(s string) bool {
	switch s {
	case "", "*", "**", "#", "~":
		return true
	}
	return false
}

// ParseJobs parses a TOT_EMP value, stripping thousands separators.
// Suppressed values load as 0.
func ParseJobs(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if suppressed(s) {
		return 0, nil
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, eris.Wrapf(ErrInvalidInput, "parse jobs: %q", raw)
	}
	if v < 0 {
		return 0, eris.Wrapf(ErrInvalidInput, "parse jobs: negative %q", raw)
	}
	return v, nil
}

// ParseRate parses a JOBS_1000 value. Suppressed values load as 0.
func ParseRate(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if suppressed(s) {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, eris.Wrapf(ErrInvalidInput, "parse rate: %q", raw)
	}
	return v, nil
}
