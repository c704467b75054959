package dataset

import (
	"context"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/jobviz-cli/internal/fetcher"
	"github.com/sells-group/jobviz-cli/internal/occupation"
)

// estimateRow mirrors The-Future-of-Employment.csv (Frey & Osborne, 2013).
type estimateRow struct {
	Rank        string `csv:"Rank,omitempty"`
	Probability string `csv:"Probability"`
	SOCCode     string `csv:"SOC_code"`
	Occupation  string `csv:"Occupation,omitempty"`
}

// Estimates is a loaded automation-probability table in source order.
type Estimates struct {
	Estimates []occupation.Estimate `json:"estimates"`
	Rejects   []Reject              `json:"rejects,omitempty"`
}

// LoadEstimates reads the automation-probability table.
func LoadEstimates(ctx context.Context, f fetcher.Fetcher, src string) (*Estimates, error) {
	rc, err := fetcher.Open(ctx, f, src)
	if err != nil {
		return nil, loadErr(err, "estimates", src)
	}
	defer rc.Close() //nolint:errcheck

	out, err := decodeEstimates(rc)
	if err != nil {
		return nil, loadErr(err, "estimates", src)
	}

	zap.L().Info("dataset: loaded automation estimates",
		zap.String("source", src),
		zap.Int("estimates", len(out.Estimates)),
		zap.Int("rejects", len(out.Rejects)),
	)
	return out, nil
}

func decodeEstimates(r io.Reader) (*Estimates, error) {
	dec, err := newTagDecoder(r, "Rank", "Probability", "SOC_code", "Occupation")
	if err != nil {
		return nil, err
	}
	colIdx := mapColumns(dec.Header())
	for _, col := range []string{"probability", "soc_code"} {
		if !hasAny(colIdx, col) {
			return nil, eris.Errorf("missing column %s", col)
		}
	}

	out := &Estimates{}
	for line := 2; ; line++ {
		var row estimateRow
		if err := dec.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			return nil, eris.Wrapf(err, "decode line %d", line)
		}

		est, err := row.estimate()
		if err != nil {
			out.Rejects = append(out.Rejects, Reject{Line: line, Reason: err.Error()})
			continue
		}
		out.Estimates = append(out.Estimates, est)
	}

	if len(out.Rejects) > 0 {
		zap.L().Warn("dataset: rejected estimate rows",
			zap.Int("count", len(out.Rejects)),
			zap.Int("first_line", out.Rejects[0].Line),
			zap.String("first_reason", out.Rejects[0].Reason),
		)
	}
	return out, nil
}

func (r estimateRow) estimate() (occupation.Estimate, error) {
	code, err := occupation.ParseSOCCode(r.SOCCode)
	if err != nil {
		return occupation.Estimate{}, err
	}
	p, err := strconv.ParseFloat(strings.TrimSpace(r.Probability), 64)
	if err != nil {
		return occupation.Estimate{}, eris.Wrapf(occupation.ErrInvalidInput, "probability %q", r.Probability)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return occupation.Estimate{}, eris.Wrapf(occupation.ErrInvalidInput, "probability %v outside [0, 1]", p)
	}
	rank, _ := strconv.Atoi(strings.TrimSpace(r.Rank))

	return occupation.Estimate{
		Code:        code,
		Probability: p,
		Rank:        rank,
		Occupation:  strings.TrimSpace(r.Occupation),
	}, nil
}
