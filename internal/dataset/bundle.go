package dataset

import (
	"context"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/jobviz-cli/internal/fetcher"
)

// Kind names one of the datasets.
type Kind string

// Dataset kinds.
const (
	KindOccupations Kind = "occupations"
	KindEstimates   Kind = "estimates"
	KindTimeline    Kind = "timeline"
	KindRobots      Kind = "robots"
)

// Sources holds the location (path or URL) of each dataset.
type Sources struct {
	Occupations string
	Estimates   string
	Timeline    string
	Robots      string
	TempDir     string
}

func (s Sources) of(k Kind) string {
	switch k {
	case KindOccupations:
		return s.Occupations
	case KindEstimates:
		return s.Estimates
	case KindTimeline:
		return s.Timeline
	case KindRobots:
		return s.Robots
	}
	return ""
}

// Bundle is the result of one startup load. Only the requested kinds are set.
type Bundle struct {
	Occupations *Occupations
	Estimates   *Estimates
	Timeline    *Timeline
	Robots      []RobotSale
}

// LoadAll loads the requested datasets concurrently and returns once all have
// finished. The first failure cancels the rest and is returned as
// ErrLoadFailure; no partial bundle is returned.
func LoadAll(ctx context.Context, f fetcher.Fetcher, srcs Sources, kinds ...Kind) (*Bundle, error) {
	seen := make(map[Kind]bool, len(kinds))
	unique := kinds[:0:0]
	for _, k := range kinds {
		if seen[k] {
			continue
		}
		seen[k] = true
		if srcs.of(k) == "" {
			return nil, eris.Wrapf(ErrLoadFailure, "%s: no source configured", k)
		}
		unique = append(unique, k)
	}
	tempDir := srcs.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, eris.Wrapf(ErrLoadFailure, "create temp dir %s: %v", tempDir, err)
	}

	start := time.Now()
	b := &Bundle{}
	g, gCtx := errgroup.WithContext(ctx)

	// Each goroutine writes a distinct Bundle field.
	for _, k := range unique {
		k := k
		src := srcs.of(k)
		g.Go(func() error {
			var err error
			switch k {
			case KindOccupations:
				b.Occupations, err = LoadOccupations(gCtx, f, src, tempDir)
			case KindEstimates:
				b.Estimates, err = LoadEstimates(gCtx, f, src)
			case KindTimeline:
				b.Timeline, err = LoadTimeline(gCtx, f, src, tempDir)
			case KindRobots:
				b.Robots, err = LoadRobotSales(gCtx, f, src)
			default:
				err = eris.Wrapf(ErrLoadFailure, "unknown dataset %q", k)
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	zap.L().Info("dataset: startup load complete",
		zap.Int("datasets", len(unique)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return b, nil
}
