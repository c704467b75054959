package main

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/jobviz-cli/internal/dataset"
	"github.com/sells-group/jobviz-cli/internal/fetcher"
	"github.com/sells-group/jobviz-cli/internal/occupation"
	"github.com/sells-group/jobviz-cli/internal/session"
)

func newFetcher() *fetcher.HTTPFetcher {
	return fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent:  cfg.Fetch.UserAgent,
		Timeout:    cfg.Fetch.Timeout(),
		MaxRetries: cfg.Fetch.MaxRetries,
	})
}

func sources() dataset.Sources {
	return dataset.Sources{
		Occupations: cfg.Data.Occupations,
		Estimates:   cfg.Data.Estimates,
		Timeline:    cfg.Data.Timeline,
		Robots:      cfg.Data.Robots,
		TempDir:     cfg.Data.TempDir,
	}
}

// loadBundle validates the config for mode and loads the given datasets.
func loadBundle(ctx context.Context, mode string, kinds ...dataset.Kind) (*dataset.Bundle, error) {
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}
	b, err := dataset.LoadAll(ctx, newFetcher(), sources(), kinds...)
	if err != nil {
		return nil, eris.Wrap(err, "load datasets")
	}
	return b, nil
}

// addAdjustFlags registers the flags that override the adjust.* config.
func addAdjustFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("threshold", 0, "automation probability at or above which jobs are removed (default from config)")
	cmd.Flags().String("unmatched", "", "details with no estimate: drop or keep (default from config)")
}

// adjustOptions resolves adjustment options from config and flag overrides.
func adjustOptions(cmd *cobra.Command) (occupation.AdjustOptions, error) {
	if cmd.Flags().Changed("threshold") {
		cfg.Adjust.Threshold, _ = cmd.Flags().GetFloat64("threshold")
	}
	if cmd.Flags().Changed("unmatched") {
		cfg.Adjust.Unmatched, _ = cmd.Flags().GetString("unmatched")
	}

	policy, err := occupation.ParseUnmatchedPolicy(cfg.Adjust.Unmatched)
	if err != nil {
		return occupation.AdjustOptions{}, err
	}
	return occupation.AdjustOptions{Threshold: cfg.Adjust.Threshold, Unmatched: policy}, nil
}

// openSession loads occupations and estimates and builds a session.
func openSession(cmd *cobra.Command) (*session.Session, *dataset.Bundle, error) {
	opts, err := adjustOptions(cmd)
	if err != nil {
		return nil, nil, err
	}
	b, err := loadBundle(cmd.Context(), "map", dataset.KindOccupations, dataset.KindEstimates)
	if err != nil {
		return nil, nil, err
	}

	s, err := session.New(b.Occupations.Records, b.Estimates.Estimates, opts)
	if err != nil {
		return nil, nil, err
	}
	zap.L().Debug("session opened",
		zap.String("session_id", s.ID),
		zap.Float64("threshold", opts.Threshold),
		zap.String("unmatched", string(opts.Unmatched)),
	)
	return s, b, nil
}
