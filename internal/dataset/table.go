package dataset

import (
	"context"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/jobviz-cli/internal/fetcher"
)

// readTable loads a header and rows from a CSV, XLSX, or ZIP source. ZIP
// archives are searched for an entry whose name contains hint, then for any
// XLSX, then for any CSV/TXT entry.
func readTable(ctx context.Context, f fetcher.Fetcher, src, tempDir, hint string) ([]string, [][]string, error) {
	switch formatOf(src) {
	case formatXLSX:
		path, err := fetcher.Localize(ctx, f, src, tempDir)
		if err != nil {
			return nil, nil, err
		}
		if path != src {
			defer os.Remove(path) //nolint:errcheck
		}
		return fetcher.ReadXLSX(path, fetcher.XLSXOptions{})

	case formatZIP:
		path, err := fetcher.Localize(ctx, f, src, tempDir)
		if err != nil {
			return nil, nil, err
		}
		if path != src {
			defer os.Remove(path) //nolint:errcheck
		}
		return readZIPTable(ctx, path, tempDir, hint)

	default:
		rc, err := fetcher.Open(ctx, f, src)
		if err != nil {
			return nil, nil, err
		}
		defer rc.Close() //nolint:errcheck
		return fetcher.ReadCSV(ctx, rc)
	}
}

func readZIPTable(ctx context.Context, zipPath, tempDir, hint string) ([]string, [][]string, error) {
	dir, err := os.MkdirTemp(tempDir, "jobviz-zip-*")
	if err != nil {
		return nil, nil, eris.Wrap(err, "create zip extraction dir")
	}
	defer os.RemoveAll(dir) //nolint:errcheck

	tabular := fetcher.HasExt(".xlsx", ".csv", ".txt")
	matchers := []func(string) bool{}
	if hint != "" {
		hint = strings.ToLower(hint)
		matchers = append(matchers, func(name string) bool {
			return strings.Contains(name, hint) && tabular(name)
		})
	}
	matchers = append(matchers, fetcher.HasExt(".xlsx"), fetcher.HasExt(".csv", ".txt"))

	entry, err := fetcher.ExtractZIPMatch(zipPath, dir, matchers...)
	if err != nil {
		return nil, nil, err
	}
	zap.L().Debug("dataset: extracted zip entry", zap.String("zip", zipPath), zap.String("entry", entry))

	if formatOf(entry) == formatXLSX {
		return fetcher.ReadXLSX(entry, fetcher.XLSXOptions{})
	}
	file, err := os.Open(entry)
	if err != nil {
		return nil, nil, eris.Wrap(err, "open extracted entry")
	}
	defer file.Close() //nolint:errcheck
	return fetcher.ReadCSV(ctx, file)
}
