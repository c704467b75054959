// Package geo loads the state feature collections the choropleth is drawn on
// and injects projected values into them.
package geo

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/sells-group/jobviz-cli/internal/fetcher"
)

// Load reads a state map from a local path or URL. Shapefiles (.shp, or a
// .zip holding .shp and .dbf, as Census ships cb_*_us_state_*.zip) and GeoJSON
// are supported.
func Load(ctx context.Context, f fetcher.Fetcher, src, tempDir string) (*geojson.FeatureCollection, error) {
	var (
		fc  *geojson.FeatureCollection
		err error
	)
	switch strings.ToLower(filepath.Ext(src)) {
	case ".zip":
		fc, err = loadShapefileZIP(ctx, f, src, tempDir)
	case ".shp":
		if fetcher.IsRemote(src) {
			return nil, eris.Errorf("geo: remote shapefiles must be zipped: %s", src)
		}
		fc, err = LoadShapefile(src)
	default:
		fc, err = loadGeoJSONSource(ctx, f, src)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "geo: load %s", src)
	}

	zap.L().Info("geo: loaded map", zap.String("source", src), zap.Int("features", len(fc.Features)))
	return fc, nil
}

func loadShapefileZIP(ctx context.Context, f fetcher.Fetcher, src, tempDir string) (*geojson.FeatureCollection, error) {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "create temp dir %s", tempDir)
	}
	path, err := fetcher.Localize(ctx, f, src, tempDir)
	if err != nil {
		return nil, err
	}
	if path != src {
		defer os.Remove(path) //nolint:errcheck
	}

	dir, err := os.MkdirTemp(tempDir, "jobviz-shp-*")
	if err != nil {
		return nil, eris.Wrap(err, "create shapefile extraction dir")
	}
	defer os.RemoveAll(dir) //nolint:errcheck

	shpPath, err := fetcher.ExtractZIPMatch(path, dir, fetcher.HasExt(".shp"))
	if err != nil {
		return nil, err
	}
	if _, err := fetcher.ExtractZIPMatch(path, dir, fetcher.HasExt(".dbf")); err != nil {
		return nil, err
	}
	// The index is optional for sequential reads.
	_, _ = fetcher.ExtractZIPMatch(path, dir, fetcher.HasExt(".shx"))

	return LoadShapefile(shpPath)
}

func loadGeoJSONSource(ctx context.Context, f fetcher.Fetcher, src string) (*geojson.FeatureCollection, error) {
	rc, err := fetcher.Open(ctx, f, src)
	if err != nil {
		return nil, err
	}
	defer rc.Close() //nolint:errcheck
	return LoadGeoJSON(rc)
}
