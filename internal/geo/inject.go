package geo

import (
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"
)

// Region resolves the state name of a feature: its "name" (or "NAME")
// property, falling back to the FIPS feature id.
func Region(f *geojson.Feature) (string, bool) {
	for _, key := range []string{"name", "NAME"} {
		if name, ok := f.Properties[key].(string); ok && name != "" {
			return name, true
		}
	}
	if f.ID != "" {
		return StateName(f.ID)
	}
	return "", false
}

// Inject sets properties[property] on every feature whose region has a value
// and returns the number of features set. Features without a value are left
// without the property.
func Inject(fc *geojson.FeatureCollection, values map[string]float64, property string) int {
	if fc == nil {
		return 0
	}
	matched := 0
	for _, f := range fc.Features {
		region, ok := Region(f)
		if !ok {
			continue
		}
		v, ok := values[region]
		if !ok {
			continue
		}
		if f.Properties == nil {
			f.Properties = make(map[string]any)
		}
		f.Properties[property] = v
		matched++
	}

	if matched == 0 && len(fc.Features) > 0 {
		zap.L().Warn("geo: no feature matched a projected region",
			zap.Int("features", len(fc.Features)),
			zap.Int("values", len(values)),
			zap.String("property", property),
		)
	}
	return matched
}
