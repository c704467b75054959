package geo

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/jobviz-cli/internal/fetcher"
)

// LoadGeoJSON decodes a GeoJSON FeatureCollection. Numeric feature ids (as in
// the us-atlas state files) are converted to zero-padded FIPS strings.
func LoadGeoJSON(r io.Reader) (*geojson.FeatureCollection, error) {
	top, err := fetcher.DecodeJSONObject[map[string]json.RawMessage](r)
	if err != nil {
		return nil, eris.Wrap(err, "geo: decode feature collection")
	}
	data, err := normalizeIDs(*top)
	if err != nil {
		return nil, err
	}

	fc := &geojson.FeatureCollection{}
	if err := fc.UnmarshalJSON(data); err != nil {
		return nil, eris.Wrap(err, "geo: decode feature collection")
	}
	return fc, nil
}

func normalizeIDs(top map[string]json.RawMessage) ([]byte, error) {
	if raw, ok := top["features"]; ok {
		var features []map[string]json.RawMessage
		if err := json.Unmarshal(raw, &features); err != nil {
			return nil, eris.Wrap(err, "geo: decode features")
		}
		for _, f := range features {
			id, ok := f["id"]
			if !ok || len(id) == 0 || id[0] == '"' || string(id) == "null" {
				continue
			}
			var n json.Number
			if err := json.Unmarshal(id, &n); err != nil {
				return nil, eris.Wrapf(err, "geo: feature id %s", id)
			}
			f["id"], _ = json.Marshal(NormalizeFIPS(n.String()))
		}
		raw, err := json.Marshal(features)
		if err != nil {
			return nil, eris.Wrap(err, "geo: encode features")
		}
		top["features"] = raw
	}
	data, err := json.Marshal(top)
	if err != nil {
		return nil, eris.Wrap(err, "geo: encode feature collection")
	}
	return data, nil
}

// WriteGeoJSON encodes fc to w.
func WriteGeoJSON(w io.Writer, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return eris.Wrap(err, "geo: encode feature collection")
	}
	if _, err := w.Write(data); err != nil {
		return eris.Wrap(err, "geo: write feature collection")
	}
	return nil
}
