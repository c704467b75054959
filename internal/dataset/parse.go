package dataset

import (
	"io"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"github.com/sells-group/jobviz-cli/internal/fetcher"
)

// newTagDecoder reads the header row and rewrites any column that matches
// one of names case-insensitively to that exact name, so csvutil tags bind
// regardless of the header's capitalization.
func newTagDecoder(r io.Reader, names ...string) (*csvutil.Decoder, error) {
	cr := fetcher.NewCSVReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, eris.Wrap(err, "read header")
	}
	canon := make(map[string]string, len(names))
	for _, name := range names {
		canon[strings.ToLower(name)] = name
	}
	for i, col := range header {
		if name, ok := canon[strings.ToLower(strings.TrimSpace(col))]; ok {
			header[i] = name
		}
	}
	dec, err := csvutil.NewDecoder(cr, header...)
	if err != nil {
		return nil, eris.Wrap(err, "read header")
	}
	return dec, nil
}

// mapColumns builds a lowercased column name → index map.
func mapColumns(header []string) map[string]int {
	m := make(map[string]int, len(header))
	for i, col := range header {
		m[strings.ToLower(strings.TrimSpace(col))] = i
	}
	return m
}

// getCol gets a column value by name from a record, returning empty string if not found.
func getCol(record []string, colIdx map[string]int, name string) string {
	idx, ok := colIdx[strings.ToLower(name)]
	if !ok || idx >= len(record) {
		return ""
	}
	return trimQuotes(record[idx])
}

// firstCol returns the value of the first of names present in the header.
// Used for columns renamed between release years (OCC_GROUP vs O_GROUP).
func firstCol(record []string, colIdx map[string]int, names ...string) string {
	for _, name := range names {
		if _, ok := colIdx[strings.ToLower(name)]; ok {
			return getCol(record, colIdx, name)
		}
	}
	return ""
}

// hasAny reports whether the header carries at least one of names.
func hasAny(colIdx map[string]int, names ...string) bool {
	for _, name := range names {
		if _, ok := colIdx[strings.ToLower(name)]; ok {
			return true
		}
	}
	return false
}

// trimQuotes removes surrounding double quotes from a CSV field.
func trimQuotes(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}
