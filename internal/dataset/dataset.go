// Package dataset loads the occupation, automation, timeline, and robot sales
// datasets from local files or URLs.
package dataset

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// ErrLoadFailure marks a dataset that could not be fetched or parsed. It is
// fatal at startup: nothing renders from a partial load.
var ErrLoadFailure = eris.New("dataset: load failure")

// Reject is a source row skipped because one of its values was invalid.
type Reject struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// format is the container type of a source, from its extension.
type format int

const (
	formatCSV format = iota
	formatXLSX
	formatZIP
)

func formatOf(src string) format {
	if i := strings.IndexAny(src, "?#"); i >= 0 && strings.Contains(src, "://") {
		src = src[:i]
	}
	switch strings.ToLower(filepath.Ext(src)) {
	case ".xlsx":
		return formatXLSX
	case ".zip":
		return formatZIP
	default:
		return formatCSV
	}
}

// loadErr wraps err as a load failure for the named dataset and source.
func loadErr(err error, name, src string) error {
	return eris.Wrapf(ErrLoadFailure, "%s: %s: %v", name, src, err)
}
