// Package occupation classifies, partitions, adjusts, and projects BLS occupational
// employment records for the state choropleth views.
package occupation

import "github.com/rotisserie/eris"

// Recomputation failures. Each is local to one pass; callers keep their previous
// result when one is returned.
var (
	ErrInvalidInput    = eris.New("occupation: invalid input")
	ErrNoMatchingField = eris.New("occupation: no matching field")
	ErrDivisionByZero  = eris.New("occupation: state total is zero")
)
