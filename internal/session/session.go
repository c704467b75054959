// Package session holds the loaded tables and the current map selection. It
// replaces shared mutable globals: every read and write of the selection goes
// through a Session.
package session

import (
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/jobviz-cli/internal/occupation"
)

// Selection is the user's current job field and metric.
type Selection struct {
	Field  string            `json:"field" yaml:"field"`
	Metric occupation.Metric `json:"metric" yaml:"metric"`
}

// DefaultSelection is the initial map state.
var DefaultSelection = Selection{
	Field:  string(occupation.Fields()[0]),
	Metric: occupation.PerThousand,
}

// Session is one viewer's state: the partitioned records, the raw and
// adjusted tables built from them, and the projection of the current
// selection. A Session is not safe for concurrent use.
type Session struct {
	ID string

	partitioned *occupation.Partitioned
	estimates   []occupation.Estimate
	opts        occupation.AdjustOptions

	tables     *occupation.Tables
	adjusted   *occupation.Adjusted
	selection  Selection
	projection *occupation.Projection

	log *zap.Logger
}

// New partitions records, builds every table, and projects the initial
// selection: DefaultSelection when the data has that field, otherwise the
// first field of occupation.Fields that matches a row. When no known field
// matches, the session starts with no selection and Projection returns nil
// until Select succeeds. Failing to build the tables is an error.
func New(records []occupation.Record, estimates []occupation.Estimate, opts occupation.AdjustOptions) (*Session, error) {
	p, err := occupation.Partition(records)
	if err != nil {
		return nil, eris.Wrap(err, "session: partition")
	}

	id := uuid.NewString()
	s := &Session{
		ID:          id,
		partitioned: p,
		log:         zap.L().With(zap.String("session_id", id)),
	}
	if err := s.Rebuild(estimates, opts); err != nil {
		return nil, err
	}
	s.selectInitial()

	s.log.Info("session: ready",
		zap.Int("majors", len(p.Majors)),
		zap.Int("details", len(p.Details)),
		zap.Int("totals", len(p.Totals)),
		zap.Int("anomalies", len(p.Anomalies)),
	)
	return s, nil
}

func (s *Session) selectInitial() {
	candidates := []Selection{DefaultSelection}
	for _, f := range occupation.Fields() {
		if string(f) != DefaultSelection.Field {
			candidates = append(candidates, Selection{Field: string(f), Metric: DefaultSelection.Metric})
		}
	}
	for _, sel := range candidates {
		proj, err := occupation.Project(s.tables, sel.Field, sel.Metric)
		if err != nil {
			continue
		}
		s.selection, s.projection = sel, proj
		return
	}
	s.log.Warn("session: no known field in data, starting without a selection")
}

// Rebuild recomputes the raw and adjusted tables from scratch with new
// estimates or options, then re-projects the current selection. On failure
// the previous tables and projection are kept.
func (s *Session) Rebuild(estimates []occupation.Estimate, opts occupation.AdjustOptions) error {
	tables, adj, err := occupation.Build(s.partitioned, estimates, opts)
	if err != nil {
		s.log.Warn("session: rebuild failed, keeping previous tables", zap.Error(err))
		return eris.Wrap(err, "session: rebuild")
	}

	var proj *occupation.Projection
	if s.selection != (Selection{}) {
		proj, err = occupation.Project(tables, s.selection.Field, s.selection.Metric)
		if err != nil {
			s.log.Warn("session: rebuild failed, keeping previous tables", zap.Error(err))
			return eris.Wrap(err, "session: rebuild")
		}
	}

	s.tables, s.adjusted = tables, adj
	s.estimates, s.opts = estimates, opts
	if proj != nil {
		s.projection = proj
	}
	return nil
}

// Select replaces the selection and re-projects synchronously. On failure the
// previous selection and projection are retained and the error is returned.
func (s *Session) Select(sel Selection) error {
	proj, err := occupation.Project(s.tables, sel.Field, sel.Metric)
	if err != nil {
		s.log.Warn("session: selection rejected",
			zap.String("field", sel.Field),
			zap.String("metric", string(sel.Metric)),
			zap.Error(err),
		)
		return eris.Wrapf(err, "session: select %s/%s", sel.Field, sel.Metric)
	}
	s.selection = sel
	s.projection = proj

	s.log.Debug("session: selection changed",
		zap.String("field", sel.Field),
		zap.String("metric", string(sel.Metric)),
		zap.Int("states", len(proj.Values)),
	)
	return nil
}

// SelectField changes only the field. A session without a selection uses
// DefaultSelection's metric.
func (s *Session) SelectField(field string) error {
	sel := s.selection
	if sel.Metric == "" {
		sel.Metric = DefaultSelection.Metric
	}
	sel.Field = field
	return s.Select(sel)
}

// SelectMetric changes only the metric.
func (s *Session) SelectMetric(m occupation.Metric) error {
	sel := s.selection
	sel.Metric = m
	return s.Select(sel)
}

// Selection returns the current selection.
func (s *Session) Selection() Selection { return s.selection }

// Projection returns the projection of the current selection.
func (s *Session) Projection() *occupation.Projection { return s.projection }

// Tables returns the current raw and adjusted tables.
func (s *Session) Tables() *occupation.Tables { return s.tables }

// Adjusted returns the details and counts of the last adjustment pass.
func (s *Session) Adjusted() *occupation.Adjusted { return s.adjusted }

// Partitioned returns the partitioned records.
func (s *Session) Partitioned() *occupation.Partitioned { return s.partitioned }

// Options returns the adjustment options of the current tables.
func (s *Session) Options() occupation.AdjustOptions { return s.opts }
