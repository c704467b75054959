package occupation

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Detail is a detailed-occupation record annotated with its job field.
type Detail struct {
	Record
	Field Field `json:"field"`
}

// Anomaly is a record that could not be placed in any group.
type Anomaly struct {
	Index  int    `json:"index"`
	Record Record `json:"record"`
	Reason string `json:"reason"`
}

// Partitioned holds the three disjoint record groups in input order.
type Partitioned struct {
	Majors    []Record  `json:"majors"`
	Details   []Detail  `json:"details"`
	Totals    []Record  `json:"totals"`
	Anomalies []Anomaly `json:"anomalies,omitempty"`
}

// Partition splits records by group in a single stable pass. Records with an
// unknown group are reported as anomalies instead of being dropped.
func Partition(records []Record) (*Partitioned, error) {
	p := &Partitioned{}
	for i, r := range records {
		switch r.Group {
		case GroupMajor:
			p.Majors = append(p.Majors, r)
		case GroupTotal:
			p.Totals = append(p.Totals, r)
		case GroupDetailed:
			field, err := Classify(r.Code)
			if err != nil {
				return nil, eris.Wrapf(err, "partition: record %d (%s)", i, r.Title)
			}
			p.Details = append(p.Details, Detail{Record: r, Field: field})
		default:
			p.Anomalies = append(p.Anomalies, Anomaly{
				Index:  i,
				Record: r,
				Reason: "unknown occupation group " + string(r.Group),
			})
		}
	}

	if len(p.Anomalies) > 0 {
		zap.L().Warn("partition: records with unknown occupation group",
			zap.Int("count", len(p.Anomalies)),
			zap.String("first_group", string(p.Anomalies[0].Record.Group)),
			zap.Int("first_index", p.Anomalies[0].Index),
		)
	}

	return p, nil
}
