package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sells-group/jobviz-cli/internal/dataset"
	"github.com/sells-group/jobviz-cli/internal/occupation"
	"github.com/sells-group/jobviz-cli/internal/session"
)

type stateComparison struct {
	State    string `json:"state" yaml:"state"`
	Raw      int    `json:"raw" yaml:"raw"`
	Adjusted int    `json:"adjusted" yaml:"adjusted"`
	Removed  int    `json:"removed" yaml:"removed"`
}

type adjustReport struct {
	Threshold float64                     `json:"threshold" yaml:"threshold"`
	Policy    occupation.UnmatchedPolicy  `json:"unmatched_policy" yaml:"unmatched_policy"`
	Automated int                         `json:"automated" yaml:"automated"`
	Unmatched int                         `json:"unmatched" yaml:"unmatched"`
	Anomalies int                         `json:"anomalies" yaml:"anomalies"`
	Rejected  int                         `json:"rejected" yaml:"rejected"`
	States    []stateComparison           `json:"states" yaml:"states"`
	Fields    []occupation.FieldAggregate `json:"fields,omitempty" yaml:"fields,omitempty"`
}

var adjustCmd = &cobra.Command{
	Use:   "adjust",
	Short: "Compare raw and automation-adjusted state job totals",
	Long: `Removes jobs whose automation probability meets the threshold and prints,
per state, the raw and adjusted job totals. With --fields, also prints the
adjusted per-field table.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}
		s, b, err := openSession(cmd)
		if err != nil {
			return err
		}

		report := buildAdjustReport(s, b)
		if withFields, _ := cmd.Flags().GetBool("fields"); withFields {
			report.Fields = s.Tables().Adjusted
		}

		if format != formatTable {
			return writeStructured(cmd.OutOrStdout(), format, report)
		}
		return printAdjustReport(cmd.OutOrStdout(), report)
	},
}

func init() {
	addAdjustFlags(adjustCmd)
	adjustCmd.Flags().Bool("fields", false, "include the adjusted per-field table")
	rootCmd.AddCommand(adjustCmd)
}

func buildAdjustReport(s *session.Session, b *dataset.Bundle) adjustReport {
	adj := s.Adjusted()
	opts := s.Options()
	r := adjustReport{
		Threshold: opts.Threshold,
		Policy:    opts.Unmatched,
		Automated: adj.Automated,
		Unmatched: adj.Unmatched,
		Anomalies: len(s.Partitioned().Anomalies),
		Rejected:  len(b.Occupations.Rejects) + len(b.Estimates.Rejects),
	}

	adjusted := make(map[string]int, len(s.Tables().AdjustedTotals))
	for _, st := range s.Tables().AdjustedTotals {
		adjusted[st.State] = st.TotalJobs
	}
	for _, st := range s.Tables().RawTotals {
		a := adjusted[st.State]
		r.States = append(r.States, stateComparison{
			State:    st.State,
			Raw:      st.TotalJobs,
			Adjusted: a,
			Removed:  st.TotalJobs - a,
		})
	}
	return r
}

func printAdjustReport(out io.Writer, r adjustReport) error {
	_, _ = numbers.Fprintf(out, "threshold %.2f, unmatched %s: %d automated, %d unmatched, %d anomalies, %d rejected rows\n\n",
		r.Threshold, r.Policy, r.Automated, r.Unmatched, r.Anomalies, r.Rejected)

	w := newTable(out)
	_, _ = fmt.Fprintln(w, "STATE\tRAW\tADJUSTED\tREMOVED")
	for _, st := range r.States {
		_, _ = numbers.Fprintf(w, "%s\t%d\t%d\t%d\n", st.State, st.Raw, st.Adjusted, st.Removed)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(r.Fields) == 0 {
		return nil
	}
	_, _ = fmt.Fprintln(out)
	w = newTable(out)
	_, _ = fmt.Fprintln(w, "STATE\tFIELD\tJOBS\tPER 1000")
	for _, f := range r.Fields {
		_, _ = numbers.Fprintf(w, "%s\t%s\t%d\t%.0f\n", f.State, f.Field, f.TotalJobs, f.JobsPerThousand)
	}
	return w.Flush()
}
