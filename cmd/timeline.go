package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/jobviz-cli/internal/dataset"
	"github.com/sells-group/jobviz-cli/internal/series"
)

// monthFlag is the --from/--to layout.
const monthFlag = "2006-01"

type timelineReport struct {
	From   time.Time       `json:"from" yaml:"from"`
	To     time.Time       `json:"to" yaml:"to"`
	Max    float64         `json:"max" yaml:"max"`
	Series []series.Series `json:"series" yaml:"series"`
}

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Print employment by occupation category over time",
	Long: `Transposes the monthly employment-by-occupation table into one series per
category. --from and --to (YYYY-MM, inclusive) restrict the range, as the
chart's brush does. Zero values are gaps in the line.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}
		from, err := monthFlagValue(cmd, "from")
		if err != nil {
			return err
		}
		to, err := monthFlagValue(cmd, "to")
		if err != nil {
			return err
		}
		if !from.IsZero() && !to.IsZero() && to.Before(from) {
			return eris.Errorf("--to %s is before --from %s", to.Format(monthFlag), from.Format(monthFlag))
		}

		b, err := loadBundle(cmd.Context(), "timeline", dataset.KindTimeline)
		if err != nil {
			return err
		}

		s := series.Between(series.Transpose(b.Timeline), from, to)
		report := timelineReport{Series: s, Max: series.MaxValue(s)}
		report.From, report.To, _ = series.Extent(s)

		if format != formatTable {
			return writeStructured(cmd.OutOrStdout(), format, report)
		}
		return printTimeline(cmd.OutOrStdout(), report)
	},
}

func init() {
	timelineCmd.Flags().String("from", "", "first month, YYYY-MM")
	timelineCmd.Flags().String("to", "", "last month, YYYY-MM")
	rootCmd.AddCommand(timelineCmd)
}

func monthFlagValue(cmd *cobra.Command, name string) (time.Time, error) {
	v, _ := cmd.Flags().GetString(name)
	if v = strings.TrimSpace(v); v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(monthFlag, v)
	if err != nil {
		return time.Time{}, eris.Errorf("--%s %q is not YYYY-MM", name, v)
	}
	return t, nil
}

func printTimeline(out io.Writer, r timelineReport) error {
	if len(r.Series) == 0 || len(r.Series[0].Points) == 0 {
		_, _ = fmt.Fprintln(out, "no timeline rows in range")
		return nil
	}
	_, _ = numbers.Fprintf(out, "%s to %s, max %.0f\n\n", r.From.Format("Jan 2006"), r.To.Format("Jan 2006"), r.Max)

	w := newTable(out)
	header := []string{"MONTH"}
	for _, s := range r.Series {
		header = append(header, strings.ToUpper(s.Name))
	}
	_, _ = fmt.Fprintln(w, strings.Join(header, "\t"))

	for i, p := range r.Series[0].Points {
		cells := []string{p.Date.Format("Jan 2006")}
		for _, s := range r.Series {
			pt := s.Points[i]
			if !pt.Defined {
				cells = append(cells, "-")
				continue
			}
			cells = append(cells, numbers.Sprintf("%.0f", pt.Value))
		}
		_, _ = fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return w.Flush()
}
