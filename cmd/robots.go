package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sells-group/jobviz-cli/internal/dataset"
	"github.com/sells-group/jobviz-cli/internal/series"
)

var robotsCmd = &cobra.Command{
	Use:   "robots",
	Short: "Print worldwide industrial robot unit sales by year",
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}
		b, err := loadBundle(cmd.Context(), "robots", dataset.KindRobots)
		if err != nil {
			return err
		}

		chart := series.RobotSales(b.Robots)
		if format != formatTable {
			return writeStructured(cmd.OutOrStdout(), format, chart)
		}
		return printRobots(cmd.OutOrStdout(), chart)
	},
}

func init() {
	rootCmd.AddCommand(robotsCmd)
}

func printRobots(out io.Writer, c series.RobotChart) error {
	if len(c.Points) == 0 {
		_, _ = fmt.Fprintln(out, "no robot sales rows")
		return nil
	}
	_, _ = fmt.Fprintf(out, "%d-%d, max %s units\n\n", c.FirstYear, c.LastYear, numbers.Sprintf("%d", c.MaxUnits))

	w := newTable(out)
	_, _ = fmt.Fprintln(w, "YEAR\tUNITS")
	for _, p := range c.Points {
		_, _ = fmt.Fprintf(w, "%d\t%s\n", p.Year, numbers.Sprintf("%d", p.Units))
	}
	return w.Flush()
}
