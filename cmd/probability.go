package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sells-group/jobviz-cli/internal/dataset"
	"github.com/sells-group/jobviz-cli/internal/series"
)

var probabilityCmd = &cobra.Command{
	Use:   "probability",
	Short: "Print the average automation probability per SOC major group",
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}
		b, err := loadBundle(cmd.Context(), "probability", dataset.KindEstimates)
		if err != nil {
			return err
		}

		groups := series.ProbabilityByGroup(b.Estimates.Estimates)
		if format != formatTable {
			return writeStructured(cmd.OutOrStdout(), format, groups)
		}
		return printProbability(cmd.OutOrStdout(), groups)
	},
}

func init() {
	rootCmd.AddCommand(probabilityCmd)
}

func printProbability(out io.Writer, groups []series.GroupProbability) error {
	w := newTable(out)
	_, _ = fmt.Fprintln(w, "SOC\tMAJOR GROUP\tOCCUPATIONS\tPROBABILITY")
	for _, g := range groups {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%.1f%%\n", g.Prefix, g.Title, g.Occupations, 100*g.Probability)
	}
	return w.Flush()
}
