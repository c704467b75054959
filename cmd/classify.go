package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/jobviz-cli/internal/occupation"
)

type classification struct {
	Input      string           `json:"input" yaml:"input"`
	Code       int              `json:"code" yaml:"code"`
	Field      occupation.Field `json:"field" yaml:"field"`
	MajorGroup string           `json:"major_group,omitempty" yaml:"major_group,omitempty"`
}

var classifyCmd = &cobra.Command{
	Use:   "classify <soc-code>...",
	Short: "Map SOC codes to job fields",
	Long:  `Prints the job field for each SOC code, e.g. "11-1011" or 291141.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate("classify"); err != nil {
			return err
		}

		out, err := classifyCodes(args)
		if err != nil {
			return err
		}
		if format != formatTable {
			return writeStructured(cmd.OutOrStdout(), format, out)
		}

		w := newTable(cmd.OutOrStdout())
		_, _ = fmt.Fprintln(w, "CODE\tFIELD\tMAJOR GROUP")
		for _, c := range out {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", c.Input, c.Field, c.MajorGroup)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func classifyCodes(args []string) ([]classification, error) {
	out := make([]classification, 0, len(args))
	for _, arg := range args {
		code, err := occupation.ParseSOCCode(arg)
		if err != nil {
			return nil, err
		}
		field, err := occupation.Classify(code)
		if err != nil {
			return nil, err
		}
		title, _ := occupation.MajorGroupTitle(occupation.MajorGroupPrefix(code))
		out = append(out, classification{Input: arg, Code: code, Field: field, MajorGroup: title})
	}
	return out, nil
}
