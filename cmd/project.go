package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/jobviz-cli/internal/geo"
	"github.com/sells-group/jobviz-cli/internal/occupation"
	"github.com/sells-group/jobviz-cli/internal/session"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project jobs for one field and metric across states",
	Long: `Prints the state values of the selected field and metric, sorted ascending,
with the color-scale domain. With a map (--map or data.map), writes the map as
GeoJSON with each state's value injected as a property named after the metric.

Metrics: per-thousand, total-jobs, per-thousand-adjusted, total-jobs-adjusted.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}
		field, _ := cmd.Flags().GetString("field")
		metricName, _ := cmd.Flags().GetString("metric")
		metric, err := occupation.ParseMetric(metricName)
		if err != nil {
			return err
		}

		s, _, err := openSession(cmd)
		if err != nil {
			return err
		}
		if err := s.Select(session.Selection{Field: field, Metric: metric}); err != nil {
			return err
		}
		proj := s.Projection()

		mapSrc, _ := cmd.Flags().GetString("map")
		if mapSrc == "" {
			mapSrc = cfg.Data.Map
		}
		if mapSrc != "" {
			outPath, _ := cmd.Flags().GetString("out")
			if err := writeMap(cmd, mapSrc, outPath, proj); err != nil {
				return err
			}
		}

		if format != formatTable {
			return writeStructured(cmd.OutOrStdout(), format, proj)
		}
		return printProjection(cmd.OutOrStdout(), proj)
	},
}

func init() {
	addAdjustFlags(projectCmd)
	projectCmd.Flags().String("field", "Management", "job field (substring of the major group title)")
	projectCmd.Flags().String("metric", string(occupation.PerThousand), "metric to project")
	projectCmd.Flags().String("map", "", "state map: GeoJSON, .shp, or zipped shapefile (default data.map)")
	projectCmd.Flags().String("out", "jobviz-map.geojson", "GeoJSON output path for --map")
	rootCmd.AddCommand(projectCmd)
}

func writeMap(cmd *cobra.Command, src, outPath string, proj *occupation.Projection) error {
	fc, err := geo.Load(cmd.Context(), newFetcher(), src, cfg.Data.TempDir)
	if err != nil {
		return err
	}
	n := geo.Inject(fc, proj.ByState(), string(proj.Metric))

	f, err := os.Create(outPath)
	if err != nil {
		return eris.Wrapf(err, "create %s", outPath)
	}
	defer f.Close() //nolint:errcheck
	if err := geo.WriteGeoJSON(f, fc); err != nil {
		return err
	}

	zap.L().Info("wrote map",
		zap.String("path", outPath),
		zap.Int("features", len(fc.Features)),
		zap.Int("matched", n),
	)
	return nil
}

func printProjection(out io.Writer, p *occupation.Projection) error {
	_, _ = numbers.Fprintf(out, "%s, %s: domain [%.1f, %.1f]\n\n", p.Field, p.Metric, p.Min, p.Max)

	w := newTable(out)
	_, _ = fmt.Fprintln(w, "STATE\tFIELD\tVALUE")
	for _, v := range p.Values {
		_, _ = numbers.Fprintf(w, "%s\t%s\t%.1f\n", v.State, v.Field, v.Value)
	}
	return w.Flush()
}
