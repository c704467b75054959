package dataset

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/jobviz-cli/internal/fetcher"
)

// RobotSale is one year of worldwide industrial robot unit sales (IFR).
type RobotSale struct {
	Year  int `json:"year" yaml:"year"`
	Units int `json:"units" yaml:"units"`
}

type robotRow struct {
	Year  int    `csv:"Year"`
	Units string `csv:"Units"`
}

// LoadRobotSales reads RobotUnitsSold.csv.
func LoadRobotSales(ctx context.Context, f fetcher.Fetcher, src string) ([]RobotSale, error) {
	rc, err := fetcher.Open(ctx, f, src)
	if err != nil {
		return nil, loadErr(err, "robots", src)
	}
	defer rc.Close() //nolint:errcheck

	sales, err := decodeRobotSales(rc)
	if err != nil {
		return nil, loadErr(err, "robots", src)
	}
	zap.L().Info("dataset: loaded robot sales", zap.String("source", src), zap.Int("years", len(sales)))
	return sales, nil
}

func decodeRobotSales(r io.Reader) ([]RobotSale, error) {
	dec, err := newTagDecoder(r, "Year", "Units")
	if err != nil {
		return nil, err
	}

	var sales []RobotSale
	for line := 2; ; line++ {
		var row robotRow
		if err := dec.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			return nil, eris.Wrapf(err, "decode line %d", line)
		}
		units, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(row.Units), ",", ""))
		if err != nil {
			return nil, eris.Errorf("line %d: units %q is not a number", line, row.Units)
		}
		sales = append(sales, RobotSale{Year: row.Year, Units: units})
	}
	return sales, nil
}
