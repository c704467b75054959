package series

import (
	"slices"

	"github.com/sells-group/jobviz-cli/internal/dataset"
)

// RobotChart is the robot sales area chart: points by year plus the x and y
// domains.
type RobotChart struct {
	Points    []dataset.RobotSale `json:"points" yaml:"points"`
	FirstYear int                 `json:"first_year" yaml:"first_year"`
	LastYear  int                 `json:"last_year" yaml:"last_year"`
	MaxUnits  int                 `json:"max_units" yaml:"max_units"`
}

// RobotSales sorts sales by year and computes the chart domains.
func RobotSales(sales []dataset.RobotSale) RobotChart {
	pts := slices.Clone(sales)
	slices.SortStableFunc(pts, func(a, b dataset.RobotSale) int { return a.Year - b.Year })

	c := RobotChart{Points: pts}
	if len(pts) == 0 {
		return c
	}
	c.FirstYear = pts[0].Year
	c.LastYear = pts[len(pts)-1].Year
	for _, p := range pts {
		c.MaxUnits = max(c.MaxUnits, p.Units)
	}
	return c
}
