package series

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/jobviz-cli/internal/dataset"
)

func TestRobotSales(t *testing.T) {
	in := []dataset.RobotSale{{Year: 2014, Units: 229261}, {Year: 2004, Units: 97000}, {Year: 2009, Units: 60000}}
	c := RobotSales(in)

	assert.Equal(t, []int{2004, 2009, 2014}, []int{c.Points[0].Year, c.Points[1].Year, c.Points[2].Year})
	assert.Equal(t, 2004, c.FirstYear)
	assert.Equal(t, 2014, c.LastYear)
	assert.Equal(t, 229261, c.MaxUnits)
	assert.Equal(t, 2014, in[0].Year, "input is not reordered")
}

func TestRobotSales_Empty(t *testing.T) {
	c := RobotSales(nil)
	assert.Empty(t, c.Points)
	assert.Zero(t, c.MaxUnits)
}
