package charts

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Grid is a matrix of values addressed by row and column labels.
// Cells[r][c] belongs to Rows[r] and Cols[c]; NaN cells are left empty.
type Grid struct {
	Rows  []string
	Cols  []string
	Cells [][]float64
}

// NewGrid allocates a zero-filled grid.
func NewGrid(rows, cols []string) *Grid {
	g := &Grid{Rows: rows, Cols: cols, Cells: make([][]float64, len(rows))}
	for r := range g.Cells {
		g.Cells[r] = make([]float64, len(cols))
	}
	return g
}

// HeatMap colors each grid cell by value, columns on the x axis.
func HeatMap(f Frame, g *Grid, colors []string) *charts.HeatMap {
	lo, hi := math.Inf(1), math.Inf(-1)
	var data []opts.HeatMapData
	for r := range g.Rows {
		for c := range g.Cols {
			v := g.Cells[r][c]
			if math.IsNaN(v) {
				continue
			}
			lo, hi = math.Min(lo, v), math.Max(hi, v)
			data = append(data, opts.HeatMapData{Value: [3]interface{}{c, r, round(v, 2)}})
		}
	}
	if len(data) == 0 {
		lo, hi = 0, 1
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(append(f.globals(),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: g.Cols}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: g.Rows}),
		visualMap(lo, hi, colors),
	)...)
	hm.SetXAxis(g.Cols).AddSeries(f.Title, data)
	return hm
}
