package charts

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Bubble size bounds in pixels.
const (
	MinBubble = 4
	MaxBubble = 60
)

// BubbleSize maps v in [lo, hi] onto a bubble diameter, area proportional.
func BubbleSize(v, lo, hi float64) int {
	if hi <= lo || math.IsNaN(v) {
		return (MinBubble + MaxBubble) / 2
	}
	frac := (v - lo) / (hi - lo)
	frac = math.Max(0, math.Min(1, frac))
	return MinBubble + int(math.Round(math.Sqrt(frac)*float64(MaxBubble-MinBubble)))
}

// Bubble draws one colored series per group, sizing points by Point.Size.
func Bubble(f Frame, series []PointSeries, xName, yName string) *charts.Scatter {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, p := range s.Points {
			lo, hi = math.Min(lo, p.Size), math.Max(hi, p.Size)
		}
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(append(f.globals(),
		charts.WithXAxisOpts(opts.XAxis{Name: xName, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName, Type: "value"}),
	)...)
	for _, s := range series {
		data := make([]opts.ScatterData, len(s.Points))
		for i, p := range s.Points {
			data[i] = opts.ScatterData{
				Name:       p.Name,
				Value:      []interface{}{round(p.X, 2), round(p.Y, 2), round(p.Size, 2)},
				SymbolSize: BubbleSize(p.Size, lo, hi),
			}
		}
		sc.AddSeries(s.Name, data)
	}
	return sc
}

// Point3 is one observation of a 3D scatter.
type Point3 struct {
	Name    string
	X, Y, Z float64
}

// Scatter3D draws points in a rotatable 3D grid.
func Scatter3D(f Frame, points []Point3, xName, yName, zName string) *charts.Scatter3D {
	lo, hi := math.Inf(1), math.Inf(-1)
	data := make([]opts.Chart3DData, len(points))
	for i, p := range points {
		lo, hi = math.Min(lo, p.Z), math.Max(hi, p.Z)
		data[i] = opts.Chart3DData{
			Name:  p.Name,
			Value: []interface{}{round(p.X, 2), round(p.Y, 2), round(p.Z, 2)},
		}
	}
	if len(points) == 0 {
		lo, hi = 0, 1
	}

	sc := charts.NewScatter3D()
	sc.SetGlobalOptions(append(f.globals(),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: xName}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: yName}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: zName}),
		visualMap(lo, hi, Viridis),
	)...)
	sc.AddSeries(f.Title, data)
	return sc
}
