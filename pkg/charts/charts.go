// Package charts builds go-echarts charts from already aggregated data.
// Builders take plain values so callers never touch echarts option types.
package charts

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/render"

	"github.com/dtnitsch/unstop-trends/pkg/mapreduce"
)

// Chart is anything that renders into an embeddable HTML snippet.
type Chart interface {
	RenderSnippet() render.ChartSnippet
}

// Frame holds the options shared by every chart.
type Frame struct {
	ID       string
	Title    string
	Subtitle string
	Width    string
	Height   string
}

// DefaultWidth and DefaultHeight size a chart when Frame leaves them empty.
const (
	DefaultWidth  = "960px"
	DefaultHeight = "540px"
)

func (f Frame) globals() []charts.GlobalOpts {
	width, height := f.Width, f.Height
	if width == "" {
		width = DefaultWidth
	}
	if height == "" {
		height = DefaultHeight
	}
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: f.ID,
			Width:   width,
			Height:  height,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    f.Title,
			Subtitle: f.Subtitle,
		}),
	}
}

// Node is one element of a hierarchical chart (treemap, sunburst).
type Node struct {
	Name     string
	Value    float64
	Children []Node
}

// Point is one observation of a scatter or bubble chart.
type Point struct {
	Name string
	X, Y float64
	Size float64
}

// PointSeries is a named group of points, drawn in its own color.
type PointSeries struct {
	Name   string
	Points []Point
}

// Series is a named row of values aligned with a category axis.
type Series struct {
	Name   string
	Values []float64
}

// Palettes for continuous color scales.
var (
	Viridis = []string{"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"}
	YlGnBu  = []string{"#ffffd9", "#c7e9b4", "#41b6c4", "#225ea8", "#081d58"}
	Blues   = []string{"#f7fbff", "#c6dbef", "#6baed6", "#2171b5", "#08306b"}
	RdBu    = []string{"#67001f", "#d6604d", "#f7f7f7", "#4393c3", "#053061"}
)

func keys(kvs []mapreduce.KV) []string {
	out := make([]string, len(kvs))
	for i, kv := range kvs {
		out[i] = kv.Key
	}
	return out
}

func visualMap(lo, hi float64, colors []string) charts.GlobalOpts {
	if hi <= lo {
		hi = lo + 1
	}
	return charts.WithVisualMapOpts(opts.VisualMap{
		Min:     float32(lo),
		Max:     float32(hi),
		InRange: &opts.VisualMapInRange{Color: colors},
	})
}

// round keeps rendered option JSON short and finite.
func round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
