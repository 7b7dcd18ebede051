package charts

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/dtnitsch/unstop-trends/pkg/mapreduce"
)

// FlatNodes turns ranked counts into leaf nodes.
func FlatNodes(kvs []mapreduce.KV) []Node {
	out := make([]Node, len(kvs))
	for i, kv := range kvs {
		out[i] = Node{Name: kv.Key, Value: float64(kv.Value)}
	}
	return out
}

// Total sums a node's own value or, for inner nodes, its children's totals.
func (n Node) Total() float64 {
	if len(n.Children) == 0 {
		return n.Value
	}
	var sum float64
	for _, c := range n.Children {
		sum += c.Total()
	}
	return sum
}

func treeMapNodes(nodes []Node) []opts.TreeMapNode {
	out := make([]opts.TreeMapNode, len(nodes))
	for i, n := range nodes {
		out[i] = opts.TreeMapNode{
			Name:     n.Name,
			Value:    int(math.Round(n.Total())),
			Children: treeMapNodes(n.Children),
		}
	}
	return out
}

func sunburstNodes(nodes []Node) []opts.SunBurstData {
	out := make([]opts.SunBurstData, len(nodes))
	for i, n := range nodes {
		out[i] = opts.SunBurstData{
			Name:     n.Name,
			Value:    round(n.Total(), 2),
			Children: sunburstChildren(n.Children),
		}
	}
	return out
}

func sunburstChildren(nodes []Node) []*opts.SunBurstData {
	if len(nodes) == 0 {
		return nil
	}
	flat := sunburstNodes(nodes)
	out := make([]*opts.SunBurstData, len(flat))
	for i := range flat {
		out[i] = &flat[i]
	}
	return out
}

func valueRange(nodes []Node) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, n := range nodes {
		t := n.Total()
		lo, hi = math.Min(lo, t), math.Max(hi, t)
	}
	if math.IsInf(lo, 1) {
		return 0, 1
	}
	return lo, hi
}

// TreeMap draws nested rectangles sized by node totals.
func TreeMap(f Frame, nodes []Node) *charts.TreeMap {
	lo, hi := valueRange(nodes)

	tm := charts.NewTreeMap()
	tm.SetGlobalOptions(append(f.globals(), visualMap(lo, hi, Viridis))...)
	tm.AddSeries(f.Title, treeMapNodes(nodes))
	return tm
}

// Sunburst draws nested rings sized by node totals.
func Sunburst(f Frame, nodes []Node) *charts.Sunburst {
	lo, hi := valueRange(nodes)

	sb := charts.NewSunburst()
	sb.SetGlobalOptions(append(f.globals(), visualMap(lo, hi, Blues))...)
	sb.AddSeries(f.Title, sunburstNodes(nodes))
	return sb
}
