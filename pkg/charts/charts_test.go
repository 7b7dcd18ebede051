package charts

import (
	"math"
	"strings"
	"testing"

	"github.com/dtnitsch/unstop-trends/pkg/mapreduce"
)

func TestBubbleSize(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      int
	}{
		{"minimum", 0, 0, 100, MinBubble},
		{"maximum", 100, 0, 100, MaxBubble},
		{"clamped above", 500, 0, 100, MaxBubble},
		{"quarter area is half diameter", 25, 0, 100, MinBubble + (MaxBubble-MinBubble)/2},
		{"flat range", 5, 5, 5, (MinBubble + MaxBubble) / 2},
		{"NaN", math.NaN(), 0, 1, (MinBubble + MaxBubble) / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BubbleSize(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("BubbleSize(%v, %v, %v) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestNodeTotal(t *testing.T) {
	n := Node{Name: "Online", Value: 999, Children: []Node{
		{Name: "Coding", Value: 3},
		{Name: "Quiz", Children: []Node{{Name: "GK", Value: 2}, {Name: "Tech", Value: 5}}},
	}}
	if got := n.Total(); got != 10 {
		t.Errorf("Total() = %v, want 10 (inner values ignored)", got)
	}

	flat := FlatNodes([]mapreduce.KV{{Key: "a", Value: 2}, {Key: "b", Value: 1}})
	if len(flat) != 2 || flat[0].Total() != 2 {
		t.Errorf("FlatNodes() = %+v", flat)
	}
}

func TestNewGrid(t *testing.T) {
	g := NewGrid([]string{"2024-01", "2024-02"}, []string{"Online", "Offline", "Hybrid"})
	if len(g.Cells) != 2 || len(g.Cells[1]) != 3 {
		t.Fatalf("grid shape = %dx%d", len(g.Cells), len(g.Cells[0]))
	}
}

func TestSnippetsCarryChartID(t *testing.T) {
	kvs := []mapreduce.KV{{Key: "Online", Value: 7}, {Key: "Offline", Value: 3}}
	grid := NewGrid([]string{"r"}, []string{"c1", "c2"})
	grid.Cells[0][1] = math.NaN()

	tests := []struct {
		id    string
		chart Chart
	}{
		{"bar_chart", HorizontalBar(Frame{ID: "bar_chart", Title: "Bar"}, kvs, "Events", "Region")},
		{"grouped_chart", GroupedBar(Frame{ID: "grouped_chart"}, []string{"x"}, []Series{{Name: "a", Values: []float64{1}}}, "Role", "Count")},
		{"pie_chart", Pie(Frame{ID: "pie_chart"}, kvs, true)},
		{"line_chart", Line(Frame{ID: "line_chart"}, kvs, "Month", "Events")},
		{"cloud_chart", WordCloud(Frame{ID: "cloud_chart"}, kvs)},
		{"tree_chart", TreeMap(Frame{ID: "tree_chart"}, FlatNodes(kvs))},
		{"sun_chart", Sunburst(Frame{ID: "sun_chart"}, []Node{{Name: "Online", Children: FlatNodes(kvs)}})},
		{"bubble_chart", Bubble(Frame{ID: "bubble_chart"}, []PointSeries{{Name: "Online", Points: []Point{{X: 1, Y: 2, Size: 3}}}}, "Impressions", "Applied")},
		{"s3d_chart", Scatter3D(Frame{ID: "s3d_chart"}, []Point3{{X: 1, Y: 2, Z: 3}}, "x", "y", "z")},
		{"heat_chart", HeatMap(Frame{ID: "heat_chart"}, grid, YlGnBu)},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			snippet := tt.chart.RenderSnippet()
			if snippet.Script == "" {
				t.Fatal("empty script in snippet")
			}
			if !strings.Contains(snippet.Element, tt.id) {
				t.Errorf("element does not reference chart ID %q: %s", tt.id, snippet.Element)
			}
		})
	}
}

func TestWordCloudSeriesOptions(t *testing.T) {
	kvs := []mapreduce.KV{{Key: "hackathon", Value: 9}, {Key: "quiz", Value: 2}}
	script := WordCloud(Frame{ID: "words_chart", Title: "Words"}, kvs).RenderSnippet().Script

	for _, want := range []string{"wordCloud", "circle", "sizeRange", "hackathon"} {
		if !strings.Contains(script, want) {
			t.Errorf("word cloud script missing %q", want)
		}
	}
}
