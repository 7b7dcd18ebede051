package charts

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/dtnitsch/unstop-trends/pkg/mapreduce"
)

// HorizontalBar ranks kvs top to bottom, the highest count first.
func HorizontalBar(f Frame, kvs []mapreduce.KV, valueName, categoryName string) *charts.Bar {
	// Category axes grow upwards once reversed, so feed them bottom first.
	n := len(kvs)
	labels := make([]string, n)
	data := make([]opts.BarData, n)
	for i, kv := range kvs {
		labels[n-1-i] = kv.Key
		data[n-1-i] = opts.BarData{Name: kv.Key, Value: kv.Value}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(append(f.globals(),
		charts.WithXAxisOpts(opts.XAxis{Name: valueName, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: categoryName, Type: "category"}),
	)...)
	bar.SetXAxis(labels).AddSeries(valueName, data)
	bar.XYReversal()
	return bar
}

// GroupedBar draws several series side by side for each category.
func GroupedBar(f Frame, categories []string, series []Series, categoryName, valueName string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(append(f.globals(),
		charts.WithXAxisOpts(opts.XAxis{Name: categoryName}),
		charts.WithYAxisOpts(opts.YAxis{Name: valueName}),
	)...)
	bar.SetXAxis(categories)
	for _, s := range series {
		data := make([]opts.BarData, len(s.Values))
		for i, v := range s.Values {
			data[i] = opts.BarData{Value: round(v, 2)}
		}
		bar.AddSeries(s.Name, data)
	}
	return bar
}

// Pie draws shares of kvs. A donut leaves a hole in the middle.
func Pie(f Frame, kvs []mapreduce.KV, donut bool) *charts.Pie {
	data := make([]opts.PieData, len(kvs))
	for i, kv := range kvs {
		data[i] = opts.PieData{Name: kv.Key, Value: kv.Value}
	}

	var radius interface{} = "70%"
	if donut {
		radius = []string{"40%", "70%"}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(f.globals()...)
	pie.AddSeries(f.Title, data, charts.WithPieChartOpts(opts.PieChart{Radius: radius}))
	return pie
}

// Line draws one value per ordered category, e.g. per month.
func Line(f Frame, kvs []mapreduce.KV, categoryName, valueName string) *charts.Line {
	data := make([]opts.LineData, len(kvs))
	for i, kv := range kvs {
		data[i] = opts.LineData{Value: kv.Value}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(append(f.globals(),
		charts.WithXAxisOpts(opts.XAxis{Name: categoryName}),
		charts.WithYAxisOpts(opts.YAxis{Name: valueName}),
	)...)
	line.SetXAxis(keys(kvs)).AddSeries(valueName, data)
	return line
}

// WordCloud sizes each word by its count.
func WordCloud(f Frame, kvs []mapreduce.KV) *charts.WordCloud {
	data := make([]opts.WordCloudData, len(kvs))
	for i, kv := range kvs {
		data[i] = opts.WordCloudData{Name: kv.Key, Value: kv.Value}
	}

	wc := charts.NewWordCloud()
	wc.SetGlobalOptions(f.globals()...)
	wc.AddSeries(f.Title, data, charts.WithWorldCloudChartOpts(opts.WordCloudChart{
		Shape:     "circle",
		SizeRange: []float32{12, 72},
	}))
	return wc
}
