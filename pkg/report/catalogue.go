package report

import (
	"database/sql"
	"fmt"
	"math"
	"sort"

	"github.com/dtnitsch/unstop-trends/pkg/analytics"
	"github.com/dtnitsch/unstop-trends/pkg/charts"
	"github.com/dtnitsch/unstop-trends/pkg/db"
	"github.com/dtnitsch/unstop-trends/pkg/mapreduce"
	"github.com/dtnitsch/unstop-trends/pkg/table"
	"github.com/dtnitsch/unstop-trends/pkg/tags"
)

// Catalogue lists every chart of the report in page order. Titles of
// top-N charts follow s.
func Catalogue(s Settings) []Chart {
	var out []Chart
	out = append(out, hackathonCharts(s)...)
	out = append(out, jobCharts(s)...)
	out = append(out, internshipCharts(s)...)
	return out
}

// Sections lists the section headings in page order.
func Sections() []string {
	return []string{SectionHackathons, SectionJobs, SectionInternships}
}

func frame(s Settings, id, title string) charts.Frame {
	return charts.Frame{ID: id, Title: title, Width: s.Width, Height: s.Height}
}

// valueCounts ranks the distinct values of a column.
func valueCounts(ds *Datasets, dataset, column string, n int) ([]mapreduce.KV, error) {
	t, err := ds.Table(dataset)
	if err != nil {
		return nil, err
	}
	values, err := t.Strings(column)
	if err != nil {
		return nil, err
	}
	kvs := analytics.ValueCounts(values, n)
	if len(kvs) == 0 {
		return nil, fmt.Errorf("%w: column %q of %s is empty", ErrNoData, column, dataset)
	}
	return kvs, nil
}

// tagCounts runs the tag aggregator on a multi-valued column.
func tagCounts(ds *Datasets, dataset, column string, opts tags.Options) ([]mapreduce.KV, error) {
	t, err := ds.Table(dataset)
	if err != nil {
		return nil, err
	}
	kvs, err := tags.Aggregate(t, column, opts)
	if err != nil {
		return nil, err
	}
	if len(kvs) == 0 {
		return nil, fmt.Errorf("%w: no tags in %q of %s", ErrNoData, column, dataset)
	}
	return kvs, nil
}

// wordCounts tokenizes a free-text column for a word cloud.
func wordCounts(ds *Datasets, dataset, column string, s Settings) ([]mapreduce.KV, error) {
	t, err := ds.Table(dataset)
	if err != nil {
		return nil, err
	}
	texts, err := t.Strings(column)
	if err != nil {
		return nil, err
	}
	kvs := analytics.TopWords(texts, s.WordCloudWords)
	if len(kvs) == 0 {
		return nil, fmt.Errorf("%w: no words in %q of %s", ErrNoData, column, dataset)
	}
	return kvs, nil
}

// engagementSeries reads Applied, Impressions and the deadline as numbers.
func engagementSeries(t *table.Table) (applied, impressions, deadline []sql.NullFloat64, err error) {
	if applied, err = t.Floats(colApplied); err != nil {
		return nil, nil, nil, err
	}
	if impressions, err = t.Floats(colImpressions); err != nil {
		return nil, nil, nil, err
	}
	if deadline, err = analytics.DeadlineValues(t, colDeadline); err != nil {
		return nil, nil, nil, err
	}
	return applied, impressions, deadline, nil
}

// correlationChart draws the Pearson matrix of the engagement columns.
func correlationChart(ds *Datasets, s Settings, dataset, id, title string) (Output, error) {
	t, err := ds.Table(dataset)
	if err != nil {
		return Output{}, err
	}
	applied, impressions, deadline, err := engagementSeries(t)
	if err != nil {
		return Output{}, err
	}

	names := []string{colApplied, colImpressions, colDeadline}
	m, err := analytics.Correlation(names, [][]sql.NullFloat64{applied, impressions, deadline})
	if err != nil {
		return Output{}, err
	}

	g := charts.NewGrid(m.Names, m.Names)
	allMissing := true
	for r := range m.Values {
		for c, v := range m.Values[r] {
			g.Cells[r][c] = v
			if !math.IsNaN(v) {
				allMissing = false
			}
		}
	}
	if allMissing {
		return Output{}, fmt.Errorf("%w: no complete numeric pairs in %s", ErrNoData, dataset)
	}
	return Output{Chart: charts.HeatMap(frame(s, id, title), g, charts.RdBu)}, nil
}

// bubbleSeries splits rows into one point series per group value. Rows
// missing a coordinate or a size are skipped.
func bubbleSeries(t *table.Table, group string) ([]charts.PointSeries, error) {
	applied, impressions, deadline, err := engagementSeries(t)
	if err != nil {
		return nil, err
	}

	var groups []table.Cell
	if group != "" {
		if groups, err = t.Column(group); err != nil {
			return nil, err
		}
	}
	var titles []table.Cell
	if t.HasColumn(colTitle) {
		titles, _ = t.Column(colTitle)
	} else if t.HasColumn(colPosition) {
		titles, _ = t.Column(colPosition)
	}

	var out []charts.PointSeries
	index := make(map[string]int)
	for i := range t.Rows {
		if !impressions[i].Valid || !applied[i].Valid || !deadline[i].Valid {
			continue
		}
		name := "All"
		if groups != nil {
			name = "Unknown"
			if groups[i].Valid {
				name = groups[i].String
			}
		}
		si, ok := index[name]
		if !ok {
			si = len(out)
			index[name] = si
			out = append(out, charts.PointSeries{Name: name})
		}
		p := charts.Point{X: impressions[i].Float64, Y: applied[i].Float64, Size: deadline[i].Float64}
		if titles != nil && titles[i].Valid {
			p.Name = titles[i].String
		}
		out[si].Points = append(out[si].Points, p)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no rows with impressions, applications and deadline in %s", ErrNoData, t.Name)
	}
	return out, nil
}

// groupNodes builds a two level hierarchy from grouped sums keyed by
// (parent, child). Groups without a positive sum are left out.
func groupNodes(rows []db.GroupRow, measure int) []charts.Node {
	var out []charts.Node
	index := make(map[string]int)
	for _, r := range rows {
		sum := r.Sums[measure]
		if !sum.Valid || sum.Float64 <= 0 {
			continue
		}
		pi, ok := index[r.Keys[0]]
		if !ok {
			pi = len(out)
			index[r.Keys[0]] = pi
			out = append(out, charts.Node{Name: r.Keys[0]})
		}
		out[pi].Children = append(out[pi].Children, charts.Node{Name: r.Keys[1], Value: sum.Float64})
	}
	return out
}

// groupGrid spreads grouped sums keyed by (row, column) over a grid. Pairs
// absent from rows take fill.
func groupGrid(rows []db.GroupRow, measure int, fill float64) *charts.Grid {
	var rowKeys, colKeys []string
	rowIdx := make(map[string]int)
	colIdx := make(map[string]int)
	for _, r := range rows {
		if _, ok := rowIdx[r.Keys[0]]; !ok {
			rowIdx[r.Keys[0]] = len(rowKeys)
			rowKeys = append(rowKeys, r.Keys[0])
		}
		if _, ok := colIdx[r.Keys[1]]; !ok {
			colIdx[r.Keys[1]] = len(colKeys)
			colKeys = append(colKeys, r.Keys[1])
		}
	}
	sort.Strings(colKeys)
	for i, k := range colKeys {
		colIdx[k] = i
	}

	g := charts.NewGrid(rowKeys, colKeys)
	for r := range g.Cells {
		for c := range g.Cells[r] {
			g.Cells[r][c] = fill
		}
	}
	for _, r := range rows {
		if sum := r.Sums[measure]; sum.Valid {
			g.Cells[rowIdx[r.Keys[0]]][colIdx[r.Keys[1]]] = sum.Float64
		}
	}
	return g
}

func nonEmptyNodes(nodes []charts.Node, what string) error {
	if len(nodes) == 0 {
		return fmt.Errorf("%w: no %s", ErrNoData, what)
	}
	return nil
}
