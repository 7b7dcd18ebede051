package report

import (
	"fmt"

	"github.com/dtnitsch/unstop-trends/pkg/analytics"
	"github.com/dtnitsch/unstop-trends/pkg/charts"
	"github.com/dtnitsch/unstop-trends/pkg/mapreduce"
	"github.com/dtnitsch/unstop-trends/pkg/tags"
)

func hackathonCharts(s Settings) []Chart {
	section := SectionHackathons
	topOrganisations := fmt.Sprintf("Top %d Organizations Hosting Events", s.topN())
	return []Chart{
		{
			ID: "hackathon_correlation", Section: section, Title: "Correlation Heatmap of Event Metrics",
			Build: func(ds *Datasets, s Settings) (Output, error) {
				return correlationChart(ds, s, Hackathons, "hackathon_correlation", "Correlation Heatmap of Event Metrics")
			},
		},
		{
			ID: "hackathon_top_organisations", Section: section, Title: topOrganisations,
			Build: func(ds *Datasets, s Settings) (Output, error) {
				kvs, err := valueCounts(ds, Hackathons, colOrganisations, s.topN())
				if err != nil {
					return Output{}, err
				}
				f := frame(s, "hackathon_top_organisations", topOrganisations)
				return Output{Chart: charts.HorizontalBar(f, kvs, "Number of Events", "Organizations"), Ranking: kvs}, nil
			},
		},
		{
			ID: "hackathon_categories", Section: section, Title: "Event Category Distribution (Filtered)",
			Build: buildHackathonCategories,
		},
		{
			ID: "hackathon_engagement_bubble", Section: section, Title: "Impressions vs Applications (Bubble Plot by Region)",
			Build: func(ds *Datasets, s Settings) (Output, error) {
				t, err := ds.Table(Hackathons)
				if err != nil {
					return Output{}, err
				}
				series, err := bubbleSeries(t, colRegion)
				if err != nil {
					return Output{}, err
				}
				f := frame(s, "hackathon_engagement_bubble", "Impressions vs Applications (Bubble Plot by Region)")
				f.Subtitle = "Bubble size: days to application deadline"
				return Output{Chart: charts.Bubble(f, series, "Impressions", "Applications")}, nil
			},
		},
		{
			ID: "hackathon_regions", Section: section, Title: "Online vs Offline Events",
			Build: func(ds *Datasets, s Settings) (Output, error) {
				kvs, err := valueCounts(ds, Hackathons, colRegion, 0)
				if err != nil {
					return Output{}, err
				}
				return Output{Chart: charts.Pie(frame(s, "hackathon_regions", "Online vs Offline Events"), kvs, false), Ranking: kvs}, nil
			},
		},
		{
			ID: "hackathon_category_words", Section: section, Title: "Word Cloud of Event Categories",
			Build: func(ds *Datasets, s Settings) (Output, error) {
				kvs, err := wordCounts(ds, Hackathons, colCategory, s)
				if err != nil {
					return Output{}, err
				}
				return Output{Chart: charts.WordCloud(frame(s, "hackathon_category_words", "Word Cloud of Event Categories"), kvs), Ranking: kvs}, nil
			},
		},
		{
			ID: "hackathon_monthly_uploads", Section: section, Title: "Trend of Uploaded Events Over Time",
			Build: buildHackathonMonthly,
		},
		{
			ID: "hackathon_engagement_3d", Section: section, Title: "3D Scatter: Impressions vs Applications vs Deadline",
			Build: buildHackathon3D,
		},
		{
			ID: "hackathon_region_categories", Section: section, Title: "Event Categories by Region",
			Build: func(ds *Datasets, s Settings) (Output, error) {
				rows, err := ds.GroupSums(Hackathons, []string{colRegion, colCategory}, []string{colImpressions})
				if err != nil {
					return Output{}, err
				}
				nodes := groupNodes(rows, 0)
				if err := nonEmptyNodes(nodes, "impressions by region and category"); err != nil {
					return Output{}, err
				}
				f := frame(s, "hackathon_region_categories", "Event Categories by Region")
				f.Subtitle = "Sized by impressions"
				return Output{Chart: charts.Sunburst(f, nodes)}, nil
			},
		},
		{
			ID: "hackathon_monthly_applications", Section: section, Title: "Applications Trends by Month and Region",
			Build: func(ds *Datasets, s Settings) (Output, error) {
				rows, err := ds.GroupSums(Hackathons, []string{colUploadedMonth, colRegion}, []string{colApplied})
				if err != nil {
					return Output{}, err
				}
				if len(rows) == 0 {
					return Output{}, fmt.Errorf("%w: no dated hackathons", ErrNoData)
				}
				g := groupGrid(rows, 0, 0)
				return Output{Chart: charts.HeatMap(frame(s, "hackathon_monthly_applications", "Applications Trends by Month and Region"), g, charts.YlGnBu)}, nil
			},
		},
	}
}

func buildHackathonCategories(ds *Datasets, s Settings) (Output, error) {
	kvs, err := tagCounts(ds, Hackathons, colCategory, tags.Options{
		Separator: ", ",
		Exclude:   s.CategoryExclude,
	})
	if err != nil {
		return Output{}, err
	}
	f := frame(s, "hackathon_categories", "Event Category Distribution (Filtered)")
	return Output{Chart: charts.TreeMap(f, charts.FlatNodes(kvs)), Ranking: kvs}, nil
}

func buildHackathonMonthly(ds *Datasets, s Settings) (Output, error) {
	t, err := ds.Table(Hackathons)
	if err != nil {
		return Output{}, err
	}
	times, err := t.Times(colUploaded)
	if err != nil {
		return Output{}, err
	}
	kvs := analytics.MonthlyCounts(times)
	if len(kvs) == 0 {
		return Output{}, fmt.Errorf("%w: no parsable upload dates", ErrNoData)
	}
	f := frame(s, "hackathon_monthly_uploads", "Trend of Uploaded Events Over Time")
	return Output{Chart: charts.Line(f, kvs, "Month", "Number of Events"), Ranking: mapreduce.TopN(countsOf(kvs), 0)}, nil
}

func buildHackathon3D(ds *Datasets, s Settings) (Output, error) {
	t, err := ds.Table(Hackathons)
	if err != nil {
		return Output{}, err
	}
	applied, impressions, deadline, err := engagementSeries(t)
	if err != nil {
		return Output{}, err
	}
	titles, _ := t.Column(colTitle)

	var points []charts.Point3
	for i := range t.Rows {
		if !impressions[i].Valid || !applied[i].Valid || !deadline[i].Valid {
			continue
		}
		p := charts.Point3{X: impressions[i].Float64, Y: applied[i].Float64, Z: deadline[i].Float64}
		if titles != nil && titles[i].Valid {
			p.Name = titles[i].String
		}
		points = append(points, p)
	}
	if len(points) == 0 {
		return Output{}, fmt.Errorf("%w: no rows with impressions, applications and deadline", ErrNoData)
	}

	f := frame(s, "hackathon_engagement_3d", "3D Scatter: Impressions vs Applications vs Deadline")
	return Output{Chart: charts.Scatter3D(f, points, "Impressions", "Applications", "Application Deadline (days)")}, nil
}

// countsOf rebuilds a counter from an already ordered table.
func countsOf(kvs []mapreduce.KV) *mapreduce.Counter {
	c := mapreduce.NewCounter()
	for _, kv := range kvs {
		c.Add(kv.Key, kv.Value)
	}
	return c
}
