package report

import (
	"fmt"
	"sort"

	"github.com/dtnitsch/unstop-trends/pkg/charts"
	"github.com/dtnitsch/unstop-trends/pkg/db"
	"github.com/dtnitsch/unstop-trends/pkg/tags"
)

// internshipEligibility splits internship eligibility lists.
var internshipEligibility = tags.Options{Separator: ", "}

func internshipCharts(s Settings) []Chart {
	section := SectionInternships
	topCompanies := fmt.Sprintf("Top %d Companies by Number of Internships Posted", s.topN())
	companyTreemap := fmt.Sprintf("Treemap of Top %d Companies by Internship Posts", s.treemapCompanies())
	return []Chart{
		{
			ID: "internship_top_roles", Section: section, Title: rolesTitle(s),
			Build: buildInternshipRoles,
		},
		{
			ID: "internship_top_companies", Section: section, Title: topCompanies,
			Build: func(ds *Datasets, s Settings) (Output, error) {
				kvs, err := valueCounts(ds, Internships, colCompany, s.topN())
				if err != nil {
					return Output{}, err
				}
				f := frame(s, "internship_top_companies", topCompanies)
				return Output{Chart: charts.HorizontalBar(f, kvs, "Number of Internships", "Company"), Ranking: kvs}, nil
			},
		},
		{
			ID: "internship_status", Section: section, Title: "Internship Status Distribution",
			Build: func(ds *Datasets, s Settings) (Output, error) {
				kvs, err := valueCounts(ds, Internships, colStatus, 0)
				if err != nil {
					return Output{}, err
				}
				return Output{Chart: charts.Pie(frame(s, "internship_status", "Internship Status Distribution"), kvs, false), Ranking: kvs}, nil
			},
		},
		{
			ID: "internship_top_eligibility", Section: section, Title: "Most Common Eligibility Criteria",
			Build: func(ds *Datasets, s Settings) (Output, error) {
				opts := internshipEligibility
				opts.TopK = s.topN()
				kvs, err := tagCounts(ds, Internships, colEligibility, opts)
				if err != nil {
					return Output{}, err
				}
				f := frame(s, "internship_top_eligibility", "Most Common Eligibility Criteria")
				return Output{Chart: charts.HorizontalBar(f, kvs, "Count", "Eligibility Criteria"), Ranking: kvs}, nil
			},
		},
		{
			ID: "internship_correlation", Section: section, Title: "Correlation Heatmap",
			Build: func(ds *Datasets, s Settings) (Output, error) {
				return correlationChart(ds, s, Internships, "internship_correlation", "Correlation Heatmap")
			},
		},
		{
			ID: "internship_position_words", Section: section, Title: "Word Cloud of Internship Positions",
			Build: func(ds *Datasets, s Settings) (Output, error) {
				kvs, err := wordCounts(ds, Internships, colPosition, s)
				if err != nil {
					return Output{}, err
				}
				return Output{Chart: charts.WordCloud(frame(s, "internship_position_words", "Word Cloud of Internship Positions"), kvs), Ranking: kvs}, nil
			},
		},
		{
			ID: "internship_company_treemap", Section: section, Title: companyTreemap,
			Build: func(ds *Datasets, s Settings) (Output, error) {
				kvs, err := valueCounts(ds, Internships, colCompany, s.treemapCompanies())
				if err != nil {
					return Output{}, err
				}
				f := frame(s, "internship_company_treemap", companyTreemap)
				return Output{Chart: charts.TreeMap(f, charts.FlatNodes(kvs)), Ranking: kvs}, nil
			},
		},
		{
			ID: "internship_engagement_bubble", Section: section, Title: "Impressions vs Applications (Bubble Size: Deadline)",
			Build: func(ds *Datasets, s Settings) (Output, error) {
				t, err := ds.Table(Internships)
				if err != nil {
					return Output{}, err
				}
				series, err := bubbleSeries(t, "")
				if err != nil {
					return Output{}, err
				}
				f := frame(s, "internship_engagement_bubble", "Impressions vs Applications (Bubble Size: Deadline)")
				return Output{Chart: charts.Bubble(f, series, "Impressions", "Applications")}, nil
			},
		},
		{
			ID: "internship_eligibility_sunburst", Section: section, Title: "Sunburst Chart of Eligibility Criteria",
			Build: func(ds *Datasets, s Settings) (Output, error) {
				kvs, err := tagCounts(ds, Internships, colEligibility, internshipEligibility)
				if err != nil {
					return Output{}, err
				}
				f := frame(s, "internship_eligibility_sunburst", "Sunburst Chart of Eligibility Criteria")
				return Output{Chart: charts.Sunburst(f, charts.FlatNodes(kvs)), Ranking: kvs}, nil
			},
		},
	}
}

func buildInternshipRoles(ds *Datasets, s Settings) (Output, error) {
	rows, err := ds.GroupSums(Internships, []string{colPosition}, []string{colImpressions, colApplied})
	if err != nil {
		return Output{}, err
	}
	rows = topByMeasure(rows, 0, s.topN())
	if len(rows) == 0 {
		return Output{}, fmt.Errorf("%w: no internship roles", ErrNoData)
	}

	roles := make([]string, len(rows))
	impressions := charts.Series{Name: colImpressions, Values: make([]float64, len(rows))}
	applied := charts.Series{Name: colApplied, Values: make([]float64, len(rows))}
	for i, r := range rows {
		roles[i] = r.Keys[0]
		impressions.Values[i] = r.Sums[0].Float64
		applied.Values[i] = r.Sums[1].Float64
	}

	f := frame(s, "internship_top_roles", rolesTitle(s))
	return Output{Chart: charts.GroupedBar(f, roles, []charts.Series{impressions, applied}, "Internship Role", "Counts")}, nil
}

func rolesTitle(s Settings) string {
	return fmt.Sprintf("Top %d Internship Roles by Impressions and Applications", s.topN())
}

// topByMeasure keeps the n groups with the largest sum of one measure.
// Groups with a null sum rank last.
func topByMeasure(rows []db.GroupRow, measure, n int) []db.GroupRow {
	out := append([]db.GroupRow(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Sums[measure], out[j].Sums[measure]
		if a.Valid != b.Valid {
			return a.Valid
		}
		return a.Float64 > b.Float64
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
