package report

import (
	"fmt"
	"math"

	"github.com/dtnitsch/unstop-trends/pkg/charts"
	"github.com/dtnitsch/unstop-trends/pkg/tags"
)

func jobCharts(s Settings) []Chart {
	section := SectionJobs
	topCompanies := fmt.Sprintf("Top %d Companies by Job Postings", s.topN())
	topLocations := fmt.Sprintf("Top %d Job Locations", s.topN())
	topEligibility := fmt.Sprintf("Top %d Eligibility Criteria for Jobs", s.topN())
	return []Chart{
		{
			ID: "job_top_companies", Section: section, Title: topCompanies,
			Build: func(ds *Datasets, s Settings) (Output, error) {
				kvs, err := valueCounts(ds, Jobs, colCompany, s.topN())
				if err != nil {
					return Output{}, err
				}
				f := frame(s, "job_top_companies", topCompanies)
				return Output{Chart: charts.HorizontalBar(f, kvs, "Number of Jobs", "Company"), Ranking: kvs}, nil
			},
		},
		{
			ID: "job_top_locations", Section: section, Title: topLocations,
			Build: func(ds *Datasets, s Settings) (Output, error) {
				kvs, err := valueCounts(ds, Jobs, colLocation, s.topN())
				if err != nil {
					return Output{}, err
				}
				return Output{Chart: charts.Pie(frame(s, "job_top_locations", topLocations), kvs, false), Ranking: kvs}, nil
			},
		},
		{
			ID: "job_top_eligibility", Section: section, Title: topEligibility,
			Build: func(ds *Datasets, s Settings) (Output, error) {
				kvs, err := tagCounts(ds, Jobs, colEligibility, tags.Options{Separator: ",", TopK: s.topN()})
				if err != nil {
					return Output{}, err
				}
				f := frame(s, "job_top_eligibility", topEligibility)
				return Output{Chart: charts.HorizontalBar(f, kvs, "Count", "Eligibility"), Ranking: kvs}, nil
			},
		},
		{
			ID: "job_status", Section: section, Title: "Job Status Distribution",
			Build: func(ds *Datasets, s Settings) (Output, error) {
				kvs, err := valueCounts(ds, Jobs, colStatus, 0)
				if err != nil {
					return Output{}, err
				}
				return Output{Chart: charts.Pie(frame(s, "job_status", "Job Status Distribution"), kvs, true), Ranking: kvs}, nil
			},
		},
		{
			ID: "job_company_status", Section: section, Title: "Job Opportunities by Company and Status",
			Build: func(ds *Datasets, s Settings) (Output, error) {
				rows, err := ds.GroupSums(Jobs, []string{colCompany, colStatus}, []string{colApplied})
				if err != nil {
					return Output{}, err
				}
				nodes := groupNodes(rows, 0)
				if err := nonEmptyNodes(nodes, "applications by company and status"); err != nil {
					return Output{}, err
				}
				f := frame(s, "job_company_status", "Job Opportunities by Company and Status")
				f.Subtitle = "Sized by applications"
				return Output{Chart: charts.Sunburst(f, nodes)}, nil
			},
		},
		{
			ID: "job_location_type_applications", Section: section, Title: "Job Applications by Location and Opportunity Type",
			Build: func(ds *Datasets, s Settings) (Output, error) {
				rows, err := ds.GroupSums(Jobs, []string{colOpportunityType, colLocation}, []string{colApplied})
				if err != nil {
					return Output{}, err
				}
				if len(rows) == 0 {
					return Output{}, fmt.Errorf("%w: no jobs with location and opportunity type", ErrNoData)
				}
				g := groupGrid(rows, 0, math.NaN())
				f := frame(s, "job_location_type_applications", "Job Applications by Location and Opportunity Type")
				return Output{Chart: charts.HeatMap(f, g, charts.Viridis)}, nil
			},
		},
		{
			ID: "job_company_types", Section: section, Title: "Job Opportunities by Company and Opportunity Type",
			Build: func(ds *Datasets, s Settings) (Output, error) {
				// Null company, type or applications never form a group.
				rows, err := ds.GroupSums(Jobs, []string{colCompany, colOpportunityType}, []string{colApplied})
				if err != nil {
					return Output{}, err
				}
				nodes := groupNodes(rows, 0)
				if err := nonEmptyNodes(nodes, "applications by company and opportunity type"); err != nil {
					return Output{}, err
				}
				f := frame(s, "job_company_types", "Job Opportunities by Company and Opportunity Type")
				return Output{Chart: charts.TreeMap(f, nodes)}, nil
			},
		},
		{
			ID: "job_position_words", Section: section, Title: "Word Cloud for Job Positions",
			Build: func(ds *Datasets, s Settings) (Output, error) {
				kvs, err := wordCounts(ds, Jobs, colPosition, s)
				if err != nil {
					return Output{}, err
				}
				return Output{Chart: charts.WordCloud(frame(s, "job_position_words", "Word Cloud for Job Positions"), kvs), Ranking: kvs}, nil
			},
		},
		{
			ID: "job_company_words", Section: section, Title: "Word Cloud for Companies",
			Build: func(ds *Datasets, s Settings) (Output, error) {
				kvs, err := wordCounts(ds, Jobs, colCompany, s)
				if err != nil {
					return Output{}, err
				}
				return Output{Chart: charts.WordCloud(frame(s, "job_company_words", "Word Cloud for Companies"), kvs), Ranking: kvs}, nil
			},
		},
		{
			ID: "job_eligibility_words", Section: section, Title: "Word Cloud for Eligibility Criteria",
			Build: func(ds *Datasets, s Settings) (Output, error) {
				kvs, err := wordCounts(ds, Jobs, colEligibility, s)
				if err != nil {
					return Output{}, err
				}
				return Output{Chart: charts.WordCloud(frame(s, "job_eligibility_words", "Word Cloud for Eligibility Criteria"), kvs), Ranking: kvs}, nil
			},
		},
	}
}
