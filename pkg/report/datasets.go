package report

import (
	"fmt"
	"log/slog"

	"github.com/dtnitsch/unstop-trends/pkg/db"
	"github.com/dtnitsch/unstop-trends/pkg/manifest"
	"github.com/dtnitsch/unstop-trends/pkg/table"
)

// Dataset names, also used as frame store names.
const (
	Hackathons  = "hackathons"
	Jobs        = "jobs"
	Internships = "internships"
)

// Section headings.
const (
	SectionHackathons  = "Hackathons"
	SectionJobs        = "Jobs"
	SectionInternships = "Internships"
)

// Column names of the cleaned datasets.
const (
	colTitle           = "Title"
	colOrganisations   = "Organisations"
	colCategory        = "Category"
	colApplied         = "Applied"
	colImpressions     = "Impressions"
	colDeadline        = "Application Deadline"
	colRegion          = "Region"
	colUploaded        = "Uploaded On"
	colUploadedMonth   = "Uploaded Month"
	colCompany         = "Company"
	colLocation        = "Location"
	colEligibility     = "Eligibility"
	colStatus          = "Status"
	colOpportunityType = "Opportunity Type"
	colPosition        = "Position"
	colLink            = "Link"
)

// Datasets holds the prepared inputs of one report. Each chart reads the
// table it needs through Table, so a dataset that failed to load or prepare
// only takes down its own charts.
type Datasets struct {
	Store *db.DB

	tables map[string]*table.Table
	errs   map[string]error
}

// Sources are the raw tables as loaded from disk; nil means the load failed.
type Sources struct {
	Hackathons  *table.Table
	Jobs        *table.Table
	Internships *table.Table
	LoadErrors  map[string]error
}

// Prepare derives the working tables and loads them into the frame store.
// Preparation failures are recorded per dataset, never returned.
func Prepare(src Sources, store *db.DB, logger *slog.Logger) *Datasets {
	if logger == nil {
		logger = slog.Default()
	}
	ds := &Datasets{
		Store:  store,
		tables: make(map[string]*table.Table),
		errs:   make(map[string]error),
	}

	steps := []struct {
		name    string
		raw     *table.Table
		prepare func(*table.Table) (*table.Table, error)
	}{
		{Hackathons, src.Hackathons, prepareHackathons},
		{Jobs, src.Jobs, prepareJobs},
		{Internships, src.Internships, prepareInternships},
	}

	for _, step := range steps {
		if step.raw == nil {
			err := src.LoadErrors[step.name]
			if err == nil {
				err = fmt.Errorf("no %s table supplied", step.name)
			}
			ds.errs[step.name] = fmt.Errorf("%w: %s: %v", ErrDatasetUnavailable, step.name, err)
			logger.Error("dataset unavailable", "dataset", step.name, "error", err)
			continue
		}

		t, err := step.prepare(step.raw)
		if err != nil {
			ds.errs[step.name] = fmt.Errorf("%w: preparing %s: %w", ErrDatasetUnavailable, step.name, err)
			logger.Error("failed to prepare dataset", "dataset", step.name, "error", err)
			continue
		}
		t = t.WithName(step.name)
		ds.tables[step.name] = t

		if store != nil {
			if err := store.LoadTable(t); err != nil {
				// Charts reading the table directly still work.
				logger.Error("failed to load dataset into frame store", "dataset", step.name, "error", err)
				continue
			}
		}
		logger.Info("dataset ready", "dataset", step.name, "rows", t.Len(), "columns", len(t.Columns))
	}

	return ds
}

// Table returns a prepared dataset or the reason it is unavailable.
func (ds *Datasets) Table(name string) (*table.Table, error) {
	if err, ok := ds.errs[name]; ok {
		return nil, err
	}
	t, ok := ds.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDatasetUnavailable, name)
	}
	return t, nil
}

// GroupSums runs a grouped sum on the frame store.
func (ds *Datasets) GroupSums(dataset string, groups, measures []string) ([]db.GroupRow, error) {
	if _, err := ds.Table(dataset); err != nil {
		return nil, err
	}
	if ds.Store == nil {
		return nil, fmt.Errorf("%w: no frame store", ErrDatasetUnavailable)
	}
	return ds.Store.GroupSums(dataset, groups, measures)
}

// Summaries describes each prepared dataset for the manifest.
func (ds *Datasets) Summaries() []manifest.DatasetSummary {
	var out []manifest.DatasetSummary
	for _, name := range []string{Hackathons, Jobs, Internships} {
		if t, ok := ds.tables[name]; ok {
			out = append(out, manifest.DatasetSummary{Name: name, Rows: t.Len(), Columns: len(t.Columns)})
		}
	}
	return out
}

// prepareHackathons adds the upload month used by the monthly heatmap.
func prepareHackathons(t *table.Table) (*table.Table, error) {
	if !t.HasColumn(colUploaded) {
		return t, nil
	}
	times, err := t.Times(colUploaded)
	if err != nil {
		return nil, err
	}
	months := make([]table.Cell, len(times))
	for i, tm := range times {
		months[i] = table.FormatMonth(tm)
	}
	return t.WithColumn(colUploadedMonth, months)
}

func prepareJobs(t *table.Table) (*table.Table, error) {
	return t, nil
}

// prepareInternships keeps only rows usable by the numeric charts.
func prepareInternships(t *table.Table) (*table.Table, error) {
	return t.Drop(colLocation, colLink).DropNull(colImpressions, colApplied, colDeadline)
}
