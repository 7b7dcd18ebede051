// Package report implements the report and inspect commands.
package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dtnitsch/unstop-trends/models"
	"github.com/dtnitsch/unstop-trends/pkg/db"
	"github.com/dtnitsch/unstop-trends/pkg/manifest"
	"github.com/dtnitsch/unstop-trends/pkg/report"
	"github.com/dtnitsch/unstop-trends/pkg/storage"
	"github.com/dtnitsch/unstop-trends/pkg/table"
)

// topEntries bounds the ranking copied into each manifest entry.
const topEntries = 10

// ErrNothingRendered is returned when every chart of a run failed.
var ErrNothingRendered = errors.New("no chart could be rendered")

// LoadSources reads the three datasets concurrently. A dataset that fails to
// load is recorded and left nil.
func LoadSources(ctx context.Context, paths models.DatasetPaths, logger *slog.Logger) report.Sources {
	files := []struct {
		name string
		path string
	}{
		{report.Hackathons, paths.Hackathons},
		{report.Jobs, paths.Jobs},
		{report.Internships, paths.Internships},
	}

	loaded := make([]*table.Table, len(files))
	errs := make([]error, len(files))

	eg, _ := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		eg.Go(func() error {
			if f.path == "" {
				errs[i] = errors.New("no path configured")
				return nil
			}
			start := time.Now()
			t, err := table.LoadCSV(f.name, f.path)
			if err != nil {
				errs[i] = err
				logger.Error("failed to load dataset", "dataset", f.name, "path", f.path, "error", err)
				return nil
			}
			loaded[i] = t
			logger.Info("dataset loaded", "dataset", f.name, "path", f.path, "rows", t.Len(), "duration", time.Since(start))
			return nil
		})
	}
	_ = eg.Wait()

	src := report.Sources{
		Hackathons:  loaded[0],
		Jobs:        loaded[1],
		Internships: loaded[2],
		LoadErrors:  make(map[string]error),
	}
	for i, f := range files {
		if errs[i] != nil {
			src.LoadErrors[f.name] = errs[i]
		}
	}
	return src
}

// Settings turns the configuration into catalogue settings.
func Settings(config *models.Config) report.Settings {
	s := report.DefaultSettings()
	if config.CategoryExclude != nil {
		s.CategoryExclude = config.CategoryExclude
	}
	if config.TopN > 0 {
		s.TopN = config.TopN
	}
	if config.TreemapCompanies > 0 {
		s.TreemapCompanies = config.TreemapCompanies
	}
	if config.WordCloudWords > 0 {
		s.WordCloudWords = config.WordCloudWords
	}
	return s
}

// Generate loads the datasets, builds every chart and writes the page and,
// when configured, the manifest. Chart failures end up in the manifest; only
// I/O failures and a run without a single chart are returned as errors.
func Generate(ctx context.Context, config *models.Config, logger *slog.Logger) (*manifest.SummaryManifest, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	format, err := manifest.ParseFormat(config.ManifestFormat)
	if err != nil {
		return nil, err
	}

	store, err := db.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open frame store: %w", err)
	}
	defer store.Close()

	sources := LoadSources(ctx, config.Datasets, logger)
	datasets := report.Prepare(sources, store, logger)

	settings := Settings(config)
	start := time.Now()
	results := report.Build(ctx, datasets, settings, report.Catalogue(settings), config.WorkerCount, logger)
	logger.Info("charts built", "count", len(results), "duration", time.Since(start))

	var page bytes.Buffer
	if err := report.Render(&page, report.Page{
		Title:      config.Title,
		Header:     config.Header,
		AssetsHost: config.AssetsHost,
	}, results); err != nil {
		return nil, err
	}

	s := &storage.Storage{}
	if err := s.SaveFile(config.Output, page.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	summaries := make([]manifest.ChartSummary, len(results))
	for i, r := range results {
		summaries[i] = r.Summary(topEntries)
	}
	m := manifest.Build(config.Output, datasets.Summaries(), summaries)

	if config.Manifest != "" {
		if err := manifest.GenerateSummary(m, config.Manifest, format, s); err != nil {
			return nil, err
		}
		logger.Info("manifest written", "path", config.Manifest, "format", format)
	}

	attrs := []any{"path", config.Output, "rendered", m.Rendered, "failed", m.Failed}
	if stats, err := s.GetFileStats(config.Output); err == nil {
		attrs = append(attrs, "size_bytes", stats.SizeBytes)
	}
	logger.Info("report written", attrs...)
	if m.Rendered == 0 {
		return &m, ErrNothingRendered
	}
	return &m, nil
}
