// Package report assembles the dashboard: it prepares the datasets, builds
// every chart of the catalogue independently and renders them into one page.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-echarts/go-echarts/v2/render"
	"golang.org/x/sync/errgroup"

	"github.com/dtnitsch/unstop-trends/pkg/analytics"
	"github.com/dtnitsch/unstop-trends/pkg/charts"
	"github.com/dtnitsch/unstop-trends/pkg/db"
	"github.com/dtnitsch/unstop-trends/pkg/manifest"
	"github.com/dtnitsch/unstop-trends/pkg/mapreduce"
	"github.com/dtnitsch/unstop-trends/pkg/table"
)

// ErrDatasetUnavailable is returned by charts whose dataset failed to load or prepare.
var ErrDatasetUnavailable = errors.New("dataset unavailable")

// ErrNoData is returned by charts left with nothing to draw.
var ErrNoData = analytics.ErrNoData

// Output is what a chart builder produces.
type Output struct {
	Chart charts.Chart
	// Ranking is the frequency table behind the chart, when it has one.
	Ranking []mapreduce.KV
}

// BuildFunc draws one chart from the prepared datasets.
type BuildFunc func(ds *Datasets, s Settings) (Output, error)

// Chart is one entry of the catalogue.
type Chart struct {
	ID      string
	Section string
	Title   string
	Build   BuildFunc
}

// Result is the outcome of building one chart.
type Result struct {
	Chart     Chart
	Snippet   render.ChartSnippet
	Ranking   []mapreduce.KV
	Err       error
	ErrorType string
	Duration  time.Duration
}

// Failed reports whether the chart could not be built.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Message is the user-facing explanation of a failed chart.
func (r Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return fmt.Sprintf("%s (%s) could not be rendered: %v", r.Chart.Title, r.Chart.Section, r.Err)
}

// Summary converts a result into its manifest entry.
func (r Result) Summary(topEntries int) manifest.ChartSummary {
	s := manifest.ChartSummary{
		ID:         r.Chart.ID,
		Section:    r.Chart.Section,
		Title:      r.Chart.Title,
		Status:     manifest.StatusRendered,
		DurationMS: r.Duration.Milliseconds(),
	}
	if r.Err != nil {
		s.Status = manifest.StatusFailed
		s.ErrorType = r.ErrorType
		s.Error = r.Err.Error()
		return s
	}
	if len(r.Ranking) > 0 {
		ranking := r.Ranking
		if topEntries > 0 && len(ranking) > topEntries {
			ranking = ranking[:topEntries]
		}
		s.TopEntries = mapreduce.TopKeywords(ranking)
	}
	return s
}

// ErrorType classifies a chart error for the manifest and the page.
func ErrorType(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, table.ErrColumnNotFound):
		return "column_not_found"
	case errors.Is(err, ErrDatasetUnavailable), errors.Is(err, db.ErrDatasetNotLoaded):
		return "dataset_unavailable"
	case errors.Is(err, ErrNoData):
		return "no_data"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.Is(err, errPanic):
		return "panic"
	default:
		return "build_error"
	}
}

var errPanic = errors.New("chart builder panicked")

// Build runs every chart of the catalogue with at most workers in flight.
// A failing chart never stops the others; results keep catalogue order.
func Build(ctx context.Context, ds *Datasets, s Settings, catalogue []Chart, workers int, logger *slog.Logger) []Result {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = 4
	}

	results := make([]Result, len(catalogue))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, c := range catalogue {
		i, c := i, c
		eg.Go(func() error {
			results[i] = buildOne(egCtx, ds, s, c, logger)
			return nil
		})
	}
	_ = eg.Wait() // builders report through results, never through the group

	return results
}

func buildOne(ctx context.Context, ds *Datasets, s Settings, c Chart, logger *slog.Logger) (res Result) {
	res.Chart = c
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			res.Err = fmt.Errorf("%w: %v", errPanic, p)
		}
		res.Duration = time.Since(start)
		res.ErrorType = ErrorType(res.Err)

		if res.Err != nil {
			logger.Warn("chart failed", "chart", c.ID, "section", c.Section, "error_type", res.ErrorType, "error", res.Err)
			return
		}
		logger.Debug("chart built", "chart", c.ID, "section", c.Section, "duration", res.Duration)
	}()

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	out, err := c.Build(ds, s)
	if err != nil {
		res.Err = err
		return res
	}
	if out.Chart == nil {
		res.Err = fmt.Errorf("%w: builder returned no chart", ErrNoData)
		return res
	}

	res.Snippet = out.Chart.RenderSnippet()
	res.Ranking = out.Ranking
	return res
}
