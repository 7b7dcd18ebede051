package report

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/unstop-trends/internal/common"
	"github.com/dtnitsch/unstop-trends/models"
	"github.com/dtnitsch/unstop-trends/pkg/manifest"
	"github.com/dtnitsch/unstop-trends/pkg/report"
	"github.com/dtnitsch/unstop-trends/pkg/storage"
)

// LoadConfig reads the layered configuration and applies the flags the
// user set explicitly.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	config, err := models.LoadConfig(c.String("config"), c.String("env-file"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("hackathons") {
		config.Datasets.Hackathons = c.String("hackathons")
	}
	if c.IsSet("jobs") {
		config.Datasets.Jobs = c.String("jobs")
	}
	if c.IsSet("internships") {
		config.Datasets.Internships = c.String("internships")
	}
	if c.IsSet("data-dir") {
		dir := c.String("data-dir")
		config.Datasets.Hackathons = filepath.Join(dir, filepath.Base(config.Datasets.Hackathons))
		config.Datasets.Jobs = filepath.Join(dir, filepath.Base(config.Datasets.Jobs))
		config.Datasets.Internships = filepath.Join(dir, filepath.Base(config.Datasets.Internships))
	}
	if c.IsSet("output") {
		config.Output = c.String("output")
	}
	if c.IsSet("manifest") {
		config.Manifest = c.String("manifest")
	}
	if c.IsSet("manifest-format") {
		config.ManifestFormat = c.String("manifest-format")
	}
	if c.IsSet("title") {
		config.Title = c.String("title")
	}
	if c.IsSet("assets-host") {
		config.AssetsHost = c.String("assets-host")
	}
	if c.IsSet("workers") {
		config.WorkerCount = c.Int("workers")
	}
	if c.IsSet("top") {
		config.TopN = c.Int("top")
	}
	if c.IsSet("exclude") {
		config.CategoryExclude = common.SplitList(c.String("exclude"), ",")
	}
	return config, nil
}

// ReportAction builds the dashboard page.
func ReportAction(c *cli.Context) error {
	logger := common.Logger(c)

	config, err := LoadConfig(c)
	if err != nil {
		return err
	}

	m, err := Generate(c.Context, config, logger)
	if m != nil {
		fmt.Fprintf(c.App.Writer, "%s: %d/%d charts rendered\n", m.ReportPath, m.Rendered, m.TotalCharts)
		for _, chart := range m.Charts {
			if chart.Status == manifest.StatusFailed {
				fmt.Fprintf(c.App.Writer, "  failed %s [%s]: %s\n", chart.ID, chart.ErrorType, chart.Error)
			}
		}
	}
	return err
}

// InspectAction lists the charts of a rendered report.
func InspectAction(c *cli.Context) error {
	path := c.String("file")
	if path == "" {
		path = c.Args().First()
	}
	if path == "" {
		return fmt.Errorf("no report given: use --file or pass a path")
	}
	format, err := common.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}

	s := &storage.Storage{}
	if !s.HasFile(path) {
		return fmt.Errorf("report %s does not exist", path)
	}
	page, err := s.ReadFile(path)
	if err != nil {
		return err
	}

	charts, err := report.Inspect(bytes.NewReader(page))
	if err != nil {
		return err
	}
	if c.Bool("failed") {
		charts = failedOnly(charts)
	}

	if format == common.FormatText {
		return writeInspectText(c.App.Writer, charts)
	}

	fields := c.String("fields")
	rows := make([]map[string]interface{}, len(charts))
	for i, chart := range charts {
		rows[i] = common.FilterResultFields(chart, fields)
	}
	return common.WriteStructured(c.App.Writer, rows, format)
}

func failedOnly(charts []manifest.ChartSummary) []manifest.ChartSummary {
	var out []manifest.ChartSummary
	for _, chart := range charts {
		if chart.Status == manifest.StatusFailed {
			out = append(out, chart)
		}
	}
	return out
}

func writeInspectText(w io.Writer, charts []manifest.ChartSummary) error {
	var b strings.Builder
	for _, chart := range charts {
		fmt.Fprintf(&b, "%-9s %-13s %s", chart.Status, chart.Section, chart.ID)
		if chart.ErrorType != "" {
			fmt.Fprintf(&b, " (%s)", chart.ErrorType)
		}
		b.WriteByte('\n')
	}
	_, err := w.Write([]byte(b.String()))
	return err
}
