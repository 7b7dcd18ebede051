package manifest

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/unstop-trends/pkg/storage"
)

// Format selects the manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" or "json".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown manifest format %q (want yaml or json)", s)
}

// Build counts chart outcomes into a manifest.
func Build(reportPath string, datasets []DatasetSummary, charts []ChartSummary) SummaryManifest {
	m := SummaryManifest{
		GeneratedAt: time.Now().Format(time.RFC3339),
		ReportPath:  reportPath,
		TotalCharts: len(charts),
		Datasets:    datasets,
		Charts:      charts,
	}
	for _, c := range charts {
		if c.Status == StatusFailed {
			m.Failed++
		} else {
			m.Rendered++
		}
	}
	return m
}

// Marshal encodes a manifest.
func Marshal(m SummaryManifest, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(m, "", "  ")
	default:
		return yaml.Marshal(m)
	}
}

// GenerateSummary encodes the manifest and saves it to path.
func GenerateSummary(m SummaryManifest, path string, format Format, s *storage.Storage) error {
	data, err := Marshal(m, format)
	if err != nil {
		return fmt.Errorf("error marshalling manifest: %w", err)
	}

	if err := s.SaveFile(path, data); err != nil {
		return fmt.Errorf("error saving manifest: %w", err)
	}
	return nil
}
