package manifest

// SummaryManifest is the machine-readable outline of one report run: which
// charts rendered, which failed and why, and the datasets they were built from.
type SummaryManifest struct {
	GeneratedAt string           `json:"generated_at" yaml:"generated_at"`
	ReportPath  string           `json:"report_path,omitempty" yaml:"report_path,omitempty"`
	TotalCharts int              `json:"total_charts" yaml:"total_charts"`
	Rendered    int              `json:"rendered" yaml:"rendered"`
	Failed      int              `json:"failed" yaml:"failed"`
	Datasets    []DatasetSummary `json:"datasets,omitempty" yaml:"datasets,omitempty"`
	Charts      []ChartSummary   `json:"charts" yaml:"charts"`
}

// DatasetSummary describes one input table.
type DatasetSummary struct {
	Name    string `json:"name" yaml:"name"`
	Rows    int    `json:"rows" yaml:"rows"`
	Columns int    `json:"columns" yaml:"columns"`
}

// ChartSummary represents the outcome of a single chart.
type ChartSummary struct {
	ID         string   `json:"id" yaml:"id"`
	Section    string   `json:"section" yaml:"section"`
	Title      string   `json:"title" yaml:"title"`
	Status     string   `json:"status" yaml:"status"` // "rendered" or "failed"
	ErrorType  string   `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	Error      string   `json:"error,omitempty" yaml:"error,omitempty"`
	DurationMS int64    `json:"duration_ms,omitempty" yaml:"duration_ms,omitempty"`
	TopEntries []string `json:"top_entries,omitempty" yaml:"top_entries,omitempty"`
}

const (
	StatusRendered = "rendered"
	StatusFailed   = "failed"
)
