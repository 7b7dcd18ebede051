// Package tags implements the tags command: the tag aggregator over any
// column of a CSV file.
package tags

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/unstop-trends/internal/common"
	"github.com/dtnitsch/unstop-trends/pkg/mapreduce"
	"github.com/dtnitsch/unstop-trends/pkg/table"
	"github.com/dtnitsch/unstop-trends/pkg/tags"
)

// Request is one aggregation asked for on the command line.
type Request struct {
	File   string
	Column string
	Format string
	Opts   tags.Options
}

// TagsAction counts the tags of one column and prints the ranking.
func TagsAction(c *cli.Context) error {
	logger := common.Logger(c)

	req := Request{
		File:   c.String("file"),
		Column: c.String("column"),
		Format: c.String("format"),
		Opts: tags.Options{
			Separator: c.String("sep"),
			Exclude:   common.SplitList(c.String("exclude"), ","),
			TopK:      c.Int("top"),
			DedupeRow: c.Bool("dedupe"),
		},
	}

	kvs, err := Run(req)
	if err != nil {
		return err
	}
	logger.Info("tags aggregated", "file", req.File, "column", req.Column, "distinct", len(kvs))

	return Write(c.App.Writer, kvs, req.Format)
}

// Run loads the file and aggregates the column.
func Run(req Request) ([]mapreduce.KV, error) {
	if req.File == "" {
		return nil, fmt.Errorf("no input file given: use --file")
	}
	if req.Column == "" {
		return nil, fmt.Errorf("no column given: use --column")
	}

	t, err := table.LoadCSV(req.File, req.File)
	if err != nil {
		return nil, err
	}
	return tags.Aggregate(t, req.Column, req.Opts)
}

// Write prints a ranking in the requested format.
func Write(w io.Writer, kvs []mapreduce.KV, format string) error {
	f, err := common.ParseFormat(format)
	if err != nil {
		return err
	}
	if f == common.FormatText {
		return mapreduce.PrintTop(w, kvs)
	}
	if kvs == nil {
		kvs = []mapreduce.KV{}
	}
	return common.WriteStructured(w, kvs, f)
}
