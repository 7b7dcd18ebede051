// Package db implements the datasets command, which loads the configured
// CSV files into the frame store and describes what it holds.
package db

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/unstop-trends/internal/common"
	reportcmd "github.com/dtnitsch/unstop-trends/internal/report"
	"github.com/dtnitsch/unstop-trends/models"
	dbpkg "github.com/dtnitsch/unstop-trends/pkg/db"
	"github.com/dtnitsch/unstop-trends/pkg/report"
)

// Dataset is one entry of the datasets listing.
type Dataset struct {
	dbpkg.DatasetInfo `yaml:",inline"`
	Columns           []string `json:"columns" yaml:"columns"`
}

// Listing is the output of the datasets command.
type Listing struct {
	Datasets []Dataset         `json:"datasets" yaml:"datasets"`
	Errors   map[string]string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Describe loads and prepares the datasets exactly as a report run would and
// lists what ended up in the frame store.
func Describe(ctx context.Context, paths models.DatasetPaths, logger *slog.Logger) (*Listing, error) {
	database, err := dbpkg.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	sources := reportcmd.LoadSources(ctx, paths, logger)
	ds := report.Prepare(sources, database, logger)

	infos, err := database.ListDatasets()
	if err != nil {
		return nil, err
	}

	listing := &Listing{Datasets: make([]Dataset, 0, len(infos))}
	for _, info := range infos {
		cols, err := database.DatasetColumns(info.Name)
		if err != nil {
			return nil, err
		}
		listing.Datasets = append(listing.Datasets, Dataset{DatasetInfo: info, Columns: cols})
	}

	for _, name := range []string{report.Hackathons, report.Jobs, report.Internships} {
		if _, err := ds.Table(name); err != nil {
			if listing.Errors == nil {
				listing.Errors = make(map[string]string)
			}
			listing.Errors[name] = err.Error()
		}
	}
	return listing, nil
}

// DatasetsAction prints the datasets a report run would use.
func DatasetsAction(c *cli.Context) error {
	logger := common.Logger(c)

	config, err := reportcmd.LoadConfig(c)
	if err != nil {
		return err
	}
	format, err := common.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}

	listing, err := Describe(c.Context, config.Datasets, logger)
	if err != nil {
		return err
	}

	if format == common.FormatText {
		return writeText(c.App.Writer, listing)
	}
	return common.WriteStructured(c.App.Writer, listing, format)
}

func writeText(w io.Writer, listing *Listing) error {
	for _, d := range listing.Datasets {
		if _, err := fmt.Fprintf(w, "%-12s %5d rows  %2d columns\n", d.Name, d.RowCount, d.ColumnCount); err != nil {
			return err
		}
	}
	for _, name := range []string{report.Hackathons, report.Jobs, report.Internships} {
		if msg, ok := listing.Errors[name]; ok {
			if _, err := fmt.Fprintf(w, "%-12s unavailable: %s\n", name, msg); err != nil {
				return err
			}
		}
	}
	return nil
}
