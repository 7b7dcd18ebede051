package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/unstop-trends/internal/db"
	"github.com/dtnitsch/unstop-trends/internal/report"
	"github.com/dtnitsch/unstop-trends/internal/tags"
	"github.com/dtnitsch/unstop-trends/pkg/help"
)

// inputFlags locate the configuration and the datasets.
func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "YAML config file (optional)"},
		&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "dotenv file with UNSTOP_* overrides (optional)"},
		&cli.StringFlag{Name: "data-dir", Usage: "Directory holding the three cleaned CSV files"},
		&cli.StringFlag{Name: "hackathons", Usage: "Cleaned hackathons CSV"},
		&cli.StringFlag{Name: "jobs", Usage: "Cleaned jobs CSV"},
		&cli.StringFlag{Name: "internships", Usage: "Cleaned internships CSV"},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "unstop-trends",
		Usage: "Render the Unstop hackathon, job and internship dashboard",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "Only log errors",
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "text",
				Usage:   "Log format: text or json",
				EnvVars: []string{"UNSTOP_LOG_FORMAT"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "report",
				Usage:  "Build every chart and write the HTML report",
				Action: report.ReportAction,
				Flags: append(inputFlags(),
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Report HTML path"},
					&cli.StringFlag{Name: "manifest", Usage: "Summary manifest path, empty to skip"},
					&cli.StringFlag{Name: "manifest-format", Usage: "Manifest format: yaml or json"},
					&cli.StringFlag{Name: "title", Usage: "Page title"},
					&cli.StringFlag{Name: "assets-host", Usage: "Base URL of the ECharts scripts"},
					&cli.IntFlag{Name: "workers", Usage: "Charts built concurrently"},
					&cli.IntFlag{Name: "top", Usage: "Entries in top-N charts"},
					&cli.StringFlag{Name: "exclude", Usage: "Comma separated hackathon categories to leave out"},
				),
			},
			{
				Name:   "datasets",
				Usage:  "Load the datasets and describe what a report would use",
				Action: db.DatasetsAction,
				Flags: append(inputFlags(),
					&cli.StringFlag{Name: "format", Value: "yaml", Usage: "Output format: yaml, json or text"},
				),
			},
			{
				Name:   "tags",
				Usage:  "Count the tags of a multi-valued CSV column",
				Action: tags.TagsAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Required: true, Usage: "CSV file"},
					&cli.StringFlag{Name: "column", Aliases: []string{"c"}, Required: true, Usage: "Column holding the tag lists"},
					&cli.StringFlag{Name: "sep", Value: ",", Usage: "Tag separator; surrounding whitespace is ignored"},
					&cli.StringFlag{Name: "exclude", Usage: "Comma separated tags to leave out, case-insensitive"},
					&cli.IntFlag{Name: "top", Usage: "Keep only the top N tags (0 keeps all)"},
					&cli.BoolFlag{Name: "dedupe", Usage: "Count a tag at most once per row"},
					&cli.StringFlag{Name: "format", Value: "text", Usage: "Output format: text, yaml or json"},
				},
			},
			{
				Name:      "inspect",
				Usage:     "List the charts of a rendered report and their status",
				ArgsUsage: "[report.html]",
				Action:    report.InspectAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "Report HTML path"},
					&cli.BoolFlag{Name: "failed", Usage: "Only list charts that failed"},
					&cli.StringFlag{Name: "fields", Usage: "Comma separated fields to print (yaml/json)"},
					&cli.StringFlag{Name: "format", Value: "yaml", Usage: "Output format: yaml, json or text"},
				},
			},
			{
				Name:  "quickstart",
				Usage: "Print a quick start guide",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return err
				},
			},
		},
	}
}
