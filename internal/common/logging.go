// Package common holds helpers shared by the CLI actions.
package common

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v2"
)

// Log formats accepted by --log-format.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// NewLogger builds the logger for a command. quiet limits output to errors;
// format selects colorized console lines or JSON records.
func NewLogger(w io.Writer, format string, quiet bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}

	if strings.EqualFold(strings.TrimSpace(format), LogFormatJSON) {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{Level: logLevel}))
}

// Logger builds the logger from the global --quiet and --log-format flags.
func Logger(c *cli.Context) *slog.Logger {
	return NewLogger(c.App.ErrWriter, c.String("log-format"), c.Bool("quiet"))
}
