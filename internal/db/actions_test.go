package db

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/unstop-trends/models"
)

func TestDescribe(t *testing.T) {
	dir := t.TempDir()
	jobs := filepath.Join(dir, "jobs.csv")
	csv := "Position,Company,Applied\nSoftware Engineer,Acme,100\nData Analyst,Globex,50\n"
	require.NoError(t, os.WriteFile(jobs, []byte(csv), 0o644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	listing, err := Describe(context.Background(), models.DatasetPaths{
		Jobs:        jobs,
		Hackathons:  filepath.Join(dir, "missing.csv"),
		Internships: "",
	}, logger)
	require.NoError(t, err)

	require.Len(t, listing.Datasets, 1)
	d := listing.Datasets[0]
	assert.Equal(t, "jobs", d.Name)
	assert.Equal(t, 2, d.RowCount)
	assert.Equal(t, 3, d.ColumnCount)
	assert.Equal(t, []string{"Position", "Company", "Applied"}, d.Columns)

	assert.Contains(t, listing.Errors, "hackathons")
	assert.Contains(t, listing.Errors, "internships")
	assert.NotContains(t, listing.Errors, "jobs")

	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, listing))
	assert.Contains(t, buf.String(), "jobs")
	assert.Contains(t, buf.String(), "hackathons   unavailable")
}
