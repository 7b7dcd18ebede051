package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"unstop-trends", "--quiet"}, args...))
	return out.String(), err
}

func TestTagsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.csv")
	csv := "Company,Eligibility\nAcme,\"Engineering, MBA\"\nInitech,mba\nGlobex,\nUmbrella,Engineering\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	out, err := runApp(t, "tags", "--file", path, "--column", "Eligibility", "--sep", ", ", "--exclude", "mba")
	require.NoError(t, err)
	assert.Equal(t, "1. Engineering: 2\n", out)
}

func TestReportAndInspectCommands(t *testing.T) {
	dir := t.TempDir()
	jobs := "Position,Company,Location,Eligibility,Status,Opportunity Type,Applied,Impressions\n" +
		"Software Engineer,Acme,Bangalore,Engineering,Open,Full Time,100,1000\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cleaned_jobs.csv"), []byte(jobs), 0o644))
	output := filepath.Join(dir, "index.html")

	out, err := runApp(t, "report",
		"--config", filepath.Join(dir, "none.yaml"),
		"--env-file", filepath.Join(dir, "none.env"),
		"--data-dir", dir,
		"--output", output,
		"--manifest", "",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "10/29 charts rendered")

	out, err = runApp(t, "inspect", "--format", "text", output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 29)

	out, err = runApp(t, "inspect", "--failed", "--fields", "id,error_type", "--format", "json", "--file", output)
	require.NoError(t, err)
	assert.Contains(t, out, `"error_type": "dataset_unavailable"`)
	assert.NotContains(t, out, `"title"`)
}

func TestQuickstartCommand(t *testing.T) {
	out, err := runApp(t, "quickstart")
	require.NoError(t, err)
	assert.Contains(t, out, "unstop-trends report")
}

func TestDatasetsCommand(t *testing.T) {
	dir := t.TempDir()
	jobs := filepath.Join(dir, "jobs.csv")
	require.NoError(t, os.WriteFile(jobs, []byte("Company,Applied\nAcme,10\n"), 0o644))

	out, err := runApp(t, "datasets", "--config", "", "--env-file", "", "--jobs", jobs, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "jobs"`)
	assert.Contains(t, out, `"hackathons"`)
}
