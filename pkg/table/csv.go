package table

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReadCSV parses a header row plus data rows. Empty cells become nulls, the
// same way the upstream cleaning stage's files are read by pandas.
func ReadCSV(name string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read %s: empty file, missing header row", name)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", name, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}
	header = renameRepeated(header)

	var rows [][]sql.NullString
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s row %d: %w", name, len(rows)+2, err)
		}

		row := make([]sql.NullString, len(record))
		for i, v := range record {
			if strings.TrimSpace(v) == "" {
				continue
			}
			row[i] = String(v)
		}
		rows = append(rows, row)
	}

	return New(name, header, rows), nil
}

// renameRepeated suffixes repeated header names with ".1", ".2" and so on,
// as pandas does, so every column stays addressable.
func renameRepeated(header []string) []string {
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		seen[h] = true
	}
	counts := make(map[string]int, len(header))
	out := make([]string, len(header))
	for i, h := range header {
		n := counts[h]
		counts[h] = n + 1
		if n == 0 {
			out[i] = h
			continue
		}
		name := fmt.Sprintf("%s.%d", h, n)
		for seen[name] {
			n++
			name = fmt.Sprintf("%s.%d", h, n)
		}
		counts[h] = n + 1
		seen[name] = true
		out[i] = name
	}
	return out
}

// LoadCSV reads a CSV file from disk. The table name is the given name, or the
// file's base name without extension when name is empty.
func LoadCSV(name, path string) (*Table, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return ReadCSV(name, f)
}
