// Package table holds the in-memory representation of the cleaned datasets.
// Cells are null-aware so "absent" and "empty" stay distinguishable.
package table

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrColumnNotFound is returned when a requested column is not part of a table's schema.
var ErrColumnNotFound = errors.New("column not found")

// ColumnError identifies the table and column of a failed lookup.
type ColumnError struct {
	Table  string
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s: %q in table %q", ErrColumnNotFound, e.Column, e.Table)
}

func (e *ColumnError) Is(target error) bool {
	return target == ErrColumnNotFound
}

// Cell is one value of a row; Valid is false for nulls.
type Cell = sql.NullString

// Table is a named set of rows sharing one header.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]sql.NullString

	index map[string]int
}

// New builds a table from a header and rows. Rows shorter than the header are
// padded with nulls, longer rows are truncated.
func New(name string, columns []string, rows [][]sql.NullString) *Table {
	t := &Table{
		Name:    name,
		Columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range t.Columns {
		if _, dup := t.index[c]; !dup {
			t.index[c] = i
		}
	}

	t.Rows = make([][]sql.NullString, len(rows))
	for i, row := range rows {
		fixed := make([]sql.NullString, len(t.Columns))
		copy(fixed, row)
		t.Rows[i] = fixed
	}
	return t
}

// String returns a non-null cell.
func String(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

// Null returns an absent cell.
func Null() sql.NullString {
	return sql.NullString{}
}

// WithName returns a copy of the table under another name. Rows are shared,
// which is safe because no operation mutates them.
func (t *Table) WithName(name string) *Table {
	renamed := *t
	renamed.Name = name
	return &renamed
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether name is part of the schema.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

func (t *Table) columnIndex(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, &ColumnError{Table: t.Name, Column: name}
	}
	return i, nil
}

// Column returns a copy of the cells of one column.
func (t *Table) Column(name string) ([]sql.NullString, error) {
	i, err := t.columnIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]sql.NullString, len(t.Rows))
	for r, row := range t.Rows {
		out[r] = row[i]
	}
	return out, nil
}

// Strings returns the non-null values of a column in row order.
func (t *Table) Strings(name string) ([]string, error) {
	cells, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		if c.Valid {
			out = append(out, c.String)
		}
	}
	return out, nil
}

// DropNull returns a new table without the rows that are null in any of cols.
func (t *Table) DropNull(cols ...string) (*Table, error) {
	idx := make([]int, len(cols))
	for i, c := range cols {
		ci, err := t.columnIndex(c)
		if err != nil {
			return nil, err
		}
		idx[i] = ci
	}

	kept := make([][]sql.NullString, 0, len(t.Rows))
	for _, row := range t.Rows {
		ok := true
		for _, ci := range idx {
			if !row[ci].Valid {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, row)
		}
	}
	return New(t.Name, t.Columns, kept), nil
}

// Drop returns a new table without the named columns. Unknown names are ignored.
func (t *Table) Drop(cols ...string) *Table {
	skip := make(map[string]bool, len(cols))
	for _, c := range cols {
		skip[c] = true
	}

	var keepIdx []int
	var header []string
	for i, c := range t.Columns {
		if !skip[c] {
			keepIdx = append(keepIdx, i)
			header = append(header, c)
		}
	}

	rows := make([][]sql.NullString, len(t.Rows))
	for r, row := range t.Rows {
		out := make([]sql.NullString, len(keepIdx))
		for j, ci := range keepIdx {
			out[j] = row[ci]
		}
		rows[r] = out
	}
	return New(t.Name, header, rows)
}

// WithColumn returns a new table with name set to cells, replacing an existing
// column of the same name. cells must have one entry per row.
func (t *Table) WithColumn(name string, cells []sql.NullString) (*Table, error) {
	if len(cells) != len(t.Rows) {
		return nil, fmt.Errorf("column %q has %d cells, table %q has %d rows", name, len(cells), t.Name, len(t.Rows))
	}

	header := t.Columns
	pos, exists := t.index[name]
	if !exists {
		header = append(append([]string(nil), t.Columns...), name)
		pos = len(header) - 1
	}

	rows := make([][]sql.NullString, len(t.Rows))
	for r, row := range t.Rows {
		out := make([]sql.NullString, len(header))
		copy(out, row)
		out[pos] = cells[r]
		rows[r] = out
	}
	return New(t.Name, header, rows), nil
}
