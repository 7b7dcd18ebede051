package db

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dtnitsch/unstop-trends/pkg/table"
)

// ErrDatasetNotLoaded is returned when a query names a dataset that was never loaded.
var ErrDatasetNotLoaded = errors.New("dataset not loaded")

// DatasetInfo describes one loaded dataset.
type DatasetInfo struct {
	Name        string `json:"name" yaml:"name"`
	TableName   string `json:"table_name" yaml:"table_name"`
	ColumnCount int    `json:"column_count" yaml:"column_count"`
	RowCount    int    `json:"row_count" yaml:"row_count"`
}

// GroupRow is one group of a GroupSums query. Sums follow the order of the
// requested measures; a sum is null when no row of the group had a number.
type GroupRow struct {
	Keys []string
	Sums []sql.NullFloat64
	Rows int
}

// quoteIdent quotes a SQL identifier, so dataset headers with spaces are safe.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func tableNameFor(dataset string) string {
	var sb strings.Builder
	sb.WriteString("ds_")
	for _, r := range strings.ToLower(dataset) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	return sb.String()
}

// textColumn and numberColumn name the two stored forms of the i-th dataset
// column. Labels keep their raw text; measures are summed from the numbers.
func textColumn(i int) string {
	return fmt.Sprintf("t%d", i)
}

func numberColumn(i int) string {
	return fmt.Sprintf("n%d", i)
}

// numberValue is the numeric form of a cell, nil when it does not parse.
func numberValue(c table.Cell) interface{} {
	f := table.ParseFloat(c)
	if !f.Valid {
		return nil
	}
	if f.Float64 == math.Trunc(f.Float64) && math.Abs(f.Float64) < 1<<53 {
		return int64(f.Float64)
	}
	return f.Float64
}

// LoadTable copies a table into the store, replacing a previous load of the
// same name.
func (db *DB) LoadTable(t *table.Table) error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("dataset %q has no columns", t.Name)
	}
	tableName := tableNameFor(t.Name)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin load of %q: %w", t.Name, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM datasets WHERE name = ?", t.Name); err != nil {
		return fmt.Errorf("failed to clear catalogue for %q: %w", t.Name, err)
	}
	if _, err := tx.Exec("DROP TABLE IF EXISTS " + quoteIdent(tableName)); err != nil {
		return fmt.Errorf("failed to drop previous %q: %w", t.Name, err)
	}

	// Stored columns are positional, so repeated or awkward headers never clash.
	cols := make([]string, 0, 2*len(t.Columns))
	marks := make([]string, 0, 2*len(t.Columns))
	defs := make([]string, 0, 2*len(t.Columns))
	for i := range t.Columns {
		cols = append(cols, textColumn(i), numberColumn(i))
		marks = append(marks, "?", "?")
		defs = append(defs, textColumn(i)+" TEXT", numberColumn(i)+" REAL")
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(tableName), strings.Join(defs, ", "))
	if _, err := tx.Exec(create); err != nil {
		return fmt.Errorf("failed to create table for %q: %w", t.Name, err)
	}

	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(tableName), strings.Join(cols, ", "), strings.Join(marks, ", ")))
	if err != nil {
		return fmt.Errorf("failed to prepare insert for %q: %w", t.Name, err)
	}
	defer stmt.Close()

	args := make([]interface{}, len(cols))
	for _, row := range t.Rows {
		for i, c := range row {
			args[2*i] = nil
			if c.Valid {
				args[2*i] = c.String
			}
			args[2*i+1] = numberValue(c)
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("failed to insert row into %q: %w", t.Name, err)
		}
	}

	res, err := tx.Exec(`
		INSERT INTO datasets (name, table_name, column_count, row_count)
		VALUES (?, ?, ?, ?)
	`, t.Name, tableName, len(t.Columns), t.Len())
	if err != nil {
		return fmt.Errorf("failed to register dataset %q: %w", t.Name, err)
	}
	datasetID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get dataset ID: %w", err)
	}
	for i, c := range t.Columns {
		if _, err := tx.Exec(`
			INSERT INTO dataset_columns (dataset_id, position, name)
			VALUES (?, ?, ?)
		`, datasetID, i, c); err != nil {
			return fmt.Errorf("failed to register column %q: %w", c, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit load of %q: %w", t.Name, err)
	}

	db.mu.Lock()
	db.tables[t.Name] = append([]string(nil), t.Columns...)
	db.mu.Unlock()
	return nil
}

// columnPositions resolves column names of a loaded dataset to their
// positions. A repeated header resolves to its first occurrence.
func (db *DB) columnPositions(dataset string, names []string) ([]int, error) {
	db.mu.RLock()
	cols, ok := db.tables[dataset]
	db.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDatasetNotLoaded, dataset)
	}

	pos := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, dup := pos[c]; !dup {
			pos[c] = i
		}
	}
	out := make([]int, len(names))
	for i, n := range names {
		p, ok := pos[n]
		if !ok {
			return nil, &table.ColumnError{Table: dataset, Column: n}
		}
		out[i] = p
	}
	return out, nil
}

// GroupSums groups a dataset by the given columns and sums each measure,
// like pandas' groupby(groups)[measures].sum(). Rows with a null group key are
// left out. Groups are ordered by their keys.
func (db *DB) GroupSums(dataset string, groups []string, measures []string) ([]GroupRow, error) {
	if len(groups) == 0 {
		return nil, errors.New("GroupSums requires at least one group column")
	}
	pos, err := db.columnPositions(dataset, append(append([]string(nil), groups...), measures...))
	if err != nil {
		return nil, err
	}

	keyExprs := make([]string, len(groups))
	where := make([]string, len(groups))
	for i := range groups {
		keyExprs[i] = textColumn(pos[i])
		where[i] = keyExprs[i] + " IS NOT NULL"
	}
	selects := append([]string(nil), keyExprs...)
	for i := range measures {
		selects = append(selects, fmt.Sprintf("SUM(%s)", numberColumn(pos[len(groups)+i])))
	}
	selects = append(selects, "COUNT(*)")

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s GROUP BY %s ORDER BY %s",
		strings.Join(selects, ", "),
		quoteIdent(tableNameFor(dataset)),
		strings.Join(where, " AND "),
		strings.Join(keyExprs, ", "),
		strings.Join(keyExprs, ", "),
	)

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to group %q: %w", dataset, err)
	}
	defer rows.Close()

	var out []GroupRow
	for rows.Next() {
		gr := GroupRow{
			Keys: make([]string, len(groups)),
			Sums: make([]sql.NullFloat64, len(measures)),
		}
		dest := make([]interface{}, 0, len(groups)+len(measures)+1)
		for i := range gr.Keys {
			dest = append(dest, &gr.Keys[i])
		}
		for i := range gr.Sums {
			dest = append(dest, &gr.Sums[i])
		}
		dest = append(dest, &gr.Rows)

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan group row: %w", err)
		}
		out = append(out, gr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read groups of %q: %w", dataset, err)
	}

	return out, nil
}

// ListDatasets returns the catalogue of loaded datasets in load order.
func (db *DB) ListDatasets() ([]DatasetInfo, error) {
	rows, err := db.Query(`
		SELECT name, table_name, column_count, row_count
		FROM datasets
		ORDER BY dataset_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	defer rows.Close()

	var out []DatasetInfo
	for rows.Next() {
		var d DatasetInfo
		if err := rows.Scan(&d.Name, &d.TableName, &d.ColumnCount, &d.RowCount); err != nil {
			return nil, fmt.Errorf("failed to scan dataset: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// DatasetColumns returns the header of a loaded dataset.
func (db *DB) DatasetColumns(dataset string) ([]string, error) {
	rows, err := db.Query(`
		SELECT c.name
		FROM dataset_columns c
		JOIN datasets d ON d.dataset_id = c.dataset_id
		WHERE d.name = ?
		ORDER BY c.position
	`, dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrDatasetNotLoaded, dataset)
	}
	return cols, nil
}
