package table

import (
	"database/sql"
	"math"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
)

// ParseFloat coerces a cell to a number. Anything unparsable is null rather
// than an error; thousands separators are accepted.
func ParseFloat(c sql.NullString) sql.NullFloat64 {
	if !c.Valid {
		return sql.NullFloat64{}
	}
	s := strings.ReplaceAll(strings.TrimSpace(c.String), ",", "")
	if s == "" {
		return sql.NullFloat64{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}

// ParseTime coerces a cell to a timestamp, null on failure.
func ParseTime(c sql.NullString) sql.NullTime {
	if !c.Valid {
		return sql.NullTime{}
	}
	s := strings.TrimSpace(c.String)
	if s == "" {
		return sql.NullTime{}
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

// Floats coerces a whole column with ParseFloat.
func (t *Table) Floats(name string) ([]sql.NullFloat64, error) {
	cells, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]sql.NullFloat64, len(cells))
	for i, c := range cells {
		out[i] = ParseFloat(c)
	}
	return out, nil
}

// Times coerces a whole column with ParseTime.
func (t *Table) Times(name string) ([]sql.NullTime, error) {
	cells, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]sql.NullTime, len(cells))
	for i, c := range cells {
		out[i] = ParseTime(c)
	}
	return out, nil
}

// FormatMonth renders a timestamp as its "2006-01" period, null when absent.
func FormatMonth(t sql.NullTime) sql.NullString {
	if !t.Valid {
		return Null()
	}
	return String(t.Time.Format("2006-01"))
}

