package analytics

import (
	"database/sql"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/dtnitsch/unstop-trends/pkg/mapreduce"
	"github.com/dtnitsch/unstop-trends/pkg/table"
)

// ErrNoData is returned when a computation has nothing to work with.
var ErrNoData = errors.New("no data")

// CorrMatrix holds pairwise Pearson correlations between named series.
// Values[i][j] is NaN when the pair has fewer than two complete observations
// or one side is constant.
type CorrMatrix struct {
	Names  []string
	Values [][]float64
}

// Correlation computes pairwise Pearson correlations, using for each pair only
// the rows where both values are present (pandas' pairwise-complete rule).
func Correlation(names []string, series [][]sql.NullFloat64) (*CorrMatrix, error) {
	if len(names) != len(series) {
		return nil, errors.New("correlation: names and series differ in length")
	}
	if len(series) == 0 {
		return nil, ErrNoData
	}

	m := &CorrMatrix{
		Names:  append([]string(nil), names...),
		Values: make([][]float64, len(series)),
	}
	for i := range series {
		m.Values[i] = make([]float64, len(series))
		for j := range series {
			if i == j {
				m.Values[i][j] = selfCorrelation(series[i])
				continue
			}
			m.Values[i][j] = pearson(series[i], series[j])
		}
	}
	return m, nil
}

func selfCorrelation(xs []sql.NullFloat64) float64 {
	if math.IsNaN(pearson(xs, xs)) {
		return math.NaN()
	}
	return 1
}

func pearson(xs, ys []sql.NullFloat64) float64 {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}

	var count float64
	var sx, sy float64
	for i := 0; i < n; i++ {
		if xs[i].Valid && ys[i].Valid {
			sx += xs[i].Float64
			sy += ys[i].Float64
			count++
		}
	}
	if count < 2 {
		return math.NaN()
	}
	mx, my := sx/count, sy/count

	var cov, vx, vy float64
	for i := 0; i < n; i++ {
		if xs[i].Valid && ys[i].Valid {
			dx, dy := xs[i].Float64-mx, ys[i].Float64-my
			cov += dx * dy
			vx += dx * dx
			vy += dy * dy
		}
	}
	if vx == 0 || vy == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(vx*vy)
}

// MonthlyCounts buckets timestamps by calendar month, sorted chronologically.
// Keys are formatted "2006-01"; nulls are ignored.
func MonthlyCounts(times []sql.NullTime) []mapreduce.KV {
	c := mapreduce.NewCounter()
	for _, t := range times {
		if m := table.FormatMonth(t); m.Valid {
			c.Inc(m.String)
		}
	}

	out := c.Entries()
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// DaysSinceEarliest converts timestamps to whole days after the earliest
// present one. Nulls stay null.
func DaysSinceEarliest(times []sql.NullTime) []sql.NullFloat64 {
	var earliest time.Time
	found := false
	for _, t := range times {
		if t.Valid && (!found || t.Time.Before(earliest)) {
			earliest = t.Time
			found = true
		}
	}

	out := make([]sql.NullFloat64, len(times))
	for i, t := range times {
		if t.Valid {
			out[i] = sql.NullFloat64{Float64: math.Floor(t.Time.Sub(earliest).Hours() / 24), Valid: true}
		}
	}
	return out
}

// DeadlineValues reads a deadline column either as numbers or as days since
// the earliest date, whichever reading covers more cells; a tie reads numbers.
// Cells that do not fit the chosen reading are null.
func DeadlineValues(t *table.Table, column string) ([]sql.NullFloat64, error) {
	numeric, err := t.Floats(column)
	if err != nil {
		return nil, err
	}
	times, err := t.Times(column)
	if err != nil {
		return nil, err
	}

	numbers, dates := 0, 0
	for i := range numeric {
		if numeric[i].Valid {
			numbers++
		}
		if times[i].Valid {
			dates++
		}
	}
	if numbers >= dates {
		return numeric, nil
	}
	return DaysSinceEarliest(times), nil
}

