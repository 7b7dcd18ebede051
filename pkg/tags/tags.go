// Package tags explodes multi-valued tag fields (categories, eligibility
// criteria) into a ranked frequency table.
package tags

import (
	"database/sql"
	"regexp"
	"strings"

	"github.com/dtnitsch/unstop-trends/pkg/mapreduce"
	"github.com/dtnitsch/unstop-trends/pkg/table"
)

// DefaultSeparator is used when Options.Separator is empty.
const DefaultSeparator = ","

// Options controls a single aggregation.
type Options struct {
	// Separator joins tags inside one field. Whitespace around it is ignored,
	// so ", " and "," split the same way.
	Separator string
	// Exclude lists tags to drop, compared case-insensitively.
	Exclude []string
	// TopK keeps only the K highest-ranked tags; 0 keeps all.
	TopK int
	// DedupeRow counts a tag at most once per row.
	DedupeRow bool
}

// Aggregate reads field from every row of t and returns tag counts ranked by
// count, descending, ties broken by first appearance. Null fields are skipped;
// a field missing from the schema is a table.ErrColumnNotFound error.
func Aggregate(t *table.Table, field string, opts Options) ([]mapreduce.KV, error) {
	cells, err := t.Column(field)
	if err != nil {
		return nil, err
	}
	return AggregateValues(cells, opts), nil
}

// AggregateValues is Aggregate over an already selected column.
func AggregateValues(cells []sql.NullString, opts Options) []mapreduce.KV {
	return mapreduce.TopN(Count(cells, opts), opts.TopK)
}

// Count explodes and filters cells without ranking them.
func Count(cells []sql.NullString, opts Options) *mapreduce.Counter {
	split := Splitter(opts.Separator)
	exclude := NewDenylist(opts.Exclude)

	counter := mapreduce.NewCounter()
	for _, c := range cells {
		if !c.Valid {
			continue
		}

		var seen map[string]bool
		if opts.DedupeRow {
			seen = make(map[string]bool)
		}

		for _, piece := range split(c.String) {
			piece = strings.TrimSpace(piece)
			if piece == "" || exclude.Contains(piece) {
				continue
			}
			if seen != nil {
				if seen[piece] {
					continue
				}
				seen[piece] = true
			}
			counter.Inc(piece)
		}
	}
	return counter
}

// Splitter returns a function splitting a field on sep with optional
// surrounding whitespace. A whitespace-only sep splits on whitespace runs.
func Splitter(sep string) func(string) []string {
	if sep == "" {
		sep = DefaultSeparator
	}

	core := strings.TrimSpace(sep)
	if core == "" {
		return strings.Fields
	}

	re := regexp.MustCompile(`\s*` + regexp.QuoteMeta(core) + `\s*`)
	return func(s string) []string {
		return re.Split(s, -1)
	}
}

// Denylist is a case-insensitive set of labels.
type Denylist map[string]struct{}

// NewDenylist builds a Denylist from labels. Surrounding whitespace is ignored.
func NewDenylist(labels []string) Denylist {
	d := make(Denylist, len(labels))
	for _, l := range labels {
		l = strings.ToLower(strings.TrimSpace(l))
		if l != "" {
			d[l] = struct{}{}
		}
	}
	return d
}

// Contains reports whether label is denied, ignoring case.
func (d Denylist) Contains(label string) bool {
	_, ok := d[strings.ToLower(label)]
	return ok
}
