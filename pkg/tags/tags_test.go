package tags

import (
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/unstop-trends/pkg/mapreduce"
	"github.com/dtnitsch/unstop-trends/pkg/table"
)

func eligibilityTable(values ...sql.NullString) *table.Table {
	rows := make([][]sql.NullString, len(values))
	for i, v := range values {
		rows[i] = []sql.NullString{table.String("job-" + string(rune('a'+i))), v}
	}
	return table.New("jobs", []string{"Title", "Eligibility"}, rows)
}

func TestAggregate_Scenario(t *testing.T) {
	tbl := eligibilityTable(
		table.String("Engineering, MBA"),
		table.String("mba"),
		table.String(""),
		table.Null(),
		table.String("Engineering"),
	)

	got, err := Aggregate(tbl, "Eligibility", Options{Separator: ", ", Exclude: []string{"mba"}})
	require.NoError(t, err)

	want := []mapreduce.KV{{Key: "Engineering", Value: 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Aggregate() mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregate_ColumnNotFound(t *testing.T) {
	tbl := eligibilityTable(table.String("Engineering"))

	_, err := Aggregate(tbl, "Category", Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, table.ErrColumnNotFound))
	assert.Contains(t, err.Error(), "Category")
}

func TestAggregate_NullAndEmptyRows(t *testing.T) {
	tbl := eligibilityTable(table.Null(), table.String(""), table.String(" , ,"), table.Null())

	got, err := Aggregate(tbl, "Eligibility", Options{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAggregate_Idempotent(t *testing.T) {
	tbl := eligibilityTable(
		table.String("Design, Coding, Quiz"),
		table.String("Coding, Design"),
		table.String("Quiz,Coding"),
		table.String("Hiring"),
	)
	opts := Options{Separator: ",", TopK: 3}

	first, err := Aggregate(tbl, "Eligibility", opts)
	require.NoError(t, err)
	second, err := Aggregate(tbl, "Eligibility", opts)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second run differs (-first +second):\n%s", diff)
	}
}

func TestAggregate_CountConservation(t *testing.T) {
	values := []string{"A, B, C", "b, Awards", "C,,  ,D", "awards", "A"}
	cells := make([]sql.NullString, 0, len(values)+1)
	for _, v := range values {
		cells = append(cells, table.String(v))
	}
	cells = append(cells, table.Null())
	exclude := []string{"AWARDS"}

	// Count kept pieces independently of the aggregator.
	wantTotal := 0
	for _, v := range values {
		for _, p := range strings.Split(v, ",") {
			p = strings.TrimSpace(p)
			if p != "" && !strings.EqualFold(p, "awards") {
				wantTotal++
			}
		}
	}

	got := AggregateValues(cells, Options{Separator: ", ", Exclude: exclude})
	total := 0
	for _, kv := range got {
		total += kv.Value
	}
	assert.Equal(t, wantTotal, total)
}

func TestAggregate_ExclusionIgnoresCase(t *testing.T) {
	tbl := eligibilityTable(
		table.String("Undergraduate, Hackathon"),
		table.String("UNDERGRADUATE"),
		table.String("undergraduate, All"),
		table.String("uNdErGrAdUaTe, all, ALL"),
	)

	got, err := Aggregate(tbl, "Eligibility", Options{Exclude: []string{"undergraduate", " all "}})
	require.NoError(t, err)

	for _, kv := range got {
		assert.NotEqual(t, "undergraduate", strings.ToLower(kv.Key))
		assert.NotEqual(t, "all", strings.ToLower(kv.Key))
	}
	assert.Equal(t, []mapreduce.KV{{Key: "Hackathon", Value: 1}}, got)
}

func TestAggregate_TopK(t *testing.T) {
	tbl := eligibilityTable(
		table.String("Quiz, Coding"),
		table.String("Design, Coding"),
		table.String("Design, Hiring"),
		table.String("Coding, Quiz, Design"),
	)

	tests := []struct {
		name string
		topK int
		want []mapreduce.KV
	}{
		{
			name: "no limit",
			topK: 0,
			want: []mapreduce.KV{{Key: "Coding", Value: 3}, {Key: "Design", Value: 3}, {Key: "Quiz", Value: 2}, {Key: "Hiring", Value: 1}},
		},
		{
			name: "ties keep first-seen order",
			topK: 1,
			want: []mapreduce.KV{{Key: "Coding", Value: 3}},
		},
		{
			name: "truncates lower counts",
			topK: 3,
			want: []mapreduce.KV{{Key: "Coding", Value: 3}, {Key: "Design", Value: 3}, {Key: "Quiz", Value: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Aggregate(tbl, "Eligibility", Options{Separator: ", ", TopK: tt.topK})
			require.NoError(t, err)
			if tt.topK > 0 {
				assert.LessOrEqual(t, len(got), tt.topK)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Aggregate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAggregate_DuplicatesWithinRow(t *testing.T) {
	tbl := eligibilityTable(table.String("Coding, Coding, Design"), table.String("Coding"))

	multiset, err := Aggregate(tbl, "Eligibility", Options{})
	require.NoError(t, err)
	assert.Equal(t, []mapreduce.KV{{Key: "Coding", Value: 3}, {Key: "Design", Value: 1}}, multiset)

	deduped, err := Aggregate(tbl, "Eligibility", Options{DedupeRow: true})
	require.NoError(t, err)
	assert.Equal(t, []mapreduce.KV{{Key: "Coding", Value: 2}, {Key: "Design", Value: 1}}, deduped)
}

func TestSplitter(t *testing.T) {
	tests := []struct {
		name  string
		sep   string
		input string
		want  []string
	}{
		{"comma space", ", ", "a, b,c ,  d", []string{"a", "b", "c", "d"}},
		{"bare comma", ",", "a, b", []string{"a", "b"}},
		{"default", "", "a,b", []string{"a", "b"}},
		{"pipe is literal", "|", "a | b|c", []string{"a", "b", "c"}},
		{"whitespace", " ", "a  b\tc", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Splitter(tt.sep)(tt.input))
		})
	}
}
