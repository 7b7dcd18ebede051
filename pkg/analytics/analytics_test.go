package analytics

import (
	"database/sql"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/dtnitsch/unstop-trends/pkg/mapreduce"
	"github.com/dtnitsch/unstop-trends/pkg/table"
)

func TestIsStopword(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"THE", true},
		{"Pvt", true},
		{"engineer", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsStopword(tt.word); got != tt.want {
			t.Errorf("IsStopword(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestWordFrequency(t *testing.T) {
	texts := []string{
		"Software Engineer - Backend",
		"software engineer (C++), and a Node.js developer.",
		"Data Analyst at Acme Pvt Ltd",
	}

	got := WordFrequency(texts)

	if got.Get("Software") != 2 {
		t.Errorf("Software = %d, want 2 (case-insensitive, first spelling kept)", got.Get("Software"))
	}
	if got.Get("C++") != 1 || got.Get("Node.js") != 1 {
		t.Errorf("technical tokens lost: %v", got.Entries())
	}
	for _, kv := range got.Entries() {
		if IsStopword(kv.Key) {
			t.Errorf("stopword %q leaked into frequencies", kv.Key)
		}
		if len(kv.Key) < 2 {
			t.Errorf("single character token %q kept", kv.Key)
		}
	}
}

func TestTopWords(t *testing.T) {
	got := TopWords([]string{"go go rust", "rust go zig"}, 2)
	want := []mapreduce.KV{{Key: "go", Value: 3}, {Key: "rust", Value: 2}}
	if len(got) != len(want) {
		t.Fatalf("TopWords() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TopWords()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestValueCounts(t *testing.T) {
	got := ValueCounts([]string{"Online", "Offline", "Online", " ", "Offline", "Online"}, 0)
	if len(got) != 2 || got[0].Key != "Online" || got[0].Value != 3 || got[1].Value != 2 {
		t.Errorf("ValueCounts() = %v", got)
	}
}

func nf(v float64) sql.NullFloat64 { return sql.NullFloat64{Float64: v, Valid: true} }

func TestCorrelation(t *testing.T) {
	x := []sql.NullFloat64{nf(1), nf(2), nf(3), nf(4), {}}
	y := []sql.NullFloat64{nf(2), nf(4), nf(6), nf(8), nf(100)}
	z := []sql.NullFloat64{nf(4), nf(3), nf(2), nf(1), nf(0)}
	flat := []sql.NullFloat64{nf(5), nf(5), nf(5), nf(5), nf(5)}

	m, err := Correlation([]string{"x", "y", "z", "flat"}, [][]sql.NullFloat64{x, y, z, flat})
	if err != nil {
		t.Fatalf("Correlation() failed: %v", err)
	}

	tests := []struct {
		name string
		i, j int
		want float64
	}{
		{"diagonal", 0, 0, 1},
		{"perfect positive, null row skipped", 0, 1, 1},
		{"perfect negative", 0, 2, -1},
		{"symmetric", 2, 0, -1},
	}
	for _, tt := range tests {
		if got := m.Values[tt.i][tt.j]; math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: Values[%d][%d] = %v, want %v", tt.name, tt.i, tt.j, got, tt.want)
		}
	}
	if !math.IsNaN(m.Values[0][3]) || !math.IsNaN(m.Values[3][3]) {
		t.Errorf("constant series should correlate as NaN, got %v", m.Values[3])
	}

	if _, err := Correlation(nil, nil); err == nil {
		t.Error("Correlation() with no series should fail")
	}
}

func TestMonthlyCounts(t *testing.T) {
	day := func(s string) sql.NullTime {
		tm, _ := time.Parse("2006-01-02", s)
		return sql.NullTime{Time: tm, Valid: true}
	}

	got := MonthlyCounts([]sql.NullTime{day("2024-03-02"), day("2024-01-30"), {}, day("2024-03-31"), day("2023-12-01")})

	var keys []string
	for _, kv := range got {
		keys = append(keys, kv.Key)
	}
	if strings.Join(keys, ",") != "2023-12,2024-01,2024-03" {
		t.Errorf("months = %v, want chronological order", keys)
	}
	if got[2].Value != 2 {
		t.Errorf("2024-03 count = %d, want 2", got[2].Value)
	}
}

func TestDeadlineValues(t *testing.T) {
	rows := [][]sql.NullString{
		{table.String("2024-01-10")},
		{table.String("2024-01-01")},
		{table.String("soon")},
		{table.Null()},
	}
	dates := table.New("hackathons", []string{"Application Deadline"}, rows)

	got, err := DeadlineValues(dates, "Application Deadline")
	if err != nil {
		t.Fatalf("DeadlineValues() failed: %v", err)
	}
	if !got[0].Valid || got[0].Float64 != 9 || got[1].Float64 != 0 {
		t.Errorf("date deadlines = %v, want days since earliest", got)
	}
	if got[2].Valid || got[3].Valid {
		t.Errorf("unparsable deadlines should be null, got %v", got[2:])
	}

	numeric := table.New("internships", []string{"Application Deadline"}, [][]sql.NullString{
		{table.String("12")}, {table.String("bad")},
	})
	got, err = DeadlineValues(numeric, "Application Deadline")
	if err != nil {
		t.Fatalf("DeadlineValues() failed: %v", err)
	}
	if got[0].Float64 != 12 || got[1].Valid {
		t.Errorf("numeric deadlines = %v", got)
	}

	// A stray number in a date column does not turn the dates into nulls.
	mostlyDates := table.New("hackathons", []string{"Application Deadline"}, [][]sql.NullString{
		{table.String("2024-03-05")}, {table.String("2024-03-01")}, {table.String("7")},
	})
	got, err = DeadlineValues(mostlyDates, "Application Deadline")
	if err != nil {
		t.Fatalf("DeadlineValues() failed: %v", err)
	}
	if !got[0].Valid || got[0].Float64 != 4 || !got[1].Valid || got[1].Float64 != 0 {
		t.Errorf("mostly-date deadlines = %v, want days since earliest", got)
	}
	if got[2].Valid {
		t.Errorf("number in a date column should be null, got %v", got[2])
	}

	if _, err := DeadlineValues(numeric, "Deadline"); err == nil {
		t.Error("DeadlineValues() on missing column should fail")
	}
}

