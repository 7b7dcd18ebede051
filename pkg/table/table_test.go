package table

import (
	"errors"
	"strings"
	"testing"
)

const jobsCSV = `Company,Location,Applied,Uploaded On,Eligibility
Acme,Delhi,120,2024-01-15,"Engineering,MBA"
Globex,,"1,050",15/02/2024,
Initech,Pune,n/a,not a date,Engineering
`

func loadJobs(t *testing.T) *Table {
	t.Helper()
	tbl, err := ReadCSV("jobs", strings.NewReader(jobsCSV))
	if err != nil {
		t.Fatalf("ReadCSV() failed: %v", err)
	}
	return tbl
}

func TestReadCSV(t *testing.T) {
	tbl := loadJobs(t)

	if tbl.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tbl.Len())
	}
	if len(tbl.Columns) != 5 {
		t.Errorf("columns = %v, want 5 columns", tbl.Columns)
	}

	loc, err := tbl.Column("Location")
	if err != nil {
		t.Fatalf("Column() failed: %v", err)
	}
	if loc[1].Valid {
		t.Errorf("empty cell should load as null, got %q", loc[1].String)
	}

	elig, _ := tbl.Column("Eligibility")
	if elig[0].String != "Engineering,MBA" {
		t.Errorf("quoted cell = %q, want %q", elig[0].String, "Engineering,MBA")
	}
}

func TestReadCSV_Empty(t *testing.T) {
	if _, err := ReadCSV("empty", strings.NewReader("")); err == nil {
		t.Error("ReadCSV() on empty input should fail")
	}
}

func TestReadCSV_RepeatedHeader(t *testing.T) {
	tbl, err := ReadCSV("jobs", strings.NewReader("Company,Applied,Company,Company\nAcme,3,Other,Y\n"))
	if err != nil {
		t.Fatalf("ReadCSV() failed: %v", err)
	}

	want := []string{"Company", "Applied", "Company.1", "Company.2"}
	if strings.Join(tbl.Columns, "|") != strings.Join(want, "|") {
		t.Errorf("Columns = %v, want %v", tbl.Columns, want)
	}
	second, err := tbl.Strings("Company.1")
	if err != nil || len(second) != 1 || second[0] != "Other" {
		t.Errorf("Strings(Company.1) = %v, %v", second, err)
	}
}

func TestColumnNotFound(t *testing.T) {
	tbl := loadJobs(t)

	_, err := tbl.Column("Salary")
	if !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("Column() error = %v, want ErrColumnNotFound", err)
	}

	var colErr *ColumnError
	if !errors.As(err, &colErr) {
		t.Fatalf("error should be a *ColumnError, got %T", err)
	}
	if colErr.Table != "jobs" || colErr.Column != "Salary" {
		t.Errorf("ColumnError = %+v", colErr)
	}
}

func TestFloats_NullOnFailure(t *testing.T) {
	tbl := loadJobs(t)

	got, err := tbl.Floats("Applied")
	if err != nil {
		t.Fatalf("Floats() failed: %v", err)
	}

	tests := []struct {
		row   int
		valid bool
		want  float64
	}{
		{0, true, 120},
		{1, true, 1050},
		{2, false, 0},
	}
	for _, tt := range tests {
		if got[tt.row].Valid != tt.valid || got[tt.row].Float64 != tt.want {
			t.Errorf("row %d = %+v, want valid=%v value=%v", tt.row, got[tt.row], tt.valid, tt.want)
		}
	}
}

func TestTimes_NullOnFailure(t *testing.T) {
	tbl := loadJobs(t)

	got, err := tbl.Times("Uploaded On")
	if err != nil {
		t.Fatalf("Times() failed: %v", err)
	}
	if !got[0].Valid || got[0].Time.Format("2006-01-02") != "2024-01-15" {
		t.Errorf("row 0 = %+v, want 2024-01-15", got[0])
	}
	if got[2].Valid {
		t.Errorf("row 2 should be null, got %v", got[2].Time)
	}
}

func TestDropNull(t *testing.T) {
	tbl := loadJobs(t)

	kept, err := tbl.DropNull("Location", "Eligibility")
	if err != nil {
		t.Fatalf("DropNull() failed: %v", err)
	}
	if kept.Len() != 2 {
		t.Errorf("DropNull() kept %d rows, want 2", kept.Len())
	}
	if tbl.Len() != 3 {
		t.Errorf("source table was modified: %d rows", tbl.Len())
	}

	if _, err := tbl.DropNull("Missing"); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("DropNull() on unknown column error = %v", err)
	}
}

func TestWithName(t *testing.T) {
	tbl := loadJobs(t)
	renamed := tbl.WithName("postings")

	if renamed.Name != "postings" || tbl.Name != "jobs" {
		t.Errorf("names = %q, %q, want postings, jobs", renamed.Name, tbl.Name)
	}
	if renamed.Len() != tbl.Len() || !renamed.HasColumn("Company") {
		t.Errorf("renamed table lost data: %d rows, columns %v", renamed.Len(), renamed.Columns)
	}
}

func TestWithColumnAndDrop(t *testing.T) {
	tbl := loadJobs(t)

	months := make([]string, 0, tbl.Len())
	times, _ := tbl.Times("Uploaded On")
	cells := make([]Cell, len(times))
	for i, tm := range times {
		cells[i] = FormatMonth(tm)
		if cells[i].Valid {
			months = append(months, cells[i].String)
		}
	}

	derived, err := tbl.WithColumn("Uploaded Month", cells)
	if err != nil {
		t.Fatalf("WithColumn() failed: %v", err)
	}
	if !derived.HasColumn("Uploaded Month") || tbl.HasColumn("Uploaded Month") {
		t.Fatal("WithColumn() should add the column to the new table only")
	}
	got, _ := derived.Strings("Uploaded Month")
	if strings.Join(got, ",") != strings.Join(months, ",") {
		t.Errorf("derived months = %v, want %v", got, months)
	}

	if _, err := tbl.WithColumn("Short", cells[:1]); err == nil {
		t.Error("WithColumn() with wrong length should fail")
	}

	dropped := derived.Drop("Location", "Nope")
	if dropped.HasColumn("Location") {
		t.Error("Drop() left the column in place")
	}
	if len(dropped.Columns) != len(derived.Columns)-1 {
		t.Errorf("Drop() columns = %v", dropped.Columns)
	}
}
