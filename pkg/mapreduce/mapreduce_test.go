package mapreduce

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCounterKeepsFirstSeenOrder(t *testing.T) {
	c := Map([]string{"b", "a", "b", "c", "a", "b"})

	want := []KV{{"b", 3}, {"a", 2}, {"c", 1}}
	if diff := cmp.Diff(want, c.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
	if c.Total() != 6 {
		t.Errorf("Total() = %d, want 6", c.Total())
	}
}

func TestTopN(t *testing.T) {
	c := Map([]string{"late", "tie1", "tie2", "late", "tie2", "tie1", "late", "solo"})

	tests := []struct {
		name string
		n    int
		want []KV
	}{
		{
			name: "all entries",
			n:    0,
			want: []KV{{"late", 3}, {"tie1", 2}, {"tie2", 2}, {"solo", 1}},
		},
		{
			name: "ties resolved by first-seen order",
			n:    2,
			want: []KV{{"late", 3}, {"tie1", 2}},
		},
		{
			name: "n larger than entries",
			n:    10,
			want: []KV{{"late", 3}, {"tie1", 2}, {"tie2", 2}, {"solo", 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, TopN(c, tt.n)); diff != "" {
				t.Errorf("TopN() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTopKeywordsAndPrint(t *testing.T) {
	kvs := []KV{{"Engineering", 4}, {"MBA", 1}}

	got := TopKeywords(kvs)
	if diff := cmp.Diff([]string{"Engineering:4", "MBA:1"}, got); diff != "" {
		t.Errorf("TopKeywords() mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err := PrintTop(&buf, kvs); err != nil {
		t.Fatalf("PrintTop() failed: %v", err)
	}
	if buf.String() != "1. Engineering: 4\n2. MBA: 1\n" {
		t.Errorf("PrintTop() = %q", buf.String())
	}
}
