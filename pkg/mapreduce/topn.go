package mapreduce

import (
	"fmt"
	"io"
	"sort"
)

// TopN ranks a counter by count, descending. Equal counts keep first-seen
// order. n <= 0 returns every entry.
func TopN(c *Counter, n int) []KV {
	ss := c.Entries()

	sort.SliceStable(ss, func(i, j int) bool {
		return ss[i].Value > ss[j].Value
	})

	if n > 0 && len(ss) > n {
		ss = ss[:n]
	}
	return ss
}

// TopKeywords formats ranked entries as "key:count" strings (e.g. "Engineering:42").
func TopKeywords(kvs []KV) []string {
	keywords := make([]string, len(kvs))
	for i, kv := range kvs {
		keywords[i] = fmt.Sprintf("%s:%d", kv.Key, kv.Value)
	}
	return keywords
}

// PrintTop writes ranked entries as a numbered list.
func PrintTop(w io.Writer, kvs []KV) error {
	for i, kv := range kvs {
		if _, err := fmt.Fprintf(w, "%d. %s: %d\n", i+1, kv.Key, kv.Value); err != nil {
			return err
		}
	}
	return nil
}
