package mapreduce

// KV is one ranked entry of a frequency table.
type KV struct {
	Key   string `json:"key" yaml:"key"`
	Value int    `json:"count" yaml:"count"`
}

// Counter counts keys and remembers the order in which each key was first seen,
// so rankings built from it break ties deterministically.
type Counter struct {
	counts map[string]int
	order  []string
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add increments key by n.
func (c *Counter) Add(key string, n int) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

// Inc increments key by one.
func (c *Counter) Inc(key string) {
	c.Add(key, 1)
}

// Len returns the number of distinct keys.
func (c *Counter) Len() int {
	return len(c.order)
}

// Get returns the count for key.
func (c *Counter) Get(key string) int {
	return c.counts[key]
}

// Total returns the sum of all counts.
func (c *Counter) Total() int {
	total := 0
	for _, v := range c.counts {
		total += v
	}
	return total
}

// Entries returns every key with its count in first-seen order.
func (c *Counter) Entries() []KV {
	out := make([]KV, len(c.order))
	for i, k := range c.order {
		out[i] = KV{Key: k, Value: c.counts[k]}
	}
	return out
}

// Map counts each value of a single partition.
func Map(values []string) *Counter {
	c := NewCounter()
	for _, v := range values {
		c.Inc(v)
	}
	return c
}

