// Package analyzer computes descriptive statistics over a parsed chat
// corpus. Every function is a pure read of its input, total over the
// empty corpus, and safe to call per requested metric.
package analyzer

import (
	"sort"

	"github.com/jaliph/chatlens/models"
)

// DefaultTopN bounds top-N style tables when the caller does not ask
// for a specific size.
const DefaultTopN = 20

// counter accumulates counts while remembering first-occurrence order,
// which is the tie-break for every ranked table.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string, n int) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

// top returns the n highest counts, descending, ties broken by first
// occurrence. n <= 0 or n beyond the distinct item count returns all
// items.
func (c *counter) top(n int) []models.LabelCount {
	out := make([]models.LabelCount, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, models.LabelCount{Label: k, Count: c.counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
