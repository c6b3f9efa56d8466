package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaliph/chatlens/models"
)

func TestVolumeStats(t *testing.T) {
	records := []models.MessageRecord{
		rec(at(1, 10, 0), "Alice", "hello there friend"),
		rec(at(1, 10, 1), "Bob", "check https://example.com and www.example.org"),
		mediaRec(at(1, 10, 2), "Alice"),
		rec(at(1, 10, 3), models.SystemSender, "Alice added Bob"),
	}

	s := VolumeStats(records)
	assert.Equal(t, 4, s.TotalMessages)
	// media body words are excluded, system body words are not
	assert.Equal(t, 3+6+3, s.TotalWords)
	assert.Equal(t, 1, s.MediaCount)
	assert.Equal(t, 2, s.LinkCount)
}

func TestVolumeStatsEmpty(t *testing.T) {
	s := VolumeStats(nil)
	assert.Zero(t, s.TotalMessages)
	assert.Zero(t, s.TotalWords)
	assert.Zero(t, s.MediaCount)
	assert.Zero(t, s.LinkCount)
}

func TestVolumeStatsBareDomainLink(t *testing.T) {
	records := []models.MessageRecord{
		rec(at(1, 10, 0), "Alice", "see example.in for details"),
	}
	assert.Equal(t, 1, VolumeStats(records).LinkCount)
}

func TestLongestMessage(t *testing.T) {
	records := []models.MessageRecord{
		rec(at(1, 10, 0), "Alice", "short"),
		rec(at(1, 10, 1), "Bob", "a much longer message body"),
		mediaRec(at(1, 10, 2), "Alice"),
		rec(at(1, 10, 3), models.SystemSender, "an extremely long system notice that must not win this contest"),
	}
	assert.Equal(t, "a much longer message body", LongestMessage(records))
	assert.Equal(t, "", LongestMessage(nil))
}

func TestSpanOutOfOrder(t *testing.T) {
	records := []models.MessageRecord{
		rec(at(5, 12, 0), "Alice", "middle"),
		rec(at(9, 8, 0), "Bob", "last"),
		rec(at(1, 23, 0), "Alice", "first"),
	}

	first, last, ok := Span(records)
	assert.True(t, ok)
	assert.Equal(t, at(1, 23, 0), first)
	assert.Equal(t, at(9, 8, 0), last)

	_, _, ok = Span(nil)
	assert.False(t, ok)
}
