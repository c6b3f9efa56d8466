package analyzer

import (
	"regexp"
	"strings"
	"time"

	"github.com/jaliph/chatlens/models"
)

// linkPattern matches link-like tokens: explicit schemes, www hosts and
// bare domains with a common TLD.
var linkPattern = regexp.MustCompile(
	`https?://\S+|www\.\S+|\b[a-zA-Z0-9.-]+\.(?:com|org|net|in|gov|edu|info)\b`)

// VolumeStats computes the headline counters. Word counts skip media
// placeholders but include system notice bodies; link matches are
// counted across every body.
func VolumeStats(records []models.MessageRecord) models.VolumeStats {
	var s models.VolumeStats
	s.TotalMessages = len(records)
	for _, r := range records {
		if r.IsMedia {
			s.MediaCount++
		} else {
			s.TotalWords += len(strings.Fields(r.Body))
		}
		s.LinkCount += len(linkPattern.FindAllString(r.Body, -1))
	}
	return s
}

// LongestMessage returns the longest non-media, non-system body, or the
// empty string for an empty projection.
func LongestMessage(records []models.MessageRecord) string {
	best := ""
	for _, r := range records {
		if r.IsMedia || r.IsSystem() {
			continue
		}
		if len(r.Body) > len(best) {
			best = r.Body
		}
	}
	return best
}

// Span returns the earliest and latest timestamps. Export files may be
// out of order, so both ends are scanned rather than taken from the
// first and last records.
func Span(records []models.MessageRecord) (first, last time.Time, ok bool) {
	for _, r := range records {
		if !ok {
			first, last, ok = r.Timestamp, r.Timestamp, true
			continue
		}
		if r.Timestamp.Before(first) {
			first = r.Timestamp
		}
		if r.Timestamp.After(last) {
			last = r.Timestamp
		}
	}
	return first, last, ok
}
