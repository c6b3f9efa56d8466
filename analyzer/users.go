package analyzer

import (
	"math"
	"time"

	"github.com/jaliph/chatlens/models"
)

// ActiveUsers counts messages per sender over the unfiltered corpus,
// descending, ties broken by first appearance. Share is each sender's
// percentage of non-system messages, rounded half-up to one decimal;
// the SYSTEM row reports zero. The per-sender counts, SYSTEM included,
// always sum to the total message count.
func ActiveUsers(records []models.MessageRecord, topN int) []models.UserActivity {
	c := newCounter()
	nonSystem := 0
	for _, r := range records {
		c.add(r.Sender, 1)
		if !r.IsSystem() {
			nonSystem++
		}
	}

	ranked := c.top(topN)
	out := make([]models.UserActivity, 0, len(ranked))
	for _, lc := range ranked {
		ua := models.UserActivity{User: lc.Label, Messages: lc.Count}
		if lc.Label != models.SystemSender && nonSystem > 0 {
			ua.Share = roundShare(float64(lc.Count) / float64(nonSystem) * 100)
		}
		out = append(out, ua)
	}
	return out
}

func roundShare(v float64) float64 {
	return math.Round(v*10) / 10
}

// ConversationStarters counts, per sender, the calendar days on which
// that sender sent the day's earliest message. System notices do not
// start conversations.
func ConversationStarters(records []models.MessageRecord, topN int) []models.LabelCount {
	type opener struct {
		at     time.Time
		sender string
	}
	first := make(map[string]opener)
	var dayOrder []string

	for _, r := range records {
		if r.IsSystem() {
			continue
		}
		day := r.Timestamp.Format("2006-01-02")
		cur, seen := first[day]
		if !seen {
			dayOrder = append(dayOrder, day)
			first[day] = opener{at: r.Timestamp, sender: r.Sender}
			continue
		}
		if r.Timestamp.Before(cur.at) {
			first[day] = opener{at: r.Timestamp, sender: r.Sender}
		}
	}

	c := newCounter()
	for _, day := range dayOrder {
		c.add(first[day].sender, 1)
	}
	return c.top(topN)
}
