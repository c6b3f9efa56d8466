package models

import (
	"fmt"
	"time"
)

// SystemSender is the sentinel sender for lines without an author, such
// as join/leave and encryption notices.
const SystemSender = "SYSTEM"

// AllUsers is the filter value that selects every sender.
const AllUsers = "ALL"

// MessageRecord is one parsed line of a WhatsApp chat export, plus the
// calendar columns derived once at parse time.
type MessageRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Sender    string    `json:"sender"`
	Body      string    `json:"body"`
	IsMedia   bool      `json:"is_media"`

	Year        int        `json:"year"`
	Month       time.Month `json:"month"`
	MonthName   string     `json:"month_name"`
	Day         int        `json:"day"`
	WeekdayName string     `json:"weekday_name"`
	Hour        int        `json:"hour"`
	Minute      int        `json:"minute"`
	Period      string     `json:"period"` // hour bucket, e.g. "13-14"
}

// IsSystem reports whether the record has no identifiable sender.
func (r MessageRecord) IsSystem() bool {
	return r.Sender == SystemSender
}

// Weekday returns the parsed weekday of the record.
func (r MessageRecord) Weekday() time.Weekday {
	return r.Timestamp.Weekday()
}

// DeriveCalendar fills the calendar columns from Timestamp.
func (r *MessageRecord) DeriveCalendar() {
	t := r.Timestamp
	r.Year = t.Year()
	r.Month = t.Month()
	r.MonthName = t.Month().String()
	r.Day = t.Day()
	r.WeekdayName = t.Weekday().String()
	r.Hour = t.Hour()
	r.Minute = t.Minute()
	r.Period = PeriodLabel(t.Hour())
}

// PeriodLabel formats an hour of day as a heatmap bucket label.
func PeriodLabel(hour int) string {
	return fmt.Sprintf("%02d-%02d", hour, (hour+1)%24)
}

// Corpus is the full ordered set of records parsed from one uploaded
// export. It is never mutated after creation; every per-user view is a
// fresh projection.
type Corpus struct {
	Records []MessageRecord `json:"records"`
}

// NewCorpus wraps parsed records. A nil or empty slice is a valid,
// statistics-free corpus.
func NewCorpus(records []MessageRecord) *Corpus {
	return &Corpus{Records: records}
}

// Len returns the total message count, system records included.
func (c *Corpus) Len() int {
	return len(c.Records)
}

// Senders returns the distinct senders in first-appearance order,
// SystemSender included when present.
func (c *Corpus) Senders() []string {
	seen := make(map[string]bool, 8)
	var out []string
	for _, r := range c.Records {
		if seen[r.Sender] {
			continue
		}
		seen[r.Sender] = true
		out = append(out, r.Sender)
	}
	return out
}

// FilterBySender returns the records authored by one sender, or every
// record when user is AllUsers. A sender absent from the corpus yields
// an empty projection, not an error.
func (c *Corpus) FilterBySender(user string) []MessageRecord {
	if user == AllUsers || user == "" {
		return c.Records
	}
	var out []MessageRecord
	for _, r := range c.Records {
		if r.Sender == user {
			out = append(out, r)
		}
	}
	return out
}
