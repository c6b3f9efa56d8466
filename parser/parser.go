package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/jaliph/chatlens/models"
)

// DefaultMediaPlaceholder is the body WhatsApp substitutes for an
// attachment omitted from the export.
const DefaultMediaPlaceholder = "<Media omitted>"

// senderSeparator divides the sender name from the message body.
const senderSeparator = ": "

// timestampPattern marks the start of a new record in an export. It is
// a boundary marker, not a consumed delimiter: the matched prefix stays
// attached to the segment it introduces, and everything up to the next
// boundary (embedded newlines included) belongs to that segment.
// Recognizes the plain Android convention ("12/1/23, 10:00 - ") and the
// bracketed iOS one ("[12/1/23, 10:00:05] "), in 24h or am/pm form.
var timestampPattern = regexp.MustCompile(
	`(?m)^\[?\d{1,2}/\d{1,2}/\d{2,4},? \d{1,2}:\d{2}(?::\d{2})?(?:\s?[APap][Mm])?\]?(?: -)? `)

// prefixPattern re-matches a segment's leading timestamp and captures
// the date and clock portions for strict parsing.
var prefixPattern = regexp.MustCompile(
	`^\[?(\d{1,2}/\d{1,2}/\d{2,4}),? (\d{1,2}:\d{2}(?::\d{2})?(?:\s?[APap][Mm])?)\]?(?: -)? `)

// Day-first layouts, matching the export locale.
var dateLayouts = []string{"2/1/06", "2/1/2006"}

var clockLayouts = []string{"15:04", "15:04:05", "3:04 PM", "3:04PM", "3:04:05 PM", "3:04:05PM"}

// Parser converts raw exported chat text into ordered message records.
type Parser struct {
	mediaPlaceholder string
}

// New returns a parser that flags bodies equal to mediaPlaceholder as
// media messages. An empty placeholder falls back to the default.
func New(mediaPlaceholder string) *Parser {
	if mediaPlaceholder == "" {
		mediaPlaceholder = DefaultMediaPlaceholder
	}
	return &Parser{mediaPlaceholder: mediaPlaceholder}
}

// Parse splits raw export text into message records. Text with zero
// recognizable timestamps yields an empty sequence, not an error.
// Segments whose matched prefix fails strict date parsing are appended
// to the previous record's body so multi-line content is never lost.
func (p *Parser) Parse(raw string) []models.MessageRecord {
	raw = strings.TrimPrefix(raw, "\ufeff")
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	bounds := timestampPattern.FindAllStringIndex(raw, -1)
	if len(bounds) == 0 {
		return nil
	}

	records := make([]models.MessageRecord, 0, len(bounds))
	for i, loc := range bounds {
		end := len(raw)
		if i+1 < len(bounds) {
			end = bounds[i+1][0]
		}
		segment := strings.TrimRight(raw[loc[0]:end], "\n")
		if segment == "" {
			continue
		}

		rec, ok := p.buildRecord(segment)
		if !ok {
			// The prefix looked like a timestamp but did not parse as
			// one; treat the segment as a continuation of the previous
			// record rather than dropping it.
			if len(records) > 0 {
				records[len(records)-1].Body += "\n" + strings.TrimSpace(segment)
			}
			continue
		}
		records = append(records, rec)
	}
	return records
}

// Parse is a convenience wrapper using the default media placeholder.
func Parse(raw string) []models.MessageRecord {
	return New(DefaultMediaPlaceholder).Parse(raw)
}

func (p *Parser) buildRecord(segment string) (models.MessageRecord, bool) {
	m := prefixPattern.FindStringSubmatch(segment)
	if m == nil {
		return models.MessageRecord{}, false
	}
	ts, ok := parseTimestamp(m[1], m[2])
	if !ok {
		return models.MessageRecord{}, false
	}

	rec := models.MessageRecord{Timestamp: ts}
	remainder := segment[len(m[0]):]

	sender, body, found := strings.Cut(remainder, senderSeparator)
	if !found || strings.TrimSpace(sender) == "" {
		rec.Sender = models.SystemSender
		rec.Body = strings.TrimSpace(remainder)
	} else {
		rec.Sender = strings.TrimSpace(sender)
		rec.Body = strings.TrimSpace(body)
	}
	rec.IsMedia = rec.Body == p.mediaPlaceholder
	rec.DeriveCalendar()
	return rec, true
}

func parseTimestamp(date, clock string) (time.Time, bool) {
	clock = strings.ToUpper(strings.TrimSpace(clock))
	for _, dl := range dateLayouts {
		for _, cl := range clockLayouts {
			if t, err := time.Parse(dl+" "+cl, date+" "+clock); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
