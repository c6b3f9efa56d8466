package analyzer

import (
	"time"

	"github.com/jaliph/chatlens/models"
)

func rec(ts time.Time, sender, body string) models.MessageRecord {
	r := models.MessageRecord{Timestamp: ts, Sender: sender, Body: body}
	r.DeriveCalendar()
	return r
}

func mediaRec(ts time.Time, sender string) models.MessageRecord {
	r := rec(ts, sender, "<Media omitted>")
	r.IsMedia = true
	return r
}

func at(day, hour, minute int) time.Time {
	return time.Date(2023, time.March, day, hour, minute, 0, 0, time.UTC)
}
