package analyzer

import (
	"time"

	"github.com/jaliph/chatlens/models"
)

// weekOrder starts the charts on Monday.
var weekOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// WeekdayActivity counts messages per day of week, calendar-ordered for
// chart readability (not count-ordered). Days with zero messages are
// kept; the empty projection yields an empty table.
func WeekdayActivity(records []models.MessageRecord) []models.LabelCount {
	if len(records) == 0 {
		return nil
	}
	counts := make(map[time.Weekday]int)
	for _, r := range records {
		counts[r.Weekday()]++
	}
	out := make([]models.LabelCount, 0, len(weekOrder))
	for _, d := range weekOrder {
		out = append(out, models.LabelCount{Label: d.String(), Count: counts[d]})
	}
	return out
}

// MonthActivity counts messages per month name across all years,
// calendar-ordered January through December.
func MonthActivity(records []models.MessageRecord) []models.LabelCount {
	if len(records) == 0 {
		return nil
	}
	counts := make(map[time.Month]int)
	for _, r := range records {
		counts[r.Month]++
	}
	out := make([]models.LabelCount, 0, 12)
	for m := time.January; m <= time.December; m++ {
		out = append(out, models.LabelCount{Label: m.String(), Count: counts[m]})
	}
	return out
}

// BuildHeatmap fills the 7x24 hour-by-weekday matrix from non-system
// messages. Every cell exists even when zero; the counts sum to the
// non-system message total.
func BuildHeatmap(records []models.MessageRecord) models.Heatmap {
	hm := models.Heatmap{
		Days:    make([]string, len(weekOrder)),
		Periods: make([]string, 24),
		Counts:  make([][]int, len(weekOrder)),
	}
	for i, d := range weekOrder {
		hm.Days[i] = d.String()
		hm.Counts[i] = make([]int, 24)
	}
	for h := 0; h < 24; h++ {
		hm.Periods[h] = models.PeriodLabel(h)
	}

	for _, r := range records {
		if r.IsSystem() {
			continue
		}
		hm.Counts[dayIndex(r.Weekday())][r.Hour]++
	}
	return hm
}

// dayIndex maps a time.Weekday (Sunday=0) onto the Monday-first rows.
func dayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
