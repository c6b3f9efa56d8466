package analyzer

import (
	"fmt"
	"sort"
	"time"

	"github.com/jaliph/chatlens/models"
)

// MonthlyTimeline groups messages by year and month, chronologically
// ordered regardless of the input file's line order.
func MonthlyTimeline(records []models.MessageRecord) []models.LabelCount {
	counts := make(map[int]int)
	for _, r := range records {
		counts[r.Year*100+int(r.Month)]++
	}

	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]models.LabelCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.LabelCount{
			Label: fmt.Sprintf("%s %d", time.Month(k%100), k/100),
			Count: counts[k],
		})
	}
	return out
}

// DailyTimeline groups messages by calendar date, chronologically
// ordered. Labels are ISO dates, which sort lexically.
func DailyTimeline(records []models.MessageRecord) []models.LabelCount {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Timestamp.Format("2006-01-02")]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]models.LabelCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.LabelCount{Label: k, Count: counts[k]})
	}
	return out
}
