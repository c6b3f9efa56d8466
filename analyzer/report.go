package analyzer

import (
	"github.com/jaliph/chatlens/lexicon"
	"github.com/jaliph/chatlens/models"
)

// BuildReport computes every metric for one analysis request. user is a
// sender name or models.AllUsers; topN bounds the ranked tables (<= 0
// means all items). Whole-corpus tables (active users, conversation
// starters) are only attached to the unfiltered report.
func BuildReport(corpus *models.Corpus, user string, topN int, lex *lexicon.Lexicon) models.Report {
	if user == "" {
		user = models.AllUsers
	}
	recs := corpus.FilterBySender(user)

	rep := models.Report{User: user}
	rep.Volume = VolumeStats(recs)
	if user == models.AllUsers {
		rep.ActiveUsers = ActiveUsers(corpus.Records, topN)
		rep.ConversationStarters = ConversationStarters(corpus.Records, topN)
	}
	rep.WordFrequency = WordFrequency(recs, lex, topN)
	rep.EmojiFrequency = EmojiFrequency(recs, topN)
	rep.MonthlyTimeline = MonthlyTimeline(recs)
	rep.DailyTimeline = DailyTimeline(recs)
	rep.WeekdayActivity = WeekdayActivity(recs)
	rep.MonthActivity = MonthActivity(recs)
	rep.Heatmap = BuildHeatmap(recs)
	rep.Sentiment = Sentiment(recs, lex)
	rep.Offensive = Offensive(recs, lex, topN)
	rep.LongestMessage = LongestMessage(recs)
	if first, last, ok := Span(recs); ok {
		rep.FirstMessageAt = &first
		rep.LastMessageAt = &last
	}
	return rep
}
