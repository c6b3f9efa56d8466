package analyzer

import (
	"github.com/jaliph/chatlens/lexicon"
	"github.com/jaliph/chatlens/models"
)

// Sentiment classifies every message by the sign of its bag-of-words
// polarity sum. A zero sum or an empty token set is neutral, so the
// three class counts always sum to the message total.
func Sentiment(records []models.MessageRecord, lex *lexicon.Lexicon) models.SentimentSummary {
	var s models.SentimentSummary
	for _, r := range records {
		sum := 0
		for _, w := range Tokenize(r.Body) {
			sum += lex.Polarity(w)
		}
		switch {
		case sum > 0:
			s.Positive++
		case sum < 0:
			s.Negative++
		default:
			s.Neutral++
		}
	}
	return s
}

// Offensive flags messages containing any token from the flagged-word
// list and reports per-word counts alongside the flagged messages
// themselves.
func Offensive(records []models.MessageRecord, lex *lexicon.Lexicon, topN int) models.OffensiveReport {
	var rep models.OffensiveReport
	c := newCounter()
	for _, r := range records {
		flagged := false
		for _, w := range Tokenize(r.Body) {
			if lex.IsOffensive(w) {
				c.add(w, 1)
				flagged = true
			}
		}
		if flagged {
			rep.Messages = append(rep.Messages, models.FlaggedMessage{
				Timestamp: r.Timestamp,
				Sender:    r.Sender,
				Body:      r.Body,
			})
		}
	}
	rep.Words = c.top(topN)
	return rep
}
