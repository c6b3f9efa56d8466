package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jaliph/chatlens/lexicon"
	"github.com/jaliph/chatlens/models"
)

// Tokenize lowercases a body, splits it on whitespace and trims
// surrounding punctuation from each token. Tokens shorter than two
// characters are dropped.
func Tokenize(body string) []string {
	fields := strings.Fields(strings.ToLower(body))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if utf8.RuneCountInString(w) < 2 {
			continue
		}
		out = append(out, w)
	}
	return out
}

// WordFrequency returns the most frequent tokens across non-media,
// non-system bodies, stop words excluded. Descending by count, ties by
// first occurrence.
func WordFrequency(records []models.MessageRecord, lex *lexicon.Lexicon, topN int) []models.LabelCount {
	c := newCounter()
	for _, r := range records {
		if r.IsMedia || r.IsSystem() {
			continue
		}
		for _, w := range Tokenize(r.Body) {
			if lex.IsStopWord(w) {
				continue
			}
			c.add(w, 1)
		}
	}
	return c.top(topN)
}
