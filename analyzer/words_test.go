package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaliph/chatlens/lexicon"
	"github.com/jaliph/chatlens/models"
)

func mustLexicon(t *testing.T) *lexicon.Lexicon {
	t.Helper()
	lex, err := lexicon.Load()
	require.NoError(t, err)
	return lex
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"hello", "world"}, Tokenize("Hello, World!"))
	assert.Equal(t, []string{"don't", "stop"}, Tokenize("don't  stop"))
	assert.Equal(t, []string{"42", "ok"}, Tokenize("(42) [ok]"))
	// single-character tokens are dropped
	assert.Empty(t, Tokenize("a I x"))
	assert.Empty(t, Tokenize(""))
}

func TestWordFrequency(t *testing.T) {
	lex := mustLexicon(t)
	records := []models.MessageRecord{
		rec(at(1, 10, 0), "Alice", "pizza pizza tonight"),
		rec(at(1, 10, 1), "Bob", "the pizza was great"),
		mediaRec(at(1, 10, 2), "Alice"),
		rec(at(1, 10, 3), models.SystemSender, "pizza pizza pizza notice"),
	}

	words := WordFrequency(records, lex, 0)
	require.NotEmpty(t, words)

	// Media and system bodies are excluded, stop words dropped.
	assert.Equal(t, models.LabelCount{Label: "pizza", Count: 3}, words[0])
	for _, w := range words {
		assert.NotEqual(t, "the", w.Label)
		assert.NotEqual(t, "was", w.Label)
		assert.NotEqual(t, "notice", w.Label)
	}
}

func TestWordFrequencyTieBreak(t *testing.T) {
	lex := mustLexicon(t)
	records := []models.MessageRecord{
		rec(at(1, 10, 0), "Alice", "zebra apple zebra apple"),
	}

	words := WordFrequency(records, lex, 0)
	require.Len(t, words, 2)
	// Equal counts keep first-occurrence order.
	assert.Equal(t, "zebra", words[0].Label)
	assert.Equal(t, "apple", words[1].Label)
}

func TestWordFrequencyTopNBeyondAvailable(t *testing.T) {
	lex := mustLexicon(t)
	records := []models.MessageRecord{
		rec(at(1, 10, 0), "Alice", "pizza pasta"),
	}

	assert.Len(t, WordFrequency(records, lex, 100), 2)
	assert.Empty(t, WordFrequency(nil, lex, 100))
}
