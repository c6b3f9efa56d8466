package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaliph/chatlens/models"
)

func TestIsEmoji(t *testing.T) {
	assert.True(t, IsEmoji('😀'))
	assert.True(t, IsEmoji('🚀'))
	assert.True(t, IsEmoji('☀'))
	assert.False(t, IsEmoji('a'))
	assert.False(t, IsEmoji('1'))
	assert.False(t, IsEmoji('?'))
}

func TestEmojiFrequency(t *testing.T) {
	records := []models.MessageRecord{
		rec(at(1, 10, 0), "Alice", "😂😂 so funny 😀"),
		rec(at(1, 10, 1), "Bob", "😂 indeed"),
	}

	emojis := EmojiFrequency(records, 0)
	require.Len(t, emojis, 2)
	assert.Equal(t, models.LabelCount{Label: "😂", Count: 3}, emojis[0])
	assert.Equal(t, models.LabelCount{Label: "😀", Count: 1}, emojis[1])
}

func TestEmojiFrequencyTieBreak(t *testing.T) {
	records := []models.MessageRecord{
		rec(at(1, 10, 0), "Alice", "🎉🔥"),
	}

	emojis := EmojiFrequency(records, 0)
	require.Len(t, emojis, 2)
	assert.Equal(t, "🎉", emojis[0].Label)
	assert.Equal(t, "🔥", emojis[1].Label)
}

func TestEmojiFrequencyNoneFound(t *testing.T) {
	records := []models.MessageRecord{
		rec(at(1, 10, 0), "Alice", "plain text only"),
	}
	assert.Empty(t, EmojiFrequency(records, 5))
	assert.Empty(t, EmojiFrequency(nil, 5))
}
