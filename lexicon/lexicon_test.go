package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	lex, err := Load()
	require.NoError(t, err)

	assert.True(t, lex.IsStopWord("the"))
	assert.True(t, lex.IsStopWord("hai"))
	assert.False(t, lex.IsStopWord("pizza"))

	assert.True(t, lex.IsOffensive("idiot"))
	assert.False(t, lex.IsOffensive("friend"))

	assert.Equal(t, 1, lex.Polarity("good"))
	assert.Equal(t, -1, lex.Polarity("bad"))
	assert.Equal(t, 0, lex.Polarity("table"))
}
