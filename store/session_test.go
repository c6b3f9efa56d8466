package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaliph/chatlens/models"
)

func TestSessionEmpty(t *testing.T) {
	s := NewSession()

	_, ok := s.Corpus()
	assert.False(t, ok)
	_, _, _, ok = s.Info()
	assert.False(t, ok)
}

func TestSessionReplace(t *testing.T) {
	s := NewSession()

	first := models.NewCorpus([]models.MessageRecord{{Sender: "Alice"}})
	id1, _ := s.Replace("one.txt", first)
	require.NotEmpty(t, id1)

	got, ok := s.Corpus()
	require.True(t, ok)
	assert.Same(t, first, got)

	// A second upload replaces the corpus wholesale.
	second := models.NewCorpus(nil)
	id2, _ := s.Replace("two.txt", second)
	assert.NotEqual(t, id1, id2)

	got, ok = s.Corpus()
	require.True(t, ok)
	assert.Same(t, second, got)

	uploadID, fileName, _, ok := s.Info()
	require.True(t, ok)
	assert.Equal(t, id2, uploadID)
	assert.Equal(t, "two.txt", fileName)
}
