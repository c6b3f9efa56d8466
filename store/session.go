package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jaliph/chatlens/models"
)

// Session holds the corpus parsed from the most recent upload. There is
// no durable storage: a new upload replaces the previous corpus wholesale
// and everything dies with the process.
type Session struct {
	mu         sync.RWMutex
	corpus     *models.Corpus
	uploadID   string
	fileName   string
	uploadedAt time.Time
}

// NewSession returns an empty session with no corpus loaded.
func NewSession() *Session {
	return &Session{}
}

// Replace installs a freshly parsed corpus and returns its upload ID.
func (s *Session) Replace(fileName string, corpus *models.Corpus) (uploadID string, uploadedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.corpus = corpus
	s.uploadID = uuid.NewString()
	s.fileName = fileName
	s.uploadedAt = time.Now()
	return s.uploadID, s.uploadedAt
}

// Corpus returns the current corpus, or false when nothing has been
// uploaded yet.
func (s *Session) Corpus() (*models.Corpus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.corpus, s.corpus != nil
}

// Info returns the metadata of the current upload.
func (s *Session) Info() (uploadID, fileName string, uploadedAt time.Time, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uploadID, s.fileName, s.uploadedAt, s.corpus != nil
}
