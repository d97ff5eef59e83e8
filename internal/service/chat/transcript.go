package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/medatlas/directory-api/internal/model"
)

// TranscriptStore keeps session transcripts in memory with a TTL.
// Transcripts are append-only and vanish when the session expires;
// nothing is ever persisted.
type TranscriptStore struct {
	mu    sync.Mutex
	cache *gocache.Cache
}

func NewTranscriptStore(ttl time.Duration) *TranscriptStore {
	return &TranscriptStore{
		cache: gocache.New(ttl, 2*ttl),
	}
}

// NewSession allocates a fresh session id with an empty transcript.
func (s *TranscriptStore) NewSession() string {
	id := uuid.New().String()
	s.cache.Set(id, []model.ChatMessage{}, gocache.DefaultExpiration)
	return id
}

// Append adds messages to a session transcript, creating the session if
// it expired, and refreshes the TTL.
func (s *TranscriptStore) Append(sessionID string, msgs ...model.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var transcript []model.ChatMessage
	if cur, ok := s.cache.Get(sessionID); ok {
		transcript = cur.([]model.ChatMessage)
	}
	transcript = append(transcript, msgs...)
	s.cache.Set(sessionID, transcript, gocache.DefaultExpiration)
}

// Get returns a copy of the session transcript.
func (s *TranscriptStore) Get(sessionID string) ([]model.ChatMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.cache.Get(sessionID)
	if !ok {
		return nil, false
	}
	transcript := cur.([]model.ChatMessage)
	out := make([]model.ChatMessage, len(transcript))
	copy(out, transcript)
	return out, true
}
