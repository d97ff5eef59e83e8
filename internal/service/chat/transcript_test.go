package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medatlas/directory-api/internal/model"
)

func TestTranscriptStoreAppendAndGet(t *testing.T) {
	store := NewTranscriptStore(time.Minute)

	id := store.NewSession()
	require.NotEmpty(t, id)

	msgs, ok := store.Get(id)
	require.True(t, ok)
	assert.Empty(t, msgs)

	user := model.NewChatMessage(model.SenderUser, "hello")
	bot := model.NewChatMessage(model.SenderBot, "hi there")
	store.Append(id, user, bot)

	msgs, ok = store.Get(id)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	assert.Equal(t, model.SenderUser, msgs[0].Sender)
	assert.Equal(t, "hello", msgs[0].Content)
	assert.Equal(t, model.SenderBot, msgs[1].Sender)
}

func TestTranscriptStoreUnknownSession(t *testing.T) {
	store := NewTranscriptStore(time.Minute)

	_, ok := store.Get("no-such-session")
	assert.False(t, ok)
}

func TestTranscriptStoreGetReturnsCopy(t *testing.T) {
	store := NewTranscriptStore(time.Minute)
	id := store.NewSession()
	store.Append(id, model.NewChatMessage(model.SenderUser, "original"))

	msgs, ok := store.Get(id)
	require.True(t, ok)
	msgs[0].Content = "mutated"

	again, ok := store.Get(id)
	require.True(t, ok)
	assert.Equal(t, "original", again[0].Content)
}

func TestTranscriptStoreSessionsAreDistinct(t *testing.T) {
	store := NewTranscriptStore(time.Minute)

	a := store.NewSession()
	b := store.NewSession()
	assert.NotEqual(t, a, b)

	store.Append(a, model.NewChatMessage(model.SenderUser, "only in a"))

	msgs, ok := store.Get(b)
	require.True(t, ok)
	assert.Empty(t, msgs)
}

func TestTranscriptStoreAppendCreatesExpiredSession(t *testing.T) {
	store := NewTranscriptStore(time.Minute)

	// Appending to an id the cache no longer holds starts a fresh
	// transcript instead of failing.
	store.Append("resurrected", model.NewChatMessage(model.SenderUser, "back again"))

	msgs, ok := store.Get("resurrected")
	require.True(t, ok)
	require.Len(t, msgs, 1)
	assert.Equal(t, "back again", msgs[0].Content)
}
