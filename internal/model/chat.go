package model

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who produced a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is one entry in a session transcript. Transcripts are
// append-only and discarded when the session expires.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChatMessage builds a message stamped with the current time.
func NewChatMessage(sender Sender, content string) ChatMessage {
	return ChatMessage{
		ID:        uuid.New(),
		Content:   content,
		Sender:    sender,
		Timestamp: time.Now().UTC(),
	}
}

// ChatRequest is the inbound payload for the chat endpoint. SessionID is
// optional; a new session is created when it is absent.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required,min=1,max=2000"`
}

// ChatReply is what the chat endpoint returns for a single exchange.
type ChatReply struct {
	SessionID string      `json:"session_id"`
	Message   ChatMessage `json:"message"`
}
