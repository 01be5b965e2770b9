package repository

import (
	"context"

	"multilingual-chatbot/internal/chat"
)

// Repository is the session store of the chat domain.
type Repository interface {
	SessionRepository
}

// SessionRepository maps session ids to ordered transcripts.
// Implementations refresh the session TTL on every read and write.
type SessionRepository interface {
	// GetOrCreateSession returns the session for id. An empty id gets a fresh
	// UUID; an unknown id is created empty. The bool reports creation.
	GetOrCreateSession(ctx context.Context, id string) (chat.Session, bool, error)
	// AppendTurn adds turn to the end of the transcript.
	AppendTurn(ctx context.Context, id string, turn chat.Turn) error
	// History returns the transcript in append order.
	History(ctx context.Context, id string) ([]chat.Turn, error)
	// DeleteSession removes the session. Deleting an unknown id succeeds.
	DeleteSession(ctx context.Context, id string) error
}
