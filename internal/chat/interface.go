package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat runs one conversation turn and records it.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
	// History lists the turns of a session; unknown sessions have none.
	History(ctx context.Context, sessionID string) (HistoryOutput, error)
	// Reset drops a session and its memory. Unknown sessions are a no-op.
	Reset(ctx context.Context, sessionID string) (ResetOutput, error)
}
