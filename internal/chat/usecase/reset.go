package usecase

import (
	"context"
	"strings"

	"multilingual-chatbot/internal/chat"
)

// Reset clears the orchestrator memory, drops it from the pool and deletes
// the transcript. Resetting an unknown session succeeds.
func (uc *implUseCase) Reset(ctx context.Context, sessionID string) (chat.ResetOutput, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return chat.ResetOutput{}, chat.ErrSessionIDRequired
	}

	// Waits for an in-flight turn of this session; a Chat arriving meanwhile
	// sees the session only after it is gone from both pool and store.
	defer uc.locks.lock(sessionID)()

	if orch, ok := uc.pool.Peek(sessionID); ok {
		orch.Reset()
	}
	uc.pool.Remove(sessionID)

	if err := uc.repo.DeleteSession(ctx, sessionID); err != nil {
		uc.l.Errorf(ctx, "uc.Reset DeleteSession: %v", err)
		return chat.ResetOutput{}, err
	}

	uc.metrics.IncReset()
	return chat.ResetOutput{SessionID: sessionID, Cleared: true}, nil
}
