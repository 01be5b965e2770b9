package usecase

import (
	"context"
	"errors"
	"strings"

	"multilingual-chatbot/internal/chat"
	repo "multilingual-chatbot/internal/chat/repository"
)

// History returns the transcript of a session. Unknown sessions yield an
// empty list, not an error.
func (uc *implUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return chat.HistoryOutput{}, chat.ErrSessionIDRequired
	}

	turns, err := uc.repo.History(ctx, sessionID)
	if errors.Is(err, repo.ErrSessionNotFound) {
		return chat.HistoryOutput{SessionID: sessionID, Turns: []chat.Turn{}}, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.History: %v", err)
		return chat.HistoryOutput{}, err
	}

	return chat.HistoryOutput{SessionID: sessionID, Turns: turns}, nil
}
