package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"multilingual-chatbot/internal/chat"
	"multilingual-chatbot/internal/orchestrator"
	"multilingual-chatbot/pkg/metrics"
)

// Chat resolves the session, asks its orchestrator for a reply and records
// the turn. The turn is stored only after the reply exists. Chat and Reset
// on the same session id never interleave.
func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	start := uc.now()
	mode := string(uc.pool.Mode())

	message := strings.TrimSpace(input.Message)
	if message == "" {
		uc.metrics.ObserveTurn(mode, metrics.OutcomeInvalid, 0)
		return chat.ChatOutput{}, chat.ErrInvalidRequest
	}
	source, target := normalizeLanguages(input.SourceLanguage, input.TargetLanguage)

	// A minted id is unknown to other callers until this returns.
	sessionID := strings.TrimSpace(input.SessionID)
	if sessionID != "" {
		defer uc.locks.lock(sessionID)()
	}

	sess, created, err := uc.repo.GetOrCreateSession(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Chat GetOrCreateSession: %v", err)
		uc.metrics.ObserveTurn(mode, metrics.OutcomeStoreError, 0)
		return chat.ChatOutput{}, err
	}
	if created {
		uc.metrics.IncSessionCreated()
		// The store may have evicted this id while the pool kept its
		// orchestrator; an empty transcript must start from empty memory.
		uc.pool.Remove(sess.ID)
	}

	orch, err := uc.pool.Get(ctx, sess.ID, func(ctx context.Context) ([]orchestrator.Turn, error) {
		return toMemory(sess.Turns), nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Chat pool.Get: %v", err)
		uc.metrics.ObserveTurn(mode, metrics.OutcomeStoreError, 0)
		return chat.ChatOutput{}, err
	}

	record := func(ctx context.Context, reply string) error {
		return uc.repo.AppendTurn(ctx, sess.ID, chat.Turn{
			UserInput:      message,
			BotResponse:    reply,
			SourceLanguage: source,
			TargetLanguage: target,
			Timestamp:      uc.now().UTC(),
		})
	}

	reply, err := orch.Respond(ctx, orchestrator.Input{Message: message, TargetLanguage: target}, record)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Chat Respond session=%s: %v", sess.ID, err)
		switch {
		case errors.Is(err, orchestrator.ErrEmptyMessage):
			uc.metrics.ObserveTurn(mode, metrics.OutcomeInvalid, 0)
			return chat.ChatOutput{}, chat.ErrInvalidRequest
		case errors.Is(err, orchestrator.ErrRecordFailed):
			uc.metrics.ObserveTurn(mode, metrics.OutcomeStoreError, 0)
			return chat.ChatOutput{}, err
		default:
			uc.metrics.ObserveTurn(mode, metrics.OutcomeGenerationError, 0)
			return chat.ChatOutput{}, fmt.Errorf("%w: %w", chat.ErrGenerationFailed, err)
		}
	}

	uc.metrics.ObserveTurn(mode, metrics.OutcomeOK, uc.now().Sub(start))
	return chat.ChatOutput{
		SessionID:      sess.ID,
		Response:       reply,
		SourceLanguage: source,
		TargetLanguage: target,
	}, nil
}
