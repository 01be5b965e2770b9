package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"multilingual-chatbot/pkg/llmprovider"
)

// Respond produces the reply for in, hands it to record and, once recorded,
// appends the turn to memory. Nothing changes when generation or record fails.
func (o *Orchestrator) Respond(ctx context.Context, in Input, record RecordFunc) (string, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return "", ErrEmptyMessage
	}
	target := strings.TrimSpace(in.TargetLanguage)
	if target == "" {
		target = DefaultTargetLanguage
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	var (
		reply string
		err   error
	)
	switch o.mode {
	case ModeModelBacked:
		reply, err = o.generate(ctx, message, target)
	default:
		reply = fallbackReply(message, target)
	}
	if err != nil {
		o.l.Warnf(ctx, "%s: %v", LogPrefixRespond, err)
		return "", err
	}

	if record != nil {
		if err := record(ctx, reply); err != nil {
			return "", fmt.Errorf("%w: %w", ErrRecordFailed, err)
		}
	}

	o.memory.add(Turn{UserInput: message, BotResponse: reply})
	return reply, nil
}

// Reset clears memory, waiting for an in-flight turn to finish.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.memory.clear()
}

// Mode reports the reply strategy.
func (o *Orchestrator) Mode() Mode {
	return o.mode
}

// Memory returns a copy of the remembered turns, oldest first.
func (o *Orchestrator) Memory() []Turn {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.memory.snapshot()
}

func (o *Orchestrator) generate(ctx context.Context, message, target string) (string, error) {
	resp, err := o.model.Generator.GenerateContent(ctx, &llmprovider.Request{
		Prompt:      o.renderPrompt(message, target),
		MaxTokens:   o.model.MaxTokens,
		Temperature: o.model.Temperature,
		TopP:        o.model.TopP,
		Stop:        o.model.Stop,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	reply := strings.TrimSpace(resp.Text)
	if reply == "" {
		return "", ErrEmptyGeneration
	}
	return reply, nil
}

func (o *Orchestrator) renderPrompt(message, target string) string {
	return fmt.Sprintf(PromptTemplate, target, o.memory.render(), message)
}
