package orchestrator

import (
	"context"

	"multilingual-chatbot/pkg/llmprovider"
)

// Input is one user utterance.
type Input struct {
	Message        string
	TargetLanguage string
}

// Turn is a completed exchange held in memory.
type Turn struct {
	UserInput   string
	BotResponse string
}

// RecordFunc persists a finished reply. It runs while the session is locked;
// when it fails the turn is not added to memory.
type RecordFunc func(ctx context.Context, reply string) error

// Generator is the generation pipeline used in model-backed mode.
// *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// ModelConfig enables model-backed mode. A nil *ModelConfig means fallback.
type ModelConfig struct {
	Generator   Generator
	MaxTokens   int
	Temperature float64
	TopP        float64
	Stop        []string
}
