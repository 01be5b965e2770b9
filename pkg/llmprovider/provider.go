package llmprovider

import "context"

// Provider defines the interface for text generation backends
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "openai")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized text generation request.
// Prompt is the fully rendered prompt; providers send it verbatim.
type Request struct {
	Prompt      string
	Temperature float64
	TopP        float64
	MaxTokens   int
	Stop        []string
}

// Response represents a normalized generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
