package openaicompat

const (
	// DefaultBaseURL points at a locally served OpenAI-compatible endpoint
	// (vLLM, TGI, llama.cpp server). The API itself listens on :8000.
	DefaultBaseURL = "http://localhost:8001/v1"

	// DefaultMaxTokens caps generated tokens when the request leaves it unset.
	DefaultMaxTokens = 128
)
