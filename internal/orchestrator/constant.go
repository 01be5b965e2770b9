package orchestrator

// Log prefixes
const (
	LogPrefixRespond = "internal.orchestrator.Respond"
	LogPrefixPool    = "internal.orchestrator.Pool"
)

// Prompt rendering
const (
	PromptTemplate = "You are a multilingual assistant. Always answer using the target language.\n" +
		"Target language: %s\n" +
		"Conversation history:\n%s\n" +
		"User: %s\n" +
		"Assistant:"

	FallbackTemplate = "[%s] You said: %s. Let me know if you need more help."

	UserPrefix      = "User: "
	AssistantPrefix = "Assistant: "

	// StopSequence keeps the model from writing the next user line itself.
	StopSequence = "\nUser:"
)

// Defaults
const (
	DefaultTargetLanguage = "en"
	DefaultMemoryTurns    = 10
	DefaultMaxNewTokens   = 128
)

// Mode is the reply strategy chosen when an orchestrator is built.
type Mode string

const (
	ModeFallback    Mode = "fallback"
	ModeModelBacked Mode = "model-backed"
)
