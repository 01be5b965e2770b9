package chat

import "time"

// --- Domain Model ---

// Session is one isolated conversation. Turns are kept in append order.
type Session struct {
	ID        string
	Turns     []Turn
	CreatedAt time.Time
}

// Turn is one user message and the reply produced for it.
type Turn struct {
	UserInput      string
	BotResponse    string
	SourceLanguage string
	TargetLanguage string
	Timestamp      time.Time
}

// --- UseCase Inputs ---

type ChatInput struct {
	SessionID      string // empty starts a new session
	Message        string
	SourceLanguage string
	TargetLanguage string
}

// --- UseCase Outputs ---

type ChatOutput struct {
	SessionID      string
	Response       string
	SourceLanguage string
	TargetLanguage string
}

type HistoryOutput struct {
	SessionID string
	Turns     []Turn
}

type ResetOutput struct {
	SessionID string
	Cleared   bool
}
