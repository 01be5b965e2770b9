package chat

import "errors"

var (
	ErrInvalidRequest    = errors.New("invalid request parameters")
	ErrGenerationFailed  = errors.New("failed to generate response")
	ErrSessionIDRequired = errors.New("session id is required")
)
