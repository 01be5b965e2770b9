package repository

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrFailedToGet     = errors.New("failed to get session")
	ErrFailedToAppend  = errors.New("failed to append turn")
	ErrFailedToDelete  = errors.New("failed to delete session")
)
