package orchestrator

import "errors"

var (
	// ErrEmptyMessage is returned for blank user messages.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrEmptyGeneration is returned when the model produced only whitespace.
	ErrEmptyGeneration = errors.New("empty generation output")

	// ErrGenerationFailed wraps generation pipeline failures.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrRecordFailed wraps errors returned by the RecordFunc.
	ErrRecordFailed = errors.New("failed to record turn")
)
