package llmprovider

import (
	"errors"
	"fmt"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrInvalidRequest        = errors.New("invalid request")

	// ErrProviderTimeout is returned once the Manager's total deadline passes.
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderRateLimited ends the retries on that provider; the Manager
	// moves on to the next one.
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// ProviderError tags an error with the provider that produced it.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
