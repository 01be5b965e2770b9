package llmprovider

import (
	"fmt"
	"time"

	"multilingual-chatbot/config"
	"multilingual-chatbot/pkg/openaicompat"
)

// Supported provider names.
const (
	ProviderOpenAI = "openai"
	ProviderVLLM   = "vllm"
	ProviderTGI    = "tgi"
)

// InitializeProviders creates the Provider instances for the configured model:
// the primary endpoint first, then each fallback in order. A config without a
// model path yields ErrNoProvidersConfigured; callers treat that as fallback
// mode, not as a failure.
func InitializeProviders(cfg *config.ModelConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("model config is nil")
	}
	if !cfg.Enabled() {
		return nil, ErrNoProvidersConfigured
	}

	primary := config.EndpointConfig{
		Provider: cfg.Provider,
		Path:     cfg.Path,
		BaseURL:  cfg.BaseURL,
		APIKey:   cfg.APIKey,
	}
	endpoints := []config.EndpointConfig{primary}
	for _, fb := range cfg.Fallbacks {
		endpoints = append(endpoints, inherit(fb, primary))
	}

	providers := make([]Provider, 0, len(endpoints))
	for i, ep := range endpoints {
		provider, err := createProvider(ep, cfg.Timeout)
		if err != nil {
			if i > 0 {
				return nil, fmt.Errorf("model.fallbacks[%d]: %w", i-1, err)
			}
			return nil, err
		}
		providers = append(providers, provider)
	}
	return providers, nil
}

// NewManagerConfig derives the Manager settings from the model config.
func NewManagerConfig(cfg *config.ModelConfig) *Config {
	return &Config{
		FallbackEnabled: len(cfg.Fallbacks) > 0,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      cfg.RetryDelay,
		MaxTotalTimeout: cfg.Timeout,
	}
}

// inherit fills the blank fields of a fallback endpoint from the primary one.
// The base URL is never inherited.
func inherit(fb, primary config.EndpointConfig) config.EndpointConfig {
	if fb.Provider == "" {
		fb.Provider = primary.Provider
	}
	if fb.Path == "" {
		fb.Path = primary.Path
	}
	if fb.APIKey == "" {
		fb.APIKey = primary.APIKey
	}
	return fb
}

// createProvider creates a concrete provider instance for one endpoint
func createProvider(ep config.EndpointConfig, timeout time.Duration) (Provider, error) {
	switch ep.Provider {
	case "", ProviderOpenAI, ProviderVLLM, ProviderTGI:
		client, err := openaicompat.New(openaicompat.Config{
			APIKey:  ep.APIKey,
			BaseURL: ep.BaseURL,
			Model:   ep.Path,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", ep.Provider, err)
		}
		return NewOpenAICompatAdapter(client, ep.Provider), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", ep.Provider)
	}
}
