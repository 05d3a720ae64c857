// Package llm implements the external classifier collaborator: provider
// clients for local and remote language models and a Classifier that turns
// their free-text output into detector matches. Every failure in this
// package degrades to an empty result; a broken classifier never breaks a
// scan.
package llm

import (
	"context"
	"time"
)

// Client defines the interface for language model providers.
type Client interface {
	// Complete sends a prompt and returns the raw model output.
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config holds configuration for the classifier and its provider client.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	MaxRetries  int
	RetryDelay  time.Duration
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}
