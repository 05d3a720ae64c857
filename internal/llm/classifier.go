package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/murmurapp/murmur/internal/common"
	"github.com/murmurapp/murmur/internal/model"
)

// Classifier implements detect.Classifier on top of a provider client.
type Classifier struct {
	client    Client
	logger    *slog.Logger
	retryOpts common.RetryOptions
}

// NewClassifier creates a classifier for the configured provider.
func NewClassifier(cfg Config, logger *slog.Logger) (*Classifier, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return NewClassifierWithClient(client, cfg, logger), nil
}

// NewClassifierWithClient wires a classifier around an existing client.
// Used directly by tests.
func NewClassifierWithClient(client Client, cfg Config, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}

	retryOpts := common.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
	}
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 2
	}

	return &Classifier{
		client:    client,
		logger:    logger,
		retryOpts: retryOpts,
	}
}

// Classify sends text to the model and converts its findings into matches.
// Any failure (network, timeout, malformed output) yields an empty slice
// and a wrapped common.ErrClassifierUnavailable; callers treat that as
// "detection degraded", never as a scan abort.
func (c *Classifier) Classify(ctx context.Context, text string) ([]model.Match, error) {
	prompt := buildScanPrompt(text)

	var raw string
	err := common.WithRetry(ctx, func() error {
		response, err := c.client.Complete(ctx, prompt)
		if err != nil {
			c.logger.Warn("classifier request failed",
				"error", err)
			return &common.RetryableError{Err: err, Retryable: true}
		}
		raw = response
		return nil
	}, c.retryOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrClassifierUnavailable, err)
	}

	return findingsToMatches(text, ParseFindings(raw)), nil
}

// findingsToMatches recovers offsets for each finding by exact substring
// search in the original text. A finding whose text is not present falls
// back to offset 0 and is low-confidence by definition; a finding that
// cannot fit inside the text at all is dropped.
func findingsToMatches(text string, findings []Finding) []model.Match {
	matches := make([]model.Match, 0, len(findings))
	for _, f := range findings {
		start := strings.Index(text, f.Text)
		if start < 0 {
			start = 0
		}
		end := start + len(f.Text)
		if end > len(text) {
			continue
		}
		matches = append(matches, model.Match{
			Category: f.Category,
			Text:     f.Text,
			Start:    start,
			End:      end,
		})
	}
	return matches
}

// buildScanPrompt embeds the target text in a strict output-format
// instruction. The format must stay in sync with ParseFindings.
func buildScanPrompt(text string) string {
	return fmt.Sprintf(`Scan the following personal journal text for sensitive information: names of people, places the author visits, health details, financial details, legal matters, or anything the author would plausibly not want published.

Respond with one finding per line in this exact format:
CATEGORY|MATCHED_TEXT

MATCHED_TEXT must be copied verbatim from the text. If there is nothing sensitive, respond with the single word:
NONE

Text:
%s`, text)
}
