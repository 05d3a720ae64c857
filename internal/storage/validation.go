package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/murmurapp/murmur/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidTag   = errors.New("invalid privacy tag")
	ErrInvalidLevel = errors.New("invalid privacy level")
	ErrInvalidCard  = errors.New("invalid card")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTag validates a single privacy tag.
func validateTag(tag *model.PrivacyTag) error {
	if tag == nil {
		return fmt.Errorf("%w: tag", ErrNilParameter)
	}
	if tag.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTag)
	}
	if tag.SessionID == "" {
		return fmt.Errorf("%w: missing session ID", ErrInvalidTag)
	}
	if tag.Start < 0 || tag.End <= tag.Start {
		return fmt.Errorf("%w: bad offsets [%d, %d)", ErrInvalidTag, tag.Start, tag.End)
	}
	switch tag.Status {
	case model.TagUnreviewed, model.TagAccepted, model.TagDismissed:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTag, tag.Status)
	}
	return nil
}

// validateLevel validates a privacy level value.
func validateLevel(level model.PrivacyLevel) error {
	if !model.ValidPrivacyLevel(level) {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
	return nil
}

// validateCard validates a content card.
func validateCard(card *model.Card) error {
	if card == nil {
		return fmt.Errorf("%w: card", ErrNilParameter)
	}
	if card.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidCard)
	}
	if card.SessionID == "" {
		return fmt.Errorf("%w: missing session ID", ErrInvalidCard)
	}
	if strings.TrimSpace(card.Content) == "" {
		return fmt.Errorf("%w: missing content", ErrInvalidCard)
	}
	return nil
}
