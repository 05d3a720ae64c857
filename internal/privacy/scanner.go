package privacy

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/murmurapp/murmur/internal/model"
)

// ScanSession runs the detector over a session's text and persists one
// unreviewed tag per match. Scanning is idempotent per session: once a
// session has tags, subsequent calls return the stored tags unchanged and
// never re-run detection, so user review decisions are never clobbered.
func (s *Store) ScanSession(ctx context.Context, sessionID, text string) ([]model.PrivacyTag, error) {
	count, err := s.storage.CountTagsBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing tags: %w", err)
	}
	if count > 0 {
		s.logger.Debug("session already scanned, returning stored tags",
			"session_id", sessionID,
			"tag_count", count)
		return s.storage.GetTagsBySession(ctx, sessionID)
	}

	if s.detector == nil {
		return nil, fmt.Errorf("no detector configured")
	}

	matches := s.detector.ScanWithClassifier(ctx, text)
	if len(matches) == 0 {
		return nil, nil
	}

	now := time.Now()
	tags := make([]model.PrivacyTag, len(matches))
	for i, m := range matches {
		tags[i] = model.PrivacyTag{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			Start:     m.Start,
			End:       m.End,
			Status:    model.TagUnreviewed,
			TagType:   m.Category,
			CreatedAt: now,
		}
	}

	if err := s.storage.SaveTags(ctx, tags); err != nil {
		return nil, fmt.Errorf("failed to persist tags: %w", err)
	}

	s.logger.Info("session scanned",
		"session_id", sessionID,
		"tag_count", len(tags))

	return tags, nil
}

// ReviewTag records the user's decision for one tag. Only the terminal
// review statuses are accepted here; a tag never goes back to unreviewed.
func (s *Store) ReviewTag(ctx context.Context, tagID string, status model.TagStatus) error {
	if status != model.TagAccepted && status != model.TagDismissed {
		return fmt.Errorf("invalid review status %q: must be %s or %s",
			status, model.TagAccepted, model.TagDismissed)
	}
	return s.storage.UpdateTagStatus(ctx, tagID, status)
}
