// Package privacy tracks per-entity privacy decisions and gates every
// action that would let content leave the device: external-API calls and
// publishing.
package privacy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/murmurapp/murmur/internal/model"
	"github.com/murmurapp/murmur/internal/vault"
)

// Storage is the durable state the privacy store depends on.
type Storage interface {
	SetPrivacyLevel(ctx context.Context, entityID string, level model.PrivacyLevel) error
	GetPrivacyLevel(ctx context.Context, entityID string) (model.PrivacyLevel, error)
	ListPrivateEntities(ctx context.Context) ([]string, error)

	SaveTags(ctx context.Context, tags []model.PrivacyTag) error
	GetTagsBySession(ctx context.Context, sessionID string) ([]model.PrivacyTag, error)
	CountTagsBySession(ctx context.Context, sessionID string) (int, error)
	CountUnreviewedTags(ctx context.Context, sessionID string) (int, error)
	UpdateTagStatus(ctx context.Context, tagID string, status model.TagStatus) error
}

// Detector produces sensitive-span matches for a scan pass.
type Detector interface {
	ScanWithClassifier(ctx context.Context, text string) []model.Match
}

// Store is the privacy state store. Reads are side-effect-free; writes to
// one entity never lock out reads or writes for another.
type Store struct {
	storage  Storage
	vault    *vault.Vault
	detector Detector
	logger   *slog.Logger
}

// NewStore creates a privacy store. The detector may be nil for callers
// that never run scan passes.
func NewStore(storage Storage, v *vault.Vault, detector Detector, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		storage:  storage,
		vault:    v,
		detector: detector,
		logger:   logger,
	}
}

// SetLevel records an explicit privacy decision for an entity.
func (s *Store) SetLevel(ctx context.Context, entityID string, level model.PrivacyLevel) error {
	if err := s.storage.SetPrivacyLevel(ctx, entityID, level); err != nil {
		return err
	}
	s.logger.Info("privacy level set",
		"entity_id", entityID,
		"level", level)
	return nil
}

// GetLevel returns the entity's level; entities never explicitly set are
// public.
func (s *Store) GetLevel(ctx context.Context, entityID string) (model.PrivacyLevel, error) {
	return s.storage.GetPrivacyLevel(ctx, entityID)
}

// CanUseExternalAPI reports whether the entity's content may be sent to an
// external service.
func (s *Store) CanUseExternalAPI(ctx context.Context, entityID string) (bool, error) {
	level, err := s.GetLevel(ctx, entityID)
	if err != nil {
		return false, err
	}
	return level == model.LevelPublic, nil
}

// CanPublish reports whether a session may be published: its level must be
// public and every detected span must have been reviewed. Unreviewed
// content is never assumed safe.
func (s *Store) CanPublish(ctx context.Context, sessionID string) (bool, error) {
	level, err := s.GetLevel(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if level != model.LevelPublic {
		return false, nil
	}

	unreviewed, err := s.storage.CountUnreviewedTags(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return unreviewed == 0, nil
}

// Readiness is the result of a publish-gate evaluation.
type Readiness struct {
	Blockers []string
	Ready    bool
}

// CheckPublishReady evaluates the publish gate for a session and the cards
// that would ship with it. It is a pure read: safe to call repeatedly,
// mutates nothing. Blockers are reported in evaluation order: session
// level, card levels, then vault state (a locked vault means private status
// cannot be verified, so publishing is blocked defensively).
func (s *Store) CheckPublishReady(ctx context.Context, sessionID string, cardIDs []string) (Readiness, error) {
	var blockers []string

	sessionLevel, err := s.GetLevel(ctx, sessionID)
	if err != nil {
		return Readiness{}, fmt.Errorf("failed to check session level: %w", err)
	}
	if sessionLevel == model.LevelPrivate {
		blockers = append(blockers, fmt.Sprintf("session %s is marked private", sessionID))
	}

	for _, cardID := range cardIDs {
		level, err := s.GetLevel(ctx, cardID)
		if err != nil {
			return Readiness{}, fmt.Errorf("failed to check card level: %w", err)
		}
		if level == model.LevelPrivate {
			blockers = append(blockers, fmt.Sprintf("card %s is marked private", cardID))
		}
	}

	hasPassword, err := s.vault.HasPassword(ctx)
	if err != nil {
		return Readiness{}, fmt.Errorf("failed to check vault state: %w", err)
	}
	if hasPassword {
		unlocked, err := s.vault.IsUnlocked(ctx)
		if err != nil {
			return Readiness{}, fmt.Errorf("failed to check vault state: %w", err)
		}
		if !unlocked {
			blockers = append(blockers, "vault is locked; private status cannot be verified")
		}
	}

	return Readiness{
		Ready:    len(blockers) == 0,
		Blockers: blockers,
	}, nil
}
