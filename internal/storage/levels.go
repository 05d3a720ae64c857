package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/murmurapp/murmur/internal/model"
)

// SetPrivacyLevel stores the privacy level for an entity (session or card).
func (s *SQLiteStorage) SetPrivacyLevel(ctx context.Context, entityID string, level model.PrivacyLevel) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(entityID, "entityID"); err != nil {
		return err
	}
	if err := validateLevel(level); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO privacy_levels (entity_id, level, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(entity_id) DO UPDATE SET
			level = excluded.level,
			updated_at = excluded.updated_at
	`, entityID, string(level), time.Now())
	if err != nil {
		return fmt.Errorf("failed to set privacy level: %w", err)
	}
	return nil
}

// GetPrivacyLevel returns the stored level for an entity. An entity that
// was never explicitly set is public.
func (s *SQLiteStorage) GetPrivacyLevel(ctx context.Context, entityID string) (model.PrivacyLevel, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	if err := validateString(entityID, "entityID"); err != nil {
		return "", err
	}

	var level string
	err := s.db.QueryRowContext(ctx, `
		SELECT level FROM privacy_levels WHERE entity_id = ?
	`, entityID).Scan(&level)
	if errors.Is(err, sql.ErrNoRows) {
		return model.LevelPublic, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query privacy level: %w", err)
	}
	return model.PrivacyLevel(level), nil
}

// ListPrivateEntities returns every entity ID currently marked private.
func (s *SQLiteStorage) ListPrivateEntities(ctx context.Context) ([]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT entity_id FROM privacy_levels WHERE level = ? ORDER BY entity_id
	`, string(model.LevelPrivate))
	if err != nil {
		return nil, fmt.Errorf("failed to query private entities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan entity id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating private entities: %w", err)
	}

	return ids, nil
}
