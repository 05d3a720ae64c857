package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// GetVaultHash returns the stored vault password hash, or "" when no
// password has ever been set.
func (s *SQLiteStorage) GetVaultHash(ctx context.Context) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}

	var hash string
	err := s.db.QueryRowContext(ctx, `SELECT password_hash FROM vault WHERE id = 1`).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query vault hash: %w", err)
	}
	return hash, nil
}

// SetVaultHash stores the vault password hash, replacing any previous one.
func (s *SQLiteStorage) SetVaultHash(ctx context.Context, hash string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(hash, "hash"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO vault (id, password_hash, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			password_hash = excluded.password_hash,
			updated_at = excluded.updated_at
	`, hash, time.Now())
	if err != nil {
		return fmt.Errorf("failed to store vault hash: %w", err)
	}
	return nil
}
