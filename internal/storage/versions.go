package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/murmurapp/murmur/internal/common"
	"github.com/murmurapp/murmur/internal/model"
)

// SaveVersion appends a new immutable version for the document and updates
// the document's current-content projection. The version number is
// max(existing)+1, computed and inserted inside one transaction; the
// UNIQUE(document_id, version_number) constraint backstops any race, so two
// concurrent saves can never both claim the same number.
func (s *SQLiteStorage) SaveVersion(ctx context.Context, documentID, content string, versionType model.VersionType) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(documentID, "documentID"); err != nil {
		return 0, err
	}
	switch versionType {
	case model.VersionRaw, model.VersionEdited, model.VersionRestored:
	default:
		return 0, fmt.Errorf("unknown version type: %q", versionType)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	next, err := s.saveVersionTx(ctx, tx, documentID, content, versionType)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit version save: %w", err)
	}

	return next, nil
}

func (s *SQLiteStorage) saveVersionTx(ctx context.Context, tx *sql.Tx, documentID, content string, versionType model.VersionType) (int, error) {
	var next int
	err := tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(version_number), 0) + 1
		FROM versions WHERE document_id = ?
	`, documentID).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to compute next version number: %w", err)
	}

	now := time.Now()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO versions (document_id, version_number, version_type, content, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, documentID, next, string(versionType), content, now)
	if err != nil {
		return 0, fmt.Errorf("failed to insert version %d: %w", next, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (id, content, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			content = excluded.content,
			updated_at = excluded.updated_at
	`, documentID, content, now, now)
	if err != nil {
		return 0, fmt.Errorf("failed to update document projection: %w", err)
	}

	return next, nil
}

// GetVersions returns every version of the document, most recent first.
func (s *SQLiteStorage) GetVersions(ctx context.Context, documentID string) ([]model.Version, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(documentID, "documentID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, document_id, version_number, version_type, content, created_at
		FROM versions
		WHERE document_id = ?
		ORDER BY version_number DESC
	`, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query versions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var versions []model.Version
	for rows.Next() {
		var v model.Version
		var vtype string
		if err := rows.Scan(&v.ID, &v.DocumentID, &v.Number, &vtype, &v.Content, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan version: %w", err)
		}
		v.Type = model.VersionType(vtype)
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating versions: %w", err)
	}

	return versions, nil
}

// GetLatestVersion returns the most recent version of the document, or
// common.ErrVersionNotFound when the document has no history.
func (s *SQLiteStorage) GetLatestVersion(ctx context.Context, documentID string) (*model.Version, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(documentID, "documentID"); err != nil {
		return nil, err
	}

	return s.getVersion(ctx, `
		SELECT id, document_id, version_number, version_type, content, created_at
		FROM versions
		WHERE document_id = ?
		ORDER BY version_number DESC
		LIMIT 1
	`, documentID)
}

// GetVersion returns one specific version of the document.
func (s *SQLiteStorage) GetVersion(ctx context.Context, documentID string, number int) (*model.Version, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(documentID, "documentID"); err != nil {
		return nil, err
	}

	return s.getVersion(ctx, `
		SELECT id, document_id, version_number, version_type, content, created_at
		FROM versions
		WHERE document_id = ? AND version_number = ?
	`, documentID, number)
}

func (s *SQLiteStorage) getVersion(ctx context.Context, query string, args ...any) (*model.Version, error) {
	var v model.Version
	var vtype string
	err := s.db.QueryRowContext(ctx, query, args...).
		Scan(&v.ID, &v.DocumentID, &v.Number, &vtype, &v.Content, &v.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrVersionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query version: %w", err)
	}
	v.Type = model.VersionType(vtype)
	return &v, nil
}

// RestoreVersion brings back the content of an old version by appending a
// new version of type restored; history is never rewritten. The document's
// current-content projection is updated as part of the same save.
func (s *SQLiteStorage) RestoreVersion(ctx context.Context, documentID string, number int) (*model.Version, error) {
	old, err := s.GetVersion(ctx, documentID, number)
	if err != nil {
		if errors.Is(err, common.ErrVersionNotFound) {
			return nil, fmt.Errorf("%w: document %s has no version %d", common.ErrVersionNotFound, documentID, number)
		}
		return nil, err
	}

	newNumber, err := s.SaveVersion(ctx, documentID, old.Content, model.VersionRestored)
	if err != nil {
		return nil, fmt.Errorf("failed to save restored version: %w", err)
	}

	return s.GetVersion(ctx, documentID, newNumber)
}

// GetDocument returns the current-content projection for a document, or
// common.ErrNotFound when it does not exist.
func (s *SQLiteStorage) GetDocument(ctx context.Context, documentID string) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	if err := validateString(documentID, "documentID"); err != nil {
		return "", err
	}

	var content string
	err := s.db.QueryRowContext(ctx, `SELECT content FROM documents WHERE id = ?`, documentID).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: document %s", common.ErrNotFound, documentID)
	}
	if err != nil {
		return "", fmt.Errorf("failed to query document: %w", err)
	}
	return content, nil
}

// ListDocumentIDs returns the IDs of every stored document.
func (s *SQLiteStorage) ListDocumentIDs(ctx context.Context) ([]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id FROM documents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan document id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}

	return ids, nil
}
