package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/murmurapp/murmur/internal/common"
	"github.com/murmurapp/murmur/internal/model"
)

// SaveTags inserts a batch of privacy tags for a session. All inserts run
// inside one transaction so a scan pass is all-or-nothing.
func (s *SQLiteStorage) SaveTags(ctx context.Context, tags []model.PrivacyTag) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	for i := range tags {
		if err := validateTag(&tags[i]); err != nil {
			return fmt.Errorf("tag at index %d: %w", i, err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, tag := range tags {
		createdAt := tag.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO privacy_tags (id, session_id, start_offset, end_offset, status, tag_type, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, tag.ID, tag.SessionID, tag.Start, tag.End, string(tag.Status), tag.TagType, createdAt)
		if err != nil {
			return fmt.Errorf("failed to insert tag %s: %w", tag.ID, err)
		}
	}

	return tx.Commit()
}

// GetTagsBySession returns every privacy tag for a session, ordered by
// start offset.
func (s *SQLiteStorage) GetTagsBySession(ctx context.Context, sessionID string) ([]model.PrivacyTag, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(sessionID, "sessionID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, start_offset, end_offset, status, tag_type, created_at
		FROM privacy_tags
		WHERE session_id = ?
		ORDER BY start_offset
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tags []model.PrivacyTag
	for rows.Next() {
		var tag model.PrivacyTag
		var status string
		if err := rows.Scan(&tag.ID, &tag.SessionID, &tag.Start, &tag.End, &status, &tag.TagType, &tag.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tag.Status = model.TagStatus(status)
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}

	return tags, nil
}

// CountTagsBySession reports how many tags exist for a session. The scan
// pass uses this to stay idempotent per session.
func (s *SQLiteStorage) CountTagsBySession(ctx context.Context, sessionID string) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(sessionID, "sessionID"); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM privacy_tags WHERE session_id = ?
	`, sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tags: %w", err)
	}
	return count, nil
}

// CountUnreviewedTags reports how many tags for a session still await a
// user decision.
func (s *SQLiteStorage) CountUnreviewedTags(ctx context.Context, sessionID string) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(sessionID, "sessionID"); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM privacy_tags
		WHERE session_id = ? AND status = ?
	`, sessionID, string(model.TagUnreviewed)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unreviewed tags: %w", err)
	}
	return count, nil
}

// UpdateTagStatus records a user review decision for one tag.
func (s *SQLiteStorage) UpdateTagStatus(ctx context.Context, tagID string, status model.TagStatus) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(tagID, "tagID"); err != nil {
		return err
	}
	switch status {
	case model.TagUnreviewed, model.TagAccepted, model.TagDismissed:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTag, status)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE privacy_tags SET status = ? WHERE id = ?
	`, string(status), tagID)
	if err != nil {
		return fmt.Errorf("failed to update tag status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: tag %s", common.ErrNotFound, tagID)
	}

	return nil
}

// DeleteTagsBySession removes every tag for a session. Only session
// deletion goes through here; individual tags are never deleted.
func (s *SQLiteStorage) DeleteTagsBySession(ctx context.Context, sessionID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(sessionID, "sessionID"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM privacy_tags WHERE session_id = ?`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete tags: %w", err)
	}
	return nil
}
