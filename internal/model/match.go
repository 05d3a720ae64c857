// Package model defines the core domain models used throughout the application.
package model

import "time"

// Match represents a sensitive span detected in free text. Matches are
// transient detector output; a match that should survive review is persisted
// as a PrivacyTag.
type Match struct {
	Category string
	Text     string
	Start    int
	End      int
}

// Valid reports whether the match offsets describe a real span inside text
// of the given length.
func (m Match) Valid(textLen int) bool {
	return m.Start >= 0 && m.Start < m.End && m.End <= textLen
}

// TagStatus indicates where a persisted tag is in the review lifecycle.
type TagStatus string

// Tag status constants.
const (
	TagUnreviewed TagStatus = "unreviewed"
	TagAccepted   TagStatus = "accepted"
	TagDismissed  TagStatus = "dismissed"
)

// PrivacyTag is a persisted, reviewable record of a detected span tied to a
// session. Tags are created once per session by the first scan pass and only
// change through explicit user review.
type PrivacyTag struct {
	CreatedAt time.Time
	ID        string
	SessionID string
	TagType   string
	Status    TagStatus
	Start     int
	End       int
}

// Reviewed reports whether the user has made a decision about this tag.
func (t PrivacyTag) Reviewed() bool {
	return t.Status == TagAccepted || t.Status == TagDismissed
}
