package model

import "time"

// VersionType records why a version was written.
type VersionType string

// Version type constants.
const (
	VersionRaw      VersionType = "raw"
	VersionEdited   VersionType = "edited"
	VersionRestored VersionType = "restored"
)

// Version is one immutable entry in a document's append-only history.
// For a given DocumentID, Number starts at 1 and increases by exactly one
// per save; versions are never updated or deleted while the document exists.
type Version struct {
	CreatedAt  time.Time
	DocumentID string
	Type       VersionType
	Content    string
	ID         int64
	Number     int
}
