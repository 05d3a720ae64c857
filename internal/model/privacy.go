package model

import "time"

// PrivacyLevel classifies an entity (session or card) as publishable or not.
type PrivacyLevel string

// Privacy level constants. An entity with no stored level is public.
const (
	LevelPublic  PrivacyLevel = "public"
	LevelPrivate PrivacyLevel = "private"
)

// ValidPrivacyLevel reports whether level is one of the known values.
func ValidPrivacyLevel(level PrivacyLevel) bool {
	return level == LevelPublic || level == LevelPrivate
}

// Card is a content unit materialized from a committed review decision.
// Its privacy level lives in the privacy level store under the card ID.
type Card struct {
	CreatedAt time.Time
	ID        string
	SessionID string
	Content   string
	TagType   string
}

// TagTypeBrainDump is the tag type assigned to cards created by the sentence
// review workflow.
const TagTypeBrainDump = "brain_dump"
