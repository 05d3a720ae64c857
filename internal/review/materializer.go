package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/murmurapp/murmur/internal/model"
)

// CardStore persists materialized content units.
type CardStore interface {
	SaveCard(ctx context.Context, card *model.Card) error
}

// LevelStore records explicit privacy decisions.
type LevelStore interface {
	SetLevel(ctx context.Context, entityID string, level model.PrivacyLevel) error
}

// CardMaterializer turns review decisions into brain-dump cards. Public
// cards rely on the default level (absence means public); private cards are
// explicitly tagged private in the level store.
type CardMaterializer struct {
	cards  CardStore
	levels LevelStore
}

// NewCardMaterializer wires a materializer over the card and level stores.
func NewCardMaterializer(cards CardStore, levels LevelStore) *CardMaterializer {
	return &CardMaterializer{cards: cards, levels: levels}
}

// CreateCard persists one content unit and, for private decisions, its
// level.
func (m *CardMaterializer) CreateCard(ctx context.Context, sessionID, content string, level model.PrivacyLevel) error {
	card := &model.Card{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Content:   content,
		TagType:   model.TagTypeBrainDump,
	}
	if err := m.cards.SaveCard(ctx, card); err != nil {
		return fmt.Errorf("failed to save card: %w", err)
	}

	if level == model.LevelPrivate {
		if err := m.levels.SetLevel(ctx, card.ID, model.LevelPrivate); err != nil {
			return fmt.Errorf("failed to mark card private: %w", err)
		}
	}
	return nil
}
