package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murmurapp/murmur/internal/model"
)

func TestSaveAndGetCards(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, content := range []string{"first thought", "second thought"} {
		card := &model.Card{
			ID:        string(rune('a' + i)),
			SessionID: "session-1",
			Content:   content,
			TagType:   model.TagTypeBrainDump,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.SaveCard(ctx, card))
	}

	cards, err := store.GetCardsBySession(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "first thought", cards[0].Content, "oldest first")
	assert.Equal(t, "second thought", cards[1].Content)
	assert.Equal(t, model.TagTypeBrainDump, cards[0].TagType)
}

func TestSaveCardValidation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	tests := []struct {
		name string
		card *model.Card
	}{
		{"nil card", nil},
		{"missing id", &model.Card{SessionID: "s", Content: "c"}},
		{"missing session", &model.Card{ID: "x", Content: "c"}},
		{"empty content", &model.Card{ID: "x", SessionID: "s", Content: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, store.SaveCard(ctx, tt.card))
		})
	}
}

func TestSaveCardDuplicateID(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	card := &model.Card{ID: "dup", SessionID: "session-1", Content: "text", TagType: model.TagTypeBrainDump}
	require.NoError(t, store.SaveCard(ctx, card))
	require.Error(t, store.SaveCard(ctx, card))
}

func TestGetCardsBySessionEmpty(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	cards, err := store.GetCardsBySession(context.Background(), "no-cards")
	require.NoError(t, err)
	assert.Empty(t, cards)
}
