package privacy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murmurapp/murmur/internal/model"
)

func TestScanSessionPersistsUnreviewedTags(t *testing.T) {
	detector := &stubDetector{matches: []model.Match{
		{Category: "SSN", Text: "123-45-6789", Start: 10, End: 21},
		{Category: "Topic:medical", Text: "doctor", Start: 30, End: 36},
	}}
	store, _, db := newTestStore(t, detector)
	ctx := context.Background()

	tags, err := store.ScanSession(ctx, "session-1", "padding... 123-45-6789 saw the doctor")
	require.NoError(t, err)
	require.Len(t, tags, 2)

	for _, tag := range tags {
		assert.NotEmpty(t, tag.ID)
		assert.Equal(t, "session-1", tag.SessionID)
		assert.Equal(t, model.TagUnreviewed, tag.Status)
	}
	assert.Equal(t, "SSN", tags[0].TagType)
	assert.Equal(t, "Topic:medical", tags[1].TagType)

	stored, err := db.GetTagsBySession(ctx, "session-1")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestScanSessionIsIdempotent(t *testing.T) {
	detector := &stubDetector{matches: []model.Match{
		{Category: "SSN", Text: "123-45-6789", Start: 0, End: 11},
	}}
	store, _, _ := newTestStore(t, detector)
	ctx := context.Background()

	first, err := store.ScanSession(ctx, "session-1", "123-45-6789")
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Review the tag, then rescan: the decision must survive.
	require.NoError(t, store.ReviewTag(ctx, first[0].ID, model.TagDismissed))

	second, err := store.ScanSession(ctx, "session-1", "123-45-6789")
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, model.TagDismissed, second[0].Status)
	assert.Equal(t, 1, detector.calls, "detection must not rerun for a scanned session")
}

func TestScanSessionNoMatches(t *testing.T) {
	store, _, _ := newTestStore(t, &stubDetector{})

	tags, err := store.ScanSession(context.Background(), "session-1", "nothing sensitive")
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestScanSessionNoDetector(t *testing.T) {
	store, _, _ := newTestStore(t, nil)

	_, err := store.ScanSession(context.Background(), "session-1", "text")
	require.Error(t, err)
}

func TestReviewTagRejectsNonTerminalStatus(t *testing.T) {
	store, _, _ := newTestStore(t, nil)

	err := store.ReviewTag(context.Background(), "tag-1", model.TagUnreviewed)
	require.Error(t, err, "a tag never goes back to unreviewed")
}
