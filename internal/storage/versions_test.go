package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murmurapp/murmur/internal/common"
	"github.com/murmurapp/murmur/internal/model"
)

func TestSaveVersionNumbersAreContiguous(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		number, err := store.SaveVersion(ctx, "doc-1", fmt.Sprintf("draft %d", i), model.VersionEdited)
		require.NoError(t, err)
		assert.Equal(t, i, number)
	}

	versions, err := store.GetVersions(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, versions, 5)

	// Most recent first, numbered n..1 with no gaps.
	for i, v := range versions {
		assert.Equal(t, 5-i, v.Number)
		assert.Equal(t, "doc-1", v.DocumentID)
	}
}

func TestSaveVersionConcurrentWritersNeverShareNumbers(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	const writers = 10
	numbers := make(chan int, writers)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			number, err := store.SaveVersion(ctx, "doc-1", fmt.Sprintf("draft %d", i), model.VersionEdited)
			if err != nil {
				t.Errorf("concurrent save failed: %v", err)
				return
			}
			numbers <- number
		}(i)
	}
	wg.Wait()
	close(numbers)

	seen := make(map[int]bool)
	for number := range numbers {
		assert.False(t, seen[number], "version number %d allocated twice", number)
		seen[number] = true
	}
	require.Len(t, seen, writers)
	for i := 1; i <= writers; i++ {
		assert.True(t, seen[i], "version number %d missing from 1..%d", i, writers)
	}
}

func TestSaveVersionIndependentPerDocument(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	n1, err := store.SaveVersion(ctx, "doc-a", "a1", model.VersionRaw)
	require.NoError(t, err)
	n2, err := store.SaveVersion(ctx, "doc-b", "b1", model.VersionRaw)
	require.NoError(t, err)
	n3, err := store.SaveVersion(ctx, "doc-a", "a2", model.VersionEdited)
	require.NoError(t, err)

	assert.Equal(t, 1, n1)
	assert.Equal(t, 1, n2, "each document numbers its own history")
	assert.Equal(t, 2, n3)
}

func TestSaveVersionUpdatesDocumentProjection(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	_, err := store.SaveVersion(ctx, "doc-1", "first draft", model.VersionRaw)
	require.NoError(t, err)
	_, err = store.SaveVersion(ctx, "doc-1", "second draft", model.VersionEdited)
	require.NoError(t, err)

	content, err := store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "second draft", content)
}

func TestSaveVersionRejectsUnknownType(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.SaveVersion(context.Background(), "doc-1", "text", model.VersionType("draft"))
	require.Error(t, err)
}

func TestGetLatestVersion(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	_, err := store.SaveVersion(ctx, "doc-1", "old", model.VersionRaw)
	require.NoError(t, err)
	_, err = store.SaveVersion(ctx, "doc-1", "new", model.VersionEdited)
	require.NoError(t, err)

	latest, err := store.GetLatestVersion(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, 2, latest.Number)
	assert.Equal(t, "new", latest.Content)
	assert.Equal(t, model.VersionEdited, latest.Type)
}

func TestGetLatestVersionNotFound(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.GetLatestVersion(context.Background(), "never-saved")
	assert.ErrorIs(t, err, common.ErrVersionNotFound)
}

func TestGetVersionNotFound(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	_, err := store.SaveVersion(ctx, "doc-1", "only one", model.VersionRaw)
	require.NoError(t, err)

	_, err = store.GetVersion(ctx, "doc-1", 7)
	assert.ErrorIs(t, err, common.ErrVersionNotFound)
}

func TestRestoreVersionAppendsHistory(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	_, err := store.SaveVersion(ctx, "doc-1", "version one", model.VersionRaw)
	require.NoError(t, err)
	_, err = store.SaveVersion(ctx, "doc-1", "version two", model.VersionEdited)
	require.NoError(t, err)

	restored, err := store.RestoreVersion(ctx, "doc-1", 1)
	require.NoError(t, err)

	assert.Equal(t, 3, restored.Number, "restore appends, never rewrites")
	assert.Equal(t, "version one", restored.Content)
	assert.Equal(t, model.VersionRestored, restored.Type)

	// The old versions are untouched.
	versions, err := store.GetVersions(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, versions, 3)
	assert.Equal(t, "version two", versions[1].Content)
	assert.Equal(t, "version one", versions[2].Content)

	// The projection now reflects the restored content.
	content, err := store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "version one", content)
}

func TestRestoreVersionNotFound(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	_, err := store.SaveVersion(ctx, "doc-1", "text", model.VersionRaw)
	require.NoError(t, err)

	_, err = store.RestoreVersion(ctx, "doc-1", 99)
	assert.ErrorIs(t, err, common.ErrVersionNotFound)

	// A failed restore must not grow the ledger.
	versions, err := store.GetVersions(ctx, "doc-1")
	require.NoError(t, err)
	assert.Len(t, versions, 1)
}

func TestGetDocumentNotFound(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.GetDocument(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListDocumentIDs(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	ids, err := store.ListDocumentIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = store.SaveVersion(ctx, "doc-b", "b", model.VersionRaw)
	require.NoError(t, err)
	_, err = store.SaveVersion(ctx, "doc-a", "a", model.VersionRaw)
	require.NoError(t, err)

	ids, err = store.ListDocumentIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-a", "doc-b"}, ids)
}
