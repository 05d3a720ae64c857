package review

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murmurapp/murmur/internal/model"
)

// recordingMaterializer captures every CreateCard call; failEvery makes the
// nth call fail (1-based) to exercise best-effort commits.
type recordingMaterializer struct {
	failOn  map[int]bool
	created []createdCard
	calls   int
}

type createdCard struct {
	content string
	level   model.PrivacyLevel
}

func (m *recordingMaterializer) CreateCard(_ context.Context, _ string, content string, level model.PrivacyLevel) error {
	m.calls++
	if m.failOn[m.calls] {
		return errors.New("storage exploded")
	}
	m.created = append(m.created, createdCard{content: content, level: level})
	return nil
}

const fourSentences = "First thing. Second thing. Third thing. Fourth thing."

func TestNewSessionStartsPending(t *testing.T) {
	s := NewSession("session-1", fourSentences, nil, nil)

	require.Equal(t, 4, s.Count())
	assert.Equal(t, 0, s.Cursor())
	assert.False(t, s.Done())

	for _, sentence := range s.Sentences() {
		assert.Equal(t, model.DecisionPending, sentence.Decision)
	}

	decided, total := s.Progress()
	assert.Equal(t, 0, decided)
	assert.Equal(t, 4, total)
}

func TestClassifyAdvancesAndCompletes(t *testing.T) {
	s := NewSession("session-1", fourSentences, nil, nil)

	s.ClassifyPublic()
	s.ClassifyPublic()
	s.ClassifyPrivate()
	assert.Equal(t, 3, s.Cursor())
	assert.False(t, s.Done())

	s.ClassifyPublic()
	assert.True(t, s.Done())

	_, ok := s.Current()
	assert.False(t, ok, "no current sentence once review is complete")

	// Deciding past the end is a no-op.
	s.ClassifyPrivate()
	assert.Equal(t, 4, s.Cursor())
}

func TestCommitFourSentenceScenario(t *testing.T) {
	// right, right, left, no decision: two public cards, one private card,
	// pending sentence dropped.
	s := NewSession("session-1", fourSentences, nil, nil)
	s.ClassifyPublic()
	s.ClassifyPublic()
	s.ClassifyPrivate()

	m := &recordingMaterializer{}
	result, err := s.Commit(context.Background(), m)

	require.NoError(t, err)
	assert.Equal(t, CommitResult{Public: 2, Private: 1, Skipped: 1}, result)

	require.Len(t, m.created, 3)
	assert.Equal(t, "First thing.", m.created[0].content)
	assert.Equal(t, model.LevelPublic, m.created[0].level)
	assert.Equal(t, "Third thing.", m.created[2].content)
	assert.Equal(t, model.LevelPrivate, m.created[2].level)
}

func TestToggle(t *testing.T) {
	s := NewSession("session-1", "Only one.", nil, nil)

	s.Toggle() // pending -> private
	assert.Equal(t, model.DecisionPrivate, s.Sentences()[0].Decision)
	assert.Equal(t, 0, s.Cursor(), "toggle does not advance")

	s.Toggle() // private -> public
	assert.Equal(t, model.DecisionPublic, s.Sentences()[0].Decision)

	s.Toggle() // public -> private, never back to pending
	assert.Equal(t, model.DecisionPrivate, s.Sentences()[0].Decision)
}

func TestMarkAllPublic(t *testing.T) {
	s := NewSession("session-1", fourSentences, nil, nil)
	s.ClassifyPrivate()

	s.MarkAllPublic()

	assert.True(t, s.Done())
	for _, sentence := range s.Sentences() {
		assert.Equal(t, model.DecisionPublic, sentence.Decision)
	}
}

func TestMarkAllPrivate(t *testing.T) {
	s := NewSession("session-1", fourSentences, nil, nil)

	s.MarkAllPrivate()

	assert.True(t, s.Done())
	decided, total := s.Progress()
	assert.Equal(t, total, decided)
}

func TestNavigationClamps(t *testing.T) {
	s := NewSession("session-1", fourSentences, nil, nil)

	s.Prev()
	assert.Equal(t, 0, s.Cursor(), "Prev clamps at the first sentence")

	s.Next()
	s.Next()
	s.Next()
	s.Next()
	s.Next()
	assert.Equal(t, 3, s.Cursor(), "Next clamps at the last sentence")

	s.Prev()
	assert.Equal(t, 2, s.Cursor())
}

func TestNavigationDoesNotDecide(t *testing.T) {
	s := NewSession("session-1", fourSentences, nil, nil)

	s.Next()
	s.Next()
	s.Prev()

	decided, _ := s.Progress()
	assert.Equal(t, 0, decided)
}

func TestCommitBestEffort(t *testing.T) {
	s := NewSession("session-1", fourSentences, nil, nil)
	s.MarkAllPublic()

	m := &recordingMaterializer{failOn: map[int]bool{2: true}}
	result, err := s.Commit(context.Background(), m)

	require.Error(t, err, "partial failure must be surfaced")
	assert.Equal(t, CommitResult{Public: 3, Failed: 1}, result)
	assert.Len(t, m.created, 3, "failure on one unit does not stop the rest")
}

func TestCommitEmptyDocument(t *testing.T) {
	s := NewSession("session-1", "", nil, nil)

	assert.True(t, s.Done(), "an empty document has nothing to review")

	m := &recordingMaterializer{}
	result, err := s.Commit(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, CommitResult{}, result)
}

// scannerFunc adapts a function to the Scanner interface.
type scannerFunc func(text string) []model.Match

func (f scannerFunc) FullScan(text string) []model.Match { return f(text) }

func TestNewSessionScansEachSentence(t *testing.T) {
	var scanned []string
	scanner := scannerFunc(func(text string) []model.Match {
		scanned = append(scanned, text)
		return []model.Match{{Category: "SSN", Text: text, Start: 0, End: len(text)}}
	})

	s := NewSession("session-1", "One here. Two here.", scanner, nil)

	assert.Equal(t, []string{"One here.", "Two here."}, scanned)
	for _, sentence := range s.Sentences() {
		assert.Len(t, sentence.Matches, 1)
	}
}
