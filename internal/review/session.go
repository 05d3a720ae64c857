package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/murmurapp/murmur/internal/model"
)

// Scanner produces matches for one sentence unit.
type Scanner interface {
	FullScan(text string) []model.Match
}

// Materializer turns a committed decision into a durable content unit.
type Materializer interface {
	CreateCard(ctx context.Context, sessionID, content string, level model.PrivacyLevel) error
}

// Session is the interactive review state for one document. It is
// single-user, single-goroutine state: every sentence starts pending, the
// cursor advances as the user decides, and once the cursor passes the last
// sentence the review is complete.
type Session struct {
	logger    *slog.Logger
	sessionID string
	sentences []model.Sentence
	cursor    int
}

// NewSession splits text into sentences and scans each one. A nil scanner
// skips detection (decisions can still be made).
func NewSession(sessionID, text string, scanner Scanner, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}

	units := SplitSentences(text)
	sentences := make([]model.Sentence, len(units))
	for i, unit := range units {
		var matches []model.Match
		if scanner != nil {
			matches = scanner.FullScan(unit)
		}
		sentences[i] = model.Sentence{
			Index:    i,
			Text:     unit,
			Matches:  matches,
			Decision: model.DecisionPending,
		}
	}

	return &Session{
		logger:    logger,
		sessionID: sessionID,
		sentences: sentences,
	}
}

// SessionID returns the document/session being reviewed.
func (s *Session) SessionID() string { return s.sessionID }

// Sentences returns the review units in order.
func (s *Session) Sentences() []model.Sentence { return s.sentences }

// Count returns the number of sentence units.
func (s *Session) Count() int { return len(s.sentences) }

// Cursor returns the index of the sentence under review. Once the review is
// complete the cursor equals Count().
func (s *Session) Cursor() int { return s.cursor }

// Current returns the sentence under review, or false when the review is
// complete (or the document had no sentences).
func (s *Session) Current() (model.Sentence, bool) {
	if s.cursor < 0 || s.cursor >= len(s.sentences) {
		return model.Sentence{}, false
	}
	return s.sentences[s.cursor], true
}

// Done reports whether the cursor has passed the last sentence.
func (s *Session) Done() bool {
	return s.cursor >= len(s.sentences)
}

// ClassifyPublic marks the current sentence public and advances.
func (s *Session) ClassifyPublic() {
	s.decide(model.DecisionPublic)
}

// ClassifyPrivate marks the current sentence private and advances.
func (s *Session) ClassifyPrivate() {
	s.decide(model.DecisionPrivate)
}

func (s *Session) decide(d model.Decision) {
	if s.Done() {
		return
	}
	s.sentences[s.cursor].Decision = d
	s.cursor++
}

// Toggle flips the current sentence's decision: pending or public becomes
// private, private becomes public. There is no path back to pending. The
// cursor does not move.
func (s *Session) Toggle() {
	if s.Done() {
		return
	}
	switch s.sentences[s.cursor].Decision {
	case model.DecisionPrivate:
		s.sentences[s.cursor].Decision = model.DecisionPublic
	case model.DecisionPending, model.DecisionPublic:
		s.sentences[s.cursor].Decision = model.DecisionPrivate
	}
}

// MarkAllPublic decides every sentence public and completes the review.
func (s *Session) MarkAllPublic() {
	s.markAll(model.DecisionPublic)
}

// MarkAllPrivate decides every sentence private and completes the review.
func (s *Session) MarkAllPrivate() {
	s.markAll(model.DecisionPrivate)
}

func (s *Session) markAll(d model.Decision) {
	for i := range s.sentences {
		s.sentences[i].Decision = d
	}
	s.cursor = len(s.sentences)
}

// Next moves the cursor forward without deciding, clamped to the last
// sentence.
func (s *Session) Next() {
	if s.cursor < len(s.sentences)-1 {
		s.cursor++
	}
}

// Prev moves the cursor back without deciding, clamped to the first
// sentence.
func (s *Session) Prev() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// Progress reports how many sentences have been decided.
func (s *Session) Progress() (decided, total int) {
	for _, sentence := range s.sentences {
		if sentence.Decision != model.DecisionPending {
			decided++
		}
	}
	return decided, len(s.sentences)
}

// CommitResult reports the outcome of a best-effort commit.
type CommitResult struct {
	Public  int
	Private int
	Failed  int
	Skipped int
}

// Commit materializes every decided sentence into a content card. Pending
// sentences are dropped, never materialized: unreviewed content is not
// assumed safe to keep. The commit is best-effort — a storage failure on
// one unit does not stop the rest — and any failure is surfaced in both the
// result and a non-nil error.
func (s *Session) Commit(ctx context.Context, m Materializer) (CommitResult, error) {
	var result CommitResult
	var firstErr error

	for _, sentence := range s.sentences {
		var level model.PrivacyLevel
		switch sentence.Decision {
		case model.DecisionPublic:
			level = model.LevelPublic
		case model.DecisionPrivate:
			level = model.LevelPrivate
		case model.DecisionPending:
			result.Skipped++
			continue
		}

		if err := m.CreateCard(ctx, s.sessionID, sentence.Text, level); err != nil {
			result.Failed++
			if firstErr == nil {
				firstErr = err
			}
			s.logger.Error("failed to materialize review decision",
				"session_id", s.sessionID,
				"sentence_index", sentence.Index,
				"error", err)
			continue
		}

		if level == model.LevelPrivate {
			result.Private++
		} else {
			result.Public++
		}
	}

	if result.Failed > 0 {
		return result, fmt.Errorf("committed %d of %d decisions: %w",
			result.Public+result.Private,
			result.Public+result.Private+result.Failed,
			firstErr)
	}
	return result, nil
}
