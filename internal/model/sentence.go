package model

// Decision is the per-sentence outcome of the review workflow.
type Decision string

// Decision constants. Every sentence starts pending; once reviewed it can
// only toggle between public and private.
const (
	DecisionPending Decision = "pending"
	DecisionPublic  Decision = "public"
	DecisionPrivate Decision = "private"
)

// Sentence is one reviewable unit of a document. Sentences are ephemeral:
// they exist only for the duration of a review session and are discarded
// after commit.
type Sentence struct {
	Text     string
	Decision Decision
	Matches  []Match
	Index    int
}
