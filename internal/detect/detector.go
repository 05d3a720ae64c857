package detect

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/murmurapp/murmur/internal/model"
)

// Classifier supplies an additional detection signal from an external
// language model. Implementations must treat every failure as "no matches";
// the detector also guards against errors and timeouts on its side.
type Classifier interface {
	Classify(ctx context.Context, text string) ([]model.Match, error)
}

// DefaultClassifierTimeout bounds how long a scan waits for the external
// classifier before proceeding with rule-based results only.
const DefaultClassifierTimeout = 15 * time.Second

// Detector combines the pattern and topic scanners with an optional
// external classifier and applies the merge/dedup policy.
type Detector struct {
	classifier Classifier
	logger     *slog.Logger
	timeout    time.Duration
	spanDedup  bool
}

// Option configures a Detector.
type Option func(*Detector)

// WithClassifier attaches an external classifier signal.
func WithClassifier(c Classifier) Option {
	return func(d *Detector) { d.classifier = c }
}

// WithClassifierTimeout bounds the external classifier call.
func WithClassifierTimeout(timeout time.Duration) Option {
	return func(d *Detector) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// WithSpanDedup switches deduplication from the compatibility policy (one
// match per start offset) to the stricter (start, end) key, letting two
// different spans that begin at the same offset both survive.
func WithSpanDedup() Option {
	return func(d *Detector) { d.spanDedup = true }
}

// NewDetector creates a detector. With no options it runs pattern and topic
// scans only.
func NewDetector(logger *slog.Logger, opts ...Option) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Detector{
		logger:  logger,
		timeout: DefaultClassifierTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// FullScan runs the pattern and topic scans and merges the results: sorted
// ascending by start offset, at most one match per distinct start offset
// (first after the stable sort wins).
func (d *Detector) FullScan(text string) []model.Match {
	return d.merge(text, append(Scan(text), ScanTopics(text)...))
}

// ScanWithClassifier runs the local scans and, when a classifier is
// configured, combines their output with whatever the classifier returns
// within the timeout. A classifier failure, timeout, or cancellation
// contributes zero matches; local results are returned regardless.
func (d *Detector) ScanWithClassifier(ctx context.Context, text string) []model.Match {
	if d.classifier == nil {
		return d.FullScan(text)
	}

	type result struct {
		err     error
		matches []model.Match
	}

	cctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	ch := make(chan result, 1)
	go func() {
		matches, err := d.classifier.Classify(cctx, text)
		ch <- result{matches: matches, err: err}
	}()

	// Local strategies never wait on the network.
	all := append(Scan(text), ScanTopics(text)...)

	select {
	case res := <-ch:
		if res.err != nil {
			d.logger.Warn("external classifier failed, using rule-based results only",
				"error", res.err)
		} else {
			all = append(all, res.matches...)
		}
	case <-cctx.Done():
		d.logger.Warn("external classifier timed out, using rule-based results only",
			"timeout", d.timeout)
	}

	return d.merge(text, all)
}

// merge drops invalid matches, stably sorts by start offset, and applies
// the configured dedup policy.
func (d *Detector) merge(text string, matches []model.Match) []model.Match {
	valid := matches[:0]
	for _, m := range matches {
		if m.Valid(len(text)) {
			valid = append(valid, m)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Start < valid[j].Start
	})

	deduped := make([]model.Match, 0, len(valid))
	type spanKey struct{ start, end int }
	seenStart := make(map[int]bool)
	seenSpan := make(map[spanKey]bool)

	for _, m := range valid {
		if d.spanDedup {
			key := spanKey{m.Start, m.End}
			if seenSpan[key] {
				continue
			}
			seenSpan[key] = true
		} else {
			if seenStart[m.Start] {
				continue
			}
			seenStart[m.Start] = true
		}
		deduped = append(deduped, m)
	}

	return deduped
}
