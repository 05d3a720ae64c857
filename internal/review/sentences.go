// Package review implements the sentence-by-sentence privacy review
// workflow: a document is split into sentence units, each unit is scanned
// for sensitive spans, and the user's public/private decisions are
// materialized into content cards.
package review

import "strings"

// sentenceEnders terminate a sentence when followed by whitespace or the
// end of input.
const sentenceEnders = ".!?"

// SplitSentences splits free text into trimmed sentence units. Terminator
// punctuation stays attached to its sentence; empty units are dropped.
func SplitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	flush := func() {
		s := strings.TrimSpace(b.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		b.Reset()
	}

	runes := []rune(text)
	for i, r := range runes {
		b.WriteRune(r)
		if !strings.ContainsRune(sentenceEnders, r) {
			continue
		}
		// Consume runs of terminators ("..", "?!") as one boundary.
		if i+1 < len(runes) && strings.ContainsRune(sentenceEnders, runes[i+1]) {
			continue
		}
		flush()
	}
	flush()

	return sentences
}
