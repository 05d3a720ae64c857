// Package detect implements the sensitive-span detector engine: fixed
// regular-expression patterns, topic keyword dictionaries, and an optional
// external classifier signal. All scanning is pure text-in, matches-out.
package detect

import (
	"log/slog"
	"regexp"

	"github.com/murmurapp/murmur/internal/model"
)

// patternRule pairs a category name with its regular expression source.
type patternRule struct {
	category string
	expr     string
}

// Table order matters: when two detectors fire at the same start offset,
// the earlier entry wins the dedup pass.
var patternTable = []patternRule{
	{"SSN", `\b\d{3}-\d{2}-\d{4}\b`},
	{"CreditCard", `\b\d{4}[ -]?\d{4}[ -]?\d{4}[ -]?\d{3,4}\b`},
	{"Email", `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`},
	{"Phone", `\b(?:\+?1[-. ]?)?\(?\d{3}\)?[-. ]\d{3}[-. ]?\d{4}\b`},
	{"IPAddress", `\b(?:\d{1,3}\.){3}\d{1,3}\b`},
	{"Currency", `\$\d[\d,]*(?:\.\d{2})?|\b\d[\d,]*(?:\.\d+)?\s?(?i:dollars|bucks|usd)\b`},
}

// compiledPattern is a pattern rule whose expression compiled successfully.
type compiledPattern struct {
	re       *regexp.Regexp
	category string
}

var patterns = compilePatterns(patternTable)

// compilePatterns compiles the pattern table. A pattern that fails to
// compile is skipped with a warning rather than aborting detection.
func compilePatterns(table []patternRule) []compiledPattern {
	compiled := make([]compiledPattern, 0, len(table))
	for _, rule := range table {
		re, err := regexp.Compile(rule.expr)
		if err != nil {
			slog.Warn("skipping malformed detection pattern",
				"category", rule.category,
				"error", err)
			continue
		}
		compiled = append(compiled, compiledPattern{re: re, category: rule.category})
	}
	return compiled
}

// Scan applies the fixed pattern table to text and returns one match per
// occurrence, tagged with the pattern's category. The input is never
// mutated; zero-width results are discarded.
func Scan(text string) []model.Match {
	var matches []model.Match
	for _, p := range patterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			if start >= end {
				continue
			}
			matches = append(matches, model.Match{
				Category: p.category,
				Text:     text[start:end],
				Start:    start,
				End:      end,
			})
		}
	}
	return matches
}
