package detect

import (
	"regexp"
	"strings"

	"github.com/murmurapp/murmur/internal/model"
)

// topicCategory pairs a topic name with the keywords that signal it.
// Keywords are matched case-insensitively; all entries must be lowercase.
type topicCategory struct {
	name     string
	keywords []string
}

var topicTable = []topicCategory{
	{"medical", []string{
		"doctor", "diagnosis", "prescription", "surgery", "medication",
		"hospital", "symptom", "illness", "biopsy", "chronic pain",
	}},
	{"mental_health", []string{
		"anxiety", "depression", "therapist", "therapy", "panic attack",
		"suicidal", "self-harm", "burnout", "breakdown",
	}},
	{"financial", []string{
		"salary", "debt", "bankruptcy", "mortgage", "overdraft",
		"paycheck", "credit score", "owe money",
	}},
	{"legal", []string{
		"lawsuit", "attorney", "divorce", "custody", "arrest",
		"probation", "settlement", "subpoena",
	}},
	{"addiction", []string{
		"drinking problem", "gambling", "relapse", "sober", "rehab",
		"addiction", "withdrawal",
	}},
	{"embarrassing", []string{
		"embarrassed", "ashamed", "humiliating", "my secret", "affair",
		"crush on",
	}},
}

// TopicPrefix prefixes every topic scan category so pattern and topic
// matches remain distinguishable downstream.
const TopicPrefix = "Topic:"

// compiledTopic is one keyword compiled into a case-insensitive matcher.
type compiledTopic struct {
	re       *regexp.Regexp
	category string
}

var topics = compileTopics(topicTable)

// compileTopics turns every keyword into a quoted (?i) regex. Matching runs
// directly over the original string, so reported offsets always index the
// input bytes regardless of casing or any non-ASCII text around a keyword.
func compileTopics(table []topicCategory) []compiledTopic {
	var compiled []compiledTopic
	for _, topic := range table {
		category := TopicPrefix + topic.name
		for _, keyword := range topic.keywords {
			re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(strings.ToLower(keyword)))
			compiled = append(compiled, compiledTopic{re: re, category: category})
		}
	}
	return compiled
}

// ScanTopics finds every non-overlapping, case-insensitive occurrence of
// each topic keyword. Reported match text preserves the original casing.
func ScanTopics(text string) []model.Match {
	var matches []model.Match
	for _, topic := range topics {
		for _, loc := range topic.re.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			matches = append(matches, model.Match{
				Category: topic.category,
				Text:     text[start:end],
				Start:    start,
				End:      end,
			})
		}
	}
	return matches
}
