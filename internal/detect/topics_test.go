package detect

import (
	"strings"
	"testing"
)

func TestScanTopics(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantCategory string
		wantText     string
	}{
		{
			name:         "medical keyword",
			text:         "saw the doctor yesterday",
			wantCategory: "Topic:medical",
			wantText:     "doctor",
		},
		{
			name:         "case insensitive match preserves original casing",
			text:         "My Therapist said to journal more",
			wantCategory: "Topic:mental_health",
			wantText:     "Therapist",
		},
		{
			name:         "multi word keyword",
			text:         "had a panic attack on the train",
			wantCategory: "Topic:mental_health",
			wantText:     "panic attack",
		},
		{
			name:         "financial keyword",
			text:         "worried about my credit score again",
			wantCategory: "Topic:financial",
			wantText:     "credit score",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanTopics(tt.text)
			if len(got) != 1 {
				t.Fatalf("expected 1 match, got %d: %+v", len(got), got)
			}
			m := got[0]
			if m.Category != tt.wantCategory {
				t.Errorf("expected category %q, got %q", tt.wantCategory, m.Category)
			}
			if m.Text != tt.wantText {
				t.Errorf("expected text %q, got %q", tt.wantText, m.Text)
			}
			if tt.text[m.Start:m.End] != m.Text {
				t.Errorf("offsets [%d,%d) yield %q, want %q",
					m.Start, m.End, tt.text[m.Start:m.End], m.Text)
			}
		})
	}
}

func TestScanTopicsRepeatedKeyword(t *testing.T) {
	text := "therapy on monday, therapy on friday"
	got := ScanTopics(text)

	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(got), got)
	}
	if got[0].Start == got[1].Start {
		t.Errorf("expected distinct occurrences, both at offset %d", got[0].Start)
	}
}

func TestScanTopicsOffsetsWithNonASCIIText(t *testing.T) {
	// Multi-byte runes before a keyword must not shift its offsets: matching
	// runs over the original bytes, never a re-cased copy.
	tests := []struct {
		name     string
		text     string
		wantText string
	}{
		{"uppercase dotted I prefix", "İİİİ I feel anxiety today", "anxiety"},
		{"case-shrinking rune prefix", "ȺȺ rehab", "rehab"},
		{"emoji prefix", "🙂🙂 saw the doctor", "doctor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanTopics(tt.text)
			if len(got) != 1 {
				t.Fatalf("expected 1 match, got %d: %+v", len(got), got)
			}
			m := got[0]
			if !m.Valid(len(tt.text)) {
				t.Fatalf("match %+v out of bounds for text length %d", m, len(tt.text))
			}
			if m.Text != tt.wantText {
				t.Errorf("expected text %q, got %q", tt.wantText, m.Text)
			}
			if tt.text[m.Start:m.End] != tt.wantText {
				t.Errorf("offsets [%d,%d) yield %q, want %q",
					m.Start, m.End, tt.text[m.Start:m.End], tt.wantText)
			}
		})
	}
}

func TestScanTopicsNoKeywords(t *testing.T) {
	if got := ScanTopics("went for a walk and made coffee"); got != nil {
		t.Errorf("expected no matches, got %+v", got)
	}
}

func TestTopicPrefixDistinguishesCategories(t *testing.T) {
	got := ScanTopics("the lawsuit drags on")
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if !strings.HasPrefix(got[0].Category, TopicPrefix) {
		t.Errorf("topic category %q missing prefix %q", got[0].Category, TopicPrefix)
	}
}

func TestTopicTableKeywordsAreLowercase(t *testing.T) {
	for _, topic := range topicTable {
		for _, keyword := range topic.keywords {
			if keyword != strings.ToLower(keyword) {
				t.Errorf("topic %q keyword %q is not lowercase", topic.name, keyword)
			}
		}
	}
}
