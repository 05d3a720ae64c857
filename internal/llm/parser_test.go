package llm

import (
	"testing"
)

func TestParseFindings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Finding
	}{
		{
			name:    "single finding",
			content: "PersonName|Sarah",
			want:    []Finding{{Category: "PersonName", Text: "Sarah"}},
		},
		{
			name:    "multiple findings",
			content: "PersonName|Sarah\nHealth|migraine diagnosis",
			want: []Finding{
				{Category: "PersonName", Text: "Sarah"},
				{Category: "Health", Text: "migraine diagnosis"},
			},
		},
		{
			name:    "none response",
			content: "NONE",
			want:    nil,
		},
		{
			name:    "none is case insensitive",
			content: "none",
			want:    nil,
		},
		{
			name:    "surrounding whitespace trimmed",
			content: "  PersonName | Sarah  \n",
			want:    []Finding{{Category: "PersonName", Text: "Sarah"}},
		},
		{
			name:    "pipe inside matched text survives",
			content: "Quote|she said \"yes | no\"",
			want:    []Finding{{Category: "Quote", Text: `she said "yes | no"`}},
		},
		{
			name:    "malformed lines skipped not fatal",
			content: "Here are the findings:\nPersonName|Sarah\nthanks!",
			want:    []Finding{{Category: "PersonName", Text: "Sarah"}},
		},
		{
			name:    "empty category skipped",
			content: "|Sarah",
			want:    nil,
		},
		{
			name:    "empty matched text skipped",
			content: "PersonName|",
			want:    nil,
		},
		{
			name:    "blank lines ignored",
			content: "\n\nPersonName|Sarah\n\n",
			want:    []Finding{{Category: "PersonName", Text: "Sarah"}},
		},
		{
			name:    "none mixed with findings does not stop parsing",
			content: "NONE\nPersonName|Sarah",
			want:    []Finding{{Category: "PersonName", Text: "Sarah"}},
		},
		{
			name:    "empty content",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFindings(tt.content)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d findings, got %d: %+v", len(tt.want), len(got), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("finding %d: expected %+v, got %+v", i, tt.want[i], got[i])
				}
			}
		})
	}
}
