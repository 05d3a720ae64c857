package review

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple sentences",
			text: "I went out. It rained. I came back.",
			want: []string{"I went out.", "It rained.", "I came back."},
		},
		{
			name: "mixed terminators",
			text: "Really? Yes! Fine.",
			want: []string{"Really?", "Yes!", "Fine."},
		},
		{
			name: "terminator runs stay attached",
			text: "What?! No way... Okay.",
			want: []string{"What?!", "No way...", "Okay."},
		},
		{
			name: "trailing text without terminator",
			text: "First one. second has no period",
			want: []string{"First one.", "second has no period"},
		},
		{
			name: "single sentence",
			text: "Just one thought",
			want: []string{"Just one thought"},
		},
		{
			name: "whitespace only",
			text: "   \n\t  ",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "newlines inside sentences",
			text: "Line one\ncontinues here. Next one.",
			want: []string{"Line one\ncontinues here.", "Next one."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.text)
			if !reflect.DeepEqual(tt.want, got) {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
