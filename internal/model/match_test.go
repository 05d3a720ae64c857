package model

import "testing"

func TestMatchValid(t *testing.T) {
	tests := []struct {
		name    string
		match   Match
		textLen int
		want    bool
	}{
		{"in bounds", Match{Start: 0, End: 5}, 10, true},
		{"exactly fills text", Match{Start: 0, End: 10}, 10, true},
		{"negative start", Match{Start: -1, End: 5}, 10, false},
		{"zero width", Match{Start: 3, End: 3}, 10, false},
		{"inverted", Match{Start: 5, End: 2}, 10, false},
		{"past end", Match{Start: 0, End: 11}, 10, false},
		{"empty text", Match{Start: 0, End: 1}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.match.Valid(tt.textLen); got != tt.want {
				t.Errorf("Valid(%d) = %v, want %v", tt.textLen, got, tt.want)
			}
		})
	}
}

func TestPrivacyTagReviewed(t *testing.T) {
	tests := []struct {
		status TagStatus
		want   bool
	}{
		{TagUnreviewed, false},
		{TagAccepted, true},
		{TagDismissed, true},
	}

	for _, tt := range tests {
		tag := PrivacyTag{Status: tt.status}
		if got := tag.Reviewed(); got != tt.want {
			t.Errorf("Reviewed() with status %q = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestValidPrivacyLevel(t *testing.T) {
	if !ValidPrivacyLevel(LevelPublic) || !ValidPrivacyLevel(LevelPrivate) {
		t.Error("known levels must validate")
	}
	if ValidPrivacyLevel("secret") || ValidPrivacyLevel("") {
		t.Error("unknown levels must not validate")
	}
}
