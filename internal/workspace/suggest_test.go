package workspace

import (
	"reflect"
	"testing"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		candidates []string
		want       []string
	}{
		{
			name:       "close typo",
			query:      "feature-prevew",
			candidates: []string{"feature-preview", "bugfix"},
			want:       []string{"feature-preview"},
		},
		{
			name:       "case insensitive",
			query:      "ALPHA",
			candidates: []string{"alpha", "beta"},
			want:       []string{"alpha"},
		},
		{
			name:       "substring fallback",
			query:      "fix",
			candidates: []string{"hotfix-login", "feature-preview"},
			want:       []string{"hotfix-login"},
		},
		{
			name:       "no candidates",
			query:      "anything",
			candidates: nil,
			want:       nil,
		},
		{
			name:       "nothing close",
			query:      "zzzzzzzz",
			candidates: []string{"alpha", "beta"},
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.query, tt.candidates)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Suggest(%q, %v) = %v, want %v", tt.query, tt.candidates, got, tt.want)
			}
		})
	}
}

func TestSuggest_atMostThree(t *testing.T) {
	candidates := []string{"alpha1", "alpha2", "alpha3", "alpha4", "alpha5"}
	got := Suggest("alpha0", candidates)
	if len(got) > maxSuggestions {
		t.Errorf("Suggest() returned %d suggestions, want at most %d", len(got), maxSuggestions)
	}
}

func TestSuggest_substringCapped(t *testing.T) {
	candidates := []string{"x-review-1", "x-review-2", "x-review-3", "x-review-4"}
	got := Suggest("review", candidates)
	if len(got) > maxSuggestions {
		t.Errorf("substring fallback returned %d suggestions, want at most %d", len(got), maxSuggestions)
	}
}
