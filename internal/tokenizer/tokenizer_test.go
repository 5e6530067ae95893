package tokenizer_test

import (
	"reflect"
	"testing"

	"github.com/deidaraiorek/launchboard/internal/tokenizer"
)

func TestTokenize(t *testing.T) {
	tok := tokenizer.NewTokenizer()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "basic text",
			input:    "The rocket reached orbit",
			expected: []string{"rocket", "reached", "orbit"},
		},
		{
			name:     "mission designator",
			input:    "Starlink-15 (v1.0)",
			expected: []string{"starlink-15", "starlink", "v1"},
		},
		{
			name:     "multi part designator",
			input:    "CRS-20 and Starlink-4-7",
			expected: []string{"crs-20", "crs", "starlink-4-7", "starlink"},
		},
		{
			name:     "numbers dropped",
			input:    "Flight 101 in 2020",
			expected: []string{"flight"},
		},
		{
			name:     "punctuation",
			input:    "Engine failure at T+25 seconds!",
			expected: []string{"engine", "failure", "seconds"},
		},
		{
			name:     "ampersand",
			input:    "Research&Development",
			expected: []string{"research", "development"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "only stop words",
			input:    "the and of it was",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tok.Tokenize(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsValidToken(t *testing.T) {
	tok := tokenizer.NewTokenizer()

	if tok.IsValidToken("2020") {
		t.Error("Expected digits-only token to be invalid")
	}
	if !tok.IsValidToken("v1") {
		t.Error("Expected mixed token to be valid")
	}
}
