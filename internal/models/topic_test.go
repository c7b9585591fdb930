package models

import (
	"strings"
	"testing"
)

func TestConfidencePercent(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected string
	}{
		{name: "example AI score", score: 0.92, expected: "92.0%"},
		{name: "example healthcare score", score: 0.81, expected: "81.0%"},
		{name: "zero", score: 0, expected: "0.0%"},
		{name: "full confidence", score: 1, expected: "100.0%"},
		{name: "three decimals truncate to one", score: 0.876, expected: "87.6%"},
		{name: "small score", score: 0.123, expected: "12.3%"},
		{name: "three decimal score", score: 0.654, expected: "65.4%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic := Topic{Topic: "x", ConfidenceScore: tt.score}
			if got := topic.ConfidencePercent(); got != tt.expected {
				t.Errorf("ConfidencePercent(%v) = %q, want %q", tt.score, got, tt.expected)
			}
		})
	}
}

func TestExtractionSnippet(t *testing.T) {
	short := Extraction{InputText: "short text"}
	if got := short.Snippet(); got != "short text" {
		t.Errorf("Snippet() = %q", got)
	}

	long := Extraction{InputText: strings.Repeat("a", 200)}
	got := long.Snippet()
	if len([]rune(got)) != 121 { // 120 runes + ellipsis
		t.Errorf("Snippet() length = %d runes, want 121", len([]rune(got)))
	}
}
