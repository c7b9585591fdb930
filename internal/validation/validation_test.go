package validation

import (
	"reflect"
	"strings"
	"testing"
)

func TestValidateText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{name: "plain sentence", text: "Artificial intelligence is transforming healthcare.", expected: true},
		{name: "empty", text: "", expected: false},
		{name: "whitespace only", text: "   \t\n ", expected: false},
		{name: "single character", text: "a", expected: true},
		{name: "at length cap", text: strings.Repeat("a", MaxTextLength), expected: true},
		{name: "over length cap", text: strings.Repeat("a", MaxTextLength+1), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateText(tt.text); got != tt.expected {
				t.Errorf("ValidateText(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected bool
	}{
		{name: "simple label", label: "technology", expected: true},
		{name: "with space", label: "machine learning", expected: true},
		{name: "with hyphen and digits", label: "web3-stuff", expected: true},
		{name: "empty", label: "", expected: false},
		{name: "semicolon", label: "bad;label", expected: false},
		{name: "too long", label: strings.Repeat("a", 101), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateLabel(tt.label); got != tt.expected {
				t.Errorf("ValidateLabel(%q) = %v, want %v", tt.label, got, tt.expected)
			}
		})
	}
}

func TestSanitizeLabels(t *testing.T) {
	tests := []struct {
		name     string
		labels   []string
		expected []string
	}{
		{
			name:     "nil stays nil",
			labels:   nil,
			expected: nil,
		},
		{
			name:     "trims lowercases and dedupes",
			labels:   []string{" Sports ", "sports", "SPORTS"},
			expected: []string{"sports"},
		},
		{
			name:     "drops invalid entries",
			labels:   []string{"finance", "bad;label", ""},
			expected: []string{"finance"},
		},
		{
			name:     "all invalid returns nil",
			labels:   []string{"", ";;;"},
			expected: nil,
		},
		{
			name:     "preserves order",
			labels:   []string{"b-label", "a-label"},
			expected: []string{"b-label", "a-label"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeLabels(tt.labels); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SanitizeLabels(%v) = %v, want %v", tt.labels, got, tt.expected)
			}
		})
	}
}
