package validation

import (
	"regexp"
	"strings"
)

// MaxTextLength caps the input text accepted for classification.
const MaxTextLength = 10000

// LabelPattern defines the valid label format: letters, digits, spaces,
// hyphens, underscores.
var LabelPattern = regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)

// ValidateText checks that input text is non-empty after trimming and within
// the length cap.
func ValidateText(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	return len(text) <= MaxTextLength
}

// ValidateLabel checks if a candidate label matches the allowed pattern.
func ValidateLabel(label string) bool {
	if label == "" || len(label) > 100 {
		return false
	}
	return LabelPattern.MatchString(label)
}

// NormalizeLabel lowercases and trims a label so label sets are
// case-insensitive.
func NormalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// SanitizeLabels filters a label list down to valid, normalized, de-duplicated
// entries. Returns nil when nothing survives so callers fall back to defaults.
func SanitizeLabels(labels []string) []string {
	if len(labels) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(labels))
	var out []string
	for _, l := range labels {
		n := NormalizeLabel(l)
		if !ValidateLabel(n) {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
