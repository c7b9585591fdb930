package models

import "fmt"

// Topic represents a single scored keyword returned by the classifier.
type Topic struct {
	Topic           string  `json:"topic"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// ConfidencePercent formats the confidence score as a percentage with one
// decimal place, e.g. 0.92 -> "92.0%".
func (t Topic) ConfidencePercent() string {
	return fmt.Sprintf("%.1f%%", t.ConfidenceScore*100)
}
