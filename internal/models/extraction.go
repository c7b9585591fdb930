package models

import (
	"time"

	"github.com/google/uuid"
)

// Extraction outcome constants
const (
	OutcomeExtracted = "extracted"
	OutcomeEmpty     = "empty"
	OutcomeFailed    = "failed"
)

// Extraction represents one successful keyword extraction stored in history.
type Extraction struct {
	ID         uuid.UUID  `json:"id"`
	SessionID  string     `json:"session_id"`
	UserID     *uuid.UUID `json:"user_id"`
	InputText  string     `json:"input_text"`
	Topics     []Topic    `json:"topics"`
	TopicCount int        `json:"topic_count"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Snippet returns the input text truncated for list display.
func (e *Extraction) Snippet() string {
	const max = 120
	runes := []rune(e.InputText)
	if len(runes) <= max {
		return e.InputText
	}
	return string(runes[:max]) + "…"
}

// TopicStat represents a per-topic extraction count by outcome.
type TopicStat struct {
	Topic      string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
