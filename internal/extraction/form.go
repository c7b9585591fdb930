// Package extraction implements the submit/render contract of the keyword
// extraction form: draft input, last results, last error, and an in-flight
// flag with single-flight submission.
package extraction

import (
	"context"
	"errors"
	"strings"
	"sync"

	"topiclens/internal/classifier"
	"topiclens/internal/models"
)

// EmptyInputMessage is shown when the form is submitted without text.
const EmptyInputMessage = "Please enter some text."

// Extractor performs one classification call. Satisfied by
// *classifier.Service.
type Extractor interface {
	Extract(ctx context.Context, text string, labels []string) ([]models.Topic, error)
}

// State is the serializable snapshot of a form, persisted in the session
// between requests.
type State struct {
	Input  string         `json:"input"`
	Topics []models.Topic `json:"topics"`
	Error  string         `json:"error"`
}

// Form owns the four pieces of extraction state. All fields start
// empty/false and live for the form's lifetime.
type Form struct {
	mu        sync.Mutex
	extractor Extractor

	input  string
	topics []models.Topic
	errMsg string
	busy   bool
}

// NewForm creates an empty form backed by the given extractor.
func NewForm(extractor Extractor) *Form {
	return &Form{extractor: extractor}
}

// SetInput updates the draft input text. Not reset on submit.
func (f *Form) SetInput(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input = text
}

// Input returns the current draft input text.
func (f *Form) Input() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

// Topics returns the last successful result list.
func (f *Form) Topics() []models.Topic {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.topics
}

// Error returns the last error message, empty when none.
func (f *Form) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Busy reports whether a submission is outstanding. The form's controls are
// disabled exactly while this is true.
func (f *Form) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

// State snapshots the form for persistence.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{Input: f.input, Topics: f.topics, Error: f.errMsg}
}

// Restore loads a previously snapshotted state.
func (f *Form) Restore(st State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input = st.Input
	f.topics = st.Topics
	f.errMsg = st.Error
}

// Submit runs one extraction attempt with the current input.
//
// Empty (after trimming) input sets the validation message and performs no
// call, leaving prior results untouched. Otherwise the error and results are
// cleared, one call is issued with the raw input, and the outcome replaces
// the results (success) or sets the error message (failure). Results are not
// rolled back on failure. A submit while one is outstanding is a no-op.
func (f *Form) Submit(ctx context.Context) {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return
	}

	if strings.TrimSpace(f.input) == "" {
		f.errMsg = EmptyInputMessage
		f.mu.Unlock()
		return
	}

	f.errMsg = ""
	f.topics = []models.Topic{}
	f.busy = true
	text := f.input
	f.mu.Unlock()

	topics, err := f.extractor.Extract(ctx, text, nil)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false

	if err != nil {
		f.errMsg = errorMessage(err)
		return
	}
	if topics == nil {
		topics = []models.Topic{}
	}
	f.topics = topics
}

// errorMessage collapses any failure into one user-visible string: the
// server-supplied message when present, otherwise the fixed fallback.
func errorMessage(err error) string {
	var reqErr *classifier.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return classifier.FallbackMessage
}
