package classifier

// FallbackMessage is shown when a failed call carries no server message.
const FallbackMessage = "Failed to extract keywords. Please try again."

// RequestError is the single user-visible error kind for classification
// calls. Network errors, non-2xx responses, and malformed bodies all collapse
// into it; only the message differs.
type RequestError struct {
	StatusCode int   // 0 for transport-level failures
	Err        error // underlying cause, for logging
	Message    string
}

// Error returns the user-visible message.
func (e *RequestError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause.
func (e *RequestError) Unwrap() error {
	return e.Err
}

func requestError(status int, message string, cause error) *RequestError {
	if message == "" {
		message = FallbackMessage
	}
	return &RequestError{StatusCode: status, Message: message, Err: cause}
}
