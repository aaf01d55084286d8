package api

import "fmt"

const (
	fallbackMessage   = "Something went wrong"
	noResponseMessage = "No response from server. Please try again."
)

// Error is the single normalized shape all API failures are converted to
// before reaching application code.
//
// Exactly one of three cases constructs it:
//   - the server responded with an error status: Status and Details are set,
//     Message carries the server-supplied message or a generic fallback;
//   - the request was sent but no response arrived: Status is nil and
//     Message is a generic connectivity message;
//   - the request was never sent: Status is nil and Message carries the
//     underlying cause.
type Error struct {
	Message string
	Status  *int
	Details any
}

func (e *Error) Error() string {
	if e.Status != nil {
		return fmt.Sprintf("api error (status %d): %s", *e.Status, e.Message)
	}
	return fmt.Sprintf("api error: %s", e.Message)
}

func newServerError(status int, message string, details any) *Error {
	if message == "" {
		message = fallbackMessage
	}
	return &Error{Message: message, Status: &status, Details: details}
}

func newNoResponseError() *Error {
	return &Error{Message: noResponseMessage}
}

func newRequestError(err error) *Error {
	return &Error{Message: err.Error()}
}
