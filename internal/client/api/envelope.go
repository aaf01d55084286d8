package api

import (
	"context"
	"encoding/json"
)

// Envelope is the {success, payload, message} wrapper every endpoint returns.
// success=false means the payload must be ignored and the message surfaced.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Payload T      `json:"payload"`
	Message string `json:"message,omitempty"`
}

// DecodeEnvelope parses an envelope body and returns its payload.
// A success=false envelope becomes an *Error carrying the envelope message
// and the response status, so consumers still observe a single error shape.
func DecodeEnvelope[T any](status int, body []byte) (T, error) {
	var env Envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		var zero T
		return zero, &Error{Message: "invalid server response", Status: &status, Details: err.Error()}
	}
	if !env.Success {
		var zero T
		message := env.Message
		if message == "" {
			message = fallbackMessage
		}
		return zero, &Error{Message: message, Status: &status}
	}
	return env.Payload, nil
}

// FetchPayload GETs path and unwraps the envelope payload. It is the fetch
// primitive behind every resource query.
func FetchPayload[T any](ctx context.Context, c *Client, path string) (T, error) {
	status, body, err := c.Get(ctx, path)
	if err != nil {
		var zero T
		return zero, err
	}
	return DecodeEnvelope[T](status, body)
}
