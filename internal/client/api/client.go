package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmuwanga/ohns-backoffice/internal/client/keystore"
	"github.com/dmuwanga/ohns-backoffice/internal/common"
	"github.com/dmuwanga/ohns-backoffice/internal/logging"
)

// Client performs all HTTP calls against the back-office API.
type Client struct {
	baseURL string
	hc      *http.Client
	store   keystore.Store
	log     logging.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying transport (test seam).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithTimeout bounds every call end to end.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.hc.Timeout = d }
}

// New builds a Client for the given base URL. The store supplies the session
// credential attached to every request; callers never set auth themselves.
func New(baseURL string, store keystore.Store, log logging.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
		store:   store,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do performs one API call and returns the status and raw body. Every
// failure comes back as a *Error; no raw transport error escapes.
func (c *Client) Do(ctx context.Context, method, path string, body io.Reader, contentType string) (int, []byte, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		c.log.Error(ctx, "api request not sent", "method", method, "url", url, "error", err)
		return 0, nil, newRequestError(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	var token string
	found, err := c.store.Get(ctx, common.SessionIDKey, &token)
	switch {
	case err != nil:
		// the request still goes out, just unauthenticated
		c.log.Warn(ctx, "session credential read failed", "error", err)
	case found && token != "":
		req.Header.Set(common.SessionHeaderName, token)
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	log := c.log.With("method", method, "url", url, "request_id", requestID)
	log.Debug(ctx, "api request")

	resp, err := c.hc.Do(req)
	if err != nil {
		log.Error(ctx, "no response from server", "error", err)
		return 0, nil, newNoResponseError()
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(ctx, "response read failed", "error", err)
		return 0, nil, newNoResponseError()
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := newServerError(resp.StatusCode, serverMessage(data), decodeDetails(data))
		log.Error(ctx, "api error", "status", resp.StatusCode, "message", apiErr.Message)
		return resp.StatusCode, nil, apiErr
	}

	log.Debug(ctx, "api response", "status", resp.StatusCode)
	return resp.StatusCode, data, nil
}

// Get issues a GET request against path.
func (c *Client) Get(ctx context.Context, path string) (int, []byte, error) {
	return c.Do(ctx, http.MethodGet, path, nil, "")
}

// Delete issues a DELETE request against path.
func (c *Client) Delete(ctx context.Context, path string) (int, []byte, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, "")
}

// PostJSON POSTs payload as a JSON body.
func (c *Client) PostJSON(ctx context.Context, path string, payload any) (int, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, newRequestError(err)
	}
	return c.Do(ctx, http.MethodPost, path, bytes.NewReader(data), "application/json")
}

// serverMessage pulls the message field out of an error response body.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}

// decodeDetails keeps the decoded error body for diagnostics; nil when the
// body is not JSON.
func decodeDetails(body []byte) any {
	var details any
	if err := json.Unmarshal(body, &details); err != nil {
		return nil
	}
	return details
}
