// Package common contains shared constants and small helpers used across
// the back-office client.
package common

// SessionIDKey is the fixed key under which the session credential is kept
// in the secure key-value store. At most one value lives under it at a time.
const SessionIDKey = "sessionId"

// SessionHeaderName is the HTTP header that carries the session credential
// on every outbound request. It is the only mechanism by which authentication
// is propagated to the server.
const SessionHeaderName = "x-session-id"

// RequestIDHeaderName carries a client-generated id used to correlate
// request and response log lines with server-side diagnostics.
const RequestIDHeaderName = "x-request-id"
