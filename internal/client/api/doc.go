// Package api is the single point of egress for all server communication.
//
// # Overview
//
// The package provides:
//  1. A Client bound to a fixed base URL. Before every outgoing call it reads
//     the session credential from the keystore and, when present, attaches it
//     as the x-session-id header; no cookie or embedded-token scheme exists.
//  2. Error normalization: every failure is converted into exactly one *Error
//     shape before it reaches a caller. Raw transport errors never escape
//     this package.
//  3. The response Envelope every endpoint wraps its payload in, with generic
//     helpers to unwrap it.
//  4. JSON and multipart request bodies (multipart is used wherever a photo
//     accompanies the form).
//
// # Error Handling
//
// Callers match failures with errors.As against *Error and branch on its
// Status / Message. The three construction cases are: server responded with
// an error status, request sent but no response received, and request never
// sent.
//
// Every request and response (or error) is logged with method, URL, status
// and a generated request id; logging has no effect on control flow.
package api
