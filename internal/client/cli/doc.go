// Package cli provides the interactive back-office command-line client.
//
// It wires configuration, the credential store, the API client and the
// polling query cache into an interactive REPL. Typical flow: restore the
// stored session, start background polling for the active lists, and
// execute user commands.
//
// Key features:
//   - Login / Logout with a persisted session credential
//   - Browse airports, ride options, bookings, employees and audit logs
//   - Create airports, ride options and employee accounts
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
