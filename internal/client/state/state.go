// Package state holds the client-side session state shared by the UI: the
// authenticated user, if any, and whether the initial session restore is
// still in flight.
package state

import (
	"context"
	"sync"

	"github.com/dmuwanga/ohns-backoffice/internal/client/models"
)

// App is the in-memory session state. It starts in the loading phase and
// settles after Bootstrap runs, whatever the outcome.
type App struct {
	mu      sync.RWMutex
	user    *models.AuthUser
	loading bool
}

func New() *App {
	return &App{loading: true}
}

// Bootstrap attempts to restore the session once. A stored credential that
// the server accepts yields the authenticated user; any failure leaves the
// app logged out. The attempt is never retried, so the UI always settles.
func (a *App) Bootstrap(ctx context.Context, fetch func(context.Context) (*models.AuthUser, error)) {
	user, err := fetch(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err == nil {
		a.user = user
	}
	a.loading = false
}

// User returns the authenticated user, or nil while loading or logged out.
func (a *App) User() *models.AuthUser {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

// SetUser records a login or, with nil, a logout.
func (a *App) SetUser(u *models.AuthUser) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = u
}

// Loading reports whether the initial session restore is still in flight.
func (a *App) Loading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loading
}
