package state

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmuwanga/ohns-backoffice/internal/client/models"
)

func TestNew_StartsLoading(t *testing.T) {
	app := New()
	require.True(t, app.Loading())
	require.Nil(t, app.User())
}

func TestBootstrap_RestoresSession(t *testing.T) {
	app := New()
	app.Bootstrap(context.Background(), func(ctx context.Context) (*models.AuthUser, error) {
		return &models.AuthUser{ID: "u1", Name: "Asha"}, nil
	})

	require.False(t, app.Loading())
	require.NotNil(t, app.User())
	require.Equal(t, "u1", app.User().ID)
}

func TestBootstrap_FailureSettlesLoggedOut(t *testing.T) {
	var calls atomic.Int32
	fetch := func(ctx context.Context) (*models.AuthUser, error) {
		calls.Add(1)
		return nil, errors.New("no session")
	}

	app := New()
	app.Bootstrap(context.Background(), fetch)

	require.False(t, app.Loading())
	require.Nil(t, app.User())
	require.Equal(t, int32(1), calls.Load())
}

func TestSetUser_LoginAndLogout(t *testing.T) {
	app := New()
	app.Bootstrap(context.Background(), func(ctx context.Context) (*models.AuthUser, error) {
		return nil, errors.New("no session")
	})

	app.SetUser(&models.AuthUser{ID: "u1"})
	require.Equal(t, "u1", app.User().ID)

	app.SetUser(nil)
	require.Nil(t, app.User())
}
