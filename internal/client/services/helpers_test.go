package services

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmuwanga/ohns-backoffice/internal/client/api"
	"github.com/dmuwanga/ohns-backoffice/internal/client/keystore"
	"github.com/dmuwanga/ohns-backoffice/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}

func testStore(t *testing.T) keystore.Store {
	t.Helper()
	s, err := keystore.OpenFile(t.TempDir())
	require.NoError(t, err)
	return s
}

func testAPI(t *testing.T, baseURL string, store keystore.Store) *api.Client {
	t.Helper()
	return api.New(baseURL, store, testLogger(), api.WithHTTPClient(&http.Client{}))
}
