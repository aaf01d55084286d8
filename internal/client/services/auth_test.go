package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmuwanga/ohns-backoffice/internal/client/api"
	"github.com/dmuwanga/ohns-backoffice/internal/common"
)

func storedToken(t *testing.T, store interface {
	Get(ctx context.Context, key string, v any) (bool, error)
}) (string, bool) {
	t.Helper()
	var token string
	found, err := store.Get(context.Background(), common.SessionIDKey, &token)
	require.NoError(t, err)
	return token, found
}

func TestLogin_Success_PersistsTokenAndReturnsUser(t *testing.T) {
	var sessionHeader atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/employees/login":
			body, _ := io.ReadAll(r.Body)
			var in map[string]string
			require.NoError(t, json.Unmarshal(body, &in))
			require.Equal(t, "+256782000000", in["phoneNumber"])
			require.Equal(t, "password123", in["password"])

			_, _ = io.WriteString(w, `{"success":true,"payload":{"user":{"id":"u1","name":"Asha","phoneNumber":"+256782000000","type":"admin"},"sessionId":"s1"}}`)
		case "/auth/employees":
			sessionHeader.Store(r.Header.Get(common.SessionHeaderName))
			_, _ = io.WriteString(w, `{"success":true,"payload":{"id":"u1","name":"Asha","type":"admin"}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	store := testStore(t)
	auth := NewAuth(testAPI(t, srv.URL, store), store, testLogger())

	res, err := auth.Login(context.Background(), "+256782000000", "password123")
	require.NoError(t, err)
	require.True(t, res.OK())
	require.NotNil(t, res.User)
	require.Equal(t, "u1", res.User.ID)

	token, found := storedToken(t, store)
	require.True(t, found)
	require.Equal(t, "s1", token)

	// subsequent calls carry the session header
	_, err = auth.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, "s1", sessionHeader.Load())
}

func TestLogin_ServerRejection_ReturnsResultNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":false,"message":"Invalid credentials"}`)
	}))
	defer srv.Close()

	store := testStore(t)
	auth := NewAuth(testAPI(t, srv.URL, store), store, testLogger())

	res, err := auth.Login(context.Background(), "+256782000000", "wrong")
	require.NoError(t, err)
	require.False(t, res.OK())
	require.Equal(t, "Invalid credentials", res.Err)
	require.Nil(t, res.User)

	_, found := storedToken(t, store)
	require.False(t, found)
}

func TestLogin_MissingTokenInPayload_Fails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"payload":{"user":{"id":"u1"}}}`)
	}))
	defer srv.Close()

	store := testStore(t)
	auth := NewAuth(testAPI(t, srv.URL, store), store, testLogger())

	res, err := auth.Login(context.Background(), "+256782000000", "password123")
	require.NoError(t, err)
	require.Equal(t, "Login failed", res.Err)

	_, found := storedToken(t, store)
	require.False(t, found)
}

func TestLogin_UnexpectedStatus_SurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = io.WriteString(w, `{"success":false,"message":"Account pending approval"}`)
	}))
	defer srv.Close()

	store := testStore(t)
	auth := NewAuth(testAPI(t, srv.URL, store), store, testLogger())

	res, err := auth.Login(context.Background(), "+256782000000", "password123")
	require.NoError(t, err)
	require.Equal(t, "Account pending approval", res.Err)

	_, found := storedToken(t, store)
	require.False(t, found)
}

func TestLogin_UnexpectedStatusWithoutMessage_Fails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	store := testStore(t)
	auth := NewAuth(testAPI(t, srv.URL, store), store, testLogger())

	res, err := auth.Login(context.Background(), "+256782000000", "password123")
	require.NoError(t, err)
	require.Equal(t, "Login failed", res.Err)
}

func TestLogin_TransportFailure_PropagatesNormalizedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"success":false,"message":"Unauthorized"}`)
	}))
	defer srv.Close()

	store := testStore(t)
	auth := NewAuth(testAPI(t, srv.URL, store), store, testLogger())

	_, err := auth.Login(context.Background(), "+256782000000", "password123")

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, *apiErr.Status)

	_, found := storedToken(t, store)
	require.False(t, found)
}

func TestLogin_InvalidPhoneNumber_NoNetworkCall(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	store := testStore(t)
	auth := NewAuth(testAPI(t, srv.URL, store), store, testLogger())

	res, err := auth.Login(context.Background(), "0782 not a phone", "password123")
	require.NoError(t, err)
	require.False(t, res.OK())
	require.Equal(t, int32(0), hits.Load())
}

func TestLogout_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/auth/logout", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	store := testStore(t)
	require.NoError(t, store.Set(context.Background(), common.SessionIDKey, "s1"))
	auth := NewAuth(testAPI(t, srv.URL, store), store, testLogger())

	res, err := auth.Logout(context.Background())
	require.NoError(t, err)
	require.True(t, res.OK())

	_, found := storedToken(t, store)
	require.False(t, found)
}

func TestLogout_ServerError_StillClearsLocalCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := testStore(t)
	require.NoError(t, store.Set(context.Background(), common.SessionIDKey, "s1"))
	auth := NewAuth(testAPI(t, srv.URL, store), store, testLogger())

	_, err := auth.Logout(context.Background())
	require.Error(t, err)

	// fail-open-to-logged-out: the device is unauthenticated regardless
	_, found := storedToken(t, store)
	require.False(t, found)
}

func TestLogout_ServerUnreachable_StillClearsLocalCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	store := testStore(t)
	require.NoError(t, store.Set(context.Background(), common.SessionIDKey, "s1"))
	auth := NewAuth(testAPI(t, srv.URL, store), store, testLogger())

	_, err := auth.Logout(context.Background())
	require.Error(t, err)

	_, found := storedToken(t, store)
	require.False(t, found)
}

func TestLogout_UnexpectedStatus_ReturnsServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":false,"message":"Session already revoked"}`)
	}))
	defer srv.Close()

	store := testStore(t)
	require.NoError(t, store.Set(context.Background(), common.SessionIDKey, "s1"))
	auth := NewAuth(testAPI(t, srv.URL, store), store, testLogger())

	res, err := auth.Logout(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Session already revoked", res.Err)

	_, found := storedToken(t, store)
	require.False(t, found)
}
