package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmuwanga/ohns-backoffice/internal/client/api"
	"github.com/dmuwanga/ohns-backoffice/internal/client/keystore"
	"github.com/dmuwanga/ohns-backoffice/internal/client/models"
	"github.com/dmuwanga/ohns-backoffice/internal/common"
	"github.com/dmuwanga/ohns-backoffice/internal/logging"
)

const (
	loginFailedMessage  = "Login failed"
	logoutFailedMessage = "Logout failed"
)

// Auth coordinates the session lifecycle: credential exchange on login,
// session revocation on logout, and the authenticated-user fetch.
type Auth struct {
	api   *api.Client
	store keystore.Store
	log   logging.Logger
}

func NewAuth(apiClient *api.Client, store keystore.Store, log logging.Logger) *Auth {
	return &Auth{api: apiClient, store: store, log: log}
}

// LoginResult is the discriminated outcome of a login attempt: either User
// is set, or Err carries the server-reported message. Both are expected,
// recoverable outcomes the UI branches on; only transport failures are
// returned as errors.
type LoginResult struct {
	User *models.AuthUser
	Err  string
}

func (r LoginResult) OK() bool { return r.Err == "" }

// LogoutResult mirrors LoginResult for logout.
type LogoutResult struct {
	Err string
}

func (r LogoutResult) OK() bool { return r.Err == "" }

type loginInput struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,e164"`
	Password    string `json:"password" validate:"required"`
}

type loginPayload struct {
	User      *models.AuthUser `json:"user"`
	SessionID string           `json:"sessionId"`
}

// Login exchanges credentials for a session. On a 200 with success=true and
// both user and session token present, the token is persisted under the
// fixed session key and the user is returned. Rejections come back in
// LoginResult.Err; any transport-level failure is a *api.Error.
func (a *Auth) Login(ctx context.Context, phoneNumber, password string) (LoginResult, error) {
	in := loginInput{PhoneNumber: phoneNumber, Password: password}
	if err := validate.Struct(in); err != nil {
		// reported locally, no network side effect
		return LoginResult{Err: "Invalid phone number or password format"}, nil
	}

	status, body, err := a.api.PostJSON(ctx, "/auth/employees/login", in)
	if err != nil {
		return LoginResult{}, err
	}

	if status != http.StatusOK {
		// an unexpected 2xx still carries an envelope worth surfacing
		var env api.Envelope[json.RawMessage]
		if jerr := json.Unmarshal(body, &env); jerr == nil && env.Message != "" {
			return LoginResult{Err: env.Message}, nil
		}
		return LoginResult{Err: loginFailedMessage}, nil
	}

	var env api.Envelope[loginPayload]
	if err := json.Unmarshal(body, &env); err != nil {
		return LoginResult{Err: loginFailedMessage}, nil
	}
	if !env.Success {
		if env.Message != "" {
			return LoginResult{Err: env.Message}, nil
		}
		return LoginResult{Err: loginFailedMessage}, nil
	}
	if env.Payload.User == nil || env.Payload.SessionID == "" {
		return LoginResult{Err: loginFailedMessage}, nil
	}

	if err := a.store.Set(ctx, common.SessionIDKey, env.Payload.SessionID); err != nil {
		return LoginResult{}, fmt.Errorf("persist session credential: %w", err)
	}

	a.log.Info(ctx, "logged in", "user_id", env.Payload.User.ID)
	return LoginResult{User: env.Payload.User}, nil
}

// Logout revokes the remote session, then deletes the local credential
// regardless of the remote outcome. Fail-open-to-logged-out is deliberate:
// the device must end up unauthenticated even when the server is
// unreachable. Success is reported only for the expected 204.
func (a *Auth) Logout(ctx context.Context) (LogoutResult, error) {
	status, body, err := a.api.Delete(ctx, "/auth/logout")

	if derr := a.store.Delete(ctx, common.SessionIDKey); derr != nil {
		a.log.Error(ctx, "failed to clear session credential", "error", derr)
	}

	if err != nil {
		return LogoutResult{}, err
	}
	if status != http.StatusNoContent {
		var env api.Envelope[json.RawMessage]
		if jerr := json.Unmarshal(body, &env); jerr == nil && env.Message != "" {
			return LogoutResult{Err: env.Message}, nil
		}
		return LogoutResult{Err: logoutFailedMessage}, nil
	}

	a.log.Info(ctx, "logged out")
	return LogoutResult{}, nil
}

// CurrentUser fetches the profile behind the stored session credential.
// Used once at startup to decide the authenticated vs unauthenticated view.
func (a *Auth) CurrentUser(ctx context.Context) (*models.AuthUser, error) {
	return api.FetchPayload[*models.AuthUser](ctx, a.api, "/auth/employees")
}
