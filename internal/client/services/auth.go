// Package services contains application services for the memo client.
// This file defines the authentication service: GitHub login through the
// proxy, the stored session and the cached user profile.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/reomoon/memo/internal/client/client"
	"github.com/reomoon/memo/internal/client/models"
	"github.com/reomoon/memo/internal/client/repositories/storage"
	"github.com/reomoon/memo/internal/common"
	"github.com/reomoon/memo/internal/logging"
)

// ErrNotLoggedIn is returned when no session is stored or the server no
// longer knows it.
var ErrNotLoggedIn = errors.New("not logged in")

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - LoginURL: ask the proxy for the provider authorization URL.
//   - CompleteLogin: exchange a one-time code and persist the session.
//   - CurrentUser: resolve the stored session; a rejected session is dropped.
//   - Logout: end the session on the server and always forget it locally.
//   - Ping: check server liveness.
type AuthService interface {
	LoginURL(ctx context.Context, redirect string) (string, error)
	CompleteLogin(ctx context.Context, code string) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

// authService is the concrete AuthService backed by the proxy client and the
// client key-value storage.
type authService struct {
	client client.Client
	repo   storage.Repository
	logger logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and storage.
func NewAuthService(c client.Client, repo storage.Repository, logger logging.Logger) AuthService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &authService{client: c, repo: repo, logger: logger}
}

func (a *authService) LoginURL(ctx context.Context, redirect string) (string, error) {
	u, err := a.client.AuthURL(ctx, redirect)
	if err != nil {
		return "", fmt.Errorf("auth url error: %w", err)
	}
	return u, nil
}

// CompleteLogin exchanges code for a session and stores the session id and
// the user profile in a single write.
func (a *authService) CompleteLogin(ctx context.Context, code string) (*models.User, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", common.ErrorValidation)
	}

	s, err := a.client.ExchangeCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.saveSession(ctx, s.ID, &s.User); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return &s.User, nil
}

func (a *authService) saveSession(ctx context.Context, sessionID string, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return a.repo.Atomic(ctx, func(ctx context.Context, r storage.Repository) error {
		if err := r.Set(ctx, common.SessionIDKey, []byte(sessionID)); err != nil {
			return err
		}
		return r.Set(ctx, common.UserKey, raw)
	})
}

func (a *authService) clearSession(ctx context.Context) error {
	return a.repo.Atomic(ctx, func(ctx context.Context, r storage.Repository) error {
		if err := r.Delete(ctx, common.SessionIDKey); err != nil {
			return err
		}
		return r.Delete(ctx, common.UserKey)
	})
}

func (a *authService) sessionID(ctx context.Context) (string, error) {
	v, err := a.repo.Get(ctx, common.SessionIDKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (a *authService) cachedUser(ctx context.Context) *models.User {
	raw, err := a.repo.Get(ctx, common.UserKey)
	if err != nil || len(raw) == 0 {
		return nil
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil
	}
	return &u
}

// CurrentUser asks the server who owns the stored session. A rejected
// session is removed from storage. When the server cannot be reached the
// cached profile is returned instead.
func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	id, err := a.sessionID(ctx)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrNotLoggedIn
	}

	u, err := a.client.CurrentUser(ctx, id)
	switch {
	case err == nil:
		if err := a.saveSession(ctx, id, u); err != nil {
			a.logger.Warn(ctx, "failed to refresh cached user", "error", err)
		}
		return u, nil

	case errors.Is(err, client.ErrUnauthorized):
		if err := a.clearSession(ctx); err != nil {
			return nil, err
		}
		return nil, ErrNotLoggedIn

	case errors.Is(err, client.ErrUnavailable):
		if cached := a.cachedUser(ctx); cached != nil {
			a.logger.Warn(ctx, "server unavailable, using cached user", "error", err)
			return cached, nil
		}
		return nil, err

	default:
		return nil, err
	}
}

// Logout tells the server to drop the session and forgets it locally even
// when the server call fails.
func (a *authService) Logout(ctx context.Context) error {
	id, err := a.sessionID(ctx)
	if err != nil {
		return err
	}
	if id != "" {
		if err := a.client.Logout(ctx, id); err != nil {
			a.logger.Warn(ctx, "server logout failed", "error", err)
		}
	}
	return a.clearSession(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
