// Package services contains server-side business logic: the GitHub OAuth
// session flow and the AI text operations.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/reomoon/memo/internal/common"
	"github.com/reomoon/memo/internal/logging"
	"github.com/reomoon/memo/internal/server/models"
	"github.com/reomoon/memo/internal/server/repositories/sessions"
)

var (
	// ErrMissingParams is returned when the code or the OAuth app
	// credentials are missing.
	ErrMissingParams = fmt.Errorf("%w: missing code or client credentials", common.ErrorValidation)

	// ErrAuthFailed is returned when GitHub issues no access token for a code.
	ErrAuthFailed = fmt.Errorf("%w: authentication failed", common.ErrorValidation)
)

// OAuthProvider is the identity provider the AuthService delegates to.
type OAuthProvider interface {
	Configured() bool
	AuthCodeURL(redirect string) string
	Exchange(ctx context.Context, code string) (string, error)
	User(ctx context.Context, accessToken string) (*models.User, error)
}

// AuthService issues opaque session tokens for GitHub identities.
type AuthService struct {
	provider        OAuthProvider
	sessions        sessions.Repository
	defaultRedirect string
	logger          logging.Logger

	now      func() time.Time
	newToken func() string
}

// NewAuthService constructs an AuthService. defaultRedirect is used when a
// caller asks for the authorization URL without a redirect.
func NewAuthService(p OAuthProvider, repo sessions.Repository, defaultRedirect string, logger logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &AuthService{
		provider:        p,
		sessions:        repo,
		defaultRedirect: defaultRedirect,
		logger:          logger.With("module", "auth_service"),
		now:             time.Now,
		newToken:        uuid.NewString,
	}
}

// AuthURL returns the provider authorization URL for redirect.
func (s *AuthService) AuthURL(redirect string) string {
	if strings.TrimSpace(redirect) == "" {
		redirect = s.defaultRedirect
	}
	return s.provider.AuthCodeURL(redirect)
}

// Login exchanges code for an access token, reads the profile and stores a
// new session.
func (s *AuthService) Login(ctx context.Context, code string) (*models.Session, error) {
	if strings.TrimSpace(code) == "" || !s.provider.Configured() {
		return nil, ErrMissingParams
	}

	accessToken, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to exchange code: %w", common.ErrorUpstream, err)
	}
	if accessToken == "" {
		return nil, ErrAuthFailed
	}

	user, err := s.provider.User(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get user: %w", common.ErrorUpstream, err)
	}

	session := &models.Session{
		Token:       s.newToken(),
		AccessToken: accessToken,
		User:        *user,
		CreatedAt:   s.now(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: failed to store session: %w", common.ErrorInternal, err)
	}

	s.logger.Info(ctx, "session created", "login", user.Login)
	return session, nil
}

// CurrentUser returns the identity behind token, or common.ErrorUnauthorized.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, common.ErrorUnauthorized
	}
	session, err := s.sessions.Find(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("%w: failed to find session: %w", common.ErrorInternal, err)
	}
	return &session.User, nil
}

// Logout removes the session. Unknown or empty tokens are not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("%w: failed to delete session: %w", common.ErrorInternal, err)
	}
	return nil
}
