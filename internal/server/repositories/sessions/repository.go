// Package sessions declares the session repository contract and its
// in-memory and PostgreSQL implementations.
package sessions

import (
	"context"

	"github.com/reomoon/memo/internal/server/models"
)

// Repository stores sessions by their opaque token.
type Repository interface {
	// Create stores s under s.Token.
	Create(ctx context.Context, s *models.Session) error

	// Find returns the session for token, or common.ErrorNotFound.
	Find(ctx context.Context, token string) (*models.Session, error)

	// Delete removes the session for token. Deleting a missing token is not
	// an error.
	Delete(ctx context.Context, token string) error
}
