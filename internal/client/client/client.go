package client

import (
	"context"

	"github.com/reomoon/memo/internal/client/models"
)

// Session is what the auth proxy returns after a successful code exchange.
type Session struct {
	ID   string
	User models.User
}

// Client is the memo proxy API as seen by the CLI.
type Client interface {
	Ping(ctx context.Context) error

	GenerateTitle(ctx context.Context, body string) (string, error)
	Summarize(ctx context.Context, body string) (string, error)
	ClassifyCategory(ctx context.Context, text string) (string, error)

	AuthURL(ctx context.Context, redirect string) (string, error)
	ExchangeCode(ctx context.Context, code string) (*Session, error)
	CurrentUser(ctx context.Context, sessionID string) (*models.User, error)
	Logout(ctx context.Context, sessionID string) error
}
