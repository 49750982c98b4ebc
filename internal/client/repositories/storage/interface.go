package storage

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error

	// Atomic runs fn against a repository whose writes are committed together
	// when the backend supports transactions, and applied one by one otherwise.
	Atomic(ctx context.Context, fn func(ctx context.Context, r Repository) error) error
}
