// Package client contains client-side building blocks for the memo CLI.
//
// # Overview
//
// The package provides:
//  1. The proxy API contract (see the Client interface): title generation,
//     summarization, category classification, and the GitHub login handshake.
//  2. A JSON-over-HTTP implementation (see HTTPClient) that sends the session
//     token in the x-session-id header and maps HTTP status codes to
//     sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Callers match failures with errors.Is: ErrUnavailable (transport),
// ErrUnauthorized (401/403), ErrBadRequest (other 4xx), ErrUpstream (5xx).
//
// All operations accept context.Context and honor cancellation/timeouts.
package client
