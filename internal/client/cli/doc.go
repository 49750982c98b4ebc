// Package cli provides the interactive memo command-line client.
//
// It wires configuration, client-local storage, the memo store, the view
// controller and the proxy API into an App, and exposes it both as an
// interactive REPL and as one-shot cobra subcommands.
//
// Key features:
//   - List / page / filter memos by category
//   - Add / edit / delete memos, with AI generated titles and categories
//   - Lock memos with a 4-digit code; unlock and copy bodies
//   - GitHub login through the proxy server
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, NewRootCommand, and runREPL for details.
package cli
