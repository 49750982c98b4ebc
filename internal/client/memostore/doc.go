// Package memostore owns the memo collection of the CLI.
//
// The whole collection is held in memory in newest-first order and written
// back to the key-value storage as one JSON array under the "memos" key after
// every mutation. Queries (Page, TotalPages, Categories) work on the in-memory
// copy; Page and TotalPages honor the current category filter.
//
// A Store is not safe for concurrent use. The CLI drives it from a single
// goroutine.
package memostore
