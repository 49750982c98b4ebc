package common

// SessionHeaderName is the HTTP header carrying the opaque session token.
const SessionHeaderName = "x-session-id"

// Storage keys used in client-local key-value storage.
const (
	MemosKey     = "memos"
	SessionIDKey = "sessionId"
	UserKey      = "user"
)
