package models

import "time"

// Session binds an opaque token to the GitHub identity that created it.
type Session struct {
	Token       string
	AccessToken string
	User        User
	CreatedAt   time.Time
}
