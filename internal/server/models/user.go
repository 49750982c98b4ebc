// Package models defines the server-side data shapes shared by the session
// stores, services and HTTP layer.
package models

// User is the public GitHub profile kept with a session.
type User struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
}
