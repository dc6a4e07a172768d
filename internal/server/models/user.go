// Package models defines the persistent entities of the backend.
package models

import "time"

// User is an account record. PasswordHash is a bcrypt hash and is only ever
// set through the password package; the raw password is never stored.
type User struct {
	ID           int64
	Nickname     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
