package model

import "time"

// User is a registered account. Only the bcrypt hash of the password
// is ever kept in memory or persisted; the hash is excluded from JSON
// responses.
//
// Fields:
//  ID           – primary identifier.
//  Email        – unique login identifier.
//  Name         – optional display name.
//  PasswordHash – bcrypt hash of the password.
//  CreatedAt    – account creation timestamp (UTC).
type User struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
