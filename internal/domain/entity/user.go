// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// EpochSentinel is the fixed timestamp assigned to records created with
// autoTimestamp disabled. It keeps the registration flow deterministic in
// tests without mocking a clock.
var EpochSentinel = time.Unix(0, 0).UTC()

// User is the full persisted representation of an account, including the
// password digest. It is owned by the user store; other layers hold only
// transient copies passed across the repository boundary.
type User struct {
	ID           int64     // Store-assigned identifier. Zero until the record is inserted.
	Username     string    // Unique login name across all records.
	PasswordHash string    // One-way salted digest. Never the plaintext.
	CreatedAt    time.Time // Timestamp supplied by the caller at creation.
	UpdatedAt    time.Time // Timestamp supplied by the caller at the last modification.
}

// NewUser builds an unpersisted User with no assigned ID. When autoTimestamp
// is true both timestamps are set to the current wall-clock time, otherwise
// to EpochSentinel.
func NewUser(username, passwordHash string, autoTimestamp bool) *User {
	now := EpochSentinel
	if autoTimestamp {
		now = time.Now().UTC()
	}

	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// PublicUser is the caller-safe projection of a User. It never carries the
// password digest.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Public maps the record to its caller-safe projection. The receiver must
// already have a store-assigned ID; calling Public on an unpersisted record
// is a programming error, not a recoverable runtime condition.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:       u.ID,
		Username: u.Username,
	}
}
