// Package models defines the data models of the academic portal: accounts,
// sessions, per-user records and the derived progress report.
package models

import (
	"strings"
	"time"
)

// Role is the self-declared role chosen at registration.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
)

// Account is a registered identity. Accounts are never mutated or deleted
// once stored.
type Account struct {
	// ID is a time-ordered unique identifier.
	ID string `json:"id"`

	Name  string `json:"name"`
	Email string `json:"email"`

	// SecretHash is the hex-encoded one-way hash of the secret.
	SecretHash string `json:"password"`
	// Salt is the hex-encoded per-account salt used to compute SecretHash.
	Salt string `json:"salt"`

	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// FirstName returns the first whitespace-separated token of the name.
func (a Account) FirstName() string {
	fields := strings.Fields(a.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Session is the single authenticated identity of the running process.
// It holds a read-only copy of the account.
type Session struct {
	Account Account
}

// AccountID is a nil-safe accessor for the session owner.
func (s *Session) AccountID() string {
	if s == nil {
		return ""
	}
	return s.Account.ID
}
