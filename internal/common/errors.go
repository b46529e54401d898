// Package common defines sentinel errors and small helpers shared across the
// portal. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Input-shape errors: empty fields, malformed email, short secret,
	// blank reflection, week out of range.
	ErrValidation = errors.New("validation error")

	// Registration with an email that is already taken.
	ErrDuplicateAccount = errors.New("account already exists")

	// Login failure. Unknown email and wrong secret are deliberately
	// indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Assignment reference outside the assignment list.
	ErrIndexOutOfRange = errors.New("assignment index out of range")

	// Operation requires an active session.
	ErrNotLoggedIn = errors.New("not logged in")

	// Operation is reserved for another role.
	ErrForbidden = errors.New("not permitted")
)
