package cli

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/academicnav/internal/common"
)

// describeError turns a command error into the message shown to the user.
func describeError(err error) string {
	switch {
	case errors.Is(err, common.ErrNotLoggedIn):
		return "Please log in to continue."
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, common.ErrDuplicateAccount):
		return "An account with this email already exists."
	case errors.Is(err, common.ErrForbidden):
		return "Only instructors can do that."
	case errors.Is(err, common.ErrIndexOutOfRange):
		return "No such assignment. Type 'assignments' to see the list."
	case errors.Is(err, common.ErrValidation):
		return capitalize(strings.TrimPrefix(err.Error(), common.ErrValidation.Error()+": ")) + "."
	default:
		return "Error: " + err.Error()
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
