// Package validation checks the shape of user input before any state is
// touched. Every failure wraps common.ErrValidation.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/academicnav/internal/common"
)

// MinSecretLength is the shortest accepted secret, counted in UTF-16 code
// units as browsers count string length.
const MinSecretLength = 4

// space matches the characters a browser regexp treats as \s: ASCII
// whitespace including \v, Unicode separators and the BOM.
const space = `\s\v\p{Z}\x{FEFF}`

var emailPattern = regexp.MustCompile(`^[^` + space + `@]+@[^` + space + `@]+\.[^` + space + `@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("portalemail", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("secretlen", func(fl validator.FieldLevel) bool {
		return SecretLength(fl.Field().String()) >= MinSecretLength
	}); err != nil {
		panic(err)
	}
	return v
}

// SecretLength returns the length of s in UTF-16 code units, so characters
// outside the Basic Multilingual Plane count twice.
func SecretLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// IsValidEmail reports whether s looks like local@domain.tld with no
// whitespace and a single '@' per part.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Registration is the input of account creation. Name and Email are
// expected to be trimmed by the caller; Secret is taken verbatim.
type Registration struct {
	Name   string `validate:"required"`
	Email  string `validate:"required,portalemail"`
	Secret string `validate:"required,secretlen"`
	Role   string `validate:"required,oneof=student instructor"`
}

// Login is the input of authentication.
type Login struct {
	Email  string `validate:"required"`
	Secret string `validate:"required"`
}

// Reflection is a weekly reflection submission. Text is expected trimmed.
type Reflection struct {
	Week int    `validate:"min=1,max=3"`
	Text string `validate:"required"`
}

// StatusUpdate is the new status of an assignment.
type StatusUpdate struct {
	Status string `validate:"required"`
}

// Check validates v and returns nil or an error wrapping
// common.ErrValidation with a user-facing message.
func Check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	// missing input is reported before malformed input
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return fmt.Errorf("%w: %s", common.ErrValidation, requiredMessage(v))
		}
	}
	return fmt.Errorf("%w: %s", common.ErrValidation, message(verrs[0]))
}

func requiredMessage(v any) string {
	switch v.(type) {
	case Login, *Login:
		return "please enter both email and password"
	case Reflection, *Reflection:
		return "please enter some text before submitting"
	case StatusUpdate, *StatusUpdate:
		return "please choose a status"
	default:
		return "please fill in all fields"
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "portalemail":
		return "please enter a valid email address"
	case "secretlen":
		return fmt.Sprintf("password must be at least %d characters", MinSecretLength)
	case "min":
		return "week must be between 1 and 3"
	case "max":
		return "week must be between 1 and 3"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", strings.ToLower(fe.Field()), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field()))
	}
}
