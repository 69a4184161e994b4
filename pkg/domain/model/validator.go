package model

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/secmon-lab/userform/pkg/domain/types"
)

// FormValidator validates user forms against a fixed set of rules.
// It holds no mutable state and is safe for concurrent use.
type FormValidator struct {
	rules Rules
}

// NewFormValidator creates a new FormValidator with the given rules
func NewFormValidator(rules Rules) *FormValidator {
	return &FormValidator{
		rules: rules,
	}
}

var defaultValidator = NewFormValidator(DefaultRules())

// ValidateForm validates a form with the default rules
func ValidateForm(form UserForm) *Outcome {
	return defaultValidator.ValidateForm(form)
}

// Rules returns the thresholds in use
func (v *FormValidator) Rules() Rules {
	return v.rules
}

// ValidateUserName accepts names with at least MinNameLength characters
func (v *FormValidator) ValidateUserName(name string) (string, error) {
	if utf8.RuneCountInString(name) < v.rules.MinNameLength {
		return "", types.NameTooShort
	}
	return name, nil
}

// ValidatePassword accepts passwords with at least MinSpecialChars characters
// that are neither letters nor digits
func (v *FormValidator) ValidatePassword(password string) (string, error) {
	if countSpecialChars(password) < v.rules.MinSpecialChars {
		return "", types.PasswordNotStrongEnough
	}
	return password, nil
}

// ValidateAge accepts ages of at least MinAge
func (v *FormValidator) ValidateAge(age int) (int, error) {
	if age < v.rules.MinAge {
		return 0, types.TooYoung
	}
	return age, nil
}

// ValidateForm runs every field validator and collects all failures.
// A User is built only when no validator failed.
func (v *FormValidator) ValidateForm(form UserForm) *Outcome {
	var failures []types.ValidationError

	userName, err := v.ValidateUserName(form.UserName)
	failures = appendFailure(failures, err)

	password, err := v.ValidatePassword(form.Password)
	failures = appendFailure(failures, err)

	age, err := v.ValidateAge(form.Age)
	failures = appendFailure(failures, err)

	if len(failures) > 0 {
		return newInvalidOutcome(failures)
	}

	return newValidOutcome(User{
		userName: userName,
		password: password,
		age:      age,
	})
}

func appendFailure(failures []types.ValidationError, err error) []types.ValidationError {
	if err == nil {
		return failures
	}
	var ve types.ValidationError
	if errors.As(err, &ve) {
		return append(failures, ve)
	}
	return failures
}

func countSpecialChars(s string) int {
	return lo.CountBy([]rune(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
