package types

import "github.com/m-mizutani/goerr/v2"

// ValidationError is the closed set of reasons a user form can be rejected.
// The zero value is not a valid variant.
type ValidationError string

const (
	NameTooShort            ValidationError = "NAME_TOO_SHORT"
	PasswordNotStrongEnough ValidationError = "PASSWORD_NOT_STRONG_ENOUGH"
	TooYoung                ValidationError = "TOO_YOUNG"
)

var validationCauses = map[ValidationError]string{
	NameTooShort:            "Name is too short",
	PasswordNotStrongEnough: "Password is not strong enough",
	TooYoung:                "User should be older than 18",
}

// AllValidationErrors returns every variant in field-check order
func AllValidationErrors() []ValidationError {
	return []ValidationError{
		NameTooShort,
		PasswordNotStrongEnough,
		TooYoung,
	}
}

// IsValid checks if the variant belongs to the closed set
func (e ValidationError) IsValid() bool {
	switch e {
	case NameTooShort,
		PasswordNotStrongEnough,
		TooYoung:
		return true
	default:
		return false
	}
}

// Cause returns the human readable message shown to users
func (e ValidationError) Cause() string {
	if cause, ok := validationCauses[e]; ok {
		return cause
	}
	return "Unknown validation error"
}

// Code returns the stable machine readable identifier
func (e ValidationError) Code() string {
	return string(e)
}

// String returns the string representation of the variant
func (e ValidationError) String() string {
	return string(e)
}

// Error implements error so a variant can be carried through error returns.
func (e ValidationError) Error() string {
	return e.Cause()
}

// ParseValidationError parses a code into a ValidationError
func ParseValidationError(code string) (ValidationError, error) {
	v := ValidationError(code)
	if !v.IsValid() {
		return "", goerr.New("invalid validation error code", goerr.V("code", code))
	}
	return v, nil
}
