package model

import (
	"fmt"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/samber/lo"
	"github.com/secmon-lab/userform/pkg/domain/types"
)

// UserForm is the unvalidated input record supplied by a caller
type UserForm struct {
	UserName string `json:"user_name"`
	Password string `json:"password" masq:"secret"`
	Age      int    `json:"age"`
}

// User is a user whose name, password and age all passed validation.
// It can only be obtained from a valid Outcome.
type User struct {
	userName string
	password string
	age      int
}

// UserName returns the validated user name
func (u User) UserName() string { return u.userName }

// Password returns the validated password
func (u User) Password() string { return u.password }

// Age returns the validated age
func (u User) Age() int { return u.age }

// String renders the user without its password
func (u User) String() string {
	return fmt.Sprintf("User(userName=%s, age=%d)", u.userName, u.age)
}

// Outcome is the result of validating a UserForm: either a User or a
// non-empty list of failures ordered by field (name, password, age).
// Outcomes are produced only by FormValidator.ValidateForm. The zero value
// holds neither a User nor failures and reports itself as invalid.
type Outcome struct {
	user   *User
	errors []types.ValidationError
}

func newValidOutcome(user User) *Outcome {
	return &Outcome{user: &user}
}

func newInvalidOutcome(errs []types.ValidationError) *Outcome {
	return &Outcome{errors: errs}
}

// IsValid returns true if every field rule passed
func (o *Outcome) IsValid() bool {
	return o.user != nil
}

// User returns the validated user. The second value is false for an invalid outcome.
func (o *Outcome) User() (User, bool) {
	if o.user == nil {
		return User{}, false
	}
	return *o.user, true
}

// Errors returns a copy of the failures in field-check order. It is empty for a valid outcome.
func (o *Outcome) Errors() []types.ValidationError {
	return slices.Clone(o.errors)
}

// Causes returns the display message of each failure
func (o *Outcome) Causes() []string {
	return lo.Map(o.errors, func(e types.ValidationError, _ int) string {
		return e.Cause()
	})
}

// Err returns nil for a valid outcome, otherwise ErrInvalidUserForm carrying the causes.
func (o *Outcome) Err() error {
	if o.IsValid() {
		return nil
	}
	return goerr.Wrap(ErrInvalidUserForm, "user form validation failed",
		goerr.V(CausesKey, o.Causes()))
}
