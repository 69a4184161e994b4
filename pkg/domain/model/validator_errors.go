package model

import "github.com/m-mizutani/goerr/v2"

// Validation errors
var (
	ErrInvalidUserForm = goerr.New("invalid user form")
	ErrInvalidRules    = goerr.New("invalid validation rules")
)

// Context keys for error values
const (
	CausesKey    = "causes"
	RuleKey      = "rule"
	RuleValueKey = "rule_value"
)
