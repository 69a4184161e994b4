package model

import "github.com/m-mizutani/goerr/v2"

// Default thresholds
const (
	DefaultMinNameLength   = 2
	DefaultMinSpecialChars = 2
	DefaultMinAge          = 18
)

// Rules holds the thresholds applied by FormValidator. All bounds are inclusive.
type Rules struct {
	MinNameLength   int
	MinSpecialChars int
	MinAge          int
}

// DefaultRules returns the standard thresholds
func DefaultRules() Rules {
	return Rules{
		MinNameLength:   DefaultMinNameLength,
		MinSpecialChars: DefaultMinSpecialChars,
		MinAge:          DefaultMinAge,
	}
}

// Validate checks if the thresholds are usable
func (r Rules) Validate() error {
	if r.MinNameLength < 0 {
		return goerr.Wrap(ErrInvalidRules, "minimum name length must not be negative",
			goerr.V(RuleKey, "min_name_length"), goerr.V(RuleValueKey, r.MinNameLength))
	}
	if r.MinSpecialChars < 0 {
		return goerr.Wrap(ErrInvalidRules, "minimum special characters must not be negative",
			goerr.V(RuleKey, "min_special_chars"), goerr.V(RuleValueKey, r.MinSpecialChars))
	}
	if r.MinAge < 0 {
		return goerr.Wrap(ErrInvalidRules, "minimum age must not be negative",
			goerr.V(RuleKey, "min_age"), goerr.V(RuleValueKey, r.MinAge))
	}
	return nil
}
