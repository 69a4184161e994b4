package usecase

import (
	"github.com/secmon-lab/userform/pkg/domain/interfaces"
	"github.com/secmon-lab/userform/pkg/domain/model"
)

// UseCases validates user forms and reports every outcome to the recorder
type UseCases struct {
	rules     model.Rules
	validator *model.FormValidator
	recorder  interfaces.OutcomeRecorder
}

// Option configures UseCases
type Option func(*UseCases)

// WithRules replaces the default validation thresholds
func WithRules(rules model.Rules) Option {
	return func(uc *UseCases) {
		uc.rules = rules
	}
}

// WithRecorder sets the recorder that receives each outcome
func WithRecorder(recorder interfaces.OutcomeRecorder) Option {
	return func(uc *UseCases) {
		uc.recorder = recorder
	}
}

// New creates UseCases. Without options it uses the default rules and records nothing.
func New(opts ...Option) *UseCases {
	uc := &UseCases{
		rules: model.DefaultRules(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.validator = model.NewFormValidator(uc.rules)

	return uc
}

// Rules returns the thresholds the use cases validate with
func (uc *UseCases) Rules() model.Rules {
	return uc.rules
}
