package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/secmon-lab/userform/pkg/domain/model"
	"github.com/secmon-lab/userform/pkg/utils/logging"
)

// ValidateForm validates a user form, logs the result and hands the outcome
// to the configured recorder. Invalid input is reported in the outcome, never
// as an error.
func (uc *UseCases) ValidateForm(ctx context.Context, form model.UserForm) *model.Outcome {
	logger := logging.From(ctx).With(slog.String(ValidationIDKey, uuid.NewString()))
	logger.Debug("validating user form", slog.Any("form", form))

	outcome := uc.validator.ValidateForm(form)

	if user, ok := outcome.User(); ok {
		logger.Info("user form is valid",
			"user_name", user.UserName(),
			"age", user.Age(),
		)
	} else {
		logger.Warn("user form is invalid",
			"user_name", form.UserName,
			"causes", outcome.Causes(),
		)
	}

	if uc.recorder != nil {
		uc.recorder.RecordOutcome(ctx, outcome)
	}

	return outcome
}
