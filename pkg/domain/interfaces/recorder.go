package interfaces

import (
	"context"

	"github.com/secmon-lab/userform/pkg/domain/model"
)

// OutcomeRecorder receives every validation outcome produced by the use cases
type OutcomeRecorder interface {
	RecordOutcome(ctx context.Context, outcome *model.Outcome)
}
