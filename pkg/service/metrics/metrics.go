// Package metrics exports Prometheus counters for user form validation.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/secmon-lab/userform/pkg/domain/model"
	"github.com/secmon-lab/userform/pkg/domain/types"
)

const namespace = "userform"

// Result label values
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
)

// Metrics holds the validation counters.
//
//   - validations_total{result}: one per ValidateForm call
//   - validation_errors_total{code}: one per reported failure
type Metrics struct {
	Validations      *prometheus.CounterVec
	ValidationErrors *prometheus.CounterVec
}

// New creates the counters and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Total number of user form validations by result",
		}, []string{"result"}),
		ValidationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_errors_total",
			Help:      "Total number of validation failures by error code",
		}, []string{"code"}),
	}

	// expose every series from the start so rates work before the first failure
	m.Validations.WithLabelValues(ResultValid)
	m.Validations.WithLabelValues(ResultInvalid)
	for _, e := range types.AllValidationErrors() {
		m.ValidationErrors.WithLabelValues(e.Code())
	}

	return m
}

// RecordOutcome implements interfaces.OutcomeRecorder
func (m *Metrics) RecordOutcome(_ context.Context, outcome *model.Outcome) {
	if outcome.IsValid() {
		m.Validations.WithLabelValues(ResultValid).Inc()
		return
	}

	m.Validations.WithLabelValues(ResultInvalid).Inc()
	for _, e := range outcome.Errors() {
		m.ValidationErrors.WithLabelValues(e.Code()).Inc()
	}
}
