package cli

import (
	"io"

	"github.com/secmon-lab/userform/pkg/domain/model"
)

// PrintOutcome exposes printOutcome for testing
func PrintOutcome(w io.Writer, outcome *model.Outcome) error {
	return printOutcome(w, outcome)
}

// DemoForms exposes the forms validated by the demo command
func DemoForms() []model.UserForm {
	return demoForms
}
