package cli

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/secmon-lab/userform/pkg/domain/model"
)

var (
	validColor   = color.New(color.FgGreen)
	invalidColor = color.New(color.FgRed)
)

// printOutcome writes one line describing the outcome
func printOutcome(w io.Writer, outcome *model.Outcome) error {
	if user, ok := outcome.User(); ok {
		_, err := validColor.Fprintf(w, "Getting a fully validated User: %s\n", user)
		return err
	}

	_, err := invalidColor.Fprintf(w, "There were errors validating the UserForm:[%s]\n",
		strings.Join(outcome.Causes(), ", "))
	return err
}
