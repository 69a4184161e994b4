package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/userform/pkg/cli"
	"github.com/secmon-lab/userform/pkg/cli/config"
	"github.com/secmon-lab/userform/pkg/domain/model"
)

func TestRun_ValidateCommand_ValidForm(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"userform", "validate",
		"--name", "Richard",
		"--password", "S@@agie!",
		"--age", "45",
	}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_InvalidForm(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"userform", "validate",
		"--name", "a",
		"--password", "password",
		"--age", "30",
	}, "test")
	gt.Error(t, err).Is(model.ErrInvalidUserForm)
}

func TestRun_ValidateCommand_EmptyForm(t *testing.T) {
	err := cli.Run(context.Background(), []string{"userform", "validate"}, "test")
	gt.Error(t, err).Is(model.ErrInvalidUserForm)
}

func TestRun_ValidateCommand_RulesFlags(t *testing.T) {
	// a single character name passes when the minimum is lowered
	err := cli.Run(context.Background(), []string{
		"userform", "validate",
		"--name", "a",
		"--password", "S@@agie!",
		"--age", "45",
		"--min-name-length", "1",
	}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_RulesFile(t *testing.T) {
	rulesPath := filepath.Join(t.TempDir(), "rules.toml")
	content := `
[age]
min = 50
`
	gt.NoError(t, os.WriteFile(rulesPath, []byte(content), 0o600)).Required()

	err := cli.Run(context.Background(), []string{
		"userform", "validate",
		"--name", "Richard",
		"--password", "S@@agie!",
		"--age", "45",
		"--rules", rulesPath,
	}, "test")
	gt.Error(t, err).Is(model.ErrInvalidUserForm)
}

func TestRun_ValidateCommand_MissingRulesFile(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"userform", "validate",
		"--name", "Richard",
		"--password", "S@@agie!",
		"--age", "45",
		"--rules", filepath.Join(t.TempDir(), "missing.toml"),
	}, "test")
	gt.Error(t, err).Is(config.ErrConfigNotFound)
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"userform", "--log-level", "loud", "demo",
	}, "test")
	gt.Error(t, err).Is(config.ErrInvalidLogLevel)
}
