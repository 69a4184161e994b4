package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/userform/pkg/cli/config"
	"github.com/secmon-lab/userform/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func runRules(t *testing.T, args ...string) (model.Rules, error) {
	t.Helper()

	var cfg config.Rules
	var got model.Rules
	cmd := &cli.Command{
		Name:  "test",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			rules, err := cfg.Configure(c)
			if err != nil {
				return err
			}
			got = rules
			return nil
		},
	}

	err := cmd.Run(context.Background(), append([]string{"test"}, args...))
	return got, err
}

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

func TestRules_Configure(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		rules, err := runRules(t)
		gt.NoError(t, err).Required()
		gt.Value(t, rules).Equal(model.DefaultRules())
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeRules(t, `
[name]
min_length = 3

[age]
min = 21
`)
		rules, err := runRules(t, "--rules", path)
		gt.NoError(t, err).Required()
		gt.Value(t, rules).Equal(model.Rules{
			MinNameLength:   3,
			MinSpecialChars: model.DefaultMinSpecialChars,
			MinAge:          21,
		})
	})

	t.Run("flag overrides file", func(t *testing.T) {
		path := writeRules(t, `
[password]
min_special_chars = 4

[age]
min = 21
`)
		rules, err := runRules(t, "--rules", path, "--min-age", "16")
		gt.NoError(t, err).Required()
		gt.Value(t, rules.MinSpecialChars).Equal(4)
		gt.Value(t, rules.MinAge).Equal(16)
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nonexistent.toml")
		_, err := runRules(t, "--rules", path)
		gt.Error(t, err).Is(config.ErrConfigNotFound)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeRules(t, `[name`)
		_, err := runRules(t, "--rules", path)
		gt.Error(t, err).Is(config.ErrInvalidConfig)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeRules(t, `
[name]
max_length = 10
`)
		_, err := runRules(t, "--rules", path)
		gt.Error(t, err).Is(config.ErrInvalidConfig)
	})

	t.Run("negative threshold", func(t *testing.T) {
		_, err := runRules(t, "--min-name-length=-1")
		gt.Error(t, err).Is(model.ErrInvalidRules)
	})
}
