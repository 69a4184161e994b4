package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/userform/pkg/cli/config"
	"github.com/secmon-lab/userform/pkg/domain/model"
	"github.com/secmon-lab/userform/pkg/utils/logging"
)

func TestLogger_Configure(t *testing.T) {
	orig := logging.Default()
	t.Cleanup(func() { logging.SetDefault(orig) })

	t.Run("json output masks password", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "app.log")
		cfg := config.NewLoggerForTest("debug", "json", logPath)

		closer, err := cfg.Configure()
		gt.NoError(t, err).Required()

		logging.Default().Info("validating",
			slog.Any("form", model.UserForm{UserName: "Richard", Password: "S@@agie!", Age: 45}),
		)
		closer()

		data, err := os.ReadFile(logPath)
		gt.NoError(t, err).Required()
		gt.String(t, string(data)).Contains("validating")
		gt.String(t, string(data)).Contains("Richard")
		gt.Bool(t, strings.Contains(string(data), "S@@agie!")).False()
	})

	t.Run("console output", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "console.log")
		cfg := config.NewLoggerForTest("info", "console", logPath)

		closer, err := cfg.Configure()
		gt.NoError(t, err).Required()
		logging.Default().Info("console message")
		closer()

		data, err := os.ReadFile(logPath)
		gt.NoError(t, err).Required()
		gt.String(t, string(data)).Contains("console message")
	})

	t.Run("invalid level", func(t *testing.T) {
		cfg := config.NewLoggerForTest("verbose", "json", "stderr")
		_, err := cfg.Configure()
		gt.Error(t, err).Is(config.ErrInvalidLogLevel)
	})

	t.Run("invalid format", func(t *testing.T) {
		cfg := config.NewLoggerForTest("info", "xml", "stderr")
		_, err := cfg.Configure()
		gt.Error(t, err).Is(config.ErrInvalidLogFormat)
	})

	t.Run("flags", func(t *testing.T) {
		var cfg config.Logger
		gt.Array(t, cfg.Flags()).Length(3)
	})
}
