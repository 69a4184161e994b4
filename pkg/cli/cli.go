package cli

import (
	"context"
	"errors"

	"github.com/secmon-lab/userform/pkg/cli/config"
	"github.com/secmon-lab/userform/pkg/domain/model"
	"github.com/secmon-lab/userform/pkg/utils/errutil"
	"github.com/secmon-lab/userform/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string, version string) error {
	var loggerCfg config.Logger
	var sentryCfg config.Sentry
	var closers []func()
	// closers run after the error is handled so that reported errors are
	// flushed to Sentry before the process exits
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	var flags []cli.Flag
	flags = append(flags, loggerCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	app := &cli.Command{
		Name:    "userform",
		Usage:   "Validate user sign up forms and report every failed rule",
		Version: version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closers = append(closers, f)

			flush, err := sentryCfg.Configure(version)
			if err != nil {
				return ctx, err
			}
			closers = append(closers, flush)

			logging.Default().Debug("Starting userform",
				"logger", loggerCfg,
				"sentry", sentryCfg,
			)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdValidate(),
			cmdDemo(),
			cmdServe(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		// an invalid form is a result, not a failure of the program
		if errors.Is(err, model.ErrInvalidUserForm) {
			return err
		}
		return errutil.Handle(ctx, err, "failed to run app")
	}

	return nil
}
