package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/userform/pkg/cli/config"
	"github.com/secmon-lab/userform/pkg/domain/model"
	"github.com/secmon-lab/userform/pkg/usecase"
	"github.com/secmon-lab/userform/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var form model.UserForm
	var rulesCfg config.Rules

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "name",
			Aliases:     []string{"n"},
			Usage:       "User name to validate",
			Destination: &form.UserName,
		},
		&cli.StringFlag{
			Name:        "password",
			Aliases:     []string{"p"},
			Usage:       "Password to validate",
			Sources:     cli.EnvVars("USERFORM_PASSWORD"),
			Destination: &form.Password,
		},
		&cli.IntFlag{
			Name:        "age",
			Aliases:     []string{"a"},
			Usage:       "Age to validate",
			Destination: &form.Age,
		},
	}
	flags = append(flags, rulesCfg.Flags()...)

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a single user form and print every failed rule",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			rules, err := rulesCfg.Configure(c)
			if err != nil {
				return goerr.Wrap(err, "failed to load validation rules")
			}
			logging.Default().Debug("Validation rules loaded", "rules", rulesCfg)

			uc := usecase.New(usecase.WithRules(rules))
			outcome := uc.ValidateForm(ctx, form)

			if err := printOutcome(c.Root().Writer, outcome); err != nil {
				return goerr.Wrap(err, "failed to print outcome")
			}

			return outcome.Err()
		},
	}
}
