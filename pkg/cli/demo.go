package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/userform/pkg/cli/config"
	"github.com/secmon-lab/userform/pkg/domain/model"
	"github.com/secmon-lab/userform/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// demoForms holds one form that breaks two rules and one that passes all of them
var demoForms = []model.UserForm{
	{UserName: "a", Password: "password", Age: 30},
	{UserName: "Richard", Password: "S@@agie!", Age: 45},
}

func cmdDemo() *cli.Command {
	var rulesCfg config.Rules

	return &cli.Command{
		Name:  "demo",
		Usage: "Validate two sample forms and print the results",
		Flags: rulesCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			rules, err := rulesCfg.Configure(c)
			if err != nil {
				return goerr.Wrap(err, "failed to load validation rules")
			}

			uc := usecase.New(usecase.WithRules(rules))
			for _, form := range demoForms {
				if err := printOutcome(c.Root().Writer, uc.ValidateForm(ctx, form)); err != nil {
					return goerr.Wrap(err, "failed to print outcome")
				}
			}

			return nil
		},
	}
}
