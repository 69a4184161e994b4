package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/userform/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Rules holds CLI flags for validation thresholds
type Rules struct {
	path            string
	minNameLength   int
	minSpecialChars int
	minAge          int
}

type rulesFile struct {
	Name struct {
		MinLength *int `toml:"min_length"`
	} `toml:"name"`
	Password struct {
		MinSpecialChars *int `toml:"min_special_chars"`
	} `toml:"password"`
	Age struct {
		Min *int `toml:"min"`
	} `toml:"age"`
}

// Flags returns CLI flags for rules configuration
func (r *Rules) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "rules",
			Category:    "Rules",
			Usage:       "Path to TOML file with validation thresholds",
			Sources:     cli.EnvVars("USERFORM_RULES"),
			Destination: &r.path,
		},
		&cli.IntFlag{
			Name:        "min-name-length",
			Category:    "Rules",
			Usage:       "Minimum number of characters in a user name",
			Value:       model.DefaultMinNameLength,
			Sources:     cli.EnvVars("USERFORM_MIN_NAME_LENGTH"),
			Destination: &r.minNameLength,
		},
		&cli.IntFlag{
			Name:        "min-special-chars",
			Category:    "Rules",
			Usage:       "Minimum number of non alphanumeric characters in a password",
			Value:       model.DefaultMinSpecialChars,
			Sources:     cli.EnvVars("USERFORM_MIN_SPECIAL_CHARS"),
			Destination: &r.minSpecialChars,
		},
		&cli.IntFlag{
			Name:        "min-age",
			Category:    "Rules",
			Usage:       "Minimum age of a user",
			Value:       model.DefaultMinAge,
			Sources:     cli.EnvVars("USERFORM_MIN_AGE"),
			Destination: &r.minAge,
		},
	}
}

// LogValue implements slog.LogValuer
func (r Rules) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", r.path),
		slog.Int("min_name_length", r.minNameLength),
		slog.Int("min_special_chars", r.minSpecialChars),
		slog.Int("min_age", r.minAge),
	)
}

// Configure resolves the thresholds. Defaults are overridden by the rules file,
// which is in turn overridden by flags that were set explicitly.
func (r *Rules) Configure(c *cli.Command) (model.Rules, error) {
	rules := model.DefaultRules()

	if r.path != "" {
		if err := loadRulesFile(r.path, &rules); err != nil {
			return model.Rules{}, err
		}
	}

	if c.IsSet("min-name-length") {
		rules.MinNameLength = r.minNameLength
	}
	if c.IsSet("min-special-chars") {
		rules.MinSpecialChars = r.minSpecialChars
	}
	if c.IsSet("min-age") {
		rules.MinAge = r.minAge
	}

	if err := rules.Validate(); err != nil {
		return model.Rules{}, goerr.Wrap(err, "invalid rules configuration",
			goerr.V(ConfigPathKey, r.path))
	}

	return rules, nil
}

func loadRulesFile(path string, rules *model.Rules) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return goerr.Wrap(ErrConfigNotFound, "rules file not found",
				goerr.V(ConfigPathKey, path))
		}
		return goerr.Wrap(err, "failed to read rules file",
			goerr.V(ConfigPathKey, path))
	}

	var f rulesFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return goerr.Wrap(ErrInvalidConfig, "failed to parse rules file",
			goerr.V(ConfigPathKey, path), goerr.V("error", err.Error()))
	}

	if f.Name.MinLength != nil {
		rules.MinNameLength = *f.Name.MinLength
	}
	if f.Password.MinSpecialChars != nil {
		rules.MinSpecialChars = *f.Password.MinSpecialChars
	}
	if f.Age.Min != nil {
		rules.MinAge = *f.Age.Min
	}

	return nil
}
