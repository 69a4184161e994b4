package config

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Sentry holds CLI flags for error reporting
type Sentry struct {
	dsn string
	env string
}

// Flags returns CLI flags for Sentry configuration
func (s *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Category:    "Sentry",
			Usage:       "Sentry DSN for error reporting (disabled if empty)",
			Sources:     cli.EnvVars("USERFORM_SENTRY_DSN"),
			Destination: &s.dsn,
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Category:    "Sentry",
			Usage:       "Sentry environment",
			Value:       "development",
			Sources:     cli.EnvVars("USERFORM_SENTRY_ENV"),
			Destination: &s.env,
		},
	}
}

// IsEnabled returns true if a DSN is configured
func (s *Sentry) IsEnabled() bool {
	return s.dsn != ""
}

// LogValue implements slog.LogValuer. The DSN is not logged.
func (s Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("enabled", s.dsn != ""),
		slog.String("env", s.env),
	)
}

// Configure initializes the Sentry client. It returns a flush function that
// should be called before the process exits. Without a DSN it does nothing.
func (s *Sentry) Configure(release string) (func(), error) {
	if !s.IsEnabled() {
		return func() {}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         s.dsn,
		Environment: s.env,
		Release:     release,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to initialize sentry", goerr.V("env", s.env))
	}

	return func() {
		sentry.Flush(2 * time.Second)
	}, nil
}
