package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/secmon-lab/userform/pkg/cli/config"
	httpctrl "github.com/secmon-lab/userform/pkg/controller/http"
	"github.com/secmon-lab/userform/pkg/service/metrics"
	"github.com/secmon-lab/userform/pkg/usecase"
	"github.com/secmon-lab/userform/pkg/utils/logging"
)

const shutdownTimeout = 10 * time.Second

func cmdServe() *cli.Command {
	var addr string
	var corsOrigins []string
	var rulesCfg config.Rules

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("USERFORM_ADDR"),
			Destination: &addr,
		},
		&cli.StringSliceFlag{
			Name:        "cors-origin",
			Usage:       "Allowed CORS origin (can be repeated)",
			Sources:     cli.EnvVars("USERFORM_CORS_ORIGIN"),
			Destination: &corsOrigins,
		},
	}
	flags = append(flags, rulesCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run the validation HTTP API",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			rules, err := rulesCfg.Configure(c)
			if err != nil {
				return goerr.Wrap(err, "failed to load validation rules")
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			uc := usecase.New(
				usecase.WithRules(rules),
				usecase.WithRecorder(metrics.New(reg)),
			)

			opts := []httpctrl.Options{httpctrl.WithMetrics(reg)}
			if len(corsOrigins) > 0 {
				opts = append(opts, httpctrl.WithCORS(corsOrigins...))
			}

			handler, err := httpctrl.New(uc, opts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP handler")
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				logging.Default().Info("Starting HTTP server",
					"addr", addr,
					"rules", rulesCfg,
					"cors_origins", corsOrigins,
				)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "failed to start server", goerr.V("addr", addr))
				}
				return nil
			})

			eg.Go(func() error {
				<-ctx.Done()
				logging.Default().Info("Shutting down HTTP server")

				shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			})

			return eg.Wait()
		},
	}
}
