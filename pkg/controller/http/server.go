package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/secmon-lab/userform/pkg/domain/model"
	"github.com/secmon-lab/userform/pkg/utils/errutil"
	"github.com/secmon-lab/userform/pkg/utils/safe"
)

// UseCase is the part of the use case layer served over HTTP
type UseCase interface {
	ValidateForm(ctx context.Context, form model.UserForm) *model.Outcome
}

type Server struct {
	router      *chi.Mux
	handler     http.Handler
	uc          UseCase
	gatherer    prometheus.Gatherer
	corsOrigins []string
	validator   *requestValidator
}

type Options func(*Server)

// WithMetrics exposes the gatherer at /metrics
func WithMetrics(gatherer prometheus.Gatherer) Options {
	return func(s *Server) {
		s.gatherer = gatherer
	}
}

// WithCORS allows cross origin requests from the given origins
func WithCORS(origins ...string) Options {
	return func(s *Server) {
		s.corsOrigins = origins
	}
}

func New(uc UseCase, opts ...Options) (*Server, error) {
	r := chi.NewRouter()

	v, err := newRequestValidator()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request validator")
	}

	s := &Server{
		router:    r,
		handler:   r,
		uc:        uc,
		validator: v,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/validate", s.validateHandler)
	})

	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	if len(s.corsOrigins) > 0 {
		s.handler = cors.New(cors.Options{
			AllowedOrigins: s.corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Content-Type"},
		}).Handler(r)
	}

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}
