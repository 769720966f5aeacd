package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sagarc03/bookstall"
)

type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type HandlerConfig struct {
	Token  TokenVerifier
	CORS   CORSConfig
	Logger *slog.Logger
}

// Handler serves the catalog through the routing, token filter and not-found stages.
type Handler struct {
	config   HandlerConfig
	pipeline *Pipeline
}

// NewHandler creates a new Handler with the given configuration and catalog.
func NewHandler(config *HandlerConfig, catalog *bookstall.Catalog) *Handler {
	return &Handler{
		config: *config,
		pipeline: NewPipeline(NotFound,
			NewRoutingStage(catalog),
			NewTokenFilterStage(catalog, config.Token),
		),
	}
}

// Pipeline returns the stage pipeline without any middleware.
func (h *Handler) Pipeline() *Pipeline {
	return h.pipeline
}

// Router returns an http.Handler that sends every request through the
// pipeline, whatever its method or request target. There is no mux in front of
// the stages; matching of individual paths is left entirely to them.
func (h *Handler) Router() http.Handler {
	logger := h.config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mws := chi.Chain(
		middleware.Recoverer,
		RequestIDMiddleware,
		LoggingMiddleware(logger),
	)

	if h.config.CORS.Enabled {
		mws = append(mws, cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   h.config.CORS.AllowedHeaders,
			ExposedHeaders:   h.config.CORS.ExposedHeaders,
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	return mws.Handler(h.pipeline)
}
