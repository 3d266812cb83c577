package http

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/sagarc03/foodle"
)

const defaultPingTimeout = 2 * time.Second

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CORSConfig configures cross-origin access for browser clients. The
// token header is added to the allowed and exposed headers automatically.
type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// HandlerConfig holds what NewHandler needs. PingTimeout bounds the
// database ping of /healthz and defaults to two seconds.
type HandlerConfig struct {
	Settings    foodle.Settings
	CORS        CORSConfig
	PingTimeout time.Duration
}

// PublicSettings is the subset of settings a browser client may see.
type PublicSettings struct {
	Variant        foodle.Variant `json:"variant"`
	GoogleClientID string         `json:"google_client_id"`
	TokenHeader    string         `json:"token_header"`
	TokenExpiresIn int            `json:"token_expires_in"`
	CSRFEnabled    bool           `json:"csrf_enabled"`
}

// NewPublicSettings extracts the client-visible settings. Secrets and the
// database URL are never included.
func NewPublicSettings(s foodle.Settings) PublicSettings {
	return PublicSettings{
		Variant:        s.Variant,
		GoogleClientID: s.GoogleClientID,
		TokenHeader:    s.TokenAuthenticationHeader,
		TokenExpiresIn: s.JWTAccessTokenExpires,
		CSRFEnabled:    s.CSRFEnabled,
	}
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Handler serves the public settings and health endpoints.
type Handler struct {
	config HandlerConfig
	public PublicSettings
	db     Pinger
}

// NewHandler creates a new Handler. db may be nil, in which case the
// health check does not probe a database.
func NewHandler(config *HandlerConfig, db Pinger) *Handler {
	cfg := *config
	if cfg.PingTimeout <= 0 {
		cfg.PingTimeout = defaultPingTimeout
	}

	return &Handler{
		config: cfg,
		public: NewPublicSettings(cfg.Settings),
		db:     db,
	}
}

// Router returns an http.Handler with all routes configured.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	if h.config.CORS.Enabled {
		tokenHeader := h.config.Settings.TokenAuthenticationHeader
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   withHeader(h.config.CORS.AllowedHeaders, tokenHeader),
			ExposedHeaders:   withHeader(h.config.CORS.ExposedHeaders, tokenHeader, RequestIDHeader),
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	r.Get("/api/config", h.handleConfig)
	r.Get("/healthz", h.handleHealth)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusNotFound, "not_found", "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
	})

	return r
}

func (h *Handler) handleConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	_ = WriteJSON(w, http.StatusOK, h.public)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		_ = WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok", Database: "skipped"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.PingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		HandleError(w, r, fmt.Errorf("%w: ping database: %w", ErrUnavailable, err))
		return
	}

	_ = WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
}

// withHeader returns headers plus extra, skipping empty and duplicate names.
func withHeader(headers []string, extra ...string) []string {
	out := slices.Clone(headers)
	for _, h := range extra {
		if h == "" || slices.ContainsFunc(out, func(existing string) bool {
			return http.CanonicalHeaderKey(existing) == http.CanonicalHeaderKey(h)
		}) {
			continue
		}
		out = append(out, h)
	}
	return out
}
