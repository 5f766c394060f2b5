package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/logitrack/logitrack/internal/auth"
	"github.com/logitrack/logitrack/internal/enquiry"
	"github.com/logitrack/logitrack/internal/observability"
	"github.com/logitrack/logitrack/internal/refdata"
	"github.com/logitrack/logitrack/internal/shared"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager
	AuthHandler    *auth.Handler
	EnquiryHandler *enquiry.Handler
	RefdataHandler *refdata.Handler
	Metrics        *observability.Metrics
}

// NewRouter constructs the chi.Router with LogiTrack defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		Metrics:        params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", params.AuthHandler.MountRoutes)

	r.Route("/api", func(r chi.Router) {
		// The gate is only armed when an admin credential is configured.
		if params.Config != nil && params.Config.AdminPasswordHash != "" {
			r.Use(params.AuthHandler.RequireSession)
		}
		r.Route("/enquiries", params.EnquiryHandler.MountRoutes)
		r.Route("/offers", params.EnquiryHandler.MountOfferRoutes)
		r.Route("/stats", params.EnquiryHandler.MountStatsRoutes)
		r.Route("/master", params.RefdataHandler.MountRoutes)
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
