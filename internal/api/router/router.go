// Package router assembles the HTTP surface: the public WhatsApp webhook
// and health/metrics endpoints, and the JWT-protected lead dashboard.
package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/mckingstown/salon-bot/internal/http/middleware"
	"github.com/mckingstown/salon-bot/internal/leads"
	"github.com/mckingstown/salon-bot/internal/messaging"
	"github.com/mckingstown/salon-bot/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	WebhookHandler     *messaging.WebhookHandler
	LeadsHandler       *leads.Handler
	MetricsHandler     http.Handler
	DashboardSecret    string
	CORSAllowedOrigins []string

	// WebhookRatePerSec caps webhook requests per source IP; zero disables
	// limiting.
	WebhookRatePerSec float64
	WebhookBurst      int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints (webhook, health, metrics)
	r.Group(func(public chi.Router) {
		public.Get("/health", healthCheck)
		if cfg.WebhookHandler != nil {
			webhook := public
			if cfg.WebhookRatePerSec > 0 {
				webhook = public.With(httpmiddleware.RateLimit(cfg.WebhookRatePerSec, cfg.WebhookBurst))
			}
			webhook.Post("/webhook/whatsapp", cfg.WebhookHandler.ServeHTTP)
		}
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
	})

	// Lead dashboard, JWT-protected
	if cfg.LeadsHandler != nil {
		r.Route("/dashboard", func(dash chi.Router) {
			dash.Use(httpmiddleware.DashboardJWT(cfg.DashboardSecret))
			cfg.LeadsHandler.Routes(dash)
		})
	}

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
