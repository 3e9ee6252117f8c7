package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	handlers "github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/http"
	mid "github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/middleware"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/obs"
)

func base(metrics *obs.Metrics, logger *slog.Logger, timeout time.Duration) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Use(mid.MetricsMiddleware(metrics))
	r.Use(mid.LoggingMiddleware(logger))
	r.Use(mid.TimeoutMiddleware(timeout))
	return r
}

// GetRoutes builds the orchestrator router. idem may be nil, which leaves
// POST /book-holiday unprotected against retries.
func GetRoutes(h *handlers.Handler, metrics *obs.Metrics, logger *slog.Logger, timeout time.Duration, idem func(http.Handler) http.Handler) *chi.Mux {
	r := base(metrics, logger, timeout)

	r.Get("/", h.Info)
	r.Get("/agents/status", h.AgentsStatus)
	r.Group(func(r chi.Router) {
		if idem != nil {
			r.Use(idem)
		}
		r.Post("/book-holiday", h.BookHoliday)
	})
	r.Get("/book-holiday/demo", h.Demo)
	r.Post("/test-{service}", h.TestService)
	r.Get("/healthz", h.Healthz)
	r.Get("/metrics", metrics.Handler().ServeHTTP)

	return r
}

// AgentRoutes builds the router every booking agent serves.
func AgentRoutes(h *handlers.AgentHandler, metrics *obs.Metrics, logger *slog.Logger, timeout time.Duration) *chi.Mux {
	r := base(metrics, logger, timeout)

	r.Get("/.well-known/agent.json", h.Card)
	r.Post("/", h.RPC)
	r.Get("/healthz", h.Healthz)
	r.Get("/metrics", metrics.Handler().ServeHTTP)

	return r
}
