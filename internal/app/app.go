// Package app wires configuration, stores and handlers into runnable HTTP
// servers for the orchestrator and the three agents.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/cab"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/config"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/flight"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/hotel"
	handlers "github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/http"
	redisInfra "github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/infrastructure/redis"
	mid "github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/middleware"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/obs"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/orchestrator"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/routes"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/simulate"
)

// Server is one named HTTP server plus whatever must be closed after it stops.
type Server struct {
	Name    string
	HTTP    *http.Server
	Metrics *obs.Metrics
	closers []io.Closer
}

func (s *Server) Close() {
	for _, c := range s.closers {
		_ = c.Close()
	}
}

// NewLogger builds the process logger. Format "text" switches from JSON to
// the text handler.
func NewLogger(cfg config.Log, out io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.New(slog.NewTextHandler(out, opts))
	}
	return slog.New(slog.NewJSONHandler(out, opts))
}

// Endpoints lists the agents in result order: flight, hotel, cab.
func Endpoints(cfg config.Orchestrator) []orchestrator.Endpoint {
	return []orchestrator.Endpoint{
		{Service: orchestrator.ServiceFlight, URL: cfg.FlightURL},
		{Service: orchestrator.ServiceHotel, URL: cfg.HotelURL},
		{Service: orchestrator.ServiceCab, URL: cfg.CabURL},
	}
}

// NewOrchestrator builds the orchestrator server. When Redis is configured
// it must answer a ping, and POST /book-holiday becomes idempotent.
func NewOrchestrator(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Server, error) {
	metrics := obs.NewMetrics(prometheus.NewRegistry())
	oc := cfg.Orchestrator

	orch := orchestrator.New(Endpoints(oc), a2a.NewClient(&http.Client{}), metrics, logger.With("component", "orchestrator"), orchestrator.Options{
		CallTimeout:      oc.CallTimeout,
		RequestTimeout:   oc.RequestTimeout,
		DiscoveryTimeout: oc.DiscoveryTimeout,
		DiscoveryTTL:     oc.DiscoveryTTL,
	})
	rl := orchestrator.NewIPRateLimiter(oc.RateLimit, oc.RateWindow)
	h := handlers.NewHandler(orch, rl, metrics, cfg.App.Version)

	srv := &Server{Name: "orchestrator", Metrics: metrics}

	var idem func(http.Handler) http.Handler
	if cfg.Redis.Addr != "" {
		client, err := redisInfra.NewClient(ctx, redisInfra.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		srv.closers = append(srv.closers, client)
		idem = mid.Idempotency(redisInfra.NewIdempotencyStore(client), cfg.Redis.IdempotencyTTL, logger)
		logger.Info("idempotency enabled", "redis_addr", cfg.Redis.Addr)
	}

	srv.HTTP = &http.Server{
		Addr:    ":" + oc.Port,
		Handler: routes.GetRoutes(h, metrics, logger, oc.HTTPTimeout, idem),
	}
	return srv, nil
}

// NewAgent builds the server for one booking agent: flight, hotel or cab.
func NewAgent(service string, cfg *config.Config, logger *slog.Logger) (*Server, error) {
	ac := cfg.Agents
	log := logger.With("agent", service)

	var (
		port string
		card a2a.AgentCard
		exec a2a.Executor
		seed = ac.Seed
	)
	switch service {
	case flight.ServiceName:
		port, card = ac.FlightPort, flight.Card("")
		exec = flight.NewAgent(flight.NewDatabase(), log)
		seed = offsetSeed(seed, 1)
	case hotel.ServiceName:
		port, card = ac.HotelPort, hotel.Card("")
		seed = offsetSeed(seed, 2)
		exec = hotel.NewAgent(hotel.NewService(simulate.NewRand(seed), ac.Availability), log)
	case cab.ServiceName:
		port, card = ac.CabPort, cab.Card("")
		seed = offsetSeed(seed, 3)
		exec = cab.NewAgent(cab.NewService(simulate.NewRand(seed), ac.Availability), log)
	default:
		return nil, fmt.Errorf("unknown agent %q", service)
	}

	metrics := obs.NewMetrics(prometheus.NewRegistry())
	opts := []a2a.ServerOption{
		a2a.WithLogger(log),
		a2a.WithTaskHook(func(t a2a.Task) { metrics.IncAgentTask(service, string(t.Status.State)) }),
	}
	if faults := simulate.NewFaults(service, ac.AvgLatency, ac.FailRate, simulate.NewRand(offsetSeed(seed, 10))); faults.Enabled() {
		opts = append(opts, a2a.WithFaults(faults))
		log.Info("fault injection enabled", "avg_latency", ac.AvgLatency, "fail_rate", ac.FailRate)
	}
	h := handlers.NewAgentHandler(a2a.NewServer(card, exec, opts...))

	return &Server{
		Name:    service,
		Metrics: metrics,
		HTTP: &http.Server{
			Addr:    ":" + port,
			Handler: routes.AgentRoutes(h, metrics, log, cfg.Orchestrator.CallTimeout),
		},
	}, nil
}

// offsetSeed keeps per-agent random streams distinct; zero stays zero so
// NewRand falls back to the clock.
func offsetSeed(seed, offset int64) int64 {
	if seed == 0 {
		return 0
	}
	return seed + offset
}
