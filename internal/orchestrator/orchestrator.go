// Package orchestrator books a holiday by fanning one request out to the
// flight, hotel and cab agents and aggregating what they report. A failing
// agent never cancels its siblings and nothing is compensated.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/models"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/obs"
)

const defaultDiscoveryTimeout = 5 * time.Second

type Options struct {
	// CallTimeout bounds each agent call; zero means no per-call limit.
	CallTimeout time.Duration
	// RequestTimeout bounds a whole orchestration.
	RequestTimeout   time.Duration
	DiscoveryTimeout time.Duration
	DiscoveryTTL     time.Duration
}

type Orchestrator struct {
	endpoints []Endpoint
	client    AgentClient
	cards     CardCacheService
	opts      Options
	metrics   *obs.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// New builds an orchestrator for endpoints, which fix the order of results.
func New(endpoints []Endpoint, client AgentClient, m *obs.Metrics, logger *slog.Logger, opts Options) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	// card fetches run detached from request contexts and need their own bound
	if opts.DiscoveryTimeout <= 0 {
		opts.DiscoveryTimeout = defaultDiscoveryTimeout
	}
	return &Orchestrator{
		endpoints: endpoints,
		client:    client,
		cards:     NewCardCache(opts.DiscoveryTTL, m),
		opts:      opts,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

func (o *Orchestrator) Endpoints() []Endpoint { return o.endpoints }

// BookHoliday discovers every agent, books all services concurrently and
// aggregates the results. Only a discovery failure is returned as an error.
func (o *Orchestrator) BookHoliday(ctx context.Context, req models.HolidayBookingRequest) (HolidayBookingResponse, error) {
	start := o.now()
	req.ApplyDefaults(start)
	resp := HolidayBookingResponse{BookingID: uuid.NewString()}
	log := o.logger.With("booking_id", resp.BookingID)
	log.Info("starting holiday booking", "origin", req.Origin, "destination", req.Destination, "departure_date", req.DepartureDate)

	if o.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.opts.RequestTimeout)
		defer cancel()
	}

	cards, err := o.discover(ctx)
	if err != nil {
		log.Error("agent discovery failed", "error", err)
		o.metrics.IncOrchestration("unavailable")
		return HolidayBookingResponse{}, err
	}

	resp.Results = make([]BookingResult, len(o.endpoints))
	var wg sync.WaitGroup
	for i, ep := range o.endpoints {
		wg.Add(1)
		go func(i int, ep Endpoint) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Error("agent call panic recovered", "service", ep.Service, "panic", r)
					o.metrics.IncAgentFailure(ep.Service)
					resp.Results[i] = failedResult(ep.Service, fmt.Errorf("panic: %v", r), map[string]any{})
				}
			}()
			resp.Results[i] = o.book(ctx, ep.Service, cards[i], req)
		}(i, ep)
	}
	wg.Wait()

	summarize(&resp)
	resp.DurationMs = o.now().Sub(start).Milliseconds()
	o.metrics.IncOrchestration(outcomeLabel(resp))
	log.Info("holiday booking finished",
		"successful", resp.SuccessfulBookings,
		"failed", resp.FailedBookings,
		"duration_ms", resp.DurationMs,
	)
	return resp, nil
}

// BookService sends one service its message directly, bypassing
// aggregation. A non-empty req.Text replaces the generated message.
func (o *Orchestrator) BookService(ctx context.Context, service string, req models.ServiceTestRequest) (BookingResult, error) {
	ep, ok := o.endpoint(service)
	if !ok {
		return BookingResult{}, fmt.Errorf("%w: %q", ErrUnknownService, service)
	}
	if o.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.opts.RequestTimeout)
		defer cancel()
	}

	card, err := o.card(ctx, ep)
	if err != nil {
		return BookingResult{}, fmt.Errorf("%w: %s: %v", ErrAgentsUnavailable, service, err)
	}

	req.ApplyDefaults(o.now())
	if req.Text == "" {
		return o.book(ctx, service, card, req.HolidayBookingRequest), nil
	}
	msg := a2a.NewMessage(a2a.RoleUser, a2a.TextPart(req.Text))
	return o.send(ctx, service, card, msg, map[string]any{"text": req.Text}), nil
}

// AgentsStatus probes every agent's card directly, skipping the cache.
func (o *Orchestrator) AgentsStatus(ctx context.Context) map[string]AgentStatus {
	out := make(map[string]AgentStatus, len(o.endpoints))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, ep := range o.endpoints {
		wg.Add(1)
		go func(ep Endpoint) {
			defer wg.Done()
			st := AgentStatus{URL: ep.URL, Status: "available"}
			card, err := o.fetchCard(ctx, ep)
			if err != nil {
				st.Status = "unavailable"
				st.Error = err.Error()
			} else {
				st.AgentName = card.Name
			}
			mu.Lock()
			out[ep.Service] = st
			mu.Unlock()
		}(ep)
	}
	wg.Wait()
	return out
}

// discover resolves every endpoint's card; the first failure aborts.
func (o *Orchestrator) discover(ctx context.Context) ([]a2a.AgentCard, error) {
	cards := make([]a2a.AgentCard, len(o.endpoints))
	g, gctx := errgroup.WithContext(ctx)
	for i, ep := range o.endpoints {
		g.Go(func() error {
			card, err := o.card(gctx, ep)
			if err != nil {
				return fmt.Errorf("%w: %s at %s: %v", ErrAgentsUnavailable, ep.Service, ep.URL, err)
			}
			cards[i] = card
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cards, nil
}

func (o *Orchestrator) card(ctx context.Context, ep Endpoint) (a2a.AgentCard, error) {
	return o.cards.GetOrFetch(ctx, ep.Service, func(ctx context.Context) (a2a.AgentCard, error) {
		return o.fetchCard(ctx, ep)
	})
}

func (o *Orchestrator) fetchCard(ctx context.Context, ep Endpoint) (a2a.AgentCard, error) {
	ctx, cancel := context.WithTimeout(ctx, o.opts.DiscoveryTimeout)
	defer cancel()
	return o.client.FetchCard(ctx, ep.URL)
}

func (o *Orchestrator) book(ctx context.Context, service string, card a2a.AgentCard, req models.HolidayBookingRequest) BookingResult {
	msg, details, err := buildMessage(service, req)
	if err != nil {
		return BookingResult{Service: service, Status: StatusError, Message: "Processing error: " + err.Error(), BookingDetails: map[string]any{}}
	}
	return o.send(ctx, service, card, msg, details)
}

func (o *Orchestrator) send(ctx context.Context, service string, card a2a.AgentCard, msg a2a.Message, details map[string]any) BookingResult {
	if o.opts.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.opts.CallTimeout)
		defer cancel()
	}

	start := time.Now()
	task, err := o.client.SendMessage(ctx, card, msg)
	o.metrics.ObserveAgentLatency(service, time.Since(start).Seconds())
	if err != nil {
		o.metrics.IncAgentFailure(service)
		o.logger.Warn("agent call failed", "service", service, "error", err)
		return failedResult(service, err, details)
	}

	res := processTask(service, task, details)
	if res.Status != StatusCompleted {
		o.metrics.IncAgentFailure(service)
	}
	o.logger.Info("agent replied", "service", service, "task_id", task.ID, "state", task.Status.State, "status", res.Status)
	return res
}

func (o *Orchestrator) endpoint(service string) (Endpoint, bool) {
	for _, ep := range o.endpoints {
		if ep.Service == service {
			return ep, true
		}
	}
	return Endpoint{}, false
}
