package http

import (
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/models"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/obs"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/orchestrator"
)

// Info is returned by GET /.
type Info struct {
	Service string            `json:"service"`
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Agents  map[string]string `json:"agents"`
}

// Handler serves the orchestrator API.
type Handler struct {
	booker      orchestrator.Booker
	ratelimiter orchestrator.RateLimiter
	metrics     *obs.Metrics
	version     string
	now         func() time.Time
}

func NewHandler(b orchestrator.Booker, rl orchestrator.RateLimiter, m *obs.Metrics, version string) *Handler {
	return &Handler{booker: b, ratelimiter: rl, metrics: m, version: version, now: time.Now}
}

func (h *Handler) ipFromRequest(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	agents := map[string]string{}
	for _, ep := range h.booker.Endpoints() {
		agents[ep.Service] = ep.URL
	}
	WriteJSON(w, http.StatusOK, Info{
		Service: "Smart Holiday Orchestrator",
		Status:  "running",
		Version: h.version,
		Agents:  agents,
	})
}

func (h *Handler) AgentsStatus(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"agents": h.booker.AgentsStatus(r.Context())})
}

func (h *Handler) BookHoliday(w http.ResponseWriter, r *http.Request) {
	meta := requestMeta(r)

	var req models.HolidayBookingRequest
	if err := DecodeJSON(r, &req); err != nil {
		BadRequest(w, err.Error(), meta)
		return
	}
	h.book(w, r, req)
}

// Demo books the fixed Delhi to Paris package.
func (h *Handler) Demo(w http.ResponseWriter, r *http.Request) {
	h.book(w, r, models.DemoRequest())
}

func (h *Handler) book(w http.ResponseWriter, r *http.Request, req models.HolidayBookingRequest) {
	meta := requestMeta(r)

	req.ApplyDefaults(h.now())
	if err := req.Validate(); err != nil {
		BadRequest(w, err.Error(), meta)
		return
	}

	if !h.ratelimiter.Allow(h.ipFromRequest(r)) {
		h.metrics.IncRateLimitDrops()
		TooManyRequests(w, "rate limit exceeded", meta)
		return
	}
	h.metrics.IncRequests()

	res, err := h.booker.BookHoliday(r.Context(), req)
	if err != nil {
		writeOrchestrationError(w, err, meta)
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

// TestService drives a single agent named by the {service} URL parameter.
func (h *Handler) TestService(w http.ResponseWriter, r *http.Request) {
	meta := requestMeta(r)
	service := chi.URLParam(r, "service")

	var req models.ServiceTestRequest
	if err := DecodeJSON(r, &req); err != nil {
		BadRequest(w, err.Error(), meta)
		return
	}
	if req.Text == "" {
		req.ApplyDefaults(h.now())
		if err := req.Validate(); err != nil {
			BadRequest(w, err.Error(), meta)
			return
		}
	}

	res, err := h.booker.BookService(r.Context(), service, req)
	if err != nil {
		writeOrchestrationError(w, err, meta)
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeOrchestrationError(w http.ResponseWriter, err error, meta map[string]string) {
	switch {
	case errors.Is(err, orchestrator.ErrAgentsUnavailable):
		ServiceUnavailable(w, "Cannot connect to agents. Please ensure all agent services are running. Error: "+err.Error(), meta)
	case errors.Is(err, orchestrator.ErrUnknownService):
		NotFound(w, err.Error(), meta)
	default:
		InternalError(w, "Orchestration failed: "+err.Error(), meta)
	}
}
