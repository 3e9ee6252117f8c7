package orchestrator

import (
	"context"
	"errors"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/models"
)

const (
	ServiceFlight = "flight"
	ServiceHotel  = "hotel"
	ServiceCab    = "cab"
)

// Result statuses reported per service.
const (
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
	StatusError     = "ERROR"
)

var (
	// ErrAgentsUnavailable means at least one agent could not be discovered.
	ErrAgentsUnavailable = errors.New("cannot connect to agents")
	ErrUnknownService    = errors.New("unknown service")
)

// Endpoint names an agent and the base URL its card is served under.
type Endpoint struct {
	Service string
	URL     string
}

type BookingResult struct {
	Service        string         `json:"service"`
	Status         string         `json:"status"`
	Message        string         `json:"message"`
	BookingDetails map[string]any `json:"booking_details"`
}

type HolidayBookingResponse struct {
	BookingID          string          `json:"booking_id"`
	Success            bool            `json:"success"`
	TotalServices      int             `json:"total_services"`
	SuccessfulBookings int             `json:"successful_bookings"`
	FailedBookings     int             `json:"failed_bookings"`
	SuccessRate        float64         `json:"success_rate"`
	Results            []BookingResult `json:"results"`
	Summary            string          `json:"summary"`
	DurationMs         int64           `json:"duration_ms"`
}

type AgentStatus struct {
	URL       string `json:"url"`
	Status    string `json:"status"`
	AgentName string `json:"agent_name,omitempty"`
	Error     string `json:"error,omitempty"`
}

// AgentClient is the transport used to reach agents. *a2a.Client satisfies it.
type AgentClient interface {
	FetchCard(ctx context.Context, baseURL string) (a2a.AgentCard, error)
	SendMessage(ctx context.Context, card a2a.AgentCard, msg a2a.Message) (a2a.Task, error)
}

// Booker is what the HTTP layer needs from the orchestrator.
type Booker interface {
	BookHoliday(ctx context.Context, req models.HolidayBookingRequest) (HolidayBookingResponse, error)
	BookService(ctx context.Context, service string, req models.ServiceTestRequest) (BookingResult, error)
	AgentsStatus(ctx context.Context) map[string]AgentStatus
	Endpoints() []Endpoint
}
