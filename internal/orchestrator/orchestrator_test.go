package orchestrator_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/cab"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/flight"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/hotel"
	handlers "github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/http"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/models"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/obs"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/orchestrator"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/routes"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/simulate"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func startAgent(t *testing.T, card a2a.AgentCard, exec a2a.Executor) string {
	t.Helper()
	m := obs.NewMetrics(prometheus.NewRegistry())
	h := handlers.NewAgentHandler(a2a.NewServer(card, exec))
	ts := httptest.NewServer(routes.AgentRoutes(h, m, discard, 10*time.Second))
	t.Cleanup(ts.Close)
	return ts.URL + "/"
}

type agentURLs struct{ flight, hotel, cab string }

// startAgents runs all three agents with guaranteed availability. A
// non-empty flightRPC is advertised as the flight agent's RPC URL.
func startAgents(t *testing.T, flightRPC string) agentURLs {
	return agentURLs{
		flight: startAgent(t, flight.Card(flightRPC), flight.NewAgent(flight.NewDatabase(), discard)),
		hotel:  startAgent(t, hotel.Card(""), hotel.NewAgent(hotel.NewService(simulate.NewRand(7), 1), discard)),
		cab:    startAgent(t, cab.Card(""), cab.NewAgent(cab.NewService(simulate.NewRand(7), 1), discard)),
	}
}

func newOrchestrator(u agentURLs) *orchestrator.Orchestrator {
	endpoints := []orchestrator.Endpoint{
		{Service: orchestrator.ServiceFlight, URL: u.flight},
		{Service: orchestrator.ServiceHotel, URL: u.hotel},
		{Service: orchestrator.ServiceCab, URL: u.cab},
	}
	return orchestrator.New(endpoints, a2a.NewClient(nil), obs.NewMetrics(prometheus.NewRegistry()), discard, orchestrator.Options{
		CallTimeout:      5 * time.Second,
		RequestTimeout:   10 * time.Second,
		DiscoveryTimeout: 2 * time.Second,
		DiscoveryTTL:     time.Minute,
	})
}

func holiday() models.HolidayBookingRequest {
	return models.HolidayBookingRequest{
		Origin:        "Delhi",
		Destination:   "Paris",
		Nights:        5,
		Passengers:    2,
		DepartureDate: "2025-12-24",
		RoomType:      "double",
	}
}

func TestBookHoliday_AllCompleted(t *testing.T) {
	o := newOrchestrator(startAgents(t, ""))

	resp, err := o.BookHoliday(context.Background(), holiday())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.BookingID)
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.TotalServices)
	assert.Equal(t, 3, resp.SuccessfulBookings)
	assert.Equal(t, 0, resp.FailedBookings)
	assert.Equal(t, 100.0, resp.SuccessRate)
	assert.Equal(t, "🎊 Complete holiday package booked successfully!", resp.Summary)

	require.Len(t, resp.Results, 3)
	for i, service := range []string{"flight", "hotel", "cab"} {
		r := resp.Results[i]
		assert.Equal(t, service, r.Service)
		assert.Equal(t, orchestrator.StatusCompleted, r.Status, r.Message)
		assert.NotEmpty(t, r.BookingDetails["booking_id"])
	}

	fl := resp.Results[0].BookingDetails
	assert.Equal(t, "Delhi", fl["origin"])
	assert.Equal(t, "Paris", fl["destination"])
	assert.Equal(t, "2025-12-24", fl["departure_date"])
	assert.Greater(t, fl["total_price"], 0.0)
	assert.Contains(t, resp.Results[0].Message, "FLIGHT BOOKING CONFIRMATION")

	assert.Contains(t, resp.Results[1].Message, "HOTEL BOOKING CONFIRMED")
	assert.Equal(t, "2025-12-29", resp.Results[1].BookingDetails["check_out"])
	assert.Contains(t, resp.Results[2].Message, "CAB BOOKING CONFIRMED")
}

func TestBookHoliday_UnreachableFlightFailsAlone(t *testing.T) {
	o := newOrchestrator(startAgents(t, "http://127.0.0.1:1/"))

	resp, err := o.BookHoliday(context.Background(), holiday())
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, 2, resp.SuccessfulBookings)
	assert.Equal(t, 1, resp.FailedBookings)
	assert.InDelta(t, 66.67, resp.SuccessRate, 0.01)
	assert.Equal(t, "⚠️ Partial booking completed (2/3 services)", resp.Summary)

	assert.Equal(t, orchestrator.StatusFailed, resp.Results[0].Status)
	assert.True(t, strings.HasPrefix(resp.Results[0].Message, "Error: "), resp.Results[0].Message)
	assert.Equal(t, "Delhi", resp.Results[0].BookingDetails["origin"])
	assert.Equal(t, orchestrator.StatusCompleted, resp.Results[1].Status)
	assert.Equal(t, orchestrator.StatusCompleted, resp.Results[2].Status)
}

func TestBookHoliday_DiscoveryFailure(t *testing.T) {
	u := startAgents(t, "")
	u.hotel = "http://127.0.0.1:1/"

	_, err := newOrchestrator(u).BookHoliday(context.Background(), holiday())
	require.Error(t, err)
	assert.ErrorIs(t, err, orchestrator.ErrAgentsUnavailable)
	assert.Contains(t, err.Error(), "hotel")
}

func TestBookHoliday_NoHotelAvailability(t *testing.T) {
	u := startAgents(t, "")
	u.hotel = startAgent(t, hotel.Card(""), hotel.NewAgent(hotel.NewService(simulate.NewRand(7), 0), discard))

	resp, err := newOrchestrator(u).BookHoliday(context.Background(), holiday())
	require.NoError(t, err)

	assert.Equal(t, orchestrator.StatusFailed, resp.Results[1].Status)
	assert.Contains(t, resp.Results[1].Message, "NO HOTELS AVAILABLE")
	assert.Equal(t, "no_availability", resp.Results[1].BookingDetails["status"])
	assert.Equal(t, 2, resp.SuccessfulBookings)
}

func TestBookService(t *testing.T) {
	o := newOrchestrator(startAgents(t, ""))
	ctx := context.Background()

	res, err := o.BookService(ctx, "cab", models.ServiceTestRequest{HolidayBookingRequest: holiday()})
	require.NoError(t, err)
	assert.Equal(t, orchestrator.StatusCompleted, res.Status)
	assert.Equal(t, "Paris International Airport", res.BookingDetails["pickup_location"])

	res, err = o.BookService(ctx, "flight", models.ServiceTestRequest{Text: "flight statistics please"})
	require.NoError(t, err)
	assert.Equal(t, orchestrator.StatusCompleted, res.Status)
	assert.Equal(t, "flight statistics please", res.BookingDetails["text"])
	assert.Contains(t, res.Message, "Total Flights")

	_, err = o.BookService(ctx, "train", models.ServiceTestRequest{})
	assert.ErrorIs(t, err, orchestrator.ErrUnknownService)
}

func TestAgentsStatus(t *testing.T) {
	u := startAgents(t, "")
	u.cab = "http://127.0.0.1:1/"

	st := newOrchestrator(u).AgentsStatus(context.Background())
	require.Len(t, st, 3)
	assert.Equal(t, "available", st["flight"].Status)
	assert.Equal(t, "Flight Booking Agent", st["flight"].AgentName)
	assert.Equal(t, "available", st["hotel"].Status)
	assert.Equal(t, "unavailable", st["cab"].Status)
	assert.NotEmpty(t, st["cab"].Error)
}

func TestBookHoliday_ReusesDiscoveredCards(t *testing.T) {
	cardHits := 0
	u := startAgents(t, "")
	real := u.flight
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == a2a.WellKnownCardPath {
			cardHits++
		}
		http.Redirect(w, r, strings.TrimRight(real, "/")+r.URL.Path, http.StatusTemporaryRedirect)
	}))
	t.Cleanup(proxy.Close)
	u.flight = proxy.URL + "/"

	o := newOrchestrator(u)
	for range 2 {
		_, err := o.BookHoliday(context.Background(), holiday())
		require.NoError(t, err)
	}
	assert.Equal(t, 1, cardHits)
}
