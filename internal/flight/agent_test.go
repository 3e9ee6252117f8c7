package flight

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/booking"
)

func newTestAgent() *Agent {
	return NewAgent(NewDatabase(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func dataMessage(t *testing.T, text string, data map[string]any) a2a.Message {
	t.Helper()
	part, err := a2a.DataPart(data)
	require.NoError(t, err)
	return a2a.NewMessage(a2a.RoleUser, a2a.TextPart(text), part)
}

func outcomeOf(t *testing.T, reply a2a.Reply) booking.Outcome {
	t.Helper()
	o, ok := reply.Data.(booking.Outcome)
	require.True(t, ok, "reply data is %T", reply.Data)
	require.NoError(t, o.CheckVersion())
	return o
}

func TestAgent_ComprehensiveBooking(t *testing.T) {
	agent := newTestAgent()
	msg := dataMessage(t, "Book a round-trip flight", map[string]any{
		"action":         ActionComprehensive,
		"origin":         "Delhi",
		"destination":    "Tokyo",
		"departure_date": "2025-12-24",
		"passengers":     2,
		"class":          "economy",
	})

	reply, err := agent.Execute(context.Background(), msg)
	require.NoError(t, err)

	assert.Equal(t, a2a.TaskStateCompleted, reply.State)
	assert.Contains(t, reply.Text, "FLIGHT BOOKING CONFIRMATION")
	assert.Contains(t, reply.Text, "ANA NH 1016")
	assert.Contains(t, reply.Text, "• Seats: A10, A11")
	assert.Contains(t, reply.Text, "**Total: ₹110,000**")

	o := outcomeOf(t, reply)
	assert.Equal(t, booking.StatusConfirmed, o.Status)
	assert.Equal(t, 110000.0, o.TotalPrice)
	assert.Equal(t, booking.CurrencyINR, o.Currency)
	assert.Len(t, o.ConfirmationCode, 6)
	assert.Contains(t, reply.Text, "Confirmation Code: "+o.ConfirmationCode)

	c, ok := o.Details["itinerary"].(Confirmation)
	require.True(t, ok)
	assert.Equal(t, PriceBreakdown{BaseFare: 77000, Taxes: 22000, Fees: 11000}, c.Breakdown)
	assert.Equal(t, "2025-12-24", c.DepartureDate)

	assert.Equal(t, 187, seats(t, agent.Database(), "NH1016"))
}

func TestAgent_ComprehensiveBooking_NoRoute(t *testing.T) {
	agent := newTestAgent()
	msg := dataMessage(t, "", map[string]any{
		"action":      ActionComprehensive,
		"origin":      "Delhi",
		"destination": "Sydney",
		"passengers":  2,
	})

	reply, err := agent.Execute(context.Background(), msg)
	require.NoError(t, err)

	assert.Equal(t, a2a.TaskStateFailed, reply.State)
	assert.Contains(t, reply.Text, "NO FLIGHTS AVAILABLE")
	assert.Equal(t, booking.StatusNoAvailability, outcomeOf(t, reply).Status)
}

func TestAgent_ComprehensiveBooking_InvalidPassengers(t *testing.T) {
	agent := newTestAgent()
	msg := dataMessage(t, "", map[string]any{"action": ActionComprehensive, "passengers": 12})

	reply, err := agent.Execute(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, a2a.TaskStateFailed, reply.State)
	assert.Equal(t, booking.StatusRejected, outcomeOf(t, reply).Status)
}

func TestAgent_BookFullFlightIsRejected(t *testing.T) {
	agent := newTestAgent()

	reply, err := agent.Execute(context.Background(), textMessage("Book flight JL1014"))
	require.NoError(t, err)

	assert.Equal(t, a2a.TaskStateFailed, reply.State)
	assert.Contains(t, reply.Text, "insufficient seats")
	o := outcomeOf(t, reply)
	assert.Equal(t, booking.StatusRejected, o.Status)
	assert.False(t, o.Succeeded())
	assert.Equal(t, 0, seats(t, agent.Database(), "JL1014"))
}

func TestAgent_BookRebookCancel(t *testing.T) {
	agent := newTestAgent()
	ctx := context.Background()

	reply, err := agent.Execute(ctx, textMessage("Book flight NH1016 for Passengers: 1"))
	require.NoError(t, err)
	require.Equal(t, a2a.TaskStateCompleted, reply.State, reply.Text)
	id := outcomeOf(t, reply).BookingID
	assert.Contains(t, reply.Text, "Booking ID: "+id)

	reply, err = agent.Execute(ctx, textMessage("Rebook booking "+id+" to flight JL1017"))
	require.NoError(t, err)
	require.Equal(t, a2a.TaskStateCompleted, reply.State, reply.Text)
	assert.Contains(t, reply.Text, "Price difference: ₹3,000")
	assert.Equal(t, booking.StatusRebooked, outcomeOf(t, reply).Status)

	reply, err = agent.Execute(ctx, textMessage("Show status of "+id))
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "JL 1017")

	reply, err = agent.Execute(ctx, textMessage("Cancel booking "+id))
	require.NoError(t, err)
	require.Equal(t, a2a.TaskStateCompleted, reply.State, reply.Text)
	assert.Equal(t, booking.StatusCancelled, outcomeOf(t, reply).Status)
	assert.Equal(t, 156, seats(t, agent.Database(), "JL1017"))

	reply, err = agent.Execute(ctx, textMessage("Cancel booking "+id))
	require.NoError(t, err)
	assert.Equal(t, a2a.TaskStateFailed, reply.State)
}

func TestAgent_SearchAndStats(t *testing.T) {
	agent := newTestAgent()
	ctx := context.Background()

	reply, err := agent.Execute(ctx, textMessage("Search flights from Delhi to Tokyo"))
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "✈️ Found 2 flights:")
	assert.Equal(t, 2, outcomeOf(t, reply).Details["results_count"])

	reply, err = agent.Execute(ctx, textMessage("flight statistics please"))
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "• Total Flights: 40")
	assert.Contains(t, reply.Text, "• Airports: 39")
}

func TestAgent_OverA2AServer(t *testing.T) {
	server := a2a.NewServer(Card("http://localhost:5002/"), newTestAgent())

	params, err := json.Marshal(a2a.MessageSendParams{Message: textMessage("Book a comprehensive flight, Origin: Delhi\nDestination: Paris\n")})
	require.NoError(t, err)
	body, err := json.Marshal(a2a.Request{JSONRPC: a2a.JSONRPCVersion, ID: 1, Method: a2a.MethodSendMessage, Params: params})
	require.NoError(t, err)

	resp := server.Handle(context.Background(), body)
	require.Nil(t, resp.Error)

	var task a2a.Task
	require.NoError(t, json.Unmarshal(resp.Result, &task))
	assert.Equal(t, a2a.TaskStateCompleted, task.Status.State)

	var o booking.Outcome
	found, err := a2a.ExtractData(*task.Status.Message, &o)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, booking.SchemaVersion, o.SchemaVersion)
	assert.Equal(t, ServiceName, o.Service)
	assert.Equal(t, 45000.0, o.TotalPrice)
}

func TestSeatAssignments(t *testing.T) {
	assert.Equal(t, []string{"A10", "A11", "B12", "B13", "C14", "C15", "D10"}, seatAssignments(7))
	assert.Empty(t, seatAssignments(0))
}
