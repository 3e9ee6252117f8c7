package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/booking"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/models"
)

func taskWith(state a2a.TaskState, parts ...a2a.Part) a2a.Task {
	msg := a2a.NewMessage(a2a.RoleAgent, parts...)
	return a2a.Task{ID: "t1", Status: a2a.TaskStatus{State: state, Message: &msg}}
}

func dataPart(t *testing.T, v any) a2a.Part {
	t.Helper()
	p, err := a2a.DataPart(v)
	require.NoError(t, err)
	return p
}

func TestProcessTask_States(t *testing.T) {
	tests := []struct {
		state a2a.TaskState
		want  string
	}{
		{a2a.TaskStateCompleted, StatusCompleted},
		{a2a.TaskStateFailed, StatusFailed},
		{a2a.TaskStateCanceled, StatusFailed},
		{a2a.TaskStateRejected, StatusFailed},
		{a2a.TaskStateWorking, StatusError},
	}
	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			res := processTask("hotel", taskWith(tt.state, a2a.TextPart("ok")), map[string]any{})
			assert.Equal(t, tt.want, res.Status)
			assert.Equal(t, "hotel", res.Service)
		})
	}
}

func TestProcessTask_Outcome(t *testing.T) {
	o := booking.NewOutcome("hotel", "book_hotel", booking.StatusConfirmed).
		WithDetail("location", "ignored").
		WithDetail("hotel_name", "Grand Paris")
	o.BookingID = "HTL12345A67"
	o.ConfirmationCode = "345A67"
	o.TotalPrice = 1234.5

	details := map[string]any{"location": "Paris"}
	res := processTask("hotel", taskWith(a2a.TaskStateCompleted, a2a.TextPart("booked"), dataPart(t, o)), details)

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, "booked", res.Message)
	assert.Equal(t, "Paris", res.BookingDetails["location"])
	assert.Equal(t, "Grand Paris", res.BookingDetails["hotel_name"])
	assert.Equal(t, "HTL12345A67", res.BookingDetails["booking_id"])
	assert.Equal(t, "345A67", res.BookingDetails["confirmation_code"])
	assert.Equal(t, 1234.5, res.BookingDetails["total_price"])
	assert.Equal(t, booking.CurrencyINR, res.BookingDetails["currency"])
	assert.Equal(t, "confirmed", res.BookingDetails["status"])
}

func TestProcessTask_UnsupportedSchema(t *testing.T) {
	o := booking.NewOutcome("cab", "book_cab", booking.StatusConfirmed)
	o.SchemaVersion = "holiday.booking/v0"

	res := processTask("cab", taskWith(a2a.TaskStateCompleted, a2a.TextPart("booked"), dataPart(t, o)), map[string]any{})
	assert.Equal(t, StatusError, res.Status)
	assert.Contains(t, res.Message, "Processing error:")
}

func TestProcessTask_TextFallback(t *testing.T) {
	text := "🎫 **Booking Reference:** CAB12345B07\n🔑 **Confirmation Code:** 345B07\n• **TOTAL FARE:** ₹1,904.00"
	res := processTask("cab", taskWith(a2a.TaskStateCompleted, a2a.TextPart(text)), map[string]any{})

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, "CAB12345B07", res.BookingDetails["booking_id"])
	assert.Equal(t, "345B07", res.BookingDetails["confirmation_code"])
	assert.Equal(t, 1904.0, res.BookingDetails["total_price"])
}

func TestProcessTask_EmptyText(t *testing.T) {
	res := processTask("flight", taskWith(a2a.TaskStateCompleted), map[string]any{})
	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, "Booking processed successfully", res.Message)

	res = processTask("flight", a2a.Task{Status: a2a.TaskStatus{State: a2a.TaskStateCompleted}}, map[string]any{})
	assert.Equal(t, "Booking processed successfully", res.Message)
}

func TestSummarize(t *testing.T) {
	results := func(statuses ...string) []BookingResult {
		out := make([]BookingResult, len(statuses))
		for i, s := range statuses {
			out[i] = BookingResult{Status: s}
		}
		return out
	}
	tests := []struct {
		name    string
		results []BookingResult
		summary string
		label   string
	}{
		{"complete", results(StatusCompleted, StatusCompleted, StatusCompleted), "🎊 Complete holiday package booked successfully!", "complete"},
		{"partial", results(StatusCompleted, StatusFailed, StatusError), "⚠️ Partial booking completed (1/3 services)", "partial"},
		{"none", results(StatusFailed, StatusError, StatusFailed), "❌ Holiday booking failed - no services were booked", "failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := HolidayBookingResponse{Results: tt.results}
			summarize(&resp)
			assert.Equal(t, tt.summary, resp.Summary)
			assert.Equal(t, tt.label, outcomeLabel(resp))
			assert.Equal(t, resp.TotalServices, resp.SuccessfulBookings+resp.FailedBookings)
		})
	}
}

func TestBuildMessage(t *testing.T) {
	req := models.HolidayBookingRequest{
		Origin: "Delhi", Destination: "Tokyo", Nights: 3, Passengers: 2,
		DepartureDate: "2025-12-24", RoomType: "suite",
	}

	msg, details, err := buildMessage(ServiceCab, req)
	require.NoError(t, err)
	assert.Contains(t, a2a.ExtractText(msg), "Tokyo")
	assert.Equal(t, "Tokyo Airport", details["pickup"])
	assert.Equal(t, "Hotel in Tokyo", details["destination"])

	msg, details, err = buildMessage(ServiceHotel, req)
	require.NoError(t, err)
	assert.Contains(t, a2a.ExtractText(msg), "• Room Type: suite room")
	assert.Equal(t, 3, details["nights"])

	_, _, err = buildMessage("train", req)
	assert.ErrorIs(t, err, ErrUnknownService)
}
