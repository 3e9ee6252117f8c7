package orchestrator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/booking"
)

const fallbackMessage = "Booking processed successfully"

var (
	bookingRefRe = regexp.MustCompile(`(?i)Booking (?:ID|Reference)[:*\s]+([A-Z0-9]{6,})`)
	confirmRe    = regexp.MustCompile(`(?i)Confirmation Code[:*\s]+([A-Z0-9]{6})`)
	totalRe      = regexp.MustCompile(`(?i)(?:TOTAL COST|TOTAL FARE|Total Price|Total)[:*\s]+₹([\d,]+(?:\.\d+)?)`)
)

// processTask converts an agent task into a BookingResult. details holds
// the request-derived fields and is extended with whatever the reply
// carries: the structured outcome when present, else fields scraped from
// the text.
func processTask(service string, task a2a.Task, details map[string]any) BookingResult {
	res := BookingResult{Service: service, BookingDetails: details}

	var (
		text    string
		outcome booking.Outcome
		found   bool
	)
	if msg := task.Status.Message; msg != nil {
		text = a2a.ExtractText(*msg)
		var err error
		found, err = a2a.ExtractData(*msg, &outcome)
		if err == nil && found {
			err = outcome.CheckVersion()
		}
		if err != nil {
			res.Status = StatusError
			res.Message = "Processing error: " + err.Error()
			return res
		}
	}

	switch task.Status.State {
	case a2a.TaskStateCompleted:
		res.Status = StatusCompleted
	case a2a.TaskStateFailed, a2a.TaskStateCanceled, a2a.TaskStateRejected:
		res.Status = StatusFailed
	default:
		res.Status = StatusError
		res.Message = fmt.Sprintf("Processing error: task %s ended in state %q", task.ID, task.Status.State)
		return res
	}

	res.Message = text
	if strings.TrimSpace(text) == "" {
		res.Message = fallbackMessage
	}
	if found {
		mergeOutcome(res.BookingDetails, outcome)
	} else {
		mergeFromText(res.BookingDetails, text)
	}
	return res
}

func mergeOutcome(details map[string]any, o booking.Outcome) {
	for k, v := range o.Details {
		if _, taken := details[k]; !taken {
			details[k] = v
		}
	}
	details["status"] = string(o.Status)
	if o.BookingID != "" {
		details["booking_id"] = o.BookingID
	}
	if o.ConfirmationCode != "" {
		details["confirmation_code"] = o.ConfirmationCode
	}
	if o.TotalPrice > 0 {
		details["total_price"] = o.TotalPrice
		details["currency"] = o.Currency
	}
}

// mergeFromText is the best-effort path for replies without a structured
// outcome.
func mergeFromText(details map[string]any, text string) {
	if m := bookingRefRe.FindStringSubmatch(text); m != nil {
		details["booking_id"] = m[1]
	}
	if m := confirmRe.FindStringSubmatch(text); m != nil {
		details["confirmation_code"] = m[1]
	}
	if m := totalRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64); err == nil {
			details["total_price"] = v
			details["currency"] = booking.CurrencyINR
		}
	}
}

func failedResult(service string, err error, details map[string]any) BookingResult {
	return BookingResult{
		Service:        service,
		Status:         StatusFailed,
		Message:        "Error: " + err.Error(),
		BookingDetails: details,
	}
}

// summarize fills the counters and summary line from the collected results.
func summarize(resp *HolidayBookingResponse) {
	resp.TotalServices = len(resp.Results)
	resp.SuccessfulBookings = 0
	for _, r := range resp.Results {
		if r.Status == StatusCompleted {
			resp.SuccessfulBookings++
		}
	}
	resp.FailedBookings = resp.TotalServices - resp.SuccessfulBookings
	resp.SuccessRate = 0
	if resp.TotalServices > 0 {
		resp.SuccessRate = 100 * float64(resp.SuccessfulBookings) / float64(resp.TotalServices)
	}
	resp.Success = resp.TotalServices > 0 && resp.SuccessfulBookings == resp.TotalServices

	switch {
	case resp.Success:
		resp.Summary = "🎊 Complete holiday package booked successfully!"
	case resp.SuccessfulBookings > 0:
		resp.Summary = fmt.Sprintf("⚠️ Partial booking completed (%d/%d services)", resp.SuccessfulBookings, resp.TotalServices)
	default:
		resp.Summary = "❌ Holiday booking failed - no services were booked"
	}
}

func outcomeLabel(resp HolidayBookingResponse) string {
	switch {
	case resp.Success:
		return "complete"
	case resp.SuccessfulBookings > 0:
		return "partial"
	}
	return "failed"
}
