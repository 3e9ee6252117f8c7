package hotel

import (
	"context"
	"log/slog"
	"time"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/booking"
)

const ServiceName = "hotel"

type Agent struct {
	svc    *Service
	logger *slog.Logger
	now    func() time.Time
}

func NewAgent(svc *Service, logger *slog.Logger) *Agent {
	if logger == nil {
		logger = slog.Default()
	}
	return &Agent{svc: svc, logger: logger, now: time.Now}
}

func (a *Agent) Service() *Service { return a.svc }

// Execute books the first available offer for the requested stay.
func (a *Agent) Execute(ctx context.Context, msg a2a.Message) (a2a.Reply, error) {
	req, err := a.svc.ParseMessage(msg, a.now().Format(time.DateOnly))
	if err != nil {
		return a2a.Reply{}, err
	}

	if req.Action == ActionGetBooking {
		b, err := a.svc.Get(req.BookingID)
		if err != nil {
			return a2a.Reply{
				State: a2a.TaskStateFailed,
				Text:  "❌ Error: " + err.Error(),
				Data:  booking.Rejected(ServiceName, req.Action, err),
			}, nil
		}
		return a2a.Reply{State: a2a.TaskStateCompleted, Text: formatBooking(b), Data: outcome(req.Action, b)}, nil
	}

	a.logger.Info("hotel request", "location", req.Location, "check_in", req.CheckIn, "check_out", req.CheckOut, "guests", req.Guests)
	offers := a.svc.Search(req.Location, req.CheckIn, req.CheckOut, req.Guests, req.Preferences)
	if len(offers) == 0 {
		a.logger.Warn("no hotels available", "location", req.Location)
		return a2a.Reply{
			State: a2a.TaskStateFailed,
			Text:  formatNoAvailability(req),
			Data: booking.NewOutcome(ServiceName, req.Action, booking.StatusNoAvailability).
				WithDetail("location", req.Location).
				WithDetail("check_in", req.CheckIn).
				WithDetail("check_out", req.CheckOut),
		}, nil
	}

	b := a.svc.Book(offers[0], req.Preferences)
	a.logger.Info("hotel booked", "booking_id", b.ID, "hotel", b.Offer.HotelName, "total", b.Offer.Pricing.Total)
	return a2a.Reply{State: a2a.TaskStateCompleted, Text: formatConfirmation(b), Data: outcome(req.Action, b)}, nil
}

func outcome(action string, b Booking) booking.Outcome {
	o := booking.NewOutcome(ServiceName, action, b.Status)
	o.BookingID = b.ID
	o.ConfirmationCode = b.ConfirmationCode
	o.TotalPrice = b.Offer.Pricing.Total
	return o.WithDetail("hotel_name", b.Offer.HotelName).
		WithDetail("category", b.Offer.Category).
		WithDetail("room_type", b.Offer.Room.Name).
		WithDetail("check_in", b.Offer.CheckIn).
		WithDetail("check_out", b.Offer.CheckOut).
		WithDetail("nights", b.Offer.Nights)
}
