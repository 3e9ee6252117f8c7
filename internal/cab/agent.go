package cab

import (
	"context"
	"log/slog"
	"time"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/booking"
)

const ServiceName = "cab"

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

func (a *Agent) Execute(ctx context.Context, msg a2a.Message) (a2a.Reply, error) {
	req, err := a.svc.ParseMessage(msg)
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

	a.logger.Info("cab request", "pickup", req.Pickup, "destination", req.Destination, "passengers", req.Passengers)
	offers := a.svc.Search(req.Pickup, req.PickupTime, req.Passengers, req.Preferences)
	if len(offers) == 0 {
		a.logger.Warn("no cabs available", "pickup", req.Pickup)
		return a2a.Reply{
			State: a2a.TaskStateFailed,
			Text:  formatNoAvailability(req, a.now()),
			Data: booking.NewOutcome(ServiceName, req.Action, booking.StatusNoAvailability).
				WithDetail("pickup_location", req.Pickup).
				WithDetail("destination", req.Destination),
		}, nil
	}

	b := a.svc.Book(offers[0], Journey{
		Pickup:      req.Pickup,
		Destination: req.Destination,
		PickupTime:  req.PickupTime,
		Passengers:  req.Passengers,
	}, req.Preferences)
	a.logger.Info("cab booked", "booking_id", b.ID, "vehicle", b.Offer.VehicleType, "total", b.Offer.Pricing.Total)
	return a2a.Reply{State: a2a.TaskStateCompleted, Text: formatConfirmation(b), Data: outcome(req.Action, b)}, nil
}

func outcome(action string, b Booking) booking.Outcome {
	o := booking.NewOutcome(ServiceName, action, b.Status)
	o.BookingID = b.ID
	o.ConfirmationCode = b.ConfirmationCode
	o.TotalPrice = b.Offer.Pricing.Total
	return o.WithDetail("vehicle_type", b.Offer.VehicleType).
		WithDetail("model", b.Offer.Model).
		WithDetail("vehicle_number", b.Offer.VehicleNumber).
		WithDetail("driver_name", b.Offer.DriverName).
		WithDetail("pickup_location", b.Journey.Pickup).
		WithDetail("pickup_time", b.Journey.PickupTime).
		WithDetail("eta_min", b.Offer.ETAMin)
}
