package flight

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/booking"
)

const ServiceName = "flight"

type PriceBreakdown struct {
	BaseFare float64 `json:"base_fare"`
	Taxes    float64 `json:"taxes"`
	Fees     float64 `json:"fees"`
}

// Confirmation is the itinerary returned by a comprehensive booking.
type Confirmation struct {
	BookingID        string         `json:"booking_id"`
	ConfirmationCode string         `json:"confirmation_code"`
	FlightID         string         `json:"flight_id"`
	FlightNumber     string         `json:"flight_number"`
	Airline          string         `json:"airline"`
	Aircraft         string         `json:"aircraft"`
	Origin           string         `json:"origin"`
	Destination      string         `json:"destination"`
	DepartureDate    string         `json:"departure_date"`
	DepartureTime    string         `json:"departure_time"`
	ArrivalTime      string         `json:"arrival_time"`
	Duration         string         `json:"duration"`
	Gate             string         `json:"gate"`
	Terminal         string         `json:"terminal"`
	Passengers       int            `json:"passengers"`
	ClassType        string         `json:"class_type"`
	Seats            []string       `json:"seat_assignments"`
	Meal             string         `json:"meal_preference"`
	TotalPrice       float64        `json:"total_price"`
	Breakdown        PriceBreakdown `json:"price_breakdown"`
	Baggage          string         `json:"baggage_allowance"`
	CheckIn          string         `json:"check_in"`
	Cancellation     string         `json:"cancellation"`
}

func newConfirmation(b Booking, o Offer) Confirmation {
	return Confirmation{
		BookingID:        b.ID,
		ConfirmationCode: b.ConfirmationCode(),
		FlightID:         b.FlightID,
		FlightNumber:     b.Flight.FlightNumber,
		Airline:          b.Flight.Airline,
		Aircraft:         b.Flight.Aircraft,
		Origin:           b.Flight.Origin,
		Destination:      b.Flight.Destination,
		DepartureDate:    o.DepartureDate,
		DepartureTime:    b.Flight.DepartureTime,
		ArrivalTime:      b.Flight.ArrivalTime,
		Duration:         o.Duration,
		Gate:             "Gate A12",
		Terminal:         "Terminal 1",
		Passengers:       b.Passengers,
		ClassType:        b.ClassType,
		Seats:            seatAssignments(b.Passengers),
		Meal:             "Standard",
		TotalPrice:       b.TotalPrice,
		Breakdown: PriceBreakdown{
			BaseFare: booking.Round2(b.TotalPrice * 0.7),
			Taxes:    booking.Round2(b.TotalPrice * 0.2),
			Fees:     booking.Round2(b.TotalPrice * 0.1),
		},
		Baggage:      "2 pieces, 23kg each",
		CheckIn:      "Online check-in available 24 hours before departure",
		Cancellation: "Free cancellation up to 24 hours before departure",
	}
}

// seatAssignments gives passenger i row A+i/2 and seat number 10+i%6: A10, A11, B12, B13, ...
func seatAssignments(n int) []string {
	seats := make([]string, n)
	for i := range seats {
		seats[i] = fmt.Sprintf("%c%d", 'A'+i/2, 10+i%6)
	}
	return seats
}

func defaultPassengers(n int) []Passenger {
	out := make([]Passenger, n)
	for i := range out {
		out[i] = Passenger{Name: fmt.Sprintf("Passenger %d", i+1), Age: 30, SeatPreference: "aisle"}
	}
	return out
}

// Agent answers flight messages against a Database.
type Agent struct {
	db     *Database
	logger *slog.Logger
	now    func() time.Time
}

func NewAgent(db *Database, logger *slog.Logger) *Agent {
	if logger == nil {
		logger = slog.Default()
	}
	return &Agent{db: db, logger: logger, now: time.Now}
}

func (a *Agent) Database() *Database { return a.db }

func (a *Agent) Execute(ctx context.Context, msg a2a.Message) (a2a.Reply, error) {
	req, err := ParseMessage(msg, a.now().Format(time.DateOnly))
	if err != nil {
		return a2a.Reply{}, err
	}
	a.logger.Info("flight request", "action", req.Action, "origin", req.Origin, "destination", req.Destination, "passengers", req.Passengers)

	switch req.Action {
	case ActionSearch:
		return a.search(req), nil
	case ActionBook:
		return a.book(req), nil
	case ActionComprehensive:
		return a.comprehensive(req), nil
	case ActionRebook:
		return a.rebook(req), nil
	case ActionCancel:
		return a.cancel(req), nil
	case ActionFindAlternatives:
		return a.alternatives(req), nil
	case ActionGetBooking:
		return a.getBooking(req), nil
	case ActionStats:
		s := a.db.Stats()
		return a2a.Reply{
			State: a2a.TaskStateCompleted,
			Text:  formatStats(s),
			Data:  booking.NewOutcome(ServiceName, req.Action, booking.StatusOK).WithDetail("statistics", s),
		}, nil
	case ActionHealth:
		return a2a.Reply{
			State: a2a.TaskStateCompleted,
			Text:  "✅ Flight agent is healthy",
			Data:  booking.NewOutcome(ServiceName, req.Action, booking.StatusOK),
		}, nil
	default:
		return a2a.Reply{}, fmt.Errorf("unknown flight action %q", req.Action)
	}
}

func (a *Agent) reject(action string, err error) a2a.Reply {
	a.logger.Warn("flight request rejected", "action", action, "error", err)
	return a2a.Reply{
		State: a2a.TaskStateFailed,
		Text:  "❌ Error: " + err.Error(),
		Data:  booking.Rejected(ServiceName, action, err),
	}
}

func (a *Agent) search(req Request) a2a.Reply {
	offers := a.db.Search(req.Origin, req.Destination, req.DepartureDate, req.Passengers, req.Class)
	return a2a.Reply{
		State: a2a.TaskStateCompleted,
		Text:  formatSearch(offers),
		Data: booking.NewOutcome(ServiceName, req.Action, booking.StatusOK).
			WithDetail("results_count", len(offers)).
			WithDetail("flights", offers),
	}
}

func (a *Agent) book(req Request) a2a.Reply {
	if req.FlightID == "" {
		return a.reject(req.Action, errors.New("missing required field: flight_id"))
	}
	details := req.PassengerDetails
	if len(details) == 0 {
		details = defaultPassengers(max(req.Passengers, 0))
	}
	b, err := a.db.Book(req.FlightID, req.Passengers, details, req.Class)
	if err != nil {
		return a.reject(req.Action, err)
	}
	return a2a.Reply{
		State: a2a.TaskStateCompleted,
		Text:  formatBooked(b),
		Data:  bookingOutcome(req.Action, b),
	}
}

// comprehensive books the cheapest flight on the route and returns a full
// itinerary. With nothing on the route it suggests other flights for one
// traveller; when the chosen flight fills up first it suggests others on the
// same route.
func (a *Agent) comprehensive(req Request) a2a.Reply {
	if req.Passengers < 1 || req.Passengers > MaxPassengers {
		return a.reject(req.Action, fmt.Errorf("%w: got %d", ErrInvalidPassengers, req.Passengers))
	}

	offers := a.db.Search(req.Origin, req.Destination, req.DepartureDate, req.Passengers, req.Class)
	if len(offers) == 0 {
		alts := a.db.Search(req.Origin, req.Destination, req.DepartureDate, 1, req.Class)
		if len(alts) > 3 {
			alts = alts[:3]
		}
		return a2a.Reply{
			State: a2a.TaskStateFailed,
			Text:  formatNoAvailability(req, alts),
			Data: booking.NewOutcome(ServiceName, req.Action, booking.StatusNoAvailability).
				WithDetail("origin", req.Origin).
				WithDetail("destination", req.Destination).
				WithDetail("alternatives", alts),
		}
	}

	best := offers[0]
	b, err := a.db.Book(best.FlightID, req.Passengers, defaultPassengers(req.Passengers), req.Class)
	if errors.Is(err, ErrInsufficientSeats) {
		alts, _ := a.db.AlternativesFor(best.FlightID, req.DepartureDate, req.Passengers, req.Class, 3)
		return a2a.Reply{
			State: a2a.TaskStateFailed,
			Text:  formatFullyBooked(best.FlightID, alts),
			Data: booking.NewOutcome(ServiceName, req.Action, booking.StatusFullyBooked).
				WithDetail("flight_id", best.FlightID).
				WithDetail("alternatives", alts),
		}
	}
	if err != nil {
		return a.reject(req.Action, err)
	}

	c := newConfirmation(b, best)
	a.logger.Info("flight booked", "booking_id", b.ID, "flight_id", b.FlightID, "passengers", b.Passengers, "total", b.TotalPrice)
	return a2a.Reply{
		State: a2a.TaskStateCompleted,
		Text:  formatConfirmation(c),
		Data:  bookingOutcome(req.Action, b).WithDetail("itinerary", c),
	}
}

func (a *Agent) rebook(req Request) a2a.Reply {
	if req.BookingID == "" || req.NewFlightID == "" {
		return a.reject(req.Action, errors.New("missing required field: booking_id and new_flight_id"))
	}
	b, err := a.db.Rebook(req.BookingID, req.NewFlightID)
	if err != nil {
		return a.reject(req.Action, err)
	}
	return a2a.Reply{
		State: a2a.TaskStateCompleted,
		Text:  formatRebooked(b),
		Data: bookingOutcome(req.Action, b).
			WithDetail("original_flight_id", b.OriginalFlightID).
			WithDetail("price_difference", b.PriceDifference),
	}
}

func (a *Agent) cancel(req Request) a2a.Reply {
	if req.BookingID == "" {
		return a.reject(req.Action, errors.New("missing required field: booking_id"))
	}
	b, err := a.db.Cancel(req.BookingID)
	if err != nil {
		return a.reject(req.Action, err)
	}
	return a2a.Reply{
		State: a2a.TaskStateCompleted,
		Text:  formatCancelled(b),
		Data:  bookingOutcome(req.Action, b),
	}
}

func (a *Agent) alternatives(req Request) a2a.Reply {
	if req.BookingID == "" {
		return a.reject(req.Action, errors.New("missing required field: booking_id"))
	}
	alts, err := a.db.FindAlternatives(req.BookingID, req.MaxAlternatives)
	if err != nil {
		return a.reject(req.Action, err)
	}
	return a2a.Reply{
		State: a2a.TaskStateCompleted,
		Text:  formatAlternatives(req.BookingID, alts),
		Data: booking.NewOutcome(ServiceName, req.Action, booking.StatusOK).
			WithDetail("booking_id", req.BookingID).
			WithDetail("alternatives", alts),
	}
}

func (a *Agent) getBooking(req Request) a2a.Reply {
	if req.BookingID == "" {
		return a.reject(req.Action, errors.New("missing required field: booking_id"))
	}
	b, err := a.db.Get(req.BookingID)
	if err != nil {
		return a.reject(req.Action, err)
	}
	return a2a.Reply{
		State: a2a.TaskStateCompleted,
		Text:  formatBooking(b),
		Data:  bookingOutcome(req.Action, b),
	}
}

func bookingOutcome(action string, b Booking) booking.Outcome {
	o := booking.NewOutcome(ServiceName, action, b.Status)
	o.BookingID = b.ID
	o.ConfirmationCode = b.ConfirmationCode()
	o.TotalPrice = b.TotalPrice
	return o.WithDetail("flight_id", b.FlightID).
		WithDetail("flight_number", b.Flight.FlightNumber).
		WithDetail("passengers", b.Passengers).
		WithDetail("class_type", b.ClassType)
}
