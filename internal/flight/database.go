// Package flight is the flight booking agent: a seeded route table with seat
// inventory, bookings kept in memory, and the executor that answers agent
// messages.
package flight

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/booking"
)

var (
	ErrFlightNotFound    = errors.New("flight not found")
	ErrInsufficientSeats = errors.New("insufficient seats")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingCancelled  = errors.New("booking already cancelled")
	ErrInvalidPassengers = errors.New("passengers must be between 1 and 9")
)

const (
	ClassEconomy  = "economy"
	ClassBusiness = "business"
	ClassFirst    = "first"

	MaxPassengers = 9
)

type Flight struct {
	ID              string  `json:"flight_id"`
	Airline         string  `json:"airline"`
	AirlineCode     string  `json:"airline_code"`
	Number          string  `json:"flight_number"`
	Origin          string  `json:"origin"`
	OriginCode      string  `json:"origin_code"`
	Destination     string  `json:"destination"`
	DestinationCode string  `json:"destination_code"`
	DepartureTime   string  `json:"departure_time"`
	ArrivalTime     string  `json:"arrival_time"`
	Duration        string  `json:"duration"`
	Aircraft        string  `json:"aircraft"`
	AvailableSeats  int     `json:"available_seats"`
	TotalSeats      int     `json:"total_seats"`
	PriceEconomy    float64 `json:"price_economy"`
	PriceBusiness   float64 `json:"price_business"`
	PriceFirst      float64 `json:"price_first"`
	RouteType       string  `json:"route_type"`
}

// Price returns the per-passenger fare for class. Unknown classes fall back to economy.
func (f Flight) Price(class string) float64 {
	switch strings.ToLower(class) {
	case ClassBusiness:
		return f.PriceBusiness
	case ClassFirst:
		return f.PriceFirst
	default:
		return f.PriceEconomy
	}
}

func (f Flight) matches(origin, destination string) bool {
	return matchPlace(origin, f.Origin, f.OriginCode) && matchPlace(destination, f.Destination, f.DestinationCode)
}

func matchPlace(query, city, code string) bool {
	if query == "" {
		return false
	}
	city = strings.ToLower(city)
	return city == query || strings.ToLower(code) == query || strings.Contains(city, query)
}

// Offer is one search hit priced for the requested class.
type Offer struct {
	FlightID        string  `json:"flight_id"`
	Airline         string  `json:"airline"`
	FlightNumber    string  `json:"flight_number"`
	Origin          string  `json:"origin"`
	OriginCode      string  `json:"origin_code"`
	Destination     string  `json:"destination"`
	DestinationCode string  `json:"destination_code"`
	DepartureTime   string  `json:"departure_time"`
	ArrivalTime     string  `json:"arrival_time"`
	Duration        string  `json:"duration"`
	Aircraft        string  `json:"aircraft"`
	AvailableSeats  int     `json:"available_seats"`
	Price           float64 `json:"price"`
	ClassType       string  `json:"class_type"`
	RouteType       string  `json:"route_type"`
	DepartureDate   string  `json:"departure_date"`
}

func newOffer(f *Flight, date, class string) Offer {
	return Offer{
		FlightID:        f.ID,
		Airline:         f.Airline,
		FlightNumber:    f.Number,
		Origin:          f.Origin,
		OriginCode:      f.OriginCode,
		Destination:     f.Destination,
		DestinationCode: f.DestinationCode,
		DepartureTime:   f.DepartureTime,
		ArrivalTime:     f.ArrivalTime,
		Duration:        f.Duration,
		Aircraft:        f.Aircraft,
		AvailableSeats:  f.AvailableSeats,
		Price:           f.Price(class),
		ClassType:       class,
		RouteType:       f.RouteType,
		DepartureDate:   date,
	}
}

type Passenger struct {
	Name           string `json:"name"`
	Age            int    `json:"age,omitempty"`
	SeatPreference string `json:"seat_preference,omitempty"`
}

// FlightSnapshot freezes the flight a booking was made on.
type FlightSnapshot struct {
	Airline         string `json:"airline"`
	FlightNumber    string `json:"flight_number"`
	Origin          string `json:"origin"`
	OriginCode      string `json:"origin_code"`
	Destination     string `json:"destination"`
	DestinationCode string `json:"destination_code"`
	DepartureTime   string `json:"departure_time"`
	ArrivalTime     string `json:"arrival_time"`
	Aircraft        string `json:"aircraft"`
	RouteType       string `json:"route_type"`
}

func snapshot(f *Flight) FlightSnapshot {
	return FlightSnapshot{
		Airline:         f.Airline,
		FlightNumber:    f.Number,
		Origin:          f.Origin,
		OriginCode:      f.OriginCode,
		Destination:     f.Destination,
		DestinationCode: f.DestinationCode,
		DepartureTime:   f.DepartureTime,
		ArrivalTime:     f.ArrivalTime,
		Aircraft:        f.Aircraft,
		RouteType:       f.RouteType,
	}
}

type Booking struct {
	ID               string         `json:"booking_id"`
	FlightID         string         `json:"flight_id"`
	OriginalFlightID string         `json:"original_flight_id,omitempty"`
	Flight           FlightSnapshot `json:"flight_details"`
	Passengers       int            `json:"passengers"`
	PassengerDetails []Passenger    `json:"passenger_details"`
	ClassType        string         `json:"class_type"`
	UnitPrice        float64        `json:"unit_price"`
	TotalPrice       float64        `json:"total_price"`
	OriginalPrice    float64        `json:"original_price,omitempty"`
	PriceDifference  float64        `json:"price_difference,omitempty"`
	Status           booking.Status `json:"status"`
	BookedAt         time.Time      `json:"booking_date"`
	RebookedAt       *time.Time     `json:"rebook_date,omitempty"`
	CancelledAt      *time.Time     `json:"cancellation_date,omitempty"`
}

// ConfirmationCode is the last six characters of the booking id.
func (b Booking) ConfirmationCode() string {
	if len(b.ID) <= 6 {
		return b.ID
	}
	return strings.ToUpper(b.ID[len(b.ID)-6:])
}

type Stats struct {
	TotalFlights        int      `json:"total_flights"`
	TotalRoutes         int      `json:"total_routes"`
	TotalAirports       int      `json:"total_airports"`
	TotalBookings       int      `json:"total_bookings"`
	ActiveBookings      int      `json:"active_bookings"`
	CancelledBookings   int      `json:"cancelled_bookings"`
	AirlinesCount       int      `json:"airlines_count"`
	Airlines            []string `json:"airlines"`
	TotalCapacity       int      `json:"total_capacity"`
	TotalAvailableSeats int      `json:"total_available_seats"`
}

// Database owns the flight inventory and bookings of one agent. Every seat
// mutation happens under mu, so Book, Rebook and Cancel are atomic with
// respect to each other.
type Database struct {
	mu           sync.Mutex
	airports     map[string]Airport
	airportCount int
	flights      map[string]*Flight
	order        []string
	bookings     map[string]*Booking

	now   func() time.Time
	newID func() string
}

func NewDatabase() *Database {
	airports, n := buildAirports()
	flights, order := buildFlights(airports)
	return &Database{
		airports:     airports,
		airportCount: n,
		flights:      flights,
		order:        order,
		bookings:     make(map[string]*Booking),
		now:          time.Now,
		newID:        newBookingID,
	}
}

func newBookingID() string {
	return "FL" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// Airport looks up an airport by IATA code or city name.
func (d *Database) Airport(codeOrCity string) (Airport, bool) {
	q := strings.TrimSpace(codeOrCity)
	if a, ok := d.airports[strings.ToUpper(q)]; ok {
		return a, true
	}
	a, ok := d.airports[strings.ToLower(q)]
	return a, ok
}

func (d *Database) Flight(id string) (Flight, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	f, ok := d.flights[id]
	if !ok {
		return Flight{}, false
	}
	return *f, true
}

// Search lists flights on the route with at least passengers free seats,
// cheapest first. Origin and destination match a city, an airport code or a
// part of the city name, case-insensitively.
func (d *Database) Search(origin, destination, date string, passengers int, class string) []Offer {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.searchLocked(origin, destination, date, passengers, class)
}

func (d *Database) searchLocked(origin, destination, date string, passengers int, class string) []Offer {
	origin = strings.ToLower(strings.TrimSpace(origin))
	destination = strings.ToLower(strings.TrimSpace(destination))
	class = normalizeClass(class)

	var out []Offer
	for _, id := range d.order {
		f := d.flights[id]
		if f.matches(origin, destination) && f.AvailableSeats >= passengers {
			out = append(out, newOffer(f, date, class))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out
}

// Book reserves seats on a flight. On any error nothing is changed.
func (d *Database) Book(flightID string, passengers int, details []Passenger, class string) (Booking, error) {
	if passengers < 1 || passengers > MaxPassengers {
		return Booking{}, fmt.Errorf("%w: got %d", ErrInvalidPassengers, passengers)
	}
	class = normalizeClass(class)

	d.mu.Lock()
	defer d.mu.Unlock()

	f, ok := d.flights[flightID]
	if !ok {
		return Booking{}, fmt.Errorf("%w: %s", ErrFlightNotFound, flightID)
	}
	if f.AvailableSeats < passengers {
		return Booking{}, fmt.Errorf("%w: available %d, requested %d", ErrInsufficientSeats, f.AvailableSeats, passengers)
	}

	unit := f.Price(class)
	f.AvailableSeats -= passengers

	b := &Booking{
		ID:               d.uniqueIDLocked(),
		FlightID:         f.ID,
		Flight:           snapshot(f),
		Passengers:       passengers,
		PassengerDetails: details,
		ClassType:        class,
		UnitPrice:        unit,
		TotalPrice:       unit * float64(passengers),
		Status:           booking.StatusConfirmed,
		BookedAt:         d.now(),
	}
	d.bookings[b.ID] = b
	return *b, nil
}

func (d *Database) uniqueIDLocked() string {
	for {
		id := d.newID()
		if _, taken := d.bookings[id]; !taken {
			return id
		}
	}
}

func (d *Database) Get(bookingID string) (Booking, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := d.bookings[bookingID]
	if !ok {
		return Booking{}, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}
	return *b, nil
}

// Rebook moves an active booking to another flight, keeping its id. Seats go
// back to the old flight and come off the new one in the same critical section.
func (d *Database) Rebook(bookingID, newFlightID string) (Booking, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.bookings[bookingID]
	if !ok {
		return Booking{}, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}
	if b.Status == booking.StatusCancelled {
		return Booking{}, fmt.Errorf("%w: %s", ErrBookingCancelled, bookingID)
	}
	next, ok := d.flights[newFlightID]
	if !ok {
		return Booking{}, fmt.Errorf("new %w: %s", ErrFlightNotFound, newFlightID)
	}

	free := next.AvailableSeats
	if newFlightID == b.FlightID {
		free += b.Passengers
	}
	if free < b.Passengers {
		return Booking{}, fmt.Errorf("%w on new flight: available %d, required %d", ErrInsufficientSeats, next.AvailableSeats, b.Passengers)
	}

	if prev, ok := d.flights[b.FlightID]; ok {
		prev.AvailableSeats += b.Passengers
	}
	next.AvailableSeats -= b.Passengers

	unit := next.Price(b.ClassType)
	total := unit * float64(b.Passengers)
	now := d.now()

	b.OriginalFlightID = b.FlightID
	b.OriginalPrice = b.TotalPrice
	b.PriceDifference = total - b.TotalPrice
	b.FlightID = next.ID
	b.Flight = snapshot(next)
	b.UnitPrice = unit
	b.TotalPrice = total
	b.Status = booking.StatusRebooked
	b.RebookedAt = &now
	return *b, nil
}

// Cancel releases the seats of an active booking. A booking can be cancelled once.
func (d *Database) Cancel(bookingID string) (Booking, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.bookings[bookingID]
	if !ok {
		return Booking{}, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}
	if b.Status == booking.StatusCancelled {
		return Booking{}, fmt.Errorf("%w: %s", ErrBookingCancelled, bookingID)
	}
	if f, ok := d.flights[b.FlightID]; ok {
		f.AvailableSeats += b.Passengers
	}
	now := d.now()
	b.Status = booking.StatusCancelled
	b.CancelledAt = &now
	return *b, nil
}

// FindAlternatives searches the route of an existing booking for other
// flights that fit its party.
func (d *Database) FindAlternatives(bookingID string, limit int) ([]Offer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.bookings[bookingID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}
	today := d.now().Format(time.DateOnly)
	return d.alternativesLocked(b.Flight.Origin, b.Flight.Destination, b.FlightID, today, b.Passengers, b.ClassType, limit), nil
}

// AlternativesFor lists other flights on the route of flightID, for when that
// flight cannot take the party.
func (d *Database) AlternativesFor(flightID, date string, passengers int, class string, limit int) ([]Offer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	f, ok := d.flights[flightID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFlightNotFound, flightID)
	}
	return d.alternativesLocked(f.Origin, f.Destination, flightID, date, passengers, class, limit), nil
}

func (d *Database) alternativesLocked(origin, destination, exclude, date string, passengers int, class string, limit int) []Offer {
	var out []Offer
	for _, o := range d.searchLocked(origin, destination, date, passengers, class) {
		if o.FlightID == exclude {
			continue
		}
		out = append(out, o)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func (d *Database) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := Stats{
		TotalFlights:  len(d.flights),
		TotalAirports: d.airportCount,
		TotalBookings: len(d.bookings),
	}
	airlines := map[string]bool{}
	routes := map[string]bool{}
	for _, f := range d.flights {
		airlines[f.Airline] = true
		routes[f.Origin+"-"+f.Destination] = true
		s.TotalCapacity += f.TotalSeats
		s.TotalAvailableSeats += f.AvailableSeats
	}
	for _, b := range d.bookings {
		if b.Status == booking.StatusCancelled {
			s.CancelledBookings++
		} else {
			s.ActiveBookings++
		}
	}
	for a := range airlines {
		s.Airlines = append(s.Airlines, a)
	}
	sort.Strings(s.Airlines)
	s.AirlinesCount = len(s.Airlines)
	s.TotalRoutes = len(routes)
	return s
}

func normalizeClass(class string) string {
	switch c := strings.ToLower(strings.TrimSpace(class)); c {
	case ClassBusiness, ClassFirst:
		return c
	default:
		return ClassEconomy
	}
}
