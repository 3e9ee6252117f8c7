package flight

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"
)

const (
	ActionSearch           = "search_flights"
	ActionBook             = "book_flight"
	ActionComprehensive    = "comprehensive_booking"
	ActionRebook           = "rebook_flight"
	ActionCancel           = "cancel_booking"
	ActionFindAlternatives = "find_alternatives"
	ActionGetBooking       = "get_booking"
	ActionStats            = "get_stats"
	ActionHealth           = "health_check"
)

const defaultAlternatives = 5

// Request is a decoded agent instruction. It arrives either as a data part,
// as a JSON text body, or as free text that is parsed with keyword rules.
type Request struct {
	Action           string      `json:"action"`
	Origin           string      `json:"origin"`
	Destination      string      `json:"destination"`
	DepartureDate    string      `json:"departure_date"`
	Passengers       int         `json:"passengers"`
	Class            string      `json:"class"`
	ClassType        string      `json:"class_type"`
	FlightID         string      `json:"flight_id"`
	BookingID        string      `json:"booking_id"`
	NewFlightID      string      `json:"new_flight_id"`
	PassengerDetails []Passenger `json:"passenger_details"`
	MaxAlternatives  int         `json:"max_alternatives"`
}

var (
	originRe     = regexp.MustCompile(`(?i)Origin[:\s]+([A-Za-z\s]+?)(?:\n|•|$)`)
	destRe       = regexp.MustCompile(`(?i)Destination[:\s]+([A-Za-z\s]+?)(?:\n|•|$)`)
	dateRe       = regexp.MustCompile(`(?i)Departure Date[:\s]+([0-9-]+)`)
	passengersRe = regexp.MustCompile(`(?i)Passengers[:\s]+(\d+)`)
	classRe      = regexp.MustCompile(`(?i)Class[:\s]+([A-Za-z]+)`)

	flightIDRe  = regexp.MustCompile(`\b[A-Z0-9]{2}\d{4}\b`)
	bookingIDRe = regexp.MustCompile(`\bFL[0-9A-F]{8}\b`)
)

var destinationKeywords = []struct{ keyword, city string }{
	{"mumbai", "Mumbai"},
	{"bombay", "Mumbai"},
	{"bangalore", "Bangalore"},
	{"tokyo", "Tokyo"},
	{"london", "London"},
	{"new york", "New York"},
}

// ParseMessage turns an inbound message into a Request with defaults applied.
// today fills a missing departure date.
func ParseMessage(msg a2a.Message, today string) (Request, error) {
	text := a2a.ExtractText(msg)

	var req Request
	found, err := a2a.ExtractData(msg, &req)
	if err != nil {
		return Request{}, fmt.Errorf("decode flight request: %w", err)
	}
	if !found && strings.HasPrefix(strings.TrimSpace(text), "{") {
		if err := json.Unmarshal([]byte(text), &req); err != nil {
			return Request{}, fmt.Errorf("decode flight request: %w", err)
		}
		found = true
	}
	if !found {
		req = parseText(text)
	}
	if req.Action == "" {
		req.Action = parseText(text).Action
	}
	req.applyDefaults(today)
	return req, nil
}

func (r *Request) applyDefaults(today string) {
	if r.Class == "" {
		r.Class = r.ClassType
	}
	r.Class = normalizeClass(r.Class)
	if r.DepartureDate == "" {
		r.DepartureDate = today
	}
	if r.Passengers == 0 {
		r.Passengers = 1
	}
	if r.Origin == "" {
		r.Origin = "Delhi"
	}
	if r.Destination == "" {
		r.Destination = "Mumbai"
	}
	if r.MaxAlternatives <= 0 {
		r.MaxAlternatives = defaultAlternatives
	}
	r.FlightID = strings.ToUpper(strings.TrimSpace(r.FlightID))
	r.NewFlightID = strings.ToUpper(strings.TrimSpace(r.NewFlightID))
	r.BookingID = strings.ToUpper(strings.TrimSpace(r.BookingID))
}

func parseText(text string) Request {
	lower := strings.ToLower(text)
	has := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}

	req := parseRoute(text)
	upper := strings.ToUpper(text)
	req.BookingID = bookingIDRe.FindString(upper)
	flightIDs := flightIDRe.FindAllString(upper, -1)

	switch {
	case has("comprehensive") && has("book"), has("book") && has("full details"):
		req.Action = ActionComprehensive
	case has("search", "find"):
		if has("alternative", "rebook") {
			req.Action = ActionFindAlternatives
		} else {
			req.Action = ActionSearch
		}
	case has("rebook", "change"):
		req.Action = ActionRebook
		if len(flightIDs) > 0 {
			req.NewFlightID = flightIDs[len(flightIDs)-1]
		}
	case has("cancel"):
		req.Action = ActionCancel
	case req.BookingID != "" && has("status", "show", "get booking"):
		req.Action = ActionGetBooking
	case has("book"):
		if len(flightIDs) > 0 {
			req.Action = ActionBook
			req.FlightID = flightIDs[0]
		} else {
			req.Action = ActionComprehensive
		}
	case has("statistics", "stats"):
		req.Action = ActionStats
	case has("health"):
		req.Action = ActionHealth
	default:
		req.Action = ActionSearch
	}
	return req
}

// parseRoute applies city keywords first, then labelled lines such as
// "Origin: Delhi" which take precedence.
func parseRoute(text string) Request {
	lower := strings.ToLower(text)
	var req Request

	if strings.Contains(lower, "delhi") {
		req.Origin = "Delhi"
	}
	for _, k := range destinationKeywords {
		if strings.Contains(lower, k.keyword) {
			req.Destination = k.city
		}
	}
	switch {
	case strings.Contains(lower, "business"):
		req.Class = ClassBusiness
	case strings.Contains(lower, "first class"):
		req.Class = ClassFirst
	}

	if m := originRe.FindStringSubmatch(text); m != nil {
		req.Origin = strings.TrimSpace(m[1])
	}
	if m := destRe.FindStringSubmatch(text); m != nil {
		req.Destination = strings.TrimSpace(m[1])
	}
	if m := dateRe.FindStringSubmatch(text); m != nil {
		req.DepartureDate = strings.TrimSpace(m[1])
	}
	if m := passengersRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			req.Passengers = n
		}
	}
	if m := classRe.FindStringSubmatch(text); m != nil {
		req.Class = strings.ToLower(m[1])
	}
	return req
}
