package cab

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"
)

const (
	ActionBook       = "book_cab"
	ActionGetBooking = "get_booking"
)

type Request struct {
	Action      string      `json:"action"`
	BookingID   string      `json:"booking_id"`
	Pickup      string      `json:"pickup_location"`
	Destination string      `json:"destination"`
	PickupTime  string      `json:"pickup_time"`
	Passengers  int         `json:"passengers"`
	Preferences Preferences `json:"preferences"`
}

var (
	pickupRe     = regexp.MustCompile(`(?i)Pickup:\s*([^\n•]+)`)
	destRe       = regexp.MustCompile(`(?i)Destination:\s*([^\n•]+)`)
	timeRe       = regexp.MustCompile(`(?i)(?:Pickup Time|Date):\s*([^\n•]+)`)
	passengersRe = regexp.MustCompile(`(?i)Passengers:\s*(\d+)|(\d+)\s*passengers?`)
	bookingIDRe  = regexp.MustCompile(`\bCAB\d{5}[A-Z]\d{2}\b`)
)

// ParseMessage decodes a transfer request from a data part, a JSON body or
// free text and fills defaults: pickup Delhi, destination Airport, now, two
// passengers.
func (s *Service) ParseMessage(msg a2a.Message) (Request, error) {
	text := a2a.ExtractText(msg)

	var req Request
	found, err := a2a.ExtractData(msg, &req)
	if err != nil {
		return Request{}, fmt.Errorf("decode cab request: %w", err)
	}
	if !found && strings.HasPrefix(strings.TrimSpace(text), "{") {
		if err := json.Unmarshal([]byte(text), &req); err != nil {
			return Request{}, fmt.Errorf("decode cab request: %w", err)
		}
		found = true
	}
	if !found {
		req = s.parseText(text)
	}
	req.applyDefaults()
	return req, nil
}

func (s *Service) parseText(text string) Request {
	var req Request

	if id := bookingIDRe.FindString(strings.ToUpper(text)); id != "" {
		req.Action = ActionGetBooking
		req.BookingID = id
		return req
	}

	if m := pickupRe.FindStringSubmatch(text); m != nil {
		req.Pickup = strings.TrimSpace(m[1])
	}
	if m := destRe.FindStringSubmatch(text); m != nil {
		req.Destination = strings.TrimSpace(m[1])
	}
	if req.Pickup == "" && req.Destination == "" {
		req.Pickup, req.Destination = s.fromTo(text)
	}
	if m := timeRe.FindStringSubmatch(text); m != nil {
		req.PickupTime = strings.TrimSpace(m[1])
	}
	if m := passengersRe.FindStringSubmatch(text); m != nil {
		n := m[1]
		if n == "" {
			n = m[2]
		}
		req.Passengers, _ = strconv.Atoi(n)
	}

	lower := strings.ToLower(text)
	for _, v := range s.vehicles {
		if strings.Contains(lower, strings.ToLower(v.Type)) {
			req.Preferences.VehicleType = v.Type
			break
		}
	}
	return req
}

// fromTo reads "from X to Y" phrasing: a city after "from" is the pickup and
// a city after "to" is the destination.
func (s *Service) fromTo(text string) (pickup, destination string) {
	lower := " " + strings.ToLower(text) + " "
	from := strings.Index(lower, " from ")
	to := strings.Index(lower, " to ")
	for _, name := range s.cityNames {
		at := strings.Index(lower, strings.ToLower(name))
		if at < 0 {
			continue
		}
		switch {
		case from >= 0 && at > from && (to < from || at < to):
			pickup = name
		case to >= 0 && at > to:
			destination = name
		}
	}
	return pickup, destination
}

func (r *Request) applyDefaults() {
	if r.Action == "" {
		r.Action = ActionBook
	}
	r.BookingID = strings.ToUpper(strings.TrimSpace(r.BookingID))
	if r.Pickup == "" {
		r.Pickup = "Delhi"
	}
	if r.Destination == "" {
		r.Destination = "Airport"
	}
	if r.PickupTime == "" {
		r.PickupTime = "Now"
	}
	if r.Passengers <= 0 {
		r.Passengers = 2
	}
}
