package hotel

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"
)

const (
	ActionBook       = "book_hotel"
	ActionGetBooking = "get_booking"
)

type Request struct {
	Action      string      `json:"action"`
	BookingID   string      `json:"booking_id"`
	Location    string      `json:"location"`
	CheckIn     string      `json:"check_in"`
	CheckOut    string      `json:"check_out"`
	Nights      int         `json:"nights"`
	Guests      int         `json:"guests"`
	Preferences Preferences `json:"preferences"`
}

var (
	locationRe  = regexp.MustCompile(`(?i)Location[:\s]+([^\n•]+)`)
	checkInRe   = regexp.MustCompile(`(?i)Check-in(?: Date)?[:\s]+(\d{4}-\d{2}-\d{2})`)
	checkOutRe  = regexp.MustCompile(`(?i)Check-out(?: Date)?[:\s]+(\d{4}-\d{2}-\d{2})`)
	nightsRe    = regexp.MustCompile(`(?i)(\d+)\s*nights?`)
	guestsRe    = regexp.MustCompile(`(?i)Guests[:\s]+(\d+)|(\d+)\s*guests?`)
	starRe      = regexp.MustCompile(`(?i)(\d)\s*star`)
	roomTypeRe  = regexp.MustCompile(`(?i)Room Type[:\s]+([A-Za-z]+)`)
	bookingIDRe = regexp.MustCompile(`\bHTL\d{5}[A-Z]\d{2}\b`)
)

// ParseMessage decodes a hotel request from a data part, a JSON body or
// labelled free text, then fills defaults: Mumbai, check-in today, one night,
// two guests.
func (s *Service) ParseMessage(msg a2a.Message, today string) (Request, error) {
	text := a2a.ExtractText(msg)

	var req Request
	found, err := a2a.ExtractData(msg, &req)
	if err != nil {
		return Request{}, fmt.Errorf("decode hotel request: %w", err)
	}
	if !found && strings.HasPrefix(strings.TrimSpace(text), "{") {
		if err := json.Unmarshal([]byte(text), &req); err != nil {
			return Request{}, fmt.Errorf("decode hotel request: %w", err)
		}
		found = true
	}
	if !found {
		req = s.parseText(text)
	}
	req.applyDefaults(today)
	return req, nil
}

func (s *Service) parseText(text string) Request {
	var req Request

	if id := bookingIDRe.FindString(strings.ToUpper(text)); id != "" {
		req.Action = ActionGetBooking
		req.BookingID = id
		return req
	}

	scope := text
	if m := locationRe.FindStringSubmatch(text); m != nil {
		scope = m[1]
	}
	if c, ok := s.FindCity(scope); ok {
		req.Location = c.Name
	} else if c, ok := s.FindCity(text); ok {
		req.Location = c.Name
	}

	if m := checkInRe.FindStringSubmatch(text); m != nil {
		req.CheckIn = m[1]
	}
	if m := checkOutRe.FindStringSubmatch(text); m != nil {
		req.CheckOut = m[1]
	}
	if m := nightsRe.FindStringSubmatch(text); m != nil {
		req.Nights, _ = strconv.Atoi(m[1])
	}
	if m := guestsRe.FindStringSubmatch(text); m != nil {
		g := m[1]
		if g == "" {
			g = m[2]
		}
		req.Guests, _ = strconv.Atoi(g)
	}
	if m := starRe.FindStringSubmatch(text); m != nil {
		req.Preferences.HotelRating, _ = strconv.Atoi(m[1])
	}
	if m := roomTypeRe.FindStringSubmatch(text); m != nil {
		req.Preferences.RoomType = m[1]
	} else {
		lower := strings.ToLower(text)
		for _, r := range s.rooms {
			if strings.Contains(lower, strings.ToLower(r.Name)) {
				req.Preferences.RoomType = r.Name
				break
			}
		}
	}
	return req
}

func (r *Request) applyDefaults(today string) {
	if r.Action == "" {
		r.Action = ActionBook
	}
	r.BookingID = strings.ToUpper(strings.TrimSpace(r.BookingID))
	if r.Location == "" {
		r.Location = "Mumbai"
	}
	if r.CheckIn == "" {
		r.CheckIn = today
	}
	if r.Guests <= 0 {
		r.Guests = 2
	}
	if r.CheckOut == "" {
		nights := r.Nights
		if nights <= 0 {
			nights = 1
		}
		if in, err := time.Parse(time.DateOnly, r.CheckIn); err == nil {
			r.CheckOut = in.AddDate(0, 0, nights).Format(time.DateOnly)
		}
	}
}
