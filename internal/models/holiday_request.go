package models

import (
	"errors"
	"strings"
	"time"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/validator"
)

const (
	DefaultNights     = 5
	DefaultPassengers = 2
	DefaultRoomType   = "double"

	MaxNights     = 365
	MaxPassengers = 9
)

// HolidayBookingRequest is the orchestrator's input. Origin and destination
// are required; everything else has a default.
type HolidayBookingRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Nights        int    `json:"nights"`
	Passengers    int    `json:"passengers"`
	DepartureDate string `json:"departure_date,omitempty"`
	RoomType      string `json:"room_type"`
}

// ServiceTestRequest drives one agent directly. A non-empty Text is sent
// verbatim instead of the message built from the holiday fields.
type ServiceTestRequest struct {
	HolidayBookingRequest
	Text string `json:"text,omitempty"`
}

func DemoRequest() HolidayBookingRequest {
	return HolidayBookingRequest{
		Origin:      "Delhi",
		Destination: "Paris",
		Nights:      DefaultNights,
		Passengers:  DefaultPassengers,
		RoomType:    DefaultRoomType,
	}
}

// ApplyDefaults fills zero fields. A missing departure date becomes today.
func (r *HolidayBookingRequest) ApplyDefaults(now time.Time) {
	r.Origin = strings.TrimSpace(r.Origin)
	r.Destination = strings.TrimSpace(r.Destination)
	if r.Nights == 0 {
		r.Nights = DefaultNights
	}
	if r.Passengers == 0 {
		r.Passengers = DefaultPassengers
	}
	if strings.TrimSpace(r.RoomType) == "" {
		r.RoomType = DefaultRoomType
	}
	if r.DepartureDate == "" {
		r.DepartureDate = now.Format(time.DateOnly)
	}
}

func (r *HolidayBookingRequest) Validate() error {
	var errs []string

	if r.Origin == "" {
		errs = append(errs, "origin is required")
	} else if _, err := validator.ValidateCity(r.Origin); err != nil {
		errs = append(errs, "invalid origin")
	}
	if r.Destination == "" {
		errs = append(errs, "destination is required")
	} else if _, err := validator.ValidateCity(r.Destination); err != nil {
		errs = append(errs, "invalid destination")
	}
	if err := validator.ValidateRange("nights", r.Nights, 1, MaxNights); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validator.ValidateRange("passengers", r.Passengers, 1, MaxPassengers); err != nil {
		errs = append(errs, err.Error())
	}
	if _, err := validator.ValidateDate(r.DepartureDate); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, ", "))
	}
	return nil
}

// CheckOut is the departure date plus the stay length.
func (r HolidayBookingRequest) CheckOut() string {
	in, err := time.Parse(time.DateOnly, r.DepartureDate)
	if err != nil {
		return ""
	}
	return in.AddDate(0, 0, r.Nights).Format(time.DateOnly)
}
