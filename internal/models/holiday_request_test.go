package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHolidayBookingRequest_ApplyDefaults(t *testing.T) {
	r := HolidayBookingRequest{Origin: " Delhi ", Destination: "Paris"}
	r.ApplyDefaults(time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, HolidayBookingRequest{
		Origin:        "Delhi",
		Destination:   "Paris",
		Nights:        5,
		Passengers:    2,
		DepartureDate: "2025-11-20",
		RoomType:      "double",
	}, r)
	assert.Equal(t, "2025-11-25", r.CheckOut())
}

func TestHolidayBookingRequest_Validate(t *testing.T) {
	valid := func() HolidayBookingRequest {
		r := DemoRequest()
		r.DepartureDate = "2025-12-24"
		return r
	}

	tests := []struct {
		name    string
		mutate  func(*HolidayBookingRequest)
		wantErr string
	}{
		{name: "ok", mutate: func(*HolidayBookingRequest) {}},
		{name: "missing origin", mutate: func(r *HolidayBookingRequest) { r.Origin = "" }, wantErr: "origin is required"},
		{
			name:    "missing both",
			mutate:  func(r *HolidayBookingRequest) { r.Origin, r.Destination = "", "" },
			wantErr: "origin is required, destination is required",
		},
		{name: "nights too many", mutate: func(r *HolidayBookingRequest) { r.Nights = 366 }, wantErr: "invalid or excessive nights"},
		{name: "negative nights", mutate: func(r *HolidayBookingRequest) { r.Nights = -1 }, wantErr: "invalid or excessive nights"},
		{name: "too many passengers", mutate: func(r *HolidayBookingRequest) { r.Passengers = 10 }, wantErr: "invalid or excessive passengers"},
		{name: "bad date", mutate: func(r *HolidayBookingRequest) { r.DepartureDate = "tomorrow" }, wantErr: "invalid departure_date, want YYYY-MM-DD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
