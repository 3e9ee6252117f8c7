package orchestrator

import (
	"fmt"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/cab"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/flight"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/hotel"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/models"
)

// buildMessage turns a holiday request into one agent's message: a readable
// text part plus the agent's own request schema as a data part. It also
// returns the request-derived booking details for that service.
func buildMessage(service string, req models.HolidayBookingRequest) (a2a.Message, map[string]any, error) {
	var (
		text    string
		payload any
		details map[string]any
	)
	switch service {
	case ServiceFlight:
		text = fmt.Sprintf("Book a round-trip flight:\n"+
			"• Origin: %s\n"+
			"• Destination: %s\n"+
			"• Departure Date: %s\n"+
			"• Passengers: %d adults\n"+
			"• Class: Economy\n"+
			"• Requirements: Flexible booking, online check-in available",
			req.Origin, req.Destination, req.DepartureDate, req.Passengers)
		payload = flight.Request{
			Action:        flight.ActionComprehensive,
			Origin:        req.Origin,
			Destination:   req.Destination,
			DepartureDate: req.DepartureDate,
			Passengers:    req.Passengers,
			Class:         flight.ClassEconomy,
		}
		details = map[string]any{
			"origin":         req.Origin,
			"destination":    req.Destination,
			"passengers":     req.Passengers,
			"departure_date": req.DepartureDate,
		}

	case ServiceHotel:
		text = fmt.Sprintf("Book a hotel reservation:\n"+
			"• Location: %s city center\n"+
			"• Duration: %d nights\n"+
			"• Check-in Date: %s\n"+
			"• Guests: %d adults\n"+
			"• Room Type: %s room\n"+
			"• Requirements: WiFi, breakfast included, near attractions",
			req.Destination, req.Nights, req.DepartureDate, req.Passengers, req.RoomType)
		payload = hotel.Request{
			Action:      hotel.ActionBook,
			Location:    req.Destination,
			CheckIn:     req.DepartureDate,
			CheckOut:    req.CheckOut(),
			Nights:      req.Nights,
			Guests:      req.Passengers,
			Preferences: hotel.Preferences{RoomType: req.RoomType},
		}
		details = map[string]any{
			"location":  req.Destination,
			"nights":    req.Nights,
			"room_type": req.RoomType,
			"check_in":  req.DepartureDate,
		}

	case ServiceCab:
		pickup := req.Destination + " International Airport"
		dropoff := "Hotel in " + req.Destination + " city center"
		text = fmt.Sprintf("Book airport transfer service:\n"+
			"• Pickup: %s\n"+
			"• Destination: %s\n"+
			"• Date: %s\n"+
			"• Passengers: %d adults\n"+
			"• Vehicle: Standard sedan or larger\n"+
			"• Requirements: English-speaking driver, assistance with luggage",
			pickup, dropoff, req.DepartureDate, req.Passengers)
		payload = cab.Request{
			Action:      cab.ActionBook,
			Pickup:      pickup,
			Destination: dropoff,
			PickupTime:  req.DepartureDate,
			Passengers:  req.Passengers,
			Preferences: cab.Preferences{VehicleType: "sedan"},
		}
		details = map[string]any{
			"pickup":      req.Destination + " Airport",
			"destination": "Hotel in " + req.Destination,
			"passengers":  req.Passengers,
			"date":        req.DepartureDate,
		}

	default:
		return a2a.Message{}, nil, fmt.Errorf("%w: %q", ErrUnknownService, service)
	}

	data, err := a2a.DataPart(payload)
	if err != nil {
		return a2a.Message{}, nil, err
	}
	return a2a.NewMessage(a2a.RoleUser, a2a.TextPart(text), data), details, nil
}
