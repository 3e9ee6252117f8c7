package flight

import (
	"fmt"
	"strings"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/booking"
)

func formatOffers(header string, offers []Offer) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	for i, o := range offers {
		fmt.Fprintf(&b, "%d. %s %s\n", i+1, o.Airline, o.FlightNumber)
		fmt.Fprintf(&b, "   %s → %s\n", o.Origin, o.Destination)
		fmt.Fprintf(&b, "   Departure: %s | Duration: %s\n", o.DepartureTime, o.Duration)
		fmt.Fprintf(&b, "   Price: %s (%s)\n", booking.FormatINR(o.Price), o.ClassType)
		fmt.Fprintf(&b, "   Available seats: %d\n\n", o.AvailableSeats)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatSearch(offers []Offer) string {
	if len(offers) == 0 {
		return "No flights found for your search criteria."
	}
	shown := offers
	if len(shown) > 5 {
		shown = shown[:5]
	}
	return formatOffers(fmt.Sprintf("✈️ Found %d flights:", len(offers)), shown)
}

func formatBooked(b Booking) string {
	return fmt.Sprintf("✅ Flight booked successfully!\nBooking ID: %s\nTotal Price: %s", b.ID, booking.FormatINR(b.TotalPrice))
}

func formatConfirmation(c Confirmation) string {
	var b strings.Builder
	b.WriteString("✈️ **FLIGHT BOOKING CONFIRMATION**\n\n")

	b.WriteString("🎟️ **BOOKING DETAILS:**\n")
	fmt.Fprintf(&b, "• Booking ID: %s\n", c.BookingID)
	fmt.Fprintf(&b, "• Confirmation Code: %s\n", c.ConfirmationCode)
	fmt.Fprintf(&b, "• Flight: %s %s\n", c.Airline, c.FlightNumber)
	fmt.Fprintf(&b, "• Aircraft: %s\n\n", c.Aircraft)

	b.WriteString("🛫 **FLIGHT INFORMATION:**\n")
	fmt.Fprintf(&b, "• Route: %s → %s\n", c.Origin, c.Destination)
	fmt.Fprintf(&b, "• Date: %s\n", c.DepartureDate)
	fmt.Fprintf(&b, "• Departure: %s from %s, %s\n", c.DepartureTime, c.Gate, c.Terminal)
	fmt.Fprintf(&b, "• Arrival: %s\n", c.ArrivalTime)
	fmt.Fprintf(&b, "• Duration: %s\n\n", c.Duration)

	b.WriteString("👥 **PASSENGER DETAILS:**\n")
	fmt.Fprintf(&b, "• Passengers: %d (%s class)\n", c.Passengers, booking.Title(c.ClassType))
	fmt.Fprintf(&b, "• Seats: %s\n", strings.Join(c.Seats, ", "))
	fmt.Fprintf(&b, "• Meal: %s\n\n", c.Meal)

	b.WriteString("💰 **PRICING BREAKDOWN:**\n")
	fmt.Fprintf(&b, "• Base Fare: %s\n", booking.FormatINR(c.Breakdown.BaseFare))
	fmt.Fprintf(&b, "• Taxes & Fees: %s\n", booking.FormatINR(c.Breakdown.Taxes+c.Breakdown.Fees))
	fmt.Fprintf(&b, "• **Total: %s**\n\n", booking.FormatINR(c.TotalPrice))

	b.WriteString("🎒 **TRAVEL INFORMATION:**\n")
	fmt.Fprintf(&b, "• Baggage: %s\n", c.Baggage)
	fmt.Fprintf(&b, "• Check-in: %s\n", c.CheckIn)
	fmt.Fprintf(&b, "• Cancellation: %s\n\n", c.Cancellation)

	b.WriteString("✅ **Your flight is confirmed and ready for travel!**")
	return b.String()
}

func formatAlternativeList(b *strings.Builder, alts []Offer, withSeats bool) {
	for i, alt := range alts {
		fmt.Fprintf(b, "%d. %s %s\n", i+1, alt.Airline, alt.FlightNumber)
		fmt.Fprintf(b, "   Date: %s | Price: %s\n", alt.DepartureDate, booking.FormatINR(alt.Price))
		if withSeats {
			fmt.Fprintf(b, "   Available: %d seats\n", alt.AvailableSeats)
		}
		b.WriteString("\n")
	}
}

func formatFullyBooked(flightID string, alts []Offer) string {
	var b strings.Builder
	b.WriteString("❌ **FLIGHT FULLY BOOKED**\n\n")
	fmt.Fprintf(&b, "❌ Flight %s is fully booked\n\n", flightID)
	b.WriteString("🔄 **REBOOKING OPTIONS AVAILABLE:**\n")
	formatAlternativeList(&b, alts, true)
	return strings.TrimRight(b.String(), "\n")
}

func formatNoAvailability(req Request, alts []Offer) string {
	var b strings.Builder
	b.WriteString("❌ **NO FLIGHTS AVAILABLE**\n\n")
	fmt.Fprintf(&b, "❌ No direct flights available from %s to %s on %s\n\n", req.Origin, req.Destination, req.DepartureDate)
	if len(alts) > 0 {
		b.WriteString("🔄 **ALTERNATIVE OPTIONS:**\n")
		formatAlternativeList(&b, alts, false)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatRebooked(b Booking) string {
	diff := "No price change"
	if b.PriceDifference != 0 {
		diff = "Price difference: " + booking.FormatINR(b.PriceDifference)
	}
	return fmt.Sprintf("✅ Flight rebooked successfully!\nBooking ID: %s\nNew Flight: %s\nNew Price: %s\n%s",
		b.ID, b.Flight.FlightNumber, booking.FormatINR(b.TotalPrice), diff)
}

func formatCancelled(b Booking) string {
	return fmt.Sprintf("✅ Booking cancelled successfully!\nBooking ID: %s\nFlight: %s\nRefund will be processed according to airline policy.",
		b.ID, b.Flight.FlightNumber)
}

func formatAlternatives(bookingID string, alts []Offer) string {
	if len(alts) == 0 {
		return fmt.Sprintf("❌ No alternative flights found for booking %s", bookingID)
	}
	text := formatOffers(fmt.Sprintf("🔄 Found %d alternative flights for booking %s:", len(alts), bookingID), alts)
	return text + "\n\n💡 To rebook, use: 'Rebook booking [BOOKING_ID] to flight [FLIGHT_ID]'"
}

func formatBooking(b Booking) string {
	return fmt.Sprintf("📋 Booking %s (%s)\nFlight: %s %s\nRoute: %s → %s\nPassengers: %d (%s)\nTotal Price: %s",
		b.ID, b.Status, b.Flight.Airline, b.Flight.FlightNumber, b.Flight.Origin, b.Flight.Destination,
		b.Passengers, b.ClassType, booking.FormatINR(b.TotalPrice))
}

func formatStats(s Stats) string {
	return fmt.Sprintf("📊 Flight Database Statistics:\n• Total Flights: %d\n• Airlines: %d\n• Routes: %d\n• Airports: %d\n• Total Bookings: %d",
		s.TotalFlights, s.AirlinesCount, s.TotalRoutes, s.TotalAirports, s.TotalBookings)
}
