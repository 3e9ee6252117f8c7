package cab

import (
	"fmt"
	"strings"
	"time"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/booking"
)

const rule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

func formatConfirmation(b Booking) string {
	o := b.Offer
	p := o.Pricing
	inr := booking.FormatINR

	var sb strings.Builder
	sb.WriteString("🚗 **CAB BOOKING CONFIRMED** 🚗\n\n" + rule + "\n\n")
	fmt.Fprintf(&sb, "🎫 **Booking Reference:** %s\n", b.ID)
	fmt.Fprintf(&sb, "🔑 **Confirmation Code:** %s\n\n", b.ConfirmationCode)

	sb.WriteString("🚙 **VEHICLE DETAILS**\n")
	fmt.Fprintf(&sb, "• **Type:** %s - %s\n", o.VehicleType, o.Model)
	fmt.Fprintf(&sb, "• **Vehicle Number:** %s\n", o.VehicleNumber)
	fmt.Fprintf(&sb, "• **Capacity:** %d passengers\n", o.Capacity)
	fmt.Fprintf(&sb, "• **Features:** %s\n\n", strings.Join(o.Features, ", "))

	sb.WriteString("👨‍✈️ **DRIVER INFORMATION**\n")
	fmt.Fprintf(&sb, "• **Name:** %s\n", o.DriverName)
	fmt.Fprintf(&sb, "• **Rating:** ⭐ %.1f/5.0\n", o.DriverRating)
	fmt.Fprintf(&sb, "• **Contact:** %s\n\n", b.DriverPhone)

	sb.WriteString("🗺️ **JOURNEY DETAILS**\n")
	fmt.Fprintf(&sb, "• **Pickup:** %s\n", b.Journey.Pickup)
	fmt.Fprintf(&sb, "• **Destination:** %s\n", b.Journey.Destination)
	fmt.Fprintf(&sb, "• **Pickup Time:** %s\n", b.Journey.PickupTime)
	fmt.Fprintf(&sb, "• **Distance:** %d km\n", o.DistanceKM)
	fmt.Fprintf(&sb, "• **Duration:** %d min\n", o.DurationMin)
	fmt.Fprintf(&sb, "• **Passengers:** %d\n\n", b.Journey.Passengers)

	sb.WriteString("💰 **PRICING BREAKDOWN**\n")
	fmt.Fprintf(&sb, "• **Base Fare:** %s\n", inr(p.BaseFare))
	fmt.Fprintf(&sb, "• **Distance Charge:** %s\n", inr(p.DistanceFare))
	fmt.Fprintf(&sb, "• **Surge Multiplier:** %gx\n", p.SurgeMultiplier)
	fmt.Fprintf(&sb, "• **Subtotal:** %s\n", inr(p.Subtotal))
	fmt.Fprintf(&sb, "• **Taxes (12%%):** %s\n", inr(p.Taxes))
	fmt.Fprintf(&sb, "• **TOTAL FARE:** %s\n\n", inr(p.Total))

	fmt.Fprintf(&sb, "⏰ **ETA:** %d min\n", o.ETAMin)
	fmt.Fprintf(&sb, "💳 **Payment:** %s\n\n", b.PaymentMethod)
	fmt.Fprintf(&sb, "🔧 **System Status:** Booking processed at %s\n\n", b.BookedAt.Format("2006-01-02T15:04:05"))

	sb.WriteString(rule + "\n✅ **STATUS: CONFIRMED & DRIVER ASSIGNED** ✅")
	return sb.String()
}

func formatNoAvailability(req Request, at time.Time) string {
	return fmt.Sprintf(`🚗 **CAB BOOKING STATUS** 🚗

%s

❌ **NO CABS AVAILABLE**

📍 **Route:** %s → %s
👥 **Passengers:** %d

🔄 **ALTERNATIVE OPTIONS:**
• Try booking for a later time
• Consider different vehicle types
• Check nearby pickup locations

📞 **Contact Support:** +91-1800-CAB-HELP
🕒 **Booking attempted:** %s

%s`, rule, req.Pickup, req.Destination, req.Passengers, at.Format(time.DateTime), rule)
}

func formatBooking(b Booking) string {
	return fmt.Sprintf("📋 Cab booking %s (%s)\nVehicle: %s %s (%s)\nRoute: %s → %s at %s\nTotal: %s",
		b.ID, b.Status, b.Offer.VehicleType, b.Offer.Model, b.Offer.VehicleNumber,
		b.Journey.Pickup, b.Journey.Destination, b.Journey.PickupTime, booking.FormatINR(b.Offer.Pricing.Total))
}
