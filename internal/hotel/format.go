package hotel

import (
	"fmt"
	"strings"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/booking"
)

const rule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

func formatConfirmation(b Booking) string {
	o := b.Offer
	p := o.Pricing
	inr := booking.FormatINR

	var sb strings.Builder
	sb.WriteString("🏨 **HOTEL BOOKING CONFIRMED** 🏨\n\n" + rule + "\n\n")
	fmt.Fprintf(&sb, "🎫 **Booking Reference:** %s\n", b.ID)
	fmt.Fprintf(&sb, "🔑 **Confirmation Code:** %s\n\n", b.ConfirmationCode)

	sb.WriteString("🏢 **HOTEL DETAILS**\n")
	fmt.Fprintf(&sb, "• **Name:** %s\n", o.HotelName)
	fmt.Fprintf(&sb, "• **Category:** %s (%s Stars)\n", o.Category, o.StarRating)
	fmt.Fprintf(&sb, "• **Location:** %s\n", o.Location)
	fmt.Fprintf(&sb, "• **Rating:** ⭐ %.1f/5.0 (%d reviews)\n\n", o.Rating, o.Reviews)

	sb.WriteString("🛏️ **ROOM INFORMATION**\n")
	fmt.Fprintf(&sb, "• **Type:** %s Room\n", o.Room.Name)
	fmt.Fprintf(&sb, "• **Occupancy:** Up to %d guests\n", o.Room.Occupancy)
	fmt.Fprintf(&sb, "• **Beds:** %s\n", o.Room.Beds)
	fmt.Fprintf(&sb, "• **Size:** %s\n\n", o.Room.Size)

	sb.WriteString("📅 **STAY DETAILS**\n")
	fmt.Fprintf(&sb, "• **Check-in:** %s at %s\n", o.CheckIn, o.Policies.CheckInTime)
	fmt.Fprintf(&sb, "• **Check-out:** %s at %s\n", o.CheckOut, o.Policies.CheckOutTime)
	fmt.Fprintf(&sb, "• **Duration:** %d nights\n", o.Nights)
	fmt.Fprintf(&sb, "• **Guests:** %d\n\n", o.Guests)

	sb.WriteString("💰 **PRICING BREAKDOWN**\n")
	fmt.Fprintf(&sb, "• **Base Rate:** %s per night\n", inr(p.BaseRate))
	fmt.Fprintf(&sb, "• **Room Rate:** %s per night\n", inr(p.RoomRate))
	fmt.Fprintf(&sb, "• **Peak Multiplier:** %gx\n", p.PeakMultiplier)
	fmt.Fprintf(&sb, "• **Nightly Rate:** %s\n", inr(p.NightlyRate))
	fmt.Fprintf(&sb, "• **Subtotal:** %s\n", inr(p.Subtotal))
	fmt.Fprintf(&sb, "• **Taxes (18%% GST):** %s\n", inr(p.Taxes))
	fmt.Fprintf(&sb, "• **TOTAL COST:** %s\n\n", inr(p.Total))

	sb.WriteString("🎯 **AMENITIES INCLUDED**\n")
	fmt.Fprintf(&sb, "• %s\n\n", strings.Join(o.Amenities, " • "))

	sb.WriteString("👤 **GUEST INFORMATION**\n")
	fmt.Fprintf(&sb, "• **Primary Guest:** %s\n", b.Guest.Name)
	fmt.Fprintf(&sb, "• **Contact:** %s\n", b.Guest.Contact)
	fmt.Fprintf(&sb, "• **Email:** %s\n\n", b.Guest.Email)

	sb.WriteString("📋 **HOTEL POLICIES**\n")
	fmt.Fprintf(&sb, "• **Cancellation:** %s\n", o.Policies.Cancellation)
	fmt.Fprintf(&sb, "• **Pet Policy:** %s\n\n", o.Policies.PetPolicy)

	sb.WriteString("📞 **HOTEL CONTACT**\n")
	fmt.Fprintf(&sb, "• **Phone:** %s\n", o.Contact.Phone)
	fmt.Fprintf(&sb, "• **Email:** %s\n\n", o.Contact.Email)

	fmt.Fprintf(&sb, "💳 **Payment:** %s\n", b.PaymentMethod)
	fmt.Fprintf(&sb, "📝 **Special Requests:** %s\n\n", b.SpecialRequests)

	sb.WriteString(rule + "\n✅ **STATUS: CONFIRMED & READY FOR CHECK-IN** ✅")
	return sb.String()
}

func formatNoAvailability(req Request) string {
	return fmt.Sprintf(`🏨 **HOTEL BOOKING STATUS** 🏨

%s

❌ **NO HOTELS AVAILABLE**

📍 **Destination:** %s
📅 **Dates:** %s to %s
👥 **Guests:** %d

🔄 **ALTERNATIVE OPTIONS:**
• Try different dates
• Consider nearby locations
• Adjust guest count or room preferences

%s`, rule, req.Location, req.CheckIn, req.CheckOut, req.Guests, rule)
}

func formatBooking(b Booking) string {
	return fmt.Sprintf("📋 Hotel booking %s (%s)\nHotel: %s\nStay: %s to %s, %d nights\nTotal: %s",
		b.ID, b.Status, b.Offer.HotelName, b.Offer.CheckIn, b.Offer.CheckOut, b.Offer.Nights, booking.FormatINR(b.Offer.Pricing.Total))
}
