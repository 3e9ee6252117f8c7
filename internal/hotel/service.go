// Package hotel is the hotel booking agent. Offers are priced from static
// category and room tables scaled by a per-city peak factor; availability is
// random.
package hotel

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/booking"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/simulate"
)

const taxRate = 0.18

var ErrBookingNotFound = errors.New("hotel booking not found")

type Preferences struct {
	RoomType        string `json:"room_type,omitempty"`
	HotelRating     int    `json:"hotel_rating,omitempty"`
	GuestName       string `json:"guest_name,omitempty"`
	GuestContact    string `json:"guest_contact,omitempty"`
	GuestEmail      string `json:"guest_email,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
	PaymentMethod   string `json:"payment_method,omitempty"`
}

type Pricing struct {
	BaseRate       float64 `json:"base_rate"`
	RoomRate       float64 `json:"room_rate"`
	PeakMultiplier float64 `json:"peak_multiplier"`
	NightlyRate    float64 `json:"nightly_rate"`
	Subtotal       float64 `json:"subtotal"`
	Taxes          float64 `json:"taxes"`
	Total          float64 `json:"total_cost"`
}

type Policies struct {
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time"`
	Cancellation string `json:"cancellation"`
	PetPolicy    string `json:"pet_policy"`
}

type Contact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Offer is one bookable room in one hotel for the requested stay.
type Offer struct {
	HotelName   string   `json:"hotel_name"`
	Category    string   `json:"category"`
	StarRating  string   `json:"star_rating"`
	Location    string   `json:"location"`
	Room        RoomType `json:"room_details"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
	CheckIn     string   `json:"check_in"`
	CheckOut    string   `json:"check_out"`
	Nights      int      `json:"nights"`
	Guests      int      `json:"guests"`
	Pricing     Pricing  `json:"pricing"`
	Policies    Policies `json:"policies"`
	Contact     Contact  `json:"contact"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
}

type Guest struct {
	Name    string `json:"primary_guest"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

type Booking struct {
	ID               string         `json:"booking_id"`
	ConfirmationCode string         `json:"confirmation_code"`
	Status           booking.Status `json:"status"`
	Offer            Offer          `json:"hotel"`
	Guest            Guest          `json:"guest_details"`
	SpecialRequests  string         `json:"special_requests"`
	PaymentMethod    string         `json:"payment_method"`
	BookedAt         time.Time      `json:"booking_timestamp"`
}

// Service holds the hotel tables and the bookings made through one agent.
type Service struct {
	cities       map[string]City
	cityNames    []string
	categories   []Category
	rooms        []RoomType
	rng          *simulate.Rand
	availability float64
	now          func() time.Time

	mu       sync.Mutex
	bookings map[string]Booking
}

// NewService builds a service whose offers are each available with
// probability availability.
func NewService(rng *simulate.Rand, availability float64) *Service {
	s := &Service{
		cities:       make(map[string]City, len(citySeed)),
		categories:   categorySeed,
		rooms:        roomSeed,
		rng:          rng,
		availability: availability,
		now:          time.Now,
		bookings:     make(map[string]Booking),
	}
	for _, c := range citySeed {
		s.cities[strings.ToLower(c.Name)] = c
		s.cityNames = append(s.cityNames, c.Name)
	}
	return s
}

func (s *Service) CityCount() int { return len(s.cities) }

// ResolveCity accepts a city name in any case, optionally followed by
// "city center".
func (s *Service) ResolveCity(location string) (City, bool) {
	key := strings.ToLower(strings.TrimSpace(location))
	key = strings.TrimSpace(strings.TrimSuffix(key, "city center"))
	c, ok := s.cities[key]
	return c, ok
}

// FindCity returns the longest known city name contained in text.
func (s *Service) FindCity(text string) (City, bool) {
	lower := strings.ToLower(text)
	var best City
	for _, name := range s.cityNames {
		if strings.Contains(lower, strings.ToLower(name)) && len(name) > len(best.Name) {
			best = s.cities[strings.ToLower(name)]
		}
	}
	return best, best.Name != ""
}

// StayNights counts nights between two YYYY-MM-DD dates, at least one.
func StayNights(checkIn, checkOut string) int {
	in, err1 := time.Parse(time.DateOnly, checkIn)
	out, err2 := time.Parse(time.DateOnly, checkOut)
	if err1 != nil || err2 != nil {
		return 1
	}
	n := int(out.Sub(in).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}

// Search prices every category and room combination that fits the party.
func (s *Service) Search(location, checkIn, checkOut string, guests int, prefs Preferences) []Offer {
	city, ok := s.ResolveCity(location)
	if !ok {
		return nil
	}
	if guests < 1 {
		guests = 1
	}
	nights := StayNights(checkIn, checkOut)

	var out []Offer
	for _, cat := range s.categoryFilter(prefs.HotelRating) {
		for _, room := range s.suitableRooms(guests, prefs.RoomType) {
			if !s.rng.Chance(s.availability) {
				continue
			}
			out = append(out, s.offer(city, cat, room, checkIn, checkOut, nights, guests))
		}
	}
	return out
}

func (s *Service) categoryFilter(rating int) []Category {
	names := categoriesForRating(rating)
	if names == nil {
		if len(s.categories) > 3 {
			return s.categories[:3]
		}
		return s.categories
	}
	var out []Category
	for _, n := range names {
		for _, c := range s.categories {
			if c.Name == n {
				out = append(out, c)
			}
		}
	}
	return out
}

// suitableRooms lists up to two room types that sleep the party, with the
// preferred type first when it fits.
func (s *Service) suitableRooms(guests int, preferred string) []RoomType {
	var fit []RoomType
	for _, r := range s.rooms {
		if r.Occupancy >= guests {
			fit = append(fit, r)
		}
	}
	preferred = booking.Title(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(preferred)), " room"))
	for i, r := range fit {
		if r.Name == preferred && i > 0 {
			fit = append([]RoomType{r}, append(fit[:i:i], fit[i+1:]...)...)
			break
		}
	}
	if len(fit) > 2 {
		fit = fit[:2]
	}
	return fit
}

func (s *Service) offer(city City, cat Category, room RoomType, checkIn, checkOut string, nights, guests int) Offer {
	roomRate := cat.BaseRate * room.RateMultiplier
	nightly := roomRate * city.PeakFactor
	subtotal := nightly * float64(nights)
	taxes := subtotal * taxRate
	brand := s.rng.Pick(cat.Brands)

	pets := "No pets allowed"
	if cat.Name == "Luxury" || cat.Name == "Resort" {
		pets = "Pets allowed with additional charges"
	}

	return Offer{
		HotelName:   brand + " " + city.Name,
		Category:    cat.Name,
		StarRating:  cat.StarRating,
		Location:    city.Name + " City Center",
		Room:        room,
		Amenities:   cat.Amenities,
		Description: cat.Description,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Nights:      nights,
		Guests:      guests,
		Pricing: Pricing{
			BaseRate:       cat.BaseRate,
			RoomRate:       booking.Round2(roomRate),
			PeakMultiplier: city.PeakFactor,
			NightlyRate:    booking.Round2(nightly),
			Subtotal:       booking.Round2(subtotal),
			Taxes:          booking.Round2(taxes),
			Total:          booking.Round2(subtotal + taxes),
		},
		Policies: Policies{
			CheckInTime:  "3:00 PM",
			CheckOutTime: "11:00 AM",
			Cancellation: "Free cancellation until 24 hours before check-in",
			PetPolicy:    pets,
		},
		Contact: Contact{
			Phone: fmt.Sprintf("+91-%d%d", s.rng.IntRange(11, 99), s.rng.IntRange(10000000, 99999999)),
			Email: "reservations@" + strings.ToLower(strings.ReplaceAll(brand, " ", "")) + ".com",
		},
		Rating:  math.Round(s.rng.FloatRange(3.8, 4.8)*10) / 10,
		Reviews: s.rng.IntRange(150, 2500),
	}
}

// Book confirms an offer. Inventory is not tracked, so it always succeeds.
func (s *Service) Book(o Offer, prefs Preferences) Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.uniqueIDLocked()
	b := Booking{
		ID:               id,
		ConfirmationCode: id[len(id)-6:],
		Status:           booking.StatusConfirmed,
		Offer:            o,
		Guest: Guest{
			Name:    orDefault(prefs.GuestName, "Guest"),
			Contact: orDefault(prefs.GuestContact, "+91-9999999999"),
			Email:   orDefault(prefs.GuestEmail, "guest@example.com"),
		},
		SpecialRequests: orDefault(prefs.SpecialRequests, "None"),
		PaymentMethod:   orDefault(prefs.PaymentMethod, "Credit Card"),
		BookedAt:        s.now(),
	}
	s.bookings[id] = b
	return b
}

func (s *Service) uniqueIDLocked() string {
	for {
		id := fmt.Sprintf("HTL%05d%c%02d", s.rng.IntRange(10000, 99999), s.rng.Letter(), s.rng.IntRange(10, 99))
		if _, taken := s.bookings[id]; !taken {
			return id
		}
	}
}

func (s *Service) Get(id string) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return Booking{}, fmt.Errorf("%w: %s", ErrBookingNotFound, id)
	}
	return b, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
