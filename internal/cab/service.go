// Package cab is the airport transfer agent. Fares come from a per-vehicle
// base rate and per-km charge scaled by the pickup city's surge factor.
package cab

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

const (
	taxRate     = 0.12
	maxVehicles = 3
)

var ErrBookingNotFound = errors.New("cab booking not found")

type Preferences struct {
	VehicleType         string `json:"vehicle_type,omitempty"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
	PaymentMethod       string `json:"payment_method,omitempty"`
}

type Pricing struct {
	BaseFare        float64 `json:"base_fare"`
	DistanceFare    float64 `json:"distance_fare"`
	SurgeMultiplier float64 `json:"surge_multiplier"`
	Subtotal        float64 `json:"subtotal"`
	Taxes           float64 `json:"taxes"`
	Total           float64 `json:"total_fare"`
}

// Offer is one vehicle quoted for a transfer.
type Offer struct {
	City          string   `json:"city"`
	VehicleType   string   `json:"vehicle_type"`
	Model         string   `json:"model"`
	Capacity      int      `json:"capacity"`
	Features      []string `json:"features"`
	Description   string   `json:"description"`
	VehicleNumber string   `json:"vehicle_number"`
	DriverName    string   `json:"driver_name"`
	DriverRating  float64  `json:"driver_rating"`
	DistanceKM    int      `json:"estimated_distance_km"`
	DurationMin   int      `json:"estimated_duration_min"`
	ETAMin        int      `json:"eta_min"`
	PickupTime    string   `json:"pickup_time"`
	Pricing       Pricing  `json:"pricing"`
}

type Journey struct {
	Pickup      string `json:"pickup_location"`
	Destination string `json:"destination"`
	PickupTime  string `json:"pickup_time"`
	Passengers  int    `json:"passengers"`
}

type Booking struct {
	ID                  string         `json:"booking_id"`
	ConfirmationCode    string         `json:"confirmation_code"`
	Status              booking.Status `json:"status"`
	Offer               Offer          `json:"vehicle"`
	Journey             Journey        `json:"journey_details"`
	DriverPhone         string         `json:"driver_phone"`
	SpecialInstructions string         `json:"special_instructions"`
	PaymentMethod       string         `json:"payment_method"`
	BookedAt            time.Time      `json:"booking_timestamp"`
}

// Service owns the cab tables and the bookings made through one agent.
type Service struct {
	cities       map[string]City
	cityNames    []string
	vehicles     []Vehicle
	drivers      []string
	rng          *simulate.Rand
	availability float64
	now          func() time.Time

	mu       sync.Mutex
	bookings map[string]Booking
}

func NewService(rng *simulate.Rand, availability float64) *Service {
	s := &Service{
		cities:       make(map[string]City, len(citySeed)),
		vehicles:     vehicleSeed,
		drivers:      driverSeed,
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

// ResolveCity maps a pickup such as "Paris International Airport" to its
// city: airport words are dropped and the longest contained city name wins.
func (s *Service) ResolveCity(pickup string) (City, bool) {
	lower := strings.ToLower(pickup)
	lower = strings.ReplaceAll(lower, "international airport", "")
	lower = strings.ReplaceAll(lower, "airport", "")

	var best City
	for _, name := range s.cityNames {
		if strings.Contains(lower, strings.ToLower(name)) && len(name) > len(best.Name) {
			best = s.cities[strings.ToLower(name)]
		}
	}
	return best, best.Name != ""
}

// Search quotes up to three vehicles that seat the party at the pickup city.
func (s *Service) Search(pickup, pickupTime string, passengers int, prefs Preferences) []Offer {
	city, ok := s.ResolveCity(pickup)
	if !ok {
		return nil
	}
	if passengers < 1 {
		passengers = 1
	}

	var out []Offer
	for _, v := range s.suitableVehicles(passengers, prefs.VehicleType) {
		km := s.rng.IntRange(5, 50)
		if !s.rng.Chance(s.availability) {
			continue
		}
		out = append(out, s.offer(city, v, km, pickupTime))
	}
	return out
}

func (s *Service) suitableVehicles(passengers int, preferred string) []Vehicle {
	var fit []Vehicle
	for _, v := range s.vehicles {
		if v.Capacity >= passengers {
			fit = append(fit, v)
		}
	}
	preferred = strings.ToLower(strings.TrimSpace(preferred))
	for i, v := range fit {
		if strings.ToLower(v.Type) == preferred && i > 0 {
			fit = append([]Vehicle{v}, append(fit[:i:i], fit[i+1:]...)...)
			break
		}
	}
	if len(fit) > maxVehicles {
		fit = fit[:maxVehicles]
	}
	return fit
}

func (s *Service) offer(city City, v Vehicle, km int, pickupTime string) Offer {
	distanceFare := v.PerKM * float64(km)
	subtotal := (v.BaseRate + distanceFare) * city.SurgeFactor
	taxes := subtotal * taxRate

	return Offer{
		City:        city.Name,
		VehicleType: v.Type,
		Model:       s.rng.Pick(v.Models),
		Capacity:    v.Capacity,
		Features:    v.Features,
		Description: v.Description,
		VehicleNumber: fmt.Sprintf("%s-%d-%s-%d",
			s.rng.Pick(plateStates), s.rng.IntRange(10, 99), s.rng.Pick(plateSeries), s.rng.IntRange(1000, 9999)),
		DriverName:   s.rng.Pick(s.drivers),
		DriverRating: math.Round(s.rng.FloatRange(4.2, 4.9)*10) / 10,
		DistanceKM:   km,
		DurationMin:  s.rng.IntRange(15, 90),
		ETAMin:       s.rng.IntRange(3, 15),
		PickupTime:   pickupTime,
		Pricing: Pricing{
			BaseFare:        v.BaseRate,
			DistanceFare:    distanceFare,
			SurgeMultiplier: city.SurgeFactor,
			Subtotal:        booking.Round2(subtotal),
			Taxes:           booking.Round2(taxes),
			Total:           booking.Round2(subtotal + taxes),
		},
	}
}

// Book confirms a quoted vehicle. The fleet is not tracked, so it always
// succeeds.
func (s *Service) Book(o Offer, j Journey, prefs Preferences) Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.uniqueIDLocked()
	b := Booking{
		ID:                  id,
		ConfirmationCode:    id[len(id)-6:],
		Status:              booking.StatusConfirmed,
		Offer:               o,
		Journey:             j,
		DriverPhone:         fmt.Sprintf("+91-%d%d", s.rng.IntRange(70000, 99999), s.rng.IntRange(10000, 99999)),
		SpecialInstructions: orDefault(prefs.SpecialInstructions, "None"),
		PaymentMethod:       orDefault(prefs.PaymentMethod, "Cash"),
		BookedAt:            s.now(),
	}
	s.bookings[id] = b
	return b
}

func (s *Service) uniqueIDLocked() string {
	for {
		id := fmt.Sprintf("CAB%05d%c%02d", s.rng.IntRange(10000, 99999), s.rng.Letter(), s.rng.IntRange(10, 99))
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
