package booking

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatINR renders an amount as whole rupees grouped in thousands: ₹123,456.
func FormatINR(amount float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("₹%d", int64(math.Round(amount)))
}

// Title upper-cases the first letter of every word. A Caser keeps state, so
// one is built per call.
func Title(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
