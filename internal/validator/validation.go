// Package validator holds small field checks shared by request models.
package validator

import (
	"errors"
	"strings"
	"time"
)

func ValidateCity(s string) (string, error) {
	c := strings.TrimSpace(s)
	if len(c) < 2 {
		return "", errors.New("invalid city")
	}
	return c, nil
}

func ValidateDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, errors.New("invalid departure_date, want YYYY-MM-DD")
	}
	return t, nil
}

// ValidateRange reports whether n lies in [lo, hi].
func ValidateRange(field string, n, lo, hi int) error {
	if n < lo || n > hi {
		return errors.New("invalid or excessive " + field)
	}
	return nil
}
