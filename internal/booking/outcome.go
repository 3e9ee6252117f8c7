// Package booking holds the result schema shared by the booking agents and
// the orchestrator, plus small display helpers for prices and labels.
package booking

import (
	"errors"
	"fmt"
)

// SchemaVersion identifies the layout of Outcome. Consumers reject any other value.
const SchemaVersion = "holiday.booking/v1"

const CurrencyINR = "INR"

var ErrUnsupportedSchema = errors.New("unsupported outcome schema")

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusRebooked  Status = "rebooked"

	StatusOK             Status = "ok"
	StatusNoAvailability Status = "no_availability"
	StatusFullyBooked    Status = "fully_booked"
	StatusRejected       Status = "rejected"
)

// Outcome is the machine-readable result an agent attaches next to its
// human-readable reply.
type Outcome struct {
	SchemaVersion    string         `json:"schema_version"`
	Service          string         `json:"service"`
	Action           string         `json:"action"`
	Status           Status         `json:"status"`
	BookingID        string         `json:"booking_id,omitempty"`
	ConfirmationCode string         `json:"confirmation_code,omitempty"`
	TotalPrice       float64        `json:"total_price,omitempty"`
	Currency         string         `json:"currency,omitempty"`
	Details          map[string]any `json:"details,omitempty"`
}

func NewOutcome(service, action string, status Status) Outcome {
	return Outcome{
		SchemaVersion: SchemaVersion,
		Service:       service,
		Action:        action,
		Status:        status,
		Currency:      CurrencyINR,
	}
}

// Rejected describes an action that failed validation or a domain check.
func Rejected(service, action string, err error) Outcome {
	o := NewOutcome(service, action, StatusRejected)
	o.Currency = ""
	o.Details = map[string]any{"error": err.Error()}
	return o
}

func (o Outcome) Succeeded() bool {
	switch o.Status {
	case StatusConfirmed, StatusCancelled, StatusRebooked, StatusOK:
		return true
	}
	return false
}

func (o Outcome) CheckVersion() error {
	if o.SchemaVersion != SchemaVersion {
		return fmt.Errorf("%w: %q", ErrUnsupportedSchema, o.SchemaVersion)
	}
	return nil
}

// WithDetail sets one entry of Details and returns the outcome for chaining.
func (o Outcome) WithDetail(key string, v any) Outcome {
	if o.Details == nil {
		o.Details = map[string]any{}
	}
	o.Details[key] = v
	return o
}
