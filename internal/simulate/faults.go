package simulate

import (
	"context"
	"errors"
	"time"
)

var ErrSimulatedFailure = errors.New("agent error (simulated)")

// Faults delays and fails agent calls at configured rates so partial bookings
// can be demonstrated against healthy processes.
type Faults struct {
	name       string
	avgLatency float64
	failRate   float64
	rng        *Rand
}

func NewFaults(name string, avgLatency, failRate float64, rng *Rand) *Faults {
	return &Faults{name: name, avgLatency: avgLatency, failRate: failRate, rng: rng}
}

func (f *Faults) Name() string { return f.name }

func (f *Faults) Enabled() bool { return f.avgLatency > 0 || f.failRate > 0 }

// Inject blocks for a sampled latency and then returns ErrSimulatedFailure at
// the configured rate.
func (f *Faults) Inject(ctx context.Context) error {
	if !f.Enabled() {
		return nil
	}
	if f.avgLatency > 0 {
		select {
		case <-time.After(SampleLatency(f.rng, f.avgLatency)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if ShouldFail(f.rng, f.failRate) {
		return ErrSimulatedFailure
	}
	return nil
}

func SampleLatency(rng *Rand, avg float64) time.Duration {
	ms := float64(50) + rng.ExpFloat64()*avg*200.0
	return time.Duration(ms) * time.Millisecond
}

func ShouldFail(rng *Rand, rate float64) bool {
	return rng.Float64() < rate
}
