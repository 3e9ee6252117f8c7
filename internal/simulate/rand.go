// Package simulate provides the randomness behind the mock agents: a
// goroutine-safe random source and latency/failure injection.
package simulate

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is a math/rand source guarded by a mutex so one instance can be shared
// by concurrent requests.
type Rand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRand seeds from the clock when seed is zero.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

func (r *Rand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// IntRange returns a value in [min, max].
func (r *Rand) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// FloatRange returns a value in [min, max).
func (r *Rand) FloatRange(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

func (r *Rand) ExpFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.ExpFloat64()
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}

func (r *Rand) Pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[r.Intn(len(items))]
}

// Letter returns a random upper-case ASCII letter.
func (r *Rand) Letter() byte {
	return byte('A' + r.Intn(26))
}
