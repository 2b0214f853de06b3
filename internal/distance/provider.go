// Package distance resolves a road distance in kilometres between two
// free-form location strings. Implementations are interchangeable: a random
// development stub, a Google Maps adapter and a Redis read-through cache.
package distance

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

type Provider interface {
	DistanceKm(ctx context.Context, pickup, drop string) (int, error)
}

// Fixed always returns the same distance. Test double.
type Fixed struct {
	Km int
}

func (f Fixed) DistanceKm(ctx context.Context, pickup, drop string) (int, error) {
	return f.Km, nil
}

// Random returns a uniform distance in [Min, Max). It is the default
// development provider when no maps API key is configured.
type Random struct {
	Min, Max int

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandom builds the stub; seed 0 means seed from the clock.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		Min: 100,
		Max: 400,
		rnd: rand.New(rand.NewSource(seed)),
	}
}

func (r *Random) DistanceKm(ctx context.Context, pickup, drop string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Min + r.rnd.Intn(r.Max-r.Min), nil
}
