// Package availability decides whether a generated username is free.
//
// Only a simulator exists: it waits a fixed delay and flips a coin. It does
// not look anything up. A real lookup implements Checker and replaces it.
package availability

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/pluqqy/usernamer/pkg/models"
)

// DefaultDelay is how long a simulated check takes
const DefaultDelay = 1500 * time.Millisecond

// Checker resolves a name to StatusAvailable or StatusTaken
type Checker interface {
	Check(ctx context.Context, name string) (models.AvailabilityStatus, error)
}

// Simulator is a random stand-in for a real availability lookup
type Simulator struct {
	delay time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSimulator returns a simulator with the given delay. A nil source uses
// a randomly seeded one.
func NewSimulator(delay time.Duration, src rand.Source) *Simulator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Simulator{
		delay: delay,
		rnd:   rand.New(src),
	}
}

// Check waits for the configured delay, then picks available or taken with
// equal probability. It returns ctx.Err() if the context ends first.
func (s *Simulator) Check(ctx context.Context, _ string) (models.AvailabilityStatus, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	available := s.rnd.Float64() > 0.5
	s.mu.Unlock()

	if available {
		return models.StatusAvailable, nil
	}
	return models.StatusTaken, nil
}
