package availability

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/usernamer/pkg/models"
)

// These tests cover the simulator only. Its results are random by design and
// say nothing about whether a name is really registered anywhere.

func TestSimulator_ResolvesToAvailableOrTaken(t *testing.T) {
	sim := NewSimulator(0, rand.NewPCG(1, 2))

	seen := map[models.AvailabilityStatus]int{}
	for i := 0; i < 200; i++ {
		status, err := sim.Check(context.Background(), "NovaKnight")
		require.NoError(t, err)
		require.True(t, status.IsResolved(), "got %q", status)
		seen[status]++
	}

	assert.Greater(t, seen[models.StatusAvailable], 0)
	assert.Greater(t, seen[models.StatusTaken], 0)
}

func TestSimulator_Deterministic(t *testing.T) {
	a := NewSimulator(0, rand.NewPCG(42, 7))
	b := NewSimulator(0, rand.NewPCG(42, 7))

	for i := 0; i < 20; i++ {
		sa, _ := a.Check(context.Background(), "x")
		sb, _ := b.Check(context.Background(), "x")
		assert.Equal(t, sa, sb)
	}
}

func TestSimulator_WaitsForDelay(t *testing.T) {
	delay := 30 * time.Millisecond
	sim := NewSimulator(delay, nil)

	start := time.Now()
	_, err := sim.Check(context.Background(), "x")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), delay)
}

func TestSimulator_ContextCancelled(t *testing.T) {
	sim := NewSimulator(time.Hour, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	status, err := sim.Check(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, status)
}

func TestDefaultDelay(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, DefaultDelay)
}
