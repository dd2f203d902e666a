package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottle_FirstCallPaysDelay(t *testing.T) {
	throttle := NewThrottle(50 * time.Millisecond)

	start := time.Now()
	require.NoError(t, throttle.Wait(context.Background()))
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 40*time.Millisecond,
		"the initial token is drained, so even the first call waits")
}

func TestThrottle_SpacesConsecutiveCalls(t *testing.T) {
	throttle := NewThrottle(30 * time.Millisecond)

	start := time.Now()
	require.NoError(t, throttle.Wait(context.Background()))
	require.NoError(t, throttle.Wait(context.Background()))
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
}

func TestThrottle_RespectsContextCancellation(t *testing.T) {
	throttle := NewThrottle(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := throttle.Wait(ctx)
	assert.Error(t, err)
}
