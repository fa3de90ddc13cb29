//go:build unit

package backoff_test

import (
	"context"
	"testing"
	"time"

	"newsletter-delivery/internal/pkg/backoff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExponential(t *testing.T) {
	testCases := []struct {
		name     string
		base     time.Duration
		attempt  int
		ceiling  time.Duration
		expected time.Duration
	}{
		{name: "first attempt uses base", base: time.Second, attempt: 0, expected: time.Second},
		{name: "doubles per attempt", base: time.Second, attempt: 3, expected: 8 * time.Second},
		{name: "negative attempt treated as zero", base: time.Second, attempt: -2, expected: time.Second},
		{name: "capped at ceiling", base: time.Second, attempt: 10, ceiling: time.Minute, expected: time.Minute},
		{name: "zero base", base: 0, attempt: 5, expected: 0},
		{name: "overflow saturates before ceiling", base: time.Hour, attempt: 62, ceiling: 5 * time.Minute, expected: 5 * time.Minute},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, backoff.Exponential(tc.base, tc.attempt, tc.ceiling))
		})
	}
}

func TestFullJitter(t *testing.T) {
	assert.Equal(t, time.Duration(0), backoff.FullJitter(0))
	assert.Equal(t, time.Duration(0), backoff.FullJitter(-time.Second))

	for range 100 {
		d := backoff.FullJitter(100 * time.Millisecond)
		assert.GreaterOrEqual(t, d, time.Duration(0))
		assert.Less(t, d, 100*time.Millisecond)
	}
}

func TestProportionalJitter(t *testing.T) {
	for range 100 {
		d := backoff.ProportionalJitter(time.Second, 5)
		assert.GreaterOrEqual(t, d, time.Second)
		assert.Less(t, d, time.Second+200*time.Millisecond)
	}
	assert.Equal(t, time.Second, backoff.ProportionalJitter(time.Second, 0))
}

func TestSleep(t *testing.T) {
	t.Run("returns nil after duration", func(t *testing.T) {
		require.NoError(t, backoff.Sleep(context.Background(), time.Millisecond))
	})

	t.Run("returns ctx error when cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := backoff.Sleep(ctx, time.Hour)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
