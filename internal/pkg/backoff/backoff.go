// Package backoff computes retry delays for database transactions and delivery tasks.
package backoff

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"math"
	"time"
)

const maxShift = 62

// Exponential returns base * 2^attempt, capped at ceiling when ceiling > 0.
func Exponential(base time.Duration, attempt int, ceiling time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	if attempt < 0 {
		attempt = 0
	} else if attempt > maxShift {
		attempt = maxShift
	}

	multiplier := int64(1) << attempt
	var d time.Duration
	if int64(base) > math.MaxInt64/multiplier {
		d = time.Duration(math.MaxInt64)
	} else {
		d = time.Duration(int64(base) * multiplier)
	}

	if ceiling > 0 && d > ceiling {
		return ceiling
	}
	return d
}

// FullJitter returns a random duration in [0, d).
func FullJitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return time.Duration(cryptoRandInt63n(int64(d)))
}

// ProportionalJitter returns d plus a random extra of up to d/divisor.
func ProportionalJitter(d time.Duration, divisor int64) time.Duration {
	if d <= 0 || divisor <= 0 {
		return d
	}
	return d + time.Duration(cryptoRandInt63n(int64(d)/divisor))
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return n / 2
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}
