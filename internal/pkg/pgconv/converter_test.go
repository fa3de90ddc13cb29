//go:build unit

package pgconv_test

import (
	"math"
	"testing"
	"time"

	"newsletter-delivery/internal/pkg/pgconv"

	"github.com/stretchr/testify/assert"
)

func TestIntToInt2(t *testing.T) {
	assert.Equal(t, int16(303), pgconv.IntToInt2(303).Int16)
	assert.True(t, pgconv.IntToInt2(303).Valid)
	assert.False(t, pgconv.IntToInt2(math.MaxInt16+1).Valid)
	assert.False(t, pgconv.IntToInt2(math.MinInt16-1).Valid)
}

func TestTimeRoundTrip(t *testing.T) {
	now := time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC)
	pt := pgconv.TimeToPgtype(now)
	assert.True(t, pt.Valid)
	assert.True(t, now.Equal(pgconv.TimeFromPgtype(pt)))
}
