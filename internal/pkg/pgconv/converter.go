package pgconv

import (
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// IntToInt2 returns an invalid (NULL) value when i does not fit in smallint.
func IntToInt2(i int) pgtype.Int2 {
	if i < math.MinInt16 || i > math.MaxInt16 {
		return pgtype.Int2{Valid: false}
	}
	// #nosec G115 -- range checked above
	return pgtype.Int2{Int16: int16(i), Valid: true}
}
