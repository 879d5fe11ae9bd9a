package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// FormatOrderNumber builds an order number from its parts:
// DH + YYYYMMDD + zero-padded 4 digit suffix
func FormatOrderNumber(t time.Time, suffix int) string {
	return fmt.Sprintf("%s%s%04d", OrderNumberPrefix, t.Format("20060102"), suffix)
}

// GenerateOrderNumber returns a fresh candidate order number. The
// random suffix is not collision free; the caller inserts under the
// unique index and regenerates on conflict.
func GenerateOrderNumber(now time.Time) string {
	return FormatOrderNumber(now, rand.Intn(10000))
}
