package utils

import (
	"math"
	"math/rand"
)

// RandomFloat returns a random float64 between 0.0 and 1.0
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RollChance reports whether a roll from rnd lands under percent (0-100).
// 100 always passes and 0 never does.
func RollChance(percent float64, rnd func() float64) bool {
	if percent >= 100 {
		return true
	}
	if percent <= 0 {
		return false
	}
	return rnd()*100 < percent
}

// ClampInt64 bounds v to [lo, hi]
func ClampInt64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AddInt64 returns a+b, reporting false instead of wrapping when the sum
// leaves the int64 range
func AddInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// SaturatingAddInt64 returns a+b clamped to [math.MinInt64, math.MaxInt64]
func SaturatingAddInt64(a, b int64) int64 {
	if sum, ok := AddInt64(a, b); ok {
		return sum
	}
	if b > 0 {
		return math.MaxInt64
	}
	return math.MinInt64
}
