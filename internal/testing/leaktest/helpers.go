// Package leaktest checks that code under test does not leave goroutines
// running after it returns.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 2 * time.Second
	pollInterval  = 10 * time.Millisecond
)

// GoroutineChecker remembers the goroutine count at construction
type GoroutineChecker struct {
	t        testing.TB
	baseline int
}

func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, baseline: runtime.NumGoroutine()}
}

// Check fails the test if more than tolerance goroutines are still alive
// above the baseline once settleTimeout has passed. Goroutines that are
// winding down get until then to exit.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	if leaked := waitBelow(g.baseline+tolerance, settleTimeout); leaked > 0 {
		g.t.Errorf("goroutine leak: baseline=%d tolerance=%d extra=%d",
			g.baseline, tolerance, leaked)
	}
}

// Verify runs fn and checks that it leaves no goroutines behind
func Verify(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// waitBelow polls until the goroutine count drops to limit and returns how
// far above limit it still is when the timeout expires
func waitBelow(limit int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		n := runtime.NumGoroutine()
		if n <= limit || time.Now().After(deadline) {
			return max(n-limit, 0)
		}
		runtime.Gosched()
		time.Sleep(pollInterval)
	}
}
