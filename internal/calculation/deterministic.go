package calculation

import "time"

// seedFunc returns a pseudo-random master seed (override for deterministic
// Monte Carlo tests).
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc replaces the seed source; intended for tests.
func SetSeedFunc(f func() int64) { seedFunc = f }
