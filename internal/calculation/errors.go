package calculation

import "errors"

// ErrZeroEquity is returned when a leverage ratio would divide by equity of
// exactly zero. The ratio is undefined at that point; the value is never
// clamped, and the error fails the whole batch so the outcome distribution
// is not silently biased.
var ErrZeroEquity = errors.New("company equity is zero; leverage is undefined")

// ErrInvalidConfig wraps every configuration rejection at the simulation
// driver boundary.
var ErrInvalidConfig = errors.New("invalid simulation configuration")
