package common

import "math"

// Toler is a type for checking the convergence of a scalar against an
// absolute tolerance.
type Toler struct {
	absTol float64
	recent float64
}

// Init initializes the Toler. A NaN absolute tolerance disables the check.
// initVal is the value reported before the first Add, usually +Inf so that
// nothing converges before the first iteration.
func (t *Toler) Init(absTol, initVal float64) {
	t.absTol = absTol
	t.recent = initVal
}

// Add adds a new value to the toler (after an iteration)
func (t *Toler) Add(v float64) {
	t.recent = v
}

// Recent returns the last value added.
func (t *Toler) Recent() float64 {
	return t.recent
}

// AbsConverged returns true if the magnitude of the most recent value is at
// most the absolute tolerance. NaN values never converge.
func (t *Toler) AbsConverged() bool {
	if math.IsNaN(t.absTol) {
		return false
	}
	return math.Abs(t.recent) <= t.absTol
}
