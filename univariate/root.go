package univariate

import "gonum.org/v1/gonum/diff/fd"

// NewtonRaphson returns an approximate root of f using its derivative df,
// starting from initialGuess. It performs at most maxIterations+1 passes and
// stops early when two successive approximations are within tolerance or
// when |df| drops below DefaultMinSlope. In every case the most recent
// approximation is returned; use SolveDeriv to learn why the solve stopped.
//
// NewtonRaphson panics if f or df is nil, tolerance is negative or NaN, or
// maxIterations is negative.
func NewtonRaphson(f, df Func, initialGuess, tolerance float64, maxIterations int) float64 {
	if maxIterations < 0 {
		panic(ErrMaxIter)
	}
	settings := DefaultSettings()
	settings.LocTol = tolerance
	settings.MaximumIterations = maxIterations

	result, err := SolveDeriv(f, df, initialGuess, settings, NewNewton())
	if err != nil {
		panic(err)
	}
	return result.Loc
}

// FiniteDifference returns an approximate root of f using the secant method
// started from point0 and point1. The stopping rules match NewtonRaphson.
// Coincident starting points are degenerate and return point1.
//
// FiniteDifference panics if f is nil, tolerance is negative or NaN, or
// maxIterations is negative.
func FiniteDifference(f Func, point0, point1, tolerance float64, maxIterations int) float64 {
	if maxIterations < 0 {
		panic(ErrMaxIter)
	}
	settings := DefaultSettings()
	settings.LocTol = tolerance
	settings.MaximumIterations = maxIterations

	result, err := SolveDerivFree(f, point0, point1, settings, NewSecant())
	if err != nil {
		panic(err)
	}
	return result.Loc
}

// NumericDerivative returns a central finite-difference approximation of
// the derivative of f. A zero step uses the fd package default.
func NumericDerivative(f Func, step float64) Func {
	settings := &fd.Settings{
		Formula: fd.Central,
		Step:    step,
	}
	return func(x float64) float64 {
		return fd.Derivative(f, x, settings)
	}
}
