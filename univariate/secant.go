package univariate

import (
	"errors"
	"math"

	"github.com/btracey/rootfind/common"
)

// Secant finds a root without a derivative by replacing f'(x) with the
// slope of the line through the two most recent approximations.
//
// The solver reports common.Degenerate without updating when the two most
// recent points are closer than MinSpacing, or when the secant slope is
// smaller in magnitude than MinSlope. Zero values use DefaultMinSlope.
// Starting from two identical points therefore returns the second one
// after a single pass.
//
// When the convergence tolerance is below MinSpacing a solve that is
// already very close to the root may end as Degenerate rather than
// LocChangeTol; the returned location is still the latest approximation.
type Secant struct {
	MinSlope   float64
	MinSpacing float64

	f Func

	prevLoc     float64
	prevObj     float64
	havePrevObj bool

	loc float64

	status common.Status
}

func NewSecant() *Secant {
	return &Secant{
		MinSlope:   DefaultMinSlope,
		MinSpacing: DefaultMinSlope,
	}
}

func (s *Secant) Init(f Func, initLoc0, initLoc1 float64) error {
	if math.IsNaN(s.MinSlope) || s.MinSlope < 0 {
		return errors.New("secant: minimum slope must be non-negative")
	}
	if math.IsNaN(s.MinSpacing) || s.MinSpacing < 0 {
		return errors.New("secant: minimum spacing must be non-negative")
	}
	s.f = f
	s.prevLoc = initLoc0
	s.havePrevObj = false
	s.loc = initLoc1
	s.status = common.Continue
	return nil
}

func (s *Secant) Iterate() (loc, step, obj, slope float64, nFunEvals int, err error) {
	obj = s.f(s.loc)
	nFunEvals = 1

	spacing := s.loc - s.prevLoc
	if math.Abs(spacing) < minOrDefault(s.MinSpacing) {
		s.status = common.Degenerate
		return s.loc, math.NaN(), obj, math.NaN(), nFunEvals, nil
	}

	// f is pure, so the value at the older point is carried over between passes.
	if !s.havePrevObj {
		s.prevObj = s.f(s.prevLoc)
		s.havePrevObj = true
		nFunEvals++
	}

	slope = (obj - s.prevObj) / spacing
	if math.Abs(slope) < minOrDefault(s.MinSlope) {
		s.status = common.Degenerate
		return s.loc, math.NaN(), obj, slope, nFunEvals, nil
	}

	next := s.loc - obj/slope
	s.prevLoc, s.prevObj = s.loc, obj
	s.loc = next
	return next, math.Abs(next - s.prevLoc), obj, slope, nFunEvals, nil
}

func (s *Secant) Status() common.Status { return s.status }

func (s *Secant) Result() {}
