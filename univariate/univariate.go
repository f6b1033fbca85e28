package univariate

import (
	"errors"
	"math"

	"github.com/btracey/rootfind/common"
	"github.com/btracey/rootfind/write"
)

// Func is a scalar function of a scalar, used both for objectives and for
// their derivatives. Solvers only ever call it; it is assumed to be pure.
type Func func(x float64) float64

var (
	ErrNilFunc   = errors.New("univariate: nil function")
	ErrTolerance = errors.New("univariate: tolerance must be non-negative")
	ErrMaxIter   = errors.New("univariate: maximum iterations must be non-negative")
)

// Settings is a structure containing settings for univariate
// root finders. Some settings may not apply to certain algorithms
type Settings struct {
	*common.CommonSettings

	// LocTol is the convergence threshold on the step between two successive
	// approximations: the solve stops when |x_k - x_{k-1}| <= LocTol.
	LocTol float64

	// ObjAbsTol stops the solve when |f| at the point a step was taken from
	// is at most ObjAbsTol. NaN disables the check.
	ObjAbsTol float64
}

// DefaultSettings returns the default settings for univariate root finders.
// The default behavior is to take at most 101 passes and stop when two
// successive approximations agree to within 1e-10.
func DefaultSettings() *Settings {
	return &Settings{
		CommonSettings: common.DefaultCommonSettings(),
		LocTol:         1e-10,
		ObjAbsTol:      math.NaN(),
	}
}

func (s *Settings) validate() error {
	if s.CommonSettings == nil {
		return errors.New("univariate: nil common settings")
	}
	if math.IsNaN(s.LocTol) || s.LocTol < 0 {
		return ErrTolerance
	}
	if s.ObjAbsTol < 0 {
		return ErrTolerance
	}
	return nil
}

// Helper is a helper struct for solvers. Not intended for use by
// callers of the solve functions, but exported to aid others who are building
// root-finding algorithms
//
// Implementers should call Init() at the beginning of a solve
// and should call Status() to check tolerances. At the end of every pass should call
// Iterate()
type Helper struct {
	*common.Common

	locTol common.Toler
	objTol common.Toler

	locCurr   float64
	stepCurr  float64
	objCurr   float64
	slopeCurr float64
}

// NewHelper creates a new univariate type and adds itself to the data adders
func NewHelper() *Helper {
	u := &Helper{
		Common: common.NewCommon(),
	}
	u.AddDataAdder(u)
	return u
}

func (u *Helper) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Loc", Value: u.locCurr})
	v = append(v, &write.Value{Heading: "Step", Value: u.stepCurr})
	v = append(v, &write.Value{Heading: "Obj", Value: u.objCurr})
	v = append(v, &write.Value{Heading: "Slope", Value: u.slopeCurr})
	return v
}

// Init resets the helper. initLoc is reported as the location until the
// first pass completes.
func (u *Helper) Init(s *Settings, initLoc float64) error {
	u.locTol.Init(s.LocTol, math.Inf(1))
	u.objTol.Init(s.ObjAbsTol, math.Inf(1))

	u.locCurr = initLoc
	u.stepCurr = math.Inf(1)
	u.objCurr = math.NaN()
	u.slopeCurr = math.NaN()

	return u.Common.Init(s.CommonSettings)
}

// Iterate records the outcome of one pass. step is the magnitude of the
// update, or NaN if no update was made.
func (u *Helper) Iterate(loc, step, obj, slope float64, nFunEvals int) error {
	u.locCurr = loc
	u.stepCurr = step
	u.objCurr = obj
	u.slopeCurr = slope

	u.locTol.Add(step)
	u.objTol.Add(obj)
	return u.Common.Iterate(nFunEvals)
}

func (u *Helper) Status() common.Status {
	if u.locTol.AbsConverged() {
		return common.LocChangeTol
	}
	if u.objTol.AbsConverged() {
		return common.ObjAbsTol
	}
	return u.Common.Status()
}

func (u *Helper) Result(status common.Status) *Result {
	return &Result{
		CommonResult: u.Common.Result(status),
		Loc:          u.locCurr,
		Step:         u.stepCurr,
		Obj:          u.objCurr,
		Slope:        u.slopeCurr,
	}
}

type Result struct {
	*common.CommonResult
	Loc   float64 // Most recent approximation of the root
	Step  float64 // Magnitude of the last update (NaN if the last pass made none)
	Obj   float64 // Objective at the point the last pass started from
	Slope float64 // Slope used by the last pass
}
