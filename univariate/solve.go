package univariate

import (
	"fmt"

	"github.com/btracey/rootfind/common"
)

// DerivSolver represents a root finder that uses an explicit derivative
type DerivSolver interface {
	Init(f, df Func, initLoc float64) error
	// Status reports solver specific terminations such as a vanishing slope.
	// Tolerances and budgets are checked by the Helper.
	Status() common.Status
	// Iterate performs one pass and returns the new approximation along
	// with the step taken, the objective and slope it was computed from,
	// and the number of objective evaluations.
	Iterate() (loc, step, obj, slope float64, nFunEvals int, err error)
	// Result does any cleanup needed
	Result()
}

// DerivFreeSolver represents a root finder that approximates the slope from
// previous evaluations and therefore starts from two points.
type DerivFreeSolver interface {
	Init(f Func, initLoc0, initLoc1 float64) error
	Status() common.Status
	Iterate() (loc, step, obj, slope float64, nFunEvals int, err error)
	Result()
}

// DerivWrapper is a convenience wrapper around a derivative-based algorithm that
// allows more fine-grained control over solve progress. See SolveDeriv
// for example usage
type DerivWrapper struct {
	solver DerivSolver
	helper *Helper
}

func NewDerivWrapper(solver DerivSolver) *DerivWrapper {
	return &DerivWrapper{
		solver: solver,
		helper: NewHelper(),
	}
}

func (g *DerivWrapper) Init(settings *Settings, f, df Func, initLoc float64) error {
	if err := g.helper.Init(settings, initLoc); err != nil {
		return err
	}
	return g.solver.Init(f, df, initLoc)
}

// Status checks the solver before the helper so that a degenerate pass is
// never mistaken for convergence.
func (g *DerivWrapper) Status() common.Status {
	return common.CheckStatus(g.solver, g.helper)
}

func (g *DerivWrapper) Iterate() (loc float64, err error) {
	loc, step, obj, slope, nFunEvals, err := g.solver.Iterate()
	if err != nil {
		return loc, fmt.Errorf("error iterating solver: %w", err)
	}
	return loc, g.helper.Iterate(loc, step, obj, slope, nFunEvals)
}

func (g *DerivWrapper) Result(status common.Status) *Result {
	g.solver.Result()
	return g.helper.Result(status)
}

// DerivFreeWrapper is the DerivWrapper counterpart for derivative-free solvers.
type DerivFreeWrapper struct {
	solver DerivFreeSolver
	helper *Helper
}

func NewDerivFreeWrapper(solver DerivFreeSolver) *DerivFreeWrapper {
	return &DerivFreeWrapper{
		solver: solver,
		helper: NewHelper(),
	}
}

// Init starts the solve. initLoc1 is the most recent of the two points and
// is the location reported if the first pass makes no update.
func (g *DerivFreeWrapper) Init(settings *Settings, f Func, initLoc0, initLoc1 float64) error {
	if err := g.helper.Init(settings, initLoc1); err != nil {
		return err
	}
	return g.solver.Init(f, initLoc0, initLoc1)
}

func (g *DerivFreeWrapper) Status() common.Status {
	return common.CheckStatus(g.solver, g.helper)
}

func (g *DerivFreeWrapper) Iterate() (loc float64, err error) {
	loc, step, obj, slope, nFunEvals, err := g.solver.Iterate()
	if err != nil {
		return loc, fmt.Errorf("error iterating solver: %w", err)
	}
	return loc, g.helper.Iterate(loc, step, obj, slope, nFunEvals)
}

func (g *DerivFreeWrapper) Result(status common.Status) *Result {
	g.solver.Result()
	return g.helper.Result(status)
}

// SolveDeriv finds a root of f using its derivative df, starting from initLoc.
// If settings is nil DefaultSettings is used; if solver is nil a Newton
// solver with the default minimum slope is used.
//
// Running out of iterations or hitting a vanishing slope is not an error:
// the most recent approximation is returned and Result.Status tells how
// the solve ended.
func SolveDeriv(f, df Func, initLoc float64, settings *Settings, solver DerivSolver) (*Result, error) {
	if f == nil || df == nil {
		return nil, ErrNilFunc
	}
	if settings == nil {
		settings = DefaultSettings()
	}
	if err := settings.validate(); err != nil {
		return nil, err
	}
	if solver == nil {
		solver = NewNewton()
	}

	wrapper := NewDerivWrapper(solver)

	err := wrapper.Init(settings, f, df, initLoc)
	if err != nil {
		return nil, fmt.Errorf("error initializing: %w", err)
	}

	var status common.Status
	for {
		// Check if it has converged
		status = wrapper.Status()
		if status != common.Continue {
			break
		}

		if _, err := wrapper.Iterate(); err != nil {
			return nil, err
		}
	}
	return wrapper.Result(status), nil
}

// SolveDerivFree finds a root of f starting from the two points initLoc0 and
// initLoc1. If solver is nil a Secant solver with default thresholds is used.
func SolveDerivFree(f Func, initLoc0, initLoc1 float64, settings *Settings, solver DerivFreeSolver) (*Result, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if settings == nil {
		settings = DefaultSettings()
	}
	if err := settings.validate(); err != nil {
		return nil, err
	}
	if solver == nil {
		solver = NewSecant()
	}

	wrapper := NewDerivFreeWrapper(solver)

	err := wrapper.Init(settings, f, initLoc0, initLoc1)
	if err != nil {
		return nil, fmt.Errorf("error initializing: %w", err)
	}

	var status common.Status
	for {
		status = wrapper.Status()
		if status != common.Continue {
			break
		}

		if _, err := wrapper.Iterate(); err != nil {
			return nil, err
		}
	}
	return wrapper.Result(status), nil
}
