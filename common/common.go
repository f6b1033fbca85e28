package common

import (
	"time"

	"github.com/btracey/rootfind/write"
)

// CommonSettings is a set of options available to all solvers
type CommonSettings struct {
	// MaximumIterations bounds the number of update passes. The bound is
	// inclusive, so a solve performs at most MaximumIterations+1 passes.
	// A negative value means no maximum.
	MaximumIterations int

	// MaximumFunctionEvaluations bounds the number of calls to the objective.
	// The budget is checked after each pass, so a solve makes at most one
	// pass beyond it and may report up to that pass's evaluations over the
	// budget. A negative value means no maximum.
	MaximumFunctionEvaluations int

	*write.WriteSettings
}

// DefaultCommonSettings returns the default settings for the common structure
func DefaultCommonSettings() *CommonSettings {
	return &CommonSettings{
		MaximumIterations:          100,
		MaximumFunctionEvaluations: -1, // Defaults to no maximum function evaluations
		WriteSettings:              write.DefaultWriteSettings(),
	}
}

// CommonResult is a list of results from the common structure
type CommonResult struct {
	Iterations          int           // Total number of update passes taken by the solver
	FunctionEvaluations int           // Total number of objective evaluations taken by the solver
	Runtime             time.Duration // Total runtime elapsed during the solve
	Status              Status        // How did the solver end
}

// Common provides routines for controlling the settings provided by common.
type Common struct {
	iter      int
	funEvals  int
	startTime time.Time

	settings *CommonSettings

	*write.Display
}

// NewCommon creates a new Common structure, and adds itself to the datawriter
func NewCommon() *Common {
	c := &Common{
		Display: write.NewDisplay(),
	}
	c.AddDataAdder(c)
	return c
}

// Init initializes all of the values in common at the start of the solve
func (c *Common) Init(settings *CommonSettings) error {
	c.iter = 0
	c.funEvals = 0
	c.startTime = time.Now()

	c.settings = settings

	ws := c.settings.WriteSettings
	if ws == nil {
		ws = write.DefaultWriteSettings()
	}
	return c.Display.Init(ws)
}

// AppendWriteData adds the components of common to the display structure
func (c *Common) AppendWriteData(d []*write.Value) []*write.Value {
	d = append(d, &write.Value{Heading: "Iter", Value: c.iter})
	d = append(d, &write.Value{Heading: "FnEval", Value: c.funEvals})
	return d
}

// Status checks if any of the budgets controlled by common have been consumed.
func (c *Common) Status() Status {
	if c.settings.MaximumIterations > -1 && c.iter > c.settings.MaximumIterations {
		return MaximumIterations
	}
	if c.settings.MaximumFunctionEvaluations > -1 && c.funEvals > c.settings.MaximumFunctionEvaluations {
		return MaximumFunctionEvaluations
	}
	return Continue
}

// Result returns the results from the common structure and reports the
// final status to the display.
func (c *Common) Result(status Status) *CommonResult {
	r := &CommonResult{
		Iterations:          c.iter,
		FunctionEvaluations: c.funEvals,
		Runtime:             time.Since(c.startTime),
		Status:              status,
	}
	c.Display.Result(status.String())
	return r
}

// Iterate performs an iteration of the common structure, incrementing
// the iteration, appending the number of function evaluations, and
// writing to the writers
func (c *Common) Iterate(nFunEvals int) error {
	c.iter++
	c.funEvals += nFunEvals
	return c.Display.Iterate()
}
