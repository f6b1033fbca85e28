package univariate

import (
	"errors"
	"math"

	"github.com/btracey/rootfind/common"
)

// DefaultMinSlope is the magnitude below which a slope is treated as zero.
const DefaultMinSlope = 1e-12

// Newton performs Newton-Raphson iteration using an explicit derivative.
// Each pass moves from x to x - f(x)/f'(x).
//
// If |f'(x)| < MinSlope the pass makes no update and the solver reports
// common.Degenerate, leaving x as the result. A zero MinSlope uses
// DefaultMinSlope; to only reject exact zeros set it to
// math.SmallestNonzeroFloat64.
type Newton struct {
	MinSlope float64

	f   Func
	df  Func
	loc float64

	status common.Status
}

func NewNewton() *Newton {
	return &Newton{MinSlope: DefaultMinSlope}
}

func (n *Newton) Init(f, df Func, initLoc float64) error {
	if math.IsNaN(n.MinSlope) || n.MinSlope < 0 {
		return errors.New("newton: minimum slope must be non-negative")
	}
	n.f = f
	n.df = df
	n.loc = initLoc
	n.status = common.Continue
	return nil
}

func (n *Newton) Iterate() (loc, step, obj, slope float64, nFunEvals int, err error) {
	prev := n.loc
	obj = n.f(prev)
	slope = n.df(prev)

	if math.Abs(slope) < minOrDefault(n.MinSlope) {
		n.status = common.Degenerate
		return prev, math.NaN(), obj, slope, 1, nil
	}

	n.loc = prev - obj/slope
	return n.loc, math.Abs(n.loc - prev), obj, slope, 1, nil
}

func (n *Newton) Status() common.Status { return n.status }

func (n *Newton) Result() {}

func minOrDefault(v float64) float64 {
	if v == 0 {
		return DefaultMinSlope
	}
	return v
}
