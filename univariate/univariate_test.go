package univariate

import "math"

type testFunction struct {
	Name string
	f    Func
	df   Func
	init float64    // starting point for derivative-based solvers
	pts  [2]float64 // starting points for derivative-free solvers
	root float64
}

var testFunctions = []testFunction{
	{
		Name: "SquareMinusThree",
		f:    func(x float64) float64 { return x*x - 3 },
		df:   func(x float64) float64 { return 2 * x },
		init: 1,
		pts:  [2]float64{1, 2},
		root: math.Sqrt(3),
	},
	{
		Name: "Wallis",
		f:    func(x float64) float64 { return x*x*x - 2*x - 5 },
		df:   func(x float64) float64 { return 3*x*x - 2 },
		init: 2,
		pts:  [2]float64{2, 3},
		root: 2.0945514815423265,
	},
	{
		Name: "PlasticNumber",
		f:    func(x float64) float64 { return x*x*x - x - 1 },
		df:   func(x float64) float64 { return 3*x*x - 1 },
		init: 1.5,
		pts:  [2]float64{1, 2},
		root: 1.324717957244746,
	},
	{
		Name: "CosFixedPoint",
		f:    func(x float64) float64 { return math.Cos(x) - x },
		df:   func(x float64) float64 { return -math.Sin(x) - 1 },
		init: 1,
		pts:  [2]float64{0, 1},
		root: 0.7390851332151607,
	},
	{
		Name: "ExpMinusTwo",
		f:    func(x float64) float64 { return math.Exp(x) - 2 },
		df:   math.Exp,
		init: 0,
		pts:  [2]float64{0, 1},
		root: math.Ln2,
	},
}
