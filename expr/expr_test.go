package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btracey/rootfind/univariate"
)

func TestEval(t *testing.T) {
	for _, test := range []struct {
		expression string
		x          float64
		want       float64
	}{
		{"x**2 - 3", 2, 1},
		{"x*x - 3", 1, -2},
		{"pow(x, 3) - 2*x - 5", 2, -1},
		{"cos(x) - x", 0, 1},
		{"exp(x) - 2", 0, -1},
		{"sqrt(abs(x))", -4, 2},
		{"log(x)", 1, 0},
		{"sin(x) + tan(x)", 0, 0},
		{"  3  ", 10, 3},
	} {
		e, err := Parse(test.expression)
		require.NoError(t, err, test.expression)
		got, err := e.Eval(test.x)
		require.NoError(t, err, test.expression)
		assert.InDelta(t, test.want, got, 1e-15, test.expression)
		assert.Equal(t, test.expression, e.String())
	}
}

func TestParseErrors(t *testing.T) {
	for _, expression := range []string{
		"x +",
		"x + y",
		"foo(x)",
		"(x",
	} {
		_, err := Parse(expression)
		assert.Error(t, err, expression)
	}
}

func TestFunc(t *testing.T) {
	e, err := Parse("sqrt(x)")
	require.NoError(t, err)
	f := e.Func()
	assert.Equal(t, 3.0, f(9))
	assert.True(t, math.IsNaN(f(-1)), "domain errors are NaN, not evaluation errors")
	assert.NoError(t, e.Err())

	e, err = Parse("x > 1")
	require.NoError(t, err)
	f = e.Func()
	assert.True(t, math.IsNaN(f(2)))
	assert.Error(t, e.Err())
}

func TestSolve(t *testing.T) {
	f, err := Parse("x**2 - 3")
	require.NoError(t, err)
	df, err := Parse("2*x")
	require.NoError(t, err)

	root := univariate.NewtonRaphson(f.Func(), df.Func(), 1, 1e-15, 100)
	assert.InDelta(t, math.Sqrt(3), root, 1e-15)

	root = univariate.FiniteDifference(f.Func(), 1, 2, 1e-12, 100)
	assert.InDelta(t, math.Sqrt(3), root, 1e-12)
	assert.NoError(t, f.Err())
}
