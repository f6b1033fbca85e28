// Package expr turns textual expressions in the variable x into scalar
// functions that the root finders can call.
package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
)

// Variable is the name of the free variable in an expression.
const Variable = "x"

var functions = map[string]govaluate.ExpressionFunction{
	"sin":  unary(math.Sin),
	"cos":  unary(math.Cos),
	"tan":  unary(math.Tan),
	"exp":  unary(math.Exp),
	"log":  unary(math.Log),
	"sqrt": unary(math.Sqrt),
	"abs":  unary(math.Abs),
	"pow": func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("pow: expected 2 arguments, got %d", len(args))
		}
		return math.Pow(toFloat(args[0]), toFloat(args[1])), nil
	},
}

func unary(fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expected 1 argument, got %d", len(args))
		}
		return fn(toFloat(args[0])), nil
	}
}

// Expr is a parsed expression. It reuses its parameter map between calls and
// is not safe for concurrent use.
type Expr struct {
	src    string
	expr   *govaluate.EvaluableExpression
	params map[string]interface{}
	err    error
}

// Parse parses an expression such as "x**2 - 3" or "cos(x) - x".
// Available functions are sin, cos, tan, exp, log, sqrt, abs and pow.
func Parse(expression string) (*Expr, error) {
	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(strings.TrimSpace(expression), functions)
	if err != nil {
		return nil, fmt.Errorf("expr: parse %q: %w", expression, err)
	}
	for _, v := range parsed.Vars() {
		if v != Variable {
			return nil, fmt.Errorf("expr: parse %q: unknown variable %q", expression, v)
		}
	}
	return &Expr{
		src:    expression,
		expr:   parsed,
		params: map[string]interface{}{Variable: 0.0},
	}, nil
}

func (e *Expr) String() string { return e.src }

// Eval evaluates the expression at x.
func (e *Expr) Eval(x float64) (float64, error) {
	e.params[Variable] = x
	v, err := e.expr.Evaluate(e.params)
	if err != nil {
		return math.NaN(), fmt.Errorf("expr: evaluate %q at %v: %w", e.src, x, err)
	}

	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return math.NaN(), fmt.Errorf("expr: evaluate %q at %v: %w", e.src, x, err)
		}
		return f, nil
	default:
		return math.NaN(), fmt.Errorf("expr: %q did not evaluate to a number: %T", e.src, v)
	}
}

// Func returns e as a plain function. Evaluation errors produce NaN, which
// the solvers propagate; the first such error is kept and reported by Err.
func (e *Expr) Func() func(float64) float64 {
	return func(x float64) float64 {
		v, err := e.Eval(x)
		if err != nil && e.err == nil {
			e.err = err
		}
		return v
	}
}

// Err returns the first error met by a function returned from Func.
func (e *Expr) Err() error {
	return e.err
}

func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
