package common

import (
	"math"
	"testing"
)

type fixedStatus Status

func (f fixedStatus) Status() Status { return Status(f) }

func TestCheckStatus(t *testing.T) {
	if s := CheckStatus(fixedStatus(Continue), fixedStatus(Continue)); s != Continue {
		t.Errorf("expected Continue, found %v", s)
	}
	if s := CheckStatus(fixedStatus(Continue), fixedStatus(Degenerate), fixedStatus(LocChangeTol)); s != Degenerate {
		t.Errorf("expected first non-continue status, found %v", s)
	}
}

func TestStatusString(t *testing.T) {
	for s, str := range map[Status]string{
		Continue:          "Continue",
		LocChangeTol:      "LocChangeTol",
		Degenerate:        "DegenerateSlope",
		MaximumIterations: "MaximumIterations",
		Status(1000):      "UnregisteredStatus",
	} {
		if s.String() != str {
			t.Errorf("status %d: Expected %v, Found %v", int(s), str, s.String())
		}
	}

	custom := NewStatus("Custom")
	if custom.String() != "Custom" {
		t.Errorf("custom status has name %v", custom)
	}
	if !LocChangeTol.Converged() || !ObjAbsTol.Converged() {
		t.Errorf("tolerance statuses should be converged")
	}
	if Degenerate.Converged() || MaximumIterations.Converged() || Continue.Converged() {
		t.Errorf("non-tolerance statuses should not be converged")
	}
}

func TestToler(t *testing.T) {
	var tol Toler
	tol.Init(1e-3, math.Inf(1))
	if tol.AbsConverged() {
		t.Errorf("converged before any value was added")
	}
	tol.Add(-1e-3)
	if !tol.AbsConverged() {
		t.Errorf("tolerance bound should be inclusive")
	}
	tol.Add(math.NaN())
	if tol.AbsConverged() {
		t.Errorf("NaN should never converge")
	}

	tol.Init(math.NaN(), 0)
	if tol.AbsConverged() {
		t.Errorf("NaN tolerance should disable the check")
	}
}

func TestCommonBudget(t *testing.T) {
	settings := DefaultCommonSettings()
	settings.MaximumIterations = 2
	settings.MaximumFunctionEvaluations = 10

	c := NewCommon()
	if err := c.Init(settings); err != nil {
		t.Fatal(err)
	}
	for i := 0; i <= settings.MaximumIterations; i++ {
		if s := c.Status(); s != Continue {
			t.Fatalf("pass %v: stopped early with %v", i, s)
		}
		if err := c.Iterate(2); err != nil {
			t.Fatal(err)
		}
	}
	if s := c.Status(); s != MaximumIterations {
		t.Errorf("expected MaximumIterations, found %v", s)
	}
	r := c.Result(MaximumIterations)
	if r.Iterations != 3 || r.FunctionEvaluations != 6 || r.Status != MaximumIterations {
		t.Errorf("unexpected result %+v", r)
	}

	settings.MaximumIterations = -1
	settings.MaximumFunctionEvaluations = 3
	if err := c.Init(settings); err != nil {
		t.Fatal(err)
	}
	c.Iterate(2)
	if s := c.Status(); s != Continue {
		t.Errorf("expected Continue, found %v", s)
	}
	c.Iterate(2)
	if s := c.Status(); s != MaximumFunctionEvaluations {
		t.Errorf("expected MaximumFunctionEvaluations, found %v", s)
	}
}
