package common

type Statuser interface {
	Status() Status
}

// CheckStatus checks the status of a variadic number of statusers and
// returns the first one that is not Continue. Order matters: callers list
// the checks that should win ties first.
func CheckStatus(cs ...Statuser) Status {
	for _, val := range cs {
		c := val.Status()
		if c != Continue {
			return c
		}
	}
	return Continue
}

// NewStatus is used to get a unique value for Status to avoid any accidental
// collisions. NewStatus is not thread-safe as it is intended to only be used
// during initialization
func NewStatus(str string) Status {
	lastStatus++
	statusStrings[lastStatus] = str
	return Status(lastStatus)
}

var statusStrings map[Status]string

func init() {
	statusStrings = make(map[Status]string)
	statusStrings[Continue] = "Continue"
	statusStrings[LocChangeTol] = "LocChangeTol"
	statusStrings[ObjAbsTol] = "ObjAbsTol"

	statusStrings[UserFunctionError] = "ErrorInUserFunction"
	statusStrings[SolverError] = "SolverError"
	statusStrings[Degenerate] = "DegenerateSlope"
	statusStrings[MaximumIterations] = "MaximumIterations"
	statusStrings[MaximumFunctionEvaluations] = "MaximumFunctionEvaluations"
}

// Status is a type for expressing if the solver has finished or not.
// Zero signifies no convergence or error so the solver should continue.
// Positive values indicate successful convergence,
// negative values mean the solver stopped for some other reason. The
// location reported alongside a negative status is still the most recent
// approximation, it just carries no guarantee of accuracy.
//
// If a custom status value is desired, NewStatus should be called. NewStatus
// is not thread-safe as it is intended to only be used during initialization
type Status int

func (s Status) String() string {
	str, ok := statusStrings[s]
	if !ok {
		return "UnregisteredStatus"
	}
	return str
}

// Converged returns true if s signals that a tolerance was met.
func (s Status) Converged() bool {
	return s > 0
}

const (
	Continue     Status = iota
	LocChangeTol        // step between successive approximations within tolerance
	ObjAbsTol           // |f| within the objective tolerance
)

const (
	_                        = iota
	UserFunctionError Status = -1 * iota
	SolverError
	Degenerate // slope (or secant spacing) too close to zero to divide by
	MaximumIterations
	MaximumFunctionEvaluations
)

var lastStatus Status = 256
