package exec

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrUnseededAccumulator indicates a tree whose first executed atom is an
	// operation rather than a seed.
	ErrUnseededAccumulator = errors.New("operation requires a seeded accumulator")

	// ErrTerminalNotLast indicates a terminal instruction followed by more
	// instructions; lowering must never produce such a plan.
	ErrTerminalNotLast = errors.New("terminal instruction is not last in plan")
)

// LoweringError reports a tree the backend cannot lower. Raised only during
// compilation, never at invocation time.
type LoweringError struct {
	Backend Backend
	Reason  string
}

// Error returns the error message.
func (e *LoweringError) Error() string {
	return fmt.Sprintf("%s backend cannot lower tree: %s", e.Backend, e.Reason)
}

// ContractViolation reports a caller bug at invocation time: a missing or
// mis-shaped runtime parameter, or an out-of-range class index. These are
// surfaced immediately and never retried.
type ContractViolation struct {
	Param  string
	Reason string
}

// Error returns the error message.
func (e *ContractViolation) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("runtime parameter %q: %s", e.Param, e.Reason)
	}
	return fmt.Sprintf("contract violation: %s", e.Reason)
}
