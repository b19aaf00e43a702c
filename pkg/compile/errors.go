package compile

import "fmt"

// ConstructionError reports a descriptor that cannot be turned into an
// executable plan: an unknown operation, a missing or ill-typed compile-time
// parameter, or a tree the selected backend cannot lower.
type ConstructionError struct {
	Operation string
	Reason    string
	Err       error
}

func (e *ConstructionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("compile %s: %s: %v", e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("compile %s: %s", e.Operation, e.Reason)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
