package compile

import (
	"github.com/google/uuid"

	"octavia-hq/vela/pkg/exec"
	"octavia-hq/vela/pkg/expr"
)

// CompiledOperation is the executable artifact: the descriptor it came from,
// the tier the analyzer assigned, and the lowered plan. It is immutable and
// safe for concurrent invocation; every call runs on its own accumulator.
type CompiledOperation struct {
	ID         uuid.UUID
	Descriptor Descriptor
	Tier       Tier
	Plan       *exec.Plan
}

// Backend returns the engine the plan was lowered for.
func (op *CompiledOperation) Backend() exec.Backend {
	return op.Plan.Backend
}

// Invoke executes the plan against runtime arguments.
func (op *CompiledOperation) Invoke(args exec.Args) (exec.Value, error) {
	return exec.Execute(op.Plan, args)
}

// Compile runs the full pipeline for one descriptor: build, normalize,
// analyze, select, lower. Compilation is deterministic apart from the
// artifact ID; an equal descriptor always yields a structurally identical
// plan.
func Compile(desc Descriptor) (*CompiledOperation, error) {
	if err := desc.Validate(); err != nil {
		return nil, &ConstructionError{Operation: desc.Operation(), Reason: "invalid descriptor", Err: err}
	}

	builder, ok := builders[desc.Operation()]
	if !ok {
		return nil, &ConstructionError{Operation: desc.Operation(), Reason: "unknown operation"}
	}
	tree, err := builder(&desc)
	if err != nil {
		return nil, &ConstructionError{Operation: desc.Operation(), Reason: "building expression tree", Err: err}
	}

	normalized := expr.Normalize(tree)
	metrics := Analyze(normalized)
	tier := Classify(metrics)
	if hinted, ok := ParseTier(desc.ComplexityHint); ok {
		tier = hinted
	}

	var plan *exec.Plan
	switch SelectBackend(metrics, tier, desc.BackendHint) {
	case exec.BackendPermutation:
		plan, err = exec.LowerPermutation(normalized)
	default:
		plan, err = exec.LowerAlgebraic(normalized)
	}
	if err != nil {
		return nil, &ConstructionError{Operation: desc.Operation(), Reason: "lowering", Err: err}
	}

	return &CompiledOperation{
		ID:         uuid.New(),
		Descriptor: desc,
		Tier:       tier,
		Plan:       plan,
	}, nil
}
