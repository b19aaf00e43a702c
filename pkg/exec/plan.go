package exec

import (
	"octavia-hq/vela/pkg/expr"
	"octavia-hq/vela/pkg/perm"
)

// Backend identifies one of the two execution engines.
type Backend string

const (
	BackendPermutation Backend = "permutation"
	BackendAlgebraic   Backend = "algebraic"
)

// Opcode tags the flat instructions both backends lower to. Not every opcode
// is legal on every backend; lowering enforces the split.
type Opcode string

const (
	OpSeedParam   Opcode = "seed_param"   // accumulator := runtime parameter
	OpSeedLiteral Opcode = "seed_literal" // accumulator := baked literal
	OpSeedReduce  Opcode = "seed_reduce"  // accumulator := list reduction
	OpRing        Opcode = "ring"         // mod-96 op; terminal when tracked
	OpFactor      Opcode = "factor"       // terminal: unit-restricted factors
	OpUnitTest    Opcode = "unit_test"    // terminal: coprimality boolean
	OpTransform   Opcode = "transform"    // generator power on the accumulator
	OpGrade       Opcode = "grade"        // algebraic only: grade projection
	OpAlgebra     Opcode = "algebra"      // algebraic only: element mul/add/scale
	OpLift        Opcode = "lift"         // class -> element; terminal on permutation
	OpProject     Opcode = "project"      // terminal: element -> class | NotRankOne
	OpSave        Opcode = "save"         // push accumulator (parallel entry)
	OpExch        Opcode = "exch"         // swap accumulator with stack top
	OpMerge       Opcode = "merge"        // pop and combine by addition
)

// Instruction is one step of an execution plan. Exactly the fields implied
// by Op are set.
type Instruction struct {
	Op Opcode

	// Seeds.
	Param   string
	Literal *expr.Literal
	Reduce  *expr.ReduceSpec

	// Ring.
	RingOp  perm.RingOp
	Operand expr.Operand
	Track   bool

	// Transform.
	Gen   perm.Generator
	Power int

	// Grade projection.
	Grade int

	// Algebra op.
	AlgebraOp expr.AlgebraOp
	AlgParam  string
	Factor    int
}

// Plan is a compiled, backend-specific instruction sequence. Plans are
// immutable after lowering and safe to share across goroutines; execution
// state lives entirely in call-local accumulators.
type Plan struct {
	Backend      Backend
	Instructions []Instruction
}

// terminal reports whether the instruction ends the sequence early with its
// result instead of threading the accumulator further.
func (in Instruction) terminal(backend Backend) bool {
	switch in.Op {
	case OpFactor, OpUnitTest, OpProject:
		return true
	case OpRing:
		return in.Track
	case OpLift:
		return backend == BackendPermutation
	}
	return false
}
