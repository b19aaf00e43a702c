package exec

import (
	"fmt"

	"octavia-hq/vela/pkg/expr"
)

// LowerPermutation lowers a normalized tree for the permutation backend.
// Grade, project and algebra atoms cannot run there and fail lowering, as
// does any element literal or any lift that is not the final instruction.
func LowerPermutation(tree *expr.Node) (*Plan, error) {
	return lower(BackendPermutation, tree)
}

// LowerAlgebraic lowers a normalized tree for the algebraic backend, which
// is total over all atom kinds.
func LowerAlgebraic(tree *expr.Node) (*Plan, error) {
	return lower(BackendAlgebraic, tree)
}

func lower(backend Backend, tree *expr.Node) (*Plan, error) {
	if tree == nil {
		return nil, &LoweringError{Backend: backend, Reason: "empty tree"}
	}

	lw := &lowerer{backend: backend}
	if _, _, err := lw.emit(tree, false); err != nil {
		return nil, err
	}

	plan := &Plan{Backend: backend, Instructions: lw.instrs}
	for i, in := range plan.Instructions {
		if in.terminal(backend) && i != len(plan.Instructions)-1 {
			return nil, ErrTerminalNotLast
		}
	}
	return plan, nil
}

// lowerer accumulates the flat instruction list during the single tree walk.
type lowerer struct {
	backend Backend
	instrs  []Instruction
}

func (lw *lowerer) push(in Instruction) {
	lw.instrs = append(lw.instrs, in)
}

// emit lowers one subtree. seeded tracks statically whether the accumulator
// holds a value when the subtree starts; the returns are the seeded state
// after the subtree and whether it ended on a terminal instruction.
func (lw *lowerer) emit(n *expr.Node, seeded bool) (bool, bool, error) {
	switch n.Kind {
	case expr.KindSequential:
		leftSeeded, leftTerminal, err := lw.emit(n.Left, seeded)
		if err != nil {
			return false, false, err
		}
		if leftTerminal {
			return false, false, &LoweringError{Backend: lw.backend,
				Reason: "instructions follow a terminal operation"}
		}
		return lw.emit(n.Right, leftSeeded)

	case expr.KindParallel:
		lw.push(Instruction{Op: OpSave})
		_, leftTerminal, err := lw.emit(n.Left, seeded)
		if err != nil {
			return false, false, err
		}
		if leftTerminal {
			return false, false, &LoweringError{Backend: lw.backend,
				Reason: "terminal operation inside a parallel branch"}
		}
		lw.push(Instruction{Op: OpExch})
		_, rightTerminal, err := lw.emit(n.Right, seeded)
		if err != nil {
			return false, false, err
		}
		if rightTerminal {
			return false, false, &LoweringError{Backend: lw.backend,
				Reason: "terminal operation inside a parallel branch"}
		}
		lw.push(Instruction{Op: OpMerge})
		return true, false, nil

	case expr.KindTransform:
		childSeeded, childTerminal, err := lw.emit(n.Child, seeded)
		if err != nil {
			return false, false, err
		}
		if childTerminal {
			return false, false, &LoweringError{Backend: lw.backend,
				Reason: "transform applied to a terminal operation"}
		}
		lw.push(Instruction{Op: OpTransform, Gen: n.Gen, Power: n.Power})
		return childSeeded, false, nil

	case expr.KindLiteral:
		if lw.backend == BackendPermutation && n.Literal.IsElement {
			return false, false, &LoweringError{Backend: lw.backend,
				Reason: "element literal on the permutation backend"}
		}
		lw.push(Instruction{Op: OpSeedLiteral, Literal: n.Literal})
		return true, false, nil

	case expr.KindParam:
		lw.push(Instruction{Op: OpSeedParam, Param: n.Param})
		return true, false, nil

	case expr.KindReduce:
		lw.push(Instruction{Op: OpSeedReduce, Reduce: n.Reduce})
		return true, false, nil

	case expr.KindRing:
		if !seeded {
			return false, false, ErrUnseededAccumulator
		}
		switch {
		case n.Ring.Factor:
			lw.push(Instruction{Op: OpFactor})
		case n.Ring.Unit:
			lw.push(Instruction{Op: OpUnitTest})
		default:
			lw.push(Instruction{Op: OpRing, RingOp: n.Ring.Op, Operand: n.Ring.Operand, Track: n.Ring.Track})
			if !n.Ring.Track {
				return true, false, nil
			}
		}
		return true, true, nil

	case expr.KindBridge:
		if !seeded {
			return false, false, ErrUnseededAccumulator
		}
		switch n.Bridge {
		case expr.BridgeLift:
			lw.push(Instruction{Op: OpLift})
			return true, lw.backend == BackendPermutation, nil
		case expr.BridgeProject:
			if lw.backend == BackendPermutation {
				return false, false, &LoweringError{Backend: lw.backend,
					Reason: "projection needs an element accumulator"}
			}
			lw.push(Instruction{Op: OpProject})
			return true, true, nil
		}
		return false, false, &LoweringError{Backend: lw.backend,
			Reason: fmt.Sprintf("unknown bridge op %q", n.Bridge)}

	case expr.KindGrade:
		if lw.backend == BackendPermutation {
			return false, false, &LoweringError{Backend: lw.backend,
				Reason: "grade projection on the permutation backend"}
		}
		if !seeded {
			return false, false, ErrUnseededAccumulator
		}
		lw.push(Instruction{Op: OpGrade, Grade: n.Grade})
		return true, false, nil

	case expr.KindAlgebra:
		if lw.backend == BackendPermutation {
			return false, false, &LoweringError{Backend: lw.backend,
				Reason: "element-level algebra op on the permutation backend"}
		}
		if !seeded {
			return false, false, ErrUnseededAccumulator
		}
		lw.push(Instruction{
			Op:        OpAlgebra,
			AlgebraOp: n.Algebra.Op,
			AlgParam:  n.Algebra.Param,
			Factor:    n.Algebra.Factor,
		})
		return true, false, nil
	}

	return false, false, &LoweringError{Backend: lw.backend,
		Reason: fmt.Sprintf("unknown node kind %q", n.Kind)}
}
