package exec

import (
	"fmt"

	"octavia-hq/vela/pkg/algebra"
	"octavia-hq/vela/pkg/bridge"
	"octavia-hq/vela/pkg/expr"
	"octavia-hq/vela/pkg/perm"
)

// ExecuteAlgebraic interprets an algebraic-backend plan: a straight-line
// walk threading one element accumulator. Ring-family instructions and
// parallel merges project the accumulator to its class, compute mod 96 and
// lift back; an accumulator with no class equivalent yields the explicit
// NotRankOne outcome rather than an error.
func ExecuteAlgebraic(plan *Plan, args Args) (Value, error) {
	var acc algebra.Element
	var stack []algebra.Element

	for _, in := range plan.Instructions {
		switch in.Op {
		case OpSeedParam:
			element, err := elementArg(args, in.Param)
			if err != nil {
				return Value{}, err
			}
			acc = element

		case OpSeedLiteral:
			if in.Literal.IsElement {
				acc = in.Literal.Element
			} else {
				element, err := bridge.Lift(in.Literal.Class)
				if err != nil {
					return Value{}, &ContractViolation{Reason: err.Error()}
				}
				acc = element
			}

		case OpSeedReduce:
			values, err := reduceValues(in.Reduce, args)
			if err != nil {
				return Value{}, err
			}
			element, err := bridge.Lift(perm.Reduce(in.Reduce.Op, values))
			if err != nil {
				return Value{}, &ContractViolation{Reason: err.Error()}
			}
			acc = element

		case OpRing:
			projected := bridge.Project(acc)
			if !projected.Rank1 {
				return NotRankOneValue(), nil
			}
			operand, err := operandClass(in.Operand, args)
			if err != nil {
				return Value{}, err
			}
			if in.Track {
				return RingValue(perm.ApplyRingTracked(in.RingOp, projected.Class, operand)), nil
			}
			lifted, err := bridge.Lift(perm.ApplyRing(in.RingOp, projected.Class, operand))
			if err != nil {
				return Value{}, &ContractViolation{Reason: err.Error()}
			}
			acc = lifted

		case OpFactor:
			projected := bridge.Project(acc)
			if !projected.Rank1 {
				return NotRankOneValue(), nil
			}
			return IntsValue(perm.Factor(projected.Class)), nil

		case OpUnitTest:
			projected := bridge.Project(acc)
			if !projected.Rank1 {
				return NotRankOneValue(), nil
			}
			return BoolValue(perm.IsUnit(projected.Class)), nil

		case OpTransform:
			acc = algebra.Apply(in.Gen, acc, in.Power)

		case OpGrade:
			acc = acc.GradeProject(in.Grade)

		case OpAlgebra:
			switch in.AlgebraOp {
			case expr.AlgebraScale:
				acc = acc.Scale(in.Factor)
			case expr.AlgebraMul, expr.AlgebraAdd:
				operand, err := elementArg(args, in.AlgParam)
				if err != nil {
					return Value{}, err
				}
				if in.AlgebraOp == expr.AlgebraMul {
					acc = acc.Mul(operand)
				} else {
					acc = acc.Add(operand)
				}
			default:
				panic(fmt.Sprintf("algebraic backend: unknown algebra op %q", in.AlgebraOp))
			}

		case OpLift:
			// The accumulator is already in element form on this backend.

		case OpProject:
			projected := bridge.Project(acc)
			if !projected.Rank1 {
				return NotRankOneValue(), nil
			}
			return ClassValue(projected.Class), nil

		case OpSave:
			stack = append(stack, acc)

		case OpExch:
			top := len(stack) - 1
			stack[top], acc = acc, stack[top]

		case OpMerge:
			// Merge follows the same convention as the ring-family
			// instructions: mod-96 addition on the classes, so both backends
			// give identical answers for every parallel tree.
			top := len(stack) - 1
			left := bridge.Project(stack[top])
			right := bridge.Project(acc)
			stack = stack[:top]
			if !left.Rank1 || !right.Rank1 {
				return NotRankOneValue(), nil
			}
			merged, err := bridge.Lift(perm.Add(left.Class, right.Class))
			if err != nil {
				return Value{}, &ContractViolation{Reason: err.Error()}
			}
			acc = merged

		default:
			panic(fmt.Sprintf("algebraic backend: illegal opcode %q", in.Op))
		}
	}

	return ElementValue(acc), nil
}

// elementArg resolves a runtime parameter to an element; class indices lift.
func elementArg(args Args, name string) (algebra.Element, error) {
	v, ok := args[name]
	if !ok {
		return algebra.Element{}, &ContractViolation{Param: name, Reason: "missing"}
	}
	switch v.Kind {
	case KindElement:
		return v.Element, nil
	case KindClass:
		element, err := bridge.Lift(v.Class)
		if err != nil {
			return algebra.Element{}, &ContractViolation{Param: name, Reason: err.Error()}
		}
		return element, nil
	default:
		return algebra.Element{}, &ContractViolation{Param: name,
			Reason: fmt.Sprintf("want class or element, got %s", v.Kind)}
	}
}

// Execute dispatches a plan to its backend's interpreter.
func Execute(plan *Plan, args Args) (Value, error) {
	switch plan.Backend {
	case BackendPermutation:
		return ExecutePermutation(plan, args)
	case BackendAlgebraic:
		return ExecuteAlgebraic(plan, args)
	}
	return Value{}, fmt.Errorf("unknown backend %q", plan.Backend)
}
