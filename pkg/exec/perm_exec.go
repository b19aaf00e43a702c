package exec

import (
	"fmt"

	"octavia-hq/vela/pkg/bridge"
	"octavia-hq/vela/pkg/expr"
	"octavia-hq/vela/pkg/perm"
)

// ExecutePermutation interprets a permutation-backend plan: a straight-line
// walk threading one class-index accumulator, with an explicit early return
// on terminal instructions. All arithmetic is total; the only runtime errors
// are caller contract violations around parameters.
func ExecutePermutation(plan *Plan, args Args) (Value, error) {
	var acc perm.ClassIndex
	var stack []perm.ClassIndex

	for _, in := range plan.Instructions {
		switch in.Op {
		case OpSeedParam:
			c, err := classArg(args, in.Param)
			if err != nil {
				return Value{}, err
			}
			acc = c

		case OpSeedLiteral:
			acc = in.Literal.Class

		case OpSeedReduce:
			values, err := reduceValues(in.Reduce, args)
			if err != nil {
				return Value{}, err
			}
			acc = perm.Reduce(in.Reduce.Op, values)

		case OpRing:
			operand, err := operandClass(in.Operand, args)
			if err != nil {
				return Value{}, err
			}
			if in.Track {
				return RingValue(perm.ApplyRingTracked(in.RingOp, acc, operand)), nil
			}
			acc = perm.ApplyRing(in.RingOp, acc, operand)

		case OpFactor:
			return IntsValue(perm.Factor(acc)), nil

		case OpUnitTest:
			return BoolValue(perm.IsUnit(acc)), nil

		case OpTransform:
			acc = perm.Apply(in.Gen, acc, in.Power)

		case OpLift:
			element, err := bridge.Lift(acc)
			if err != nil {
				return Value{}, &ContractViolation{Reason: err.Error()}
			}
			return ElementValue(element), nil

		case OpSave:
			stack = append(stack, acc)

		case OpExch:
			top := len(stack) - 1
			stack[top], acc = acc, stack[top]

		case OpMerge:
			top := len(stack) - 1
			acc = perm.Add(stack[top], acc)
			stack = stack[:top]

		default:
			// Grade, project and algebra instructions are rejected at
			// lowering; reaching one here means a corrupted plan.
			panic(fmt.Sprintf("permutation backend: illegal opcode %q", in.Op))
		}
	}

	return ClassValue(acc), nil
}

// classArg resolves a runtime parameter to a class index. Elements are
// accepted when rank-1; anything else is a contract violation.
func classArg(args Args, name string) (perm.ClassIndex, error) {
	v, ok := args[name]
	if !ok {
		return 0, &ContractViolation{Param: name, Reason: "missing"}
	}
	switch v.Kind {
	case KindClass:
		if err := v.Class.Validate(); err != nil {
			return 0, &ContractViolation{Param: name, Reason: err.Error()}
		}
		return v.Class, nil
	case KindElement:
		projected := bridge.Project(v.Element)
		if !projected.Rank1 {
			return 0, &ContractViolation{Param: name,
				Reason: "element has no class equivalent (not rank-1)"}
		}
		return projected.Class, nil
	default:
		return 0, &ContractViolation{Param: name,
			Reason: fmt.Sprintf("want class or element, got %s", v.Kind)}
	}
}

// operandClass resolves a ring operand: baked integer or class parameter.
func operandClass(operand expr.Operand, args Args) (perm.ClassIndex, error) {
	if !operand.IsParam {
		c := perm.ClassIndex(operand.Value)
		if err := c.Validate(); err != nil {
			return 0, &ContractViolation{Reason: err.Error()}
		}
		return c, nil
	}
	return classArg(args, operand.Param)
}

// reduceValues resolves the value list of a reduction: baked values or a
// list-valued runtime parameter.
func reduceValues(spec *expr.ReduceSpec, args Args) ([]int, error) {
	if spec.Param == "" {
		return spec.Values, nil
	}
	v, ok := args[spec.Param]
	if !ok {
		return nil, &ContractViolation{Param: spec.Param, Reason: "missing"}
	}
	if v.Kind != KindInts {
		return nil, &ContractViolation{Param: spec.Param,
			Reason: fmt.Sprintf("want integer list, got %s", v.Kind)}
	}
	return v.Ints, nil
}
