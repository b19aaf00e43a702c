package compile

import (
	"fmt"
	"sort"

	"octavia-hq/vela/pkg/expr"
	"octavia-hq/vela/pkg/perm"
)

// builderFunc turns a descriptor's compile-time parameters into an expression
// tree. Builders validate their own parameters; runtime parameters are only
// referenced by name here and resolved at invocation.
type builderFunc func(d *Descriptor) (*expr.Node, error)

var builders = map[string]builderFunc{
	"ring.add":    ringBuilder(perm.RingAdd),
	"ring.sub":    ringBuilder(perm.RingSub),
	"ring.mul":    ringBuilder(perm.RingMul),
	"ring.gcd":    ringBuilder(perm.RingGCD),
	"ring.lcm":    ringBuilder(perm.RingLCM),
	"ring.reduce": buildReduce,
	"ring.factor": terminalBuilder(expr.NewFactor),
	"ring.unit":   terminalBuilder(expr.NewUnit),

	"transform.rotate":   transformBuilder(perm.GenRotate),
	"transform.triality": transformBuilder(perm.GenTriality),
	"transform.twist":    transformBuilder(perm.GenTwist),
	"transform.mirror":   transformBuilder(perm.GenMirror),

	"bridge.lift":    terminalBuilder(func() *expr.Node { return expr.NewBridge(expr.BridgeLift) }),
	"bridge.project": terminalBuilder(func() *expr.Node { return expr.NewBridge(expr.BridgeProject) }),

	"algebra.grade": buildGrade,
	"algebra.mul":   algebraBuilder(expr.AlgebraMul),
	"algebra.add":   algebraBuilder(expr.AlgebraAdd),
	"algebra.scale": buildScale,

	"pipeline.compose": buildCompose,
}

// Operations lists every registered operation key, sorted.
func Operations() []string {
	keys := make([]string, 0, len(builders))
	for key := range builders {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// seedNode builds the input seed shared by the elementary operations: the
// baked "seed" class when present, otherwise the runtime parameter named by
// "input" (default "value").
func seedNode(d *Descriptor) (*expr.Node, error) {
	if raw, ok := d.Params["seed"]; ok {
		seed, ok := asInt(raw)
		if !ok {
			return nil, fmt.Errorf("parameter %q: want integer, got %T", "seed", raw)
		}
		c := perm.ClassIndex(seed)
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("parameter %q: %w", "seed", err)
		}
		return expr.NewClassLiteral(c), nil
	}
	name := "value"
	if raw, ok := d.Params["input"]; ok {
		s, ok := asString(raw)
		if !ok || s == "" {
			return nil, fmt.Errorf("parameter %q: want non-empty string, got %v", "input", raw)
		}
		name = s
	}
	return expr.NewParam(name), nil
}

func ringBuilder(op perm.RingOp) builderFunc {
	return func(d *Descriptor) (*expr.Node, error) {
		seed, err := seedNode(d)
		if err != nil {
			return nil, err
		}
		operand, err := ringOperand(d.Params)
		if err != nil {
			return nil, err
		}
		track, err := optionalBool(d.Params, "track")
		if err != nil {
			return nil, err
		}
		return expr.Seq(seed, expr.NewRing(op, operand, track)), nil
	}
}

// ringOperand reads the second input of a binary ring op: the baked integer
// "operand" or the runtime parameter named by "operand_param".
func ringOperand(params map[string]any) (expr.Operand, error) {
	if raw, ok := params["operand_param"]; ok {
		name, ok := asString(raw)
		if !ok || name == "" {
			return expr.Operand{}, fmt.Errorf("parameter %q: want non-empty string, got %v", "operand_param", raw)
		}
		return expr.Operand{IsParam: true, Param: name}, nil
	}
	raw, ok := params["operand"]
	if !ok {
		return expr.Operand{}, fmt.Errorf("parameter %q or %q is required", "operand", "operand_param")
	}
	v, ok := asInt(raw)
	if !ok {
		return expr.Operand{}, fmt.Errorf("parameter %q: want integer, got %T", "operand", raw)
	}
	if err := perm.ClassIndex(v).Validate(); err != nil {
		return expr.Operand{}, fmt.Errorf("parameter %q: %w", "operand", err)
	}
	return expr.Operand{Value: v}, nil
}

func buildReduce(d *Descriptor) (*expr.Node, error) {
	spec, err := reduceSpec(d.Params)
	if err != nil {
		return nil, err
	}
	return expr.NewReduce(spec), nil
}

// reduceSpec reads a reduction's operation plus either the baked "values"
// list or the runtime list parameter named by "values_param".
func reduceSpec(params map[string]any) (expr.ReduceSpec, error) {
	rawOp, ok := params["op"]
	if !ok {
		return expr.ReduceSpec{}, fmt.Errorf("parameter %q is required", "op")
	}
	name, ok := asString(rawOp)
	if !ok {
		return expr.ReduceSpec{}, fmt.Errorf("parameter %q: want string, got %T", "op", rawOp)
	}
	op := perm.ReduceOp(name)
	if !op.Valid() {
		return expr.ReduceSpec{}, fmt.Errorf("parameter %q: unknown reduction %q", "op", name)
	}
	if raw, ok := params["values_param"]; ok {
		param, ok := asString(raw)
		if !ok || param == "" {
			return expr.ReduceSpec{}, fmt.Errorf("parameter %q: want non-empty string, got %v", "values_param", raw)
		}
		return expr.ReduceSpec{Op: op, Param: param}, nil
	}
	raw, ok := params["values"]
	if !ok {
		return expr.ReduceSpec{}, fmt.Errorf("parameter %q or %q is required", "values", "values_param")
	}
	values, ok := asIntList(raw)
	if !ok {
		return expr.ReduceSpec{}, fmt.Errorf("parameter %q: want integer list, got %T", "values", raw)
	}
	return expr.ReduceSpec{Op: op, Values: values}, nil
}

func terminalBuilder(atom func() *expr.Node) builderFunc {
	return func(d *Descriptor) (*expr.Node, error) {
		seed, err := seedNode(d)
		if err != nil {
			return nil, err
		}
		return expr.Seq(seed, atom()), nil
	}
}

func transformBuilder(gen perm.Generator) builderFunc {
	return func(d *Descriptor) (*expr.Node, error) {
		seed, err := seedNode(d)
		if err != nil {
			return nil, err
		}
		power := 1
		if raw, ok := d.Params["power"]; ok {
			if power, ok = asInt(raw); !ok {
				return nil, fmt.Errorf("parameter %q: want integer, got %T", "power", raw)
			}
		}
		return expr.Wrap(gen, power, seed), nil
	}
}

func buildGrade(d *Descriptor) (*expr.Node, error) {
	seed, err := seedNode(d)
	if err != nil {
		return nil, err
	}
	raw, ok := d.Params["grade"]
	if !ok {
		return nil, fmt.Errorf("parameter %q is required", "grade")
	}
	grade, ok := asInt(raw)
	if !ok || grade < 0 || grade >= 8 {
		return nil, fmt.Errorf("parameter %q: want integer in 0..7, got %v", "grade", raw)
	}
	return expr.Seq(seed, expr.NewGrade(grade)), nil
}

func algebraBuilder(op expr.AlgebraOp) builderFunc {
	return func(d *Descriptor) (*expr.Node, error) {
		seed, err := seedNode(d)
		if err != nil {
			return nil, err
		}
		param := "operand"
		if raw, ok := d.Params["operand_param"]; ok {
			s, ok := asString(raw)
			if !ok || s == "" {
				return nil, fmt.Errorf("parameter %q: want non-empty string, got %v", "operand_param", raw)
			}
			param = s
		}
		return expr.Seq(seed, expr.NewAlgebra(expr.AlgebraSpec{Op: op, Param: param})), nil
	}
}

func buildScale(d *Descriptor) (*expr.Node, error) {
	seed, err := seedNode(d)
	if err != nil {
		return nil, err
	}
	raw, ok := d.Params["factor"]
	if !ok {
		return nil, fmt.Errorf("parameter %q is required", "factor")
	}
	factor, ok := asInt(raw)
	if !ok {
		return nil, fmt.Errorf("parameter %q: want integer, got %T", "factor", raw)
	}
	return expr.Seq(seed, expr.NewAlgebra(expr.AlgebraSpec{Op: expr.AlgebraScale, Factor: factor})), nil
}

// buildCompose builds an arbitrary tree from the "steps" list. Each step is a
// single-operation map; "parallel" takes a list of branch step lists, each of
// which must seed itself.
func buildCompose(d *Descriptor) (*expr.Node, error) {
	raw, ok := d.Params["steps"]
	if !ok {
		return nil, fmt.Errorf("parameter %q is required", "steps")
	}
	steps, ok := raw.([]any)
	if !ok || len(steps) == 0 {
		return nil, fmt.Errorf("parameter %q: want non-empty step list, got %T", "steps", raw)
	}
	return buildSteps(steps)
}

func buildSteps(steps []any) (*expr.Node, error) {
	var tree *expr.Node
	for i, raw := range steps {
		step, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("step %d: want map, got %T", i, raw)
		}
		node, wrap, err := buildStep(step)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		switch {
		case wrap != nil:
			if tree == nil {
				return nil, fmt.Errorf("step %d: transform needs a preceding step", i)
			}
			tree = wrap(tree)
		case tree == nil:
			tree = node
		default:
			tree = expr.Seq(tree, node)
		}
	}
	return tree, nil
}

// buildStep builds one step. Transforms return a wrapper instead of a node:
// they apply to everything accumulated so far. Composite steps (ring, algebra,
// reduce) are matched before the bare "param" seed, since they reuse the
// "param" key for their runtime operands.
func buildStep(step map[string]any) (*expr.Node, func(*expr.Node) *expr.Node, error) {
	switch {
	case step["ring"] != nil:
		return buildRingStep(step)

	case step["algebra"] != nil:
		return buildAlgebraStep(step)

	case step["reduce"] != nil:
		name, ok := asString(step["reduce"])
		if !ok {
			return nil, nil, fmt.Errorf("reduce: want string, got %T", step["reduce"])
		}
		params := map[string]any{"op": name}
		if v, ok := step["values"]; ok {
			params["values"] = v
		}
		if v, ok := step["values_param"]; ok {
			params["values_param"] = v
		}
		spec, err := reduceSpec(params)
		if err != nil {
			return nil, nil, err
		}
		return expr.NewReduce(spec), nil, nil

	case step["transform"] != nil:
		name, ok := asString(step["transform"])
		if !ok {
			return nil, nil, fmt.Errorf("transform: want string, got %T", step["transform"])
		}
		gen := perm.Generator(name)
		if !gen.Valid() {
			return nil, nil, fmt.Errorf("transform: unknown generator %q", name)
		}
		power := 1
		if raw, ok := step["power"]; ok {
			if power, ok = asInt(raw); !ok {
				return nil, nil, fmt.Errorf("power: want integer, got %T", raw)
			}
		}
		return nil, func(child *expr.Node) *expr.Node {
			return expr.Wrap(gen, power, child)
		}, nil

	case step["grade"] != nil:
		grade, ok := asInt(step["grade"])
		if !ok || grade < 0 || grade >= 8 {
			return nil, nil, fmt.Errorf("grade: want integer in 0..7, got %v", step["grade"])
		}
		return expr.NewGrade(grade), nil, nil

	case step["bridge"] != nil:
		name, ok := asString(step["bridge"])
		if !ok {
			return nil, nil, fmt.Errorf("bridge: want string, got %T", step["bridge"])
		}
		switch expr.BridgeOp(name) {
		case expr.BridgeLift:
			return expr.NewBridge(expr.BridgeLift), nil, nil
		case expr.BridgeProject:
			return expr.NewBridge(expr.BridgeProject), nil, nil
		}
		return nil, nil, fmt.Errorf("bridge: unknown direction %q", name)

	case step["parallel"] != nil:
		branches, ok := step["parallel"].([]any)
		if !ok || len(branches) < 2 {
			return nil, nil, fmt.Errorf("parallel: want at least two branch step lists, got %v", step["parallel"])
		}
		var node *expr.Node
		for i, rawBranch := range branches {
			branchSteps, ok := rawBranch.([]any)
			if !ok || len(branchSteps) == 0 {
				return nil, nil, fmt.Errorf("parallel branch %d: want non-empty step list, got %T", i, rawBranch)
			}
			branch, err := buildSteps(branchSteps)
			if err != nil {
				return nil, nil, fmt.Errorf("parallel branch %d: %w", i, err)
			}
			if node == nil {
				node = branch
			} else {
				node = expr.Par(node, branch)
			}
		}
		return node, nil, nil

	case step["param"] != nil:
		name, ok := asString(step["param"])
		if !ok || name == "" {
			return nil, nil, fmt.Errorf("param: want non-empty string, got %v", step["param"])
		}
		return expr.NewParam(name), nil, nil

	case step["literal"] != nil:
		v, ok := asInt(step["literal"])
		if !ok {
			return nil, nil, fmt.Errorf("literal: want integer, got %T", step["literal"])
		}
		c := perm.ClassIndex(v)
		if err := c.Validate(); err != nil {
			return nil, nil, fmt.Errorf("literal: %w", err)
		}
		return expr.NewClassLiteral(c), nil, nil
	}

	return nil, nil, fmt.Errorf("unknown step %v", step)
}

func buildRingStep(step map[string]any) (*expr.Node, func(*expr.Node) *expr.Node, error) {
	name, ok := asString(step["ring"])
	if !ok {
		return nil, nil, fmt.Errorf("ring: want string, got %T", step["ring"])
	}
	switch name {
	case "factor":
		return expr.NewFactor(), nil, nil
	case "unit":
		return expr.NewUnit(), nil, nil
	}
	op := perm.RingOp(name)
	if !op.Valid() {
		return nil, nil, fmt.Errorf("ring: unknown operation %q", name)
	}
	params := map[string]any{}
	if v, ok := step["value"]; ok {
		params["operand"] = v
	}
	if v, ok := step["param"]; ok {
		params["operand_param"] = v
	}
	operand, err := ringOperand(params)
	if err != nil {
		return nil, nil, err
	}
	track, err := optionalBool(step, "track")
	if err != nil {
		return nil, nil, err
	}
	return expr.NewRing(op, operand, track), nil, nil
}

func buildAlgebraStep(step map[string]any) (*expr.Node, func(*expr.Node) *expr.Node, error) {
	name, ok := asString(step["algebra"])
	if !ok {
		return nil, nil, fmt.Errorf("algebra: want string, got %T", step["algebra"])
	}
	switch expr.AlgebraOp(name) {
	case expr.AlgebraScale:
		factor, ok := asInt(step["factor"])
		if !ok {
			return nil, nil, fmt.Errorf("factor: want integer, got %T", step["factor"])
		}
		return expr.NewAlgebra(expr.AlgebraSpec{Op: expr.AlgebraScale, Factor: factor}), nil, nil
	case expr.AlgebraMul, expr.AlgebraAdd:
		param, ok := asString(step["param"])
		if !ok || param == "" {
			return nil, nil, fmt.Errorf("algebra %s: param: want non-empty string, got %v", name, step["param"])
		}
		return expr.NewAlgebra(expr.AlgebraSpec{Op: expr.AlgebraOp(name), Param: param}), nil, nil
	}
	return nil, nil, fmt.Errorf("algebra: unknown operation %q", name)
}

// YAML decoding hands compile-time parameters over as any; the coercions
// below accept the integer shapes yaml.v3 actually produces.

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asIntList(v any) ([]int, bool) {
	raw, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]int, len(raw))
	for i, item := range raw {
		n, ok := asInt(item)
		if !ok {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

func optionalBool(params map[string]any, name string) (bool, error) {
	raw, ok := params[name]
	if !ok {
		return false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("parameter %q: want bool, got %T", name, raw)
	}
	return b, nil
}
