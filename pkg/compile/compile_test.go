package compile

import (
	"errors"
	"reflect"
	"testing"

	"octavia-hq/vela/pkg/bridge"
	"octavia-hq/vela/pkg/exec"
)

func desc(ns, name string, params map[string]any) Descriptor {
	return Descriptor{Namespace: ns, Name: name, Version: "1", Params: params}
}

func mustCompile(t *testing.T, d Descriptor) *CompiledOperation {
	t.Helper()
	op, err := Compile(d)
	if err != nil {
		t.Fatalf("Compile(%s): %v", d.Operation(), err)
	}
	return op
}

func TestCompile_RingAdd(t *testing.T) {
	op := mustCompile(t, desc("ring", "add", map[string]any{"operand": 10}))

	if op.Backend() != exec.BackendPermutation {
		t.Errorf("backend = %v, want permutation", op.Backend())
	}
	if op.Tier != Tier1 {
		t.Errorf("tier = %v, want tier1", op.Tier)
	}
	got, err := op.Invoke(exec.Args{"value": exec.ClassValue(90)})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if got.Kind != exec.KindClass || got.Class != 4 {
		t.Errorf("90 + 10 = %s, want class(4)", got)
	}
}

func TestCompile_TrackedRingIsTerminal(t *testing.T) {
	op := mustCompile(t, desc("ring", "add", map[string]any{"operand": 10, "track": true}))

	got, err := op.Invoke(exec.Args{"value": exec.ClassValue(90)})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if got.Kind != exec.KindRing || got.Ring.Value != 4 || !got.Ring.Overflow {
		t.Errorf("tracked 90 + 10 = %s, want ring(value=4, overflow=true)", got)
	}
}

func TestCompile_BakedSeedIsTier0(t *testing.T) {
	op := mustCompile(t, desc("ring", "factor", map[string]any{"seed": 35}))

	if op.Tier != Tier0 {
		t.Errorf("tier = %v, want tier0", op.Tier)
	}
	got, err := op.Invoke(nil)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if !reflect.DeepEqual(got.Ints, []int{5, 7}) {
		t.Errorf("factor(35) = %s, want ints([5 7])", got)
	}
}

func TestCompile_TransformRotate(t *testing.T) {
	op := mustCompile(t, desc("transform", "rotate", map[string]any{"power": 2}))

	got, err := op.Invoke(exec.Args{"value": exec.ClassValue(21)})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if got.Class != 69 {
		t.Errorf("rotate^2(21) = %s, want class(69)", got)
	}
}

func TestCompile_ReduceBaked(t *testing.T) {
	op := mustCompile(t, desc("ring", "reduce", map[string]any{
		"op": "sum", "values": []any{1, 2, 3},
	}))

	if op.Tier != Tier0 {
		t.Errorf("tier = %v, want tier0", op.Tier)
	}
	got, err := op.Invoke(nil)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if got.Class != 6 {
		t.Errorf("sum(1,2,3) = %s, want class(6)", got)
	}
}

func TestCompile_BridgeLift(t *testing.T) {
	op := mustCompile(t, desc("bridge", "lift", nil))

	if op.Backend() != exec.BackendPermutation {
		t.Errorf("backend = %v, want permutation (tail lift)", op.Backend())
	}
	got, err := op.Invoke(exec.Args{"value": exec.ClassValue(3)})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	want, _ := bridge.Lift(3)
	if got.Kind != exec.KindElement || !got.Element.Equal(want) {
		t.Errorf("lift(3) = %s, want the lifted element", got)
	}
}

func TestCompile_BridgeProject(t *testing.T) {
	op := mustCompile(t, desc("bridge", "project", nil))

	if op.Backend() != exec.BackendAlgebraic {
		t.Errorf("backend = %v, want algebraic", op.Backend())
	}
	e, _ := bridge.Lift(17)
	got, err := op.Invoke(exec.Args{"value": exec.ElementValue(e)})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if got.Kind != exec.KindClass || got.Class != 17 {
		t.Errorf("project(lift(17)) = %s, want class(17)", got)
	}

	got, err = op.Invoke(exec.Args{"value": exec.ElementValue(e.Add(e))})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if got.Kind != exec.KindNotRankOne {
		t.Errorf("project(2*lift(17)) = %s, want not_rank_one", got)
	}
}

func TestCompile_GradeOverridesPermutationHint(t *testing.T) {
	d := desc("algebra", "grade", map[string]any{"grade": 0})
	d.BackendHint = HintPermutation
	op := mustCompile(t, d)

	if op.Backend() != exec.BackendAlgebraic {
		t.Errorf("backend = %v, want algebraic despite the hint", op.Backend())
	}
}

func TestCompile_ComplexityHintOverridesTier(t *testing.T) {
	d := desc("ring", "add", map[string]any{"operand": 10})
	d.ComplexityHint = "tier3"
	op := mustCompile(t, d)

	if op.Tier != Tier3 {
		t.Errorf("tier = %v, want hinted tier3", op.Tier)
	}
	if op.Backend() != exec.BackendAlgebraic {
		t.Errorf("backend = %v, want algebraic under auto for tier3", op.Backend())
	}
	// Same answer through the algebraic engine, as the rank-1 element.
	got, err := op.Invoke(exec.Args{"value": exec.ClassValue(90)})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if got.Kind != exec.KindElement {
		t.Fatalf("result kind = %s, want element", got.Kind)
	}
	projected := bridge.Project(got.Element)
	if !projected.Rank1 || projected.Class != 4 {
		t.Errorf("90 + 10 projected to %+v, want class 4", projected)
	}
}

func TestCompile_Compose(t *testing.T) {
	op := mustCompile(t, desc("pipeline", "compose", map[string]any{
		"steps": []any{
			map[string]any{"param": "x"},
			map[string]any{"transform": "rotate", "power": 1},
			map[string]any{"ring": "add", "value": 5},
		},
	}))

	got, err := op.Invoke(exec.Args{"x": exec.ClassValue(0)})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if got.Class != 29 {
		t.Errorf("rotate(0) + 5 = %s, want class(29)", got)
	}
}

func TestCompile_ComposeParallel(t *testing.T) {
	op := mustCompile(t, desc("pipeline", "compose", map[string]any{
		"steps": []any{
			map[string]any{"parallel": []any{
				[]any{
					map[string]any{"param": "x"},
					map[string]any{"transform": "rotate", "power": 1},
				},
				[]any{
					map[string]any{"param": "y"},
				},
			}},
		},
	}))

	got, err := op.Invoke(exec.Args{
		"x": exec.ClassValue(0),
		"y": exec.ClassValue(10),
	})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if got.Class != 34 {
		t.Errorf("rotate(0) + 10 = %s, want class(34)", got)
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name string
		d    Descriptor
	}{
		{"unknown operation", desc("ring", "divide", nil)},
		{"missing operand", desc("ring", "add", nil)},
		{"bad operand type", desc("ring", "add", map[string]any{"operand": "ten"})},
		{"operand out of range", desc("ring", "add", map[string]any{"operand": 96})},
		{"missing grade", desc("algebra", "grade", nil)},
		{"grade out of range", desc("algebra", "grade", map[string]any{"grade": 8})},
		{"unknown reduction", desc("ring", "reduce", map[string]any{"op": "mean", "values": []any{1}})},
		{"empty steps", desc("pipeline", "compose", map[string]any{"steps": []any{}})},
		{"transform before seed", desc("pipeline", "compose", map[string]any{
			"steps": []any{map[string]any{"transform": "rotate"}},
		})},
		{"invalid descriptor", Descriptor{Namespace: "ring", Name: "add"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.d)
			var cerr *ConstructionError
			if !errors.As(err, &cerr) {
				t.Fatalf("Compile() error = %v, want ConstructionError", err)
			}
		})
	}
}

func TestCompile_Deterministic(t *testing.T) {
	d := desc("pipeline", "compose", map[string]any{
		"steps": []any{
			map[string]any{"param": "x"},
			map[string]any{"transform": "rotate", "power": 1},
			map[string]any{"transform": "twist", "power": 3},
			map[string]any{"ring": "mul", "value": 7},
		},
	})

	a := mustCompile(t, d)
	b := mustCompile(t, d)
	if a.ID == b.ID {
		t.Error("two compilations share an artifact ID")
	}
	if !reflect.DeepEqual(a.Plan, b.Plan) {
		t.Errorf("plans differ:\n%+v\n%+v", a.Plan, b.Plan)
	}
	if a.Tier != b.Tier {
		t.Errorf("tiers differ: %v vs %v", a.Tier, b.Tier)
	}
}

func TestOperations_CoversEveryNamespace(t *testing.T) {
	ops := Operations()
	if len(ops) != len(builders) {
		t.Fatalf("Operations() returned %d keys, want %d", len(ops), len(builders))
	}
	seen := map[string]bool{}
	for _, key := range ops {
		seen[key] = true
	}
	for _, key := range []string{"ring.add", "transform.mirror", "bridge.project", "algebra.scale", "pipeline.compose"} {
		if !seen[key] {
			t.Errorf("Operations() is missing %q", key)
		}
	}
}
