package expr

import (
	"testing"

	"octavia-hq/vela/pkg/perm"
)

// chainOf returns the transform chain above a leaf, outermost first, plus the
// leaf itself.
func chainOf(n *Node) ([]*Node, *Node) {
	var chain []*Node
	for n.Kind == KindTransform {
		chain = append(chain, n)
		n = n.Child
	}
	return chain, n
}

// TestNormalize_MergeAdjacent verifies same-generator neighbors merge mod the
// generator period and identity powers vanish.
func TestNormalize_MergeAdjacent(t *testing.T) {
	leaf := NewParam("x")

	tests := []struct {
		name      string
		tree      *Node
		wantGen   perm.Generator
		wantPower int
		wantBare  bool
	}{
		{
			name:      "rotate powers add",
			tree:      Wrap(perm.GenRotate, 1, Wrap(perm.GenRotate, 2, leaf)),
			wantGen:   perm.GenRotate,
			wantPower: 3,
		},
		{
			name:     "rotate wraps to identity",
			tree:     Wrap(perm.GenRotate, 3, Wrap(perm.GenRotate, 1, leaf)),
			wantBare: true,
		},
		{
			name:      "twist reduces mod 8",
			tree:      Wrap(perm.GenTwist, 7, Wrap(perm.GenTwist, 4, leaf)),
			wantGen:   perm.GenTwist,
			wantPower: 3,
		},
		{
			name:     "mirror pair cancels",
			tree:     Wrap(perm.GenMirror, 1, Wrap(perm.GenMirror, 1, leaf)),
			wantBare: true,
		},
		{
			name:     "identity power disappears",
			tree:     Wrap(perm.GenTriality, 3, leaf),
			wantBare: true,
		},
		{
			name:      "negative power normalizes",
			tree:      Wrap(perm.GenTriality, -1, leaf),
			wantGen:   perm.GenTriality,
			wantPower: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.tree)
			chain, leaf := chainOf(got)
			if leaf.Kind != KindParam || leaf.Param != "x" {
				t.Fatalf("leaf = %+v, want param x", leaf)
			}
			if tt.wantBare {
				if len(chain) != 0 {
					t.Fatalf("chain length = %d, want bare leaf", len(chain))
				}
				return
			}
			if len(chain) != 1 {
				t.Fatalf("chain length = %d, want 1", len(chain))
			}
			if chain[0].Gen != tt.wantGen || chain[0].Power != tt.wantPower {
				t.Errorf("chain = %s^%d, want %s^%d",
					chain[0].Gen, chain[0].Power, tt.wantGen, tt.wantPower)
			}
		})
	}
}

// TestNormalize_PushThroughSequential verifies a transform above Sequential
// lands on the right (later) child only.
func TestNormalize_PushThroughSequential(t *testing.T) {
	tree := Wrap(perm.GenRotate, 1, Seq(NewParam("x"), NewGrade(2)))
	got := Normalize(tree)

	if got.Kind != KindSequential {
		t.Fatalf("root kind = %s, want sequential", got.Kind)
	}
	if got.Left.Kind != KindParam {
		t.Errorf("left child kind = %s, want untouched param", got.Left.Kind)
	}
	if got.Right.Kind != KindTransform || got.Right.Gen != perm.GenRotate || got.Right.Power != 1 {
		t.Errorf("right child = %+v, want R^1 wrapper", got.Right)
	}
	if got.Right.Child.Kind != KindGrade {
		t.Errorf("transform child kind = %s, want grade atom", got.Right.Child.Kind)
	}
}

// TestNormalize_PushThroughParallel verifies a transform above Parallel
// distributes into both branches (transforms are linear over the additive
// combine).
func TestNormalize_PushThroughParallel(t *testing.T) {
	tree := Wrap(perm.GenTwist, 2, Par(NewParam("a"), NewParam("b")))
	got := Normalize(tree)

	if got.Kind != KindParallel {
		t.Fatalf("root kind = %s, want parallel", got.Kind)
	}
	for _, branch := range []*Node{got.Left, got.Right} {
		if branch.Kind != KindTransform || branch.Gen != perm.GenTwist || branch.Power != 2 {
			t.Errorf("branch = %+v, want T^2 wrapper", branch)
		}
	}
}

// TestNormalize_MirrorConjugation verifies M∘D^k∘M = D^(-k) and that Mirror
// pairs cancel around Rotate and Twist.
func TestNormalize_MirrorConjugation(t *testing.T) {
	leaf := NewParam("x")

	tests := []struct {
		name      string
		inner     perm.Generator
		power     int
		wantPower int
	}{
		{name: "triality inverts", inner: perm.GenTriality, power: 1, wantPower: 2},
		{name: "triality squared inverts", inner: perm.GenTriality, power: 2, wantPower: 1},
		{name: "rotate passes through", inner: perm.GenRotate, power: 3, wantPower: 3},
		{name: "twist passes through", inner: perm.GenTwist, power: 5, wantPower: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := Wrap(perm.GenMirror, 1,
				Wrap(tt.inner, tt.power,
					Wrap(perm.GenMirror, 1, leaf)))
			got := Normalize(tree)
			chain, _ := chainOf(got)
			if len(chain) != 1 {
				t.Fatalf("chain length = %d, want 1", len(chain))
			}
			if chain[0].Gen != tt.inner || chain[0].Power != tt.wantPower {
				t.Errorf("chain = %s^%d, want %s^%d",
					chain[0].Gen, chain[0].Power, tt.inner, tt.wantPower)
			}
		})
	}
}

// TestNormalize_CanonicalOrder verifies non-adjacent same-generator chains at
// one leaf fold into the ordered [M?] R^r D^d T^t form.
func TestNormalize_CanonicalOrder(t *testing.T) {
	// T^3 ∘ D^1 ∘ T^2 ∘ R^5 over a leaf: twists merge to T^5, rotate reduces
	// to R^1, order is R then D then T reading inward.
	tree := Wrap(perm.GenTwist, 3,
		Wrap(perm.GenTriality, 1,
			Wrap(perm.GenTwist, 2,
				Wrap(perm.GenRotate, 5, NewParam("x")))))
	got := Normalize(tree)

	chain, leaf := chainOf(got)
	if leaf.Kind != KindParam {
		t.Fatalf("leaf kind = %s, want param", leaf.Kind)
	}
	if len(chain) != 3 {
		t.Fatalf("chain length = %d, want 3", len(chain))
	}
	want := []struct {
		gen   perm.Generator
		power int
	}{
		{perm.GenRotate, 1},
		{perm.GenTriality, 1},
		{perm.GenTwist, 5},
	}
	for i, w := range want {
		if chain[i].Gen != w.gen || chain[i].Power != w.power {
			t.Errorf("chain[%d] = %s^%d, want %s^%d",
				i, chain[i].Gen, chain[i].Power, w.gen, w.power)
		}
	}
}

// TestNormalize_MirrorOutermost verifies an unpaired Mirror ends up outermost
// with the Triality power it crossed inverted.
func TestNormalize_MirrorOutermost(t *testing.T) {
	// D^1 ∘ M over a leaf equals M ∘ D^2.
	tree := Wrap(perm.GenTriality, 1, Wrap(perm.GenMirror, 1, NewParam("x")))
	got := Normalize(tree)

	chain, _ := chainOf(got)
	if len(chain) != 2 {
		t.Fatalf("chain length = %d, want 2", len(chain))
	}
	if chain[0].Gen != perm.GenMirror || chain[0].Power != 1 {
		t.Errorf("outermost = %s^%d, want M^1", chain[0].Gen, chain[0].Power)
	}
	if chain[1].Gen != perm.GenTriality || chain[1].Power != 2 {
		t.Errorf("inner = %s^%d, want D^2", chain[1].Gen, chain[1].Power)
	}
}

// TestNormalize_NoFoldAcrossBridge verifies chains separated by a bridge atom
// stay separate: conjugation does not look through lift/project.
func TestNormalize_NoFoldAcrossBridge(t *testing.T) {
	// M ∘ lift ∘ M: the mirrors sit on opposite sides of the bridge atom and
	// must not cancel.
	tree := Wrap(perm.GenMirror, 1,
		Seq(Wrap(perm.GenMirror, 1, NewParam("x")), NewBridge(BridgeLift)))
	got := Normalize(tree)

	if got.Kind != KindSequential {
		t.Fatalf("root kind = %s, want sequential", got.Kind)
	}
	leftChain, _ := chainOf(got.Left)
	rightChain, _ := chainOf(got.Right)
	if len(leftChain) != 1 || leftChain[0].Gen != perm.GenMirror {
		t.Error("mirror before the bridge was folded away")
	}
	if len(rightChain) != 1 || rightChain[0].Gen != perm.GenMirror {
		t.Error("mirror after the bridge was folded away")
	}
}

// TestNormalize_InputUnchanged verifies the source tree is never mutated.
func TestNormalize_InputUnchanged(t *testing.T) {
	tree := Wrap(perm.GenRotate, 5, Wrap(perm.GenRotate, 3, NewParam("x")))
	Normalize(tree)

	if tree.Kind != KindTransform || tree.Power != 5 {
		t.Error("Normalize mutated the root")
	}
	if tree.Child.Kind != KindTransform || tree.Child.Power != 3 {
		t.Error("Normalize mutated the child")
	}
}
