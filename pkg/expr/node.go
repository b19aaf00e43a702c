package expr

import (
	"octavia-hq/vela/pkg/algebra"
	"octavia-hq/vela/pkg/perm"
)

// Kind tags the node variants of the expression tree.
type Kind string

const (
	// Atoms (leaves).
	KindLiteral Kind = "literal" // seed the accumulator with a baked value
	KindParam   Kind = "param"   // seed the accumulator from a runtime parameter
	KindRing    Kind = "ring"    // mod-96 ring op against an operand
	KindBridge  Kind = "bridge"  // lift or project
	KindGrade   Kind = "grade"   // blade grade projection
	KindReduce  Kind = "reduce"  // list reduction seeding the accumulator
	KindAlgebra Kind = "algebra" // element-level mul/add/scale

	// Combinators.
	KindSequential Kind = "sequential" // left then right
	KindParallel   Kind = "parallel"   // both against the same input, added
	KindTransform  Kind = "transform"  // generator power applied to child result
)

// BridgeOp selects the bridge direction of a bridge atom.
type BridgeOp string

const (
	BridgeLift    BridgeOp = "lift"
	BridgeProject BridgeOp = "project"
)

// AlgebraOp selects the element-level operation of an algebra atom.
type AlgebraOp string

const (
	AlgebraMul   AlgebraOp = "mul"
	AlgebraAdd   AlgebraOp = "add"
	AlgebraScale AlgebraOp = "scale"
)

// Literal is a baked seed value: exactly one of Class or Element is set.
type Literal struct {
	IsElement bool
	Class     perm.ClassIndex
	Element   algebra.Element
}

// Operand is the second input of a ring or algebra atom: either a baked
// integer or a runtime-parameter reference.
type Operand struct {
	IsParam bool
	Param   string
	Value   int
}

// RingSpec describes a ring atom: the operation, its operand, and whether
// overflow tracking was requested. A tracked ring op is terminal: it ends the
// instruction sequence with a structured (value, overflow) result.
type RingSpec struct {
	Op      perm.RingOp
	Operand Operand
	Track   bool

	// Factor and Unit mark the terminal factorization and unit-test forms of
	// the ring family; they take no operand.
	Factor bool
	Unit   bool
}

// ReduceSpec describes a reduction atom: either baked values or a runtime
// list parameter.
type ReduceSpec struct {
	Op     perm.ReduceOp
	Values []int
	Param  string
}

// AlgebraSpec describes an element-level atom. Mul and Add read their operand
// element from a runtime parameter; Scale uses the baked integer factor.
type AlgebraSpec struct {
	Op     AlgebraOp
	Param  string
	Factor int
}

// Node is one node of the expression tree. Exactly the fields implied by
// Kind are set; trees contain no cycles and only atoms are leaves. Nodes are
// immutable once built: the normalizer returns fresh trees.
type Node struct {
	Kind Kind

	// Atom payloads.
	Literal *Literal
	Param   string
	Ring    *RingSpec
	Bridge  BridgeOp
	Grade   int
	Reduce  *ReduceSpec
	Algebra *AlgebraSpec

	// Combinator children.
	Left  *Node
	Right *Node

	// Transform wrapper.
	Gen   perm.Generator
	Power int
	Child *Node
}

// IsAtom reports whether the node is a leaf.
func (n *Node) IsAtom() bool {
	switch n.Kind {
	case KindSequential, KindParallel, KindTransform:
		return false
	}
	return true
}

// NewClassLiteral builds a literal atom seeding a class index.
func NewClassLiteral(c perm.ClassIndex) *Node {
	return &Node{Kind: KindLiteral, Literal: &Literal{Class: c}}
}

// NewElementLiteral builds a literal atom seeding an element.
func NewElementLiteral(e algebra.Element) *Node {
	return &Node{Kind: KindLiteral, Literal: &Literal{IsElement: true, Element: e}}
}

// NewParam builds a runtime-parameter reference atom.
func NewParam(name string) *Node {
	return &Node{Kind: KindParam, Param: name}
}

// NewRing builds a ring atom.
func NewRing(op perm.RingOp, operand Operand, track bool) *Node {
	return &Node{Kind: KindRing, Ring: &RingSpec{Op: op, Operand: operand, Track: track}}
}

// NewFactor builds the terminal factorization atom.
func NewFactor() *Node {
	return &Node{Kind: KindRing, Ring: &RingSpec{Factor: true}}
}

// NewUnit builds the terminal unit-test atom.
func NewUnit() *Node {
	return &Node{Kind: KindRing, Ring: &RingSpec{Unit: true}}
}

// NewBridge builds a bridge atom.
func NewBridge(op BridgeOp) *Node {
	return &Node{Kind: KindBridge, Bridge: op}
}

// NewGrade builds a grade-projection atom.
func NewGrade(grade int) *Node {
	return &Node{Kind: KindGrade, Grade: grade}
}

// NewReduce builds a reduction atom.
func NewReduce(spec ReduceSpec) *Node {
	s := spec
	return &Node{Kind: KindReduce, Reduce: &s}
}

// NewAlgebra builds an element-level algebra atom.
func NewAlgebra(spec AlgebraSpec) *Node {
	s := spec
	return &Node{Kind: KindAlgebra, Algebra: &s}
}

// Seq composes left-then-right.
func Seq(left, right *Node) *Node {
	return &Node{Kind: KindSequential, Left: left, Right: right}
}

// Par composes both children against the same input, combined by addition.
func Par(left, right *Node) *Node {
	return &Node{Kind: KindParallel, Left: left, Right: right}
}

// Wrap applies generator g to the power k around child.
func Wrap(g perm.Generator, power int, child *Node) *Node {
	return &Node{Kind: KindTransform, Gen: g, Power: power, Child: child}
}

// Walk visits every node of the tree in depth-first order, parents before
// children, stopping at the first error.
func Walk(n *Node, visit func(*Node) error) error {
	if n == nil {
		return nil
	}
	if err := visit(n); err != nil {
		return err
	}
	if err := Walk(n.Left, visit); err != nil {
		return err
	}
	if err := Walk(n.Right, visit); err != nil {
		return err
	}
	return Walk(n.Child, visit)
}

// Clone returns a deep copy of the tree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := *n
	if n.Literal != nil {
		lit := *n.Literal
		out.Literal = &lit
	}
	if n.Ring != nil {
		ring := *n.Ring
		out.Ring = &ring
	}
	if n.Reduce != nil {
		reduce := *n.Reduce
		reduce.Values = append([]int(nil), n.Reduce.Values...)
		out.Reduce = &reduce
	}
	if n.Algebra != nil {
		alg := *n.Algebra
		out.Algebra = &alg
	}
	out.Left = n.Left.Clone()
	out.Right = n.Right.Clone()
	out.Child = n.Child.Clone()
	return &out
}
