package compile

import (
	"octavia-hq/vela/pkg/expr"
)

// Metrics summarizes the structural complexity of a normalized tree. Depth is
// the longest sequential chain, width the widest parallel fan-out, both
// counted in atoms.
type Metrics struct {
	Depth  int
	Width  int
	Grades int // grade-projection atoms
	Params int // distinct runtime parameters referenced

	// NeedsAlgebra marks trees only the algebraic engine can execute: grade
	// projections, element-level algebra atoms, element literals, projection,
	// or a lift anywhere but the final position.
	NeedsAlgebra bool
}

// Analyze measures a normalized tree. The same tree always yields the same
// metrics; Analyze never fails and never mutates its input.
func Analyze(tree *expr.Node) Metrics {
	m := Metrics{
		Depth: seqDepth(tree),
		Width: parWidth(tree),
	}

	params := map[string]struct{}{}
	lifts := 0
	expr.Walk(tree, func(n *expr.Node) error {
		switch n.Kind {
		case expr.KindParam:
			params[n.Param] = struct{}{}
		case expr.KindRing:
			if n.Ring.Operand.IsParam {
				params[n.Ring.Operand.Param] = struct{}{}
			}
		case expr.KindReduce:
			if n.Reduce.Param != "" {
				params[n.Reduce.Param] = struct{}{}
			}
		case expr.KindAlgebra:
			if n.Algebra.Param != "" {
				params[n.Algebra.Param] = struct{}{}
			}
			m.NeedsAlgebra = true
		case expr.KindGrade:
			m.Grades++
			m.NeedsAlgebra = true
		case expr.KindBridge:
			if n.Bridge == expr.BridgeProject {
				m.NeedsAlgebra = true
			} else {
				lifts++
			}
		case expr.KindLiteral:
			if n.Literal.IsElement {
				m.NeedsAlgebra = true
			}
		}
		return nil
	})
	m.Params = len(params)

	// A single lift in final position runs as the permutation backend's
	// terminal instruction; any other lift needs an element accumulator.
	if lifts > 1 || (lifts == 1 && !tailIsLift(tree)) {
		m.NeedsAlgebra = true
	}
	return m
}

// tailIsLift reports whether the last-executed atom along the sequential
// spine is a lift. Lifts under transforms or parallel branches do not count:
// something still runs after them.
func tailIsLift(n *expr.Node) bool {
	for n != nil && n.Kind == expr.KindSequential {
		n = n.Right
	}
	return n != nil && n.Kind == expr.KindBridge && n.Bridge == expr.BridgeLift
}

func seqDepth(n *expr.Node) int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case expr.KindSequential:
		return seqDepth(n.Left) + seqDepth(n.Right)
	case expr.KindParallel:
		return max(seqDepth(n.Left), seqDepth(n.Right))
	case expr.KindTransform:
		return seqDepth(n.Child)
	}
	return 1
}

func parWidth(n *expr.Node) int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case expr.KindSequential:
		return max(parWidth(n.Left), parWidth(n.Right))
	case expr.KindParallel:
		return parWidth(n.Left) + parWidth(n.Right)
	case expr.KindTransform:
		return parWidth(n.Child)
	}
	return 1
}

// Classify assigns the tier. Zero runtime parameters is always Tier0, even
// for trees that must run on the algebraic engine. Tier2 is reserved for
// trees with one or two grade projections within bounded depth and width;
// anything else past Tier1 is Tier3.
func Classify(m Metrics) Tier {
	switch {
	case m.Params == 0:
		return Tier0
	case m.Grades == 0 && m.Depth <= 3 && m.Width <= 2:
		return Tier1
	case m.Grades >= 1 && m.Grades <= 2 && m.Depth <= 8 && m.Width <= 4:
		return Tier2
	}
	return Tier3
}
