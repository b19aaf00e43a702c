package expr

import "octavia-hq/vela/pkg/perm"

// Normalize rewrites a tree into its canonical form: transforms pushed to the
// leaves, adjacent powers merged mod their periods, mirror conjugations
// resolved, and per-leaf chains ordered as [M?] R^r D^d T^t. The input tree
// is never mutated.
func Normalize(root *Node) *Node {
	if root == nil {
		return nil
	}
	return canonicalize(push(root.Clone()))
}

// reducePower reduces a power into [0, period) for the generator.
func reducePower(g perm.Generator, k int) int {
	period := g.Period()
	if period == 0 {
		return 0
	}
	return (k%period + period) % period
}

// push drives every Transform wrapper toward the leaves it governs, merging
// same-generator neighbors and resolving mirror conjugations on the way.
// Each step strictly shrinks the transform depth below combinators, so the
// pass terminates.
func push(n *Node) *Node {
	switch n.Kind {
	case KindSequential:
		return Seq(push(n.Left), push(n.Right))
	case KindParallel:
		return Par(push(n.Left), push(n.Right))
	case KindTransform:
		child := push(n.Child)
		power := reducePower(n.Gen, n.Power)
		if power == 0 {
			return child
		}
		return pushTransform(n.Gen, power, child)
	default:
		return n
	}
}

// pushTransform applies g^k on top of an already-pushed subtree.
func pushTransform(g perm.Generator, k int, child *Node) *Node {
	switch child.Kind {
	case KindSequential:
		// g^k ∘ (right ∘ left) = (g^k ∘ right) ∘ left
		return Seq(child.Left, pushTransform(g, k, child.Right))

	case KindParallel:
		// Transforms are linear, so they distribute over the additive
		// combine into both branches.
		return Par(pushTransform(g, k, child.Left), pushTransform(g, k, child.Right))

	case KindTransform:
		if child.Gen == g {
			merged := reducePower(g, k+child.Power)
			if merged == 0 {
				return child.Child
			}
			return Wrap(g, merged, child.Child)
		}

		// Mirror conjugation: M ∘ h^p ∘ M = h^(-p) for the triality family;
		// Rotate and Twist commute with Mirror, so the pair cancels around
		// them. Conjugation never looks through a bridge or grade atom: the
		// inner node here is a Transform, anything else keeps the wrapper.
		if g == perm.GenMirror {
			inner := child.Child
			if inner != nil && inner.Kind == KindTransform && inner.Gen == perm.GenMirror {
				switch child.Gen {
				case perm.GenTriality:
					inverted := reducePower(perm.GenTriality, -child.Power)
					if inverted == 0 {
						return inner.Child
					}
					return Wrap(perm.GenTriality, inverted, inner.Child)
				case perm.GenRotate, perm.GenTwist:
					return Wrap(child.Gen, child.Power, inner.Child)
				}
			}
		}
		return Wrap(g, k, child)

	default:
		return Wrap(g, k, child)
	}
}

// canonicalize orders the transform chain above each leaf into the canonical
// [M?] R^r D^d T^t form, using the commutation laws (R and T commute with
// everything here; moving Triality past Mirror inverts its power). Chains are
// never folded across a Parallel boundary — after pushing, no chain spans
// one — and stop at the atom they govern.
func canonicalize(n *Node) *Node {
	switch n.Kind {
	case KindSequential:
		return Seq(canonicalize(n.Left), canonicalize(n.Right))
	case KindParallel:
		return Par(canonicalize(n.Left), canonicalize(n.Right))
	case KindTransform:
		var chain []*Node
		cur := n
		for cur.Kind == KindTransform {
			chain = append(chain, cur)
			cur = cur.Child
		}

		mirror, rotate, triality, twist := 0, 0, 0, 0
		for i := len(chain) - 1; i >= 0; i-- {
			g, k := chain[i].Gen, chain[i].Power
			switch g {
			case perm.GenRotate:
				rotate += k
			case perm.GenTwist:
				twist += k
			case perm.GenTriality:
				if mirror == 1 {
					triality -= k
				} else {
					triality += k
				}
			case perm.GenMirror:
				if k%2 != 0 {
					mirror ^= 1
				}
			}
		}

		out := canonicalize(cur)
		if t := reducePower(perm.GenTwist, twist); t != 0 {
			out = Wrap(perm.GenTwist, t, out)
		}
		if d := reducePower(perm.GenTriality, triality); d != 0 {
			out = Wrap(perm.GenTriality, d, out)
		}
		if r := reducePower(perm.GenRotate, rotate); r != 0 {
			out = Wrap(perm.GenRotate, r, out)
		}
		if mirror == 1 {
			out = Wrap(perm.GenMirror, 1, out)
		}
		return out
	default:
		return n
	}
}
