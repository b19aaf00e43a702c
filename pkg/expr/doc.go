// Package expr defines the algebraic intermediate representation compiled
// from operation descriptors, and the rewrite normalizer that canonicalizes
// it before complexity analysis and lowering.
//
// A tree is built from kind-tagged nodes: atoms (literal, runtime-parameter
// reference, ring op, bridge op, grade projection, reduction, algebra op),
// two composition combinators (Sequential: left then right; Parallel: both
// children against the same input, results combined by addition) and
// Transform wrappers applying a generator power to a child's result. Trees
// are built once per compilation and never mutated — Normalize returns a new
// tree.
//
// The normalizer applies rewrite laws derived from the group identities, each
// strictly decreasing a size/power metric:
//
//  1. transforms push through Sequential and Parallel toward the leaves they
//     govern (all four transforms are linear, so pushing into both Parallel
//     children preserves meaning);
//  2. adjacent same-generator transforms merge by adding powers mod the
//     generator period, identity powers vanish;
//  3. a Mirror pair surrounding a Triality power inverts it
//     (M∘D^k∘M = D^(−k)); Rotate and Twist commute with Mirror and pass
//     through unchanged;
//  4. a final pass canonicalizes the transform chain at each leaf into the
//     ordered form [M?] R^r D^d T^t.
//
// Two restrictions are deliberate and documented: chains are never folded
// across a Parallel boundary, and never conjugated through an intervening
// bridge or grade atom. Both are preserved as-is from the reference design.
package expr
