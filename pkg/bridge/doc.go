// Package bridge converts between the two representations of the 96-class
// structure: a ClassIndex in the permutation engine and a rank-1 Element in
// the algebraic engine.
//
// Lift is total on 0..95 and maps class (sector, modality, context) to the
// element with blade coefficient 1 at the context slot, a Z4 delta at the
// sector and a Z3 delta at the modality. Project is partial by design: a
// general element has no class equivalent, so Project returns a two-variant
// ProjectResult (Class | NotRankOne) instead of raising. Non-rank-1 elements
// are an expected, frequent outcome of algebraic computation, not an error.
//
// Verify is the exhaustive validation harness proving the two engines
// commute: Project(g_alg^k(Lift(c))) = g_perm^k(c) for all 96 classes and
// every power 1..order of all four generators — 1,632 generator checks plus
// the 96 round-trip checks.
package bridge
