// Package perm implements the fast integer backend over the 96-class
// equivalence structure.
//
// A class index 0..95 decomposes uniquely as
//
//	class = 24*sector + 8*modality + context
//
// with sector in 0..3, modality in 0..2 and context in 0..7. Four structural
// automorphisms act on the coordinates as O(1) maps:
//
//   - Rotate (R):   sector + k mod 4, order 4
//   - Triality (D): modality + k mod 3, order 3
//   - Twist (T):    context + k mod 8, order 8
//   - Mirror (M):   modality 0->0, 1->2, 2->1, order 2
//
// All four generators commute pairwise, and Mirror conjugation inverts
// Triality: M∘D∘M = D².
//
// The package also provides the mod-96 ring (add/sub/mul with optional
// overflow tracking), Euclidean gcd/lcm, sum/product/max/min reductions, the
// unit test (coprimality with 96, exactly 32 of the 96 residues), and
// factorization by trial division restricted to the unit residues.
//
// Everything here is exact integer arithmetic on plain values; the package is
// pure, allocation-free on the hot paths, and safe for concurrent use.
package perm
