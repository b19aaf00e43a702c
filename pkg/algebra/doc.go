// Package algebra implements the general tensor-algebra backend: the 96-class
// structure embedded into a richer composite algebra.
//
// An Element is the ordered triple of three independent parts:
//
//   - a blade-graded part: exact integer coefficients over the 128 basis
//     blades generated by seven anticommuting generators (grades 0..7), with
//     an alternative-algebra product keyed by basis-blade pairs;
//   - a Z4 group-algebra part: four coefficients multiplied by coefficient
//     rotation (cyclic convolution);
//   - a Z3 group-algebra part: three coefficients, same rule.
//
// Composite multiply, add and scale act component-wise. Grade projection
// selects one blade grade and discards the rest; it reshapes without
// validating homogeneity.
//
// The four automorphism transforms mirror the permutation engine's
// generators exactly: Rotate and Triality are group-algebra multiplication on
// the Z4 and Z3 parts, Twist is the 8-cycle permutation of the scalar and the
// seven generator blades, Mirror is the Z3 part's group inverse. They satisfy
// the same order and commutation laws as the permutation engine; that
// cross-engine identity is the system's central correctness invariant and is
// proven exhaustively by the bridge package.
//
// All coefficients are plain ints; arithmetic is exact, with no floating
// point anywhere.
package algebra
