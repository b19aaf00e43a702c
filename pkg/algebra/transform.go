package algebra

import "octavia-hq/vela/pkg/perm"

// The four automorphism transforms on composite elements. They mirror the
// permutation engine's generators exactly — same orders, same pairwise
// commutation, same Mirror conjugation law — which the bridge package proves
// exhaustively.

// Rotate applies R^k: left multiplication of the Z4 part by group element k.
func Rotate(e Element, k int) Element {
	e.G4 = e.G4.Rotate(k)
	return e
}

// Triality applies D^k: left multiplication of the Z3 part by group element k.
func Triality(e Element, k int) Element {
	e.G3 = e.G3.Rotate(k)
	return e
}

// Twist applies T^k: the 8-cycle permutation of the scalar and generator
// blades; higher-grade blades are fixed.
func Twist(e Element, k int) Element {
	e.Blade = e.Blade.Twist(k)
	return e
}

// Mirror applies M: the Z3 part's group inverse. Order 2, inverts Triality.
func Mirror(e Element) Element {
	e.G3 = e.G3.Invert()
	return e
}

// Apply applies generator g to the power k. Mirror powers reduce mod 2.
func Apply(g perm.Generator, e Element, k int) Element {
	switch g {
	case perm.GenRotate:
		return Rotate(e, k)
	case perm.GenTriality:
		return Triality(e, k)
	case perm.GenTwist:
		return Twist(e, k)
	case perm.GenMirror:
		if k%2 != 0 {
			return Mirror(e)
		}
		return e
	}
	return e
}
