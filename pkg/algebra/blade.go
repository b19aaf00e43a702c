package algebra

import "math/bits"

// Blade-part constants.
const (
	// Generators is the number of anticommuting generators.
	Generators = 7

	// Blades is the number of basis blades: 2^7.
	Blades = 1 << Generators

	// Grades is the number of blade grades, 0 (scalar) through 7.
	Grades = Generators + 1

	// Slots is the size of the Twist orbit: the scalar blade plus the seven
	// generator blades.
	Slots = 8
)

// BladePart holds exact integer coefficients over the 128 basis blades. A
// basis blade is identified by a 7-bit mask: bit i set means generator e_{i+1}
// is a factor. Mask 0 is the scalar blade.
type BladePart [Blades]int

// bladeSign returns the sign (+1 or -1) of the basis-blade product a*b under
// the fixed multiplication table: the result blade is a XOR b, the sign is
// the parity of the transpositions needed to sort the concatenated generator
// lists, times one factor of -1 per shared generator (each generator squares
// to -1).
func bladeSign(a, b uint) int {
	swaps := 0
	for x := a >> 1; x != 0; x >>= 1 {
		swaps += bits.OnesCount(x & b)
	}
	if (swaps+bits.OnesCount(a&b))%2 == 0 {
		return 1
	}
	return -1
}

// Grade returns the grade (generator count) of the basis blade mask.
func Grade(mask uint) int {
	return bits.OnesCount(mask)
}

// Mul returns the blade-part product under the fixed multiplication table.
func (p BladePart) Mul(q BladePart) BladePart {
	var out BladePart
	for a := uint(0); a < Blades; a++ {
		ca := p[a]
		if ca == 0 {
			continue
		}
		for b := uint(0); b < Blades; b++ {
			cb := q[b]
			if cb == 0 {
				continue
			}
			out[a^b] += bladeSign(a, b) * ca * cb
		}
	}
	return out
}

// Add returns the coefficient-wise sum.
func (p BladePart) Add(q BladePart) BladePart {
	var out BladePart
	for i := range p {
		out[i] = p[i] + q[i]
	}
	return out
}

// Scale returns the part with every coefficient multiplied by k.
func (p BladePart) Scale(k int) BladePart {
	var out BladePart
	for i := range p {
		out[i] = p[i] * k
	}
	return out
}

// Project keeps only the coefficients of the given grade, zeroing the rest.
// It reshapes without validating homogeneity; projecting a mixed-grade part
// is an expected operation, not an error.
func (p BladePart) Project(grade int) BladePart {
	var out BladePart
	for mask := uint(0); mask < Blades; mask++ {
		if Grade(mask) == grade {
			out[mask] = p[mask]
		}
	}
	return out
}

// IsZero reports whether every coefficient is zero.
func (p BladePart) IsZero() bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

// slotMask maps a Twist slot 0..7 to its basis-blade mask: slot 0 is the
// scalar, slot k (k >= 1) is generator e_k.
func slotMask(slot int) uint {
	if slot == 0 {
		return 0
	}
	return 1 << (slot - 1)
}

// maskSlot maps a basis-blade mask back to its Twist slot, or -1 if the mask
// is not in the orbit (grade >= 2).
func maskSlot(mask uint) int {
	if mask == 0 {
		return 0
	}
	if bits.OnesCount(mask) != 1 {
		return -1
	}
	return bits.TrailingZeros(mask) + 1
}

// Twist applies the order-8 slot permutation: slot s moves to slot
// (s + k) mod 8; blades of grade >= 2 are fixed.
func (p BladePart) Twist(k int) BladePart {
	out := p
	for s := 0; s < Slots; s++ {
		target := ((s+k)%Slots + Slots) % Slots
		out[slotMask(target)] = p[slotMask(s)]
	}
	return out
}
