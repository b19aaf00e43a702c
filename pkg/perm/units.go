package perm

// IsUnit reports whether n is a unit residue: coprime with 96. Exactly 32 of
// the 96 residues are units (φ(96) = 32). 0 is never a unit.
func IsUnit(n ClassIndex) bool {
	if n == 0 {
		return false
	}
	return GCD(n, Classes) == 1
}

// Units returns the 32 unit residues in ascending order.
func Units() []ClassIndex {
	units := make([]ClassIndex, 0, 32)
	for n := ClassIndex(1); n < Classes; n++ {
		if IsUnit(n) {
			units = append(units, n)
		}
	}
	return units
}

// Factor factors n by trial division restricted to the unit residues.
//
// For a unit n the result is its prime factorization and the product
// reduction reconstructs n exactly. Non-unit residues have no unit divisors
// greater than 1 and come back as themselves; the round-trip guarantee holds
// only for the 32 units. Factor(0) is [0] and Factor(1) is [1].
func Factor(n ClassIndex) []int {
	if n <= 1 {
		return []int{int(n)}
	}

	var factors []int
	remaining := int(n)
	for d := 2; d < Classes && remaining > 1; d++ {
		if !IsUnit(ClassIndex(d)) {
			continue
		}
		for remaining%d == 0 {
			factors = append(factors, d)
			remaining /= d
		}
	}
	if len(factors) == 0 {
		// No unit divisor: the residue factors to itself.
		return []int{int(n)}
	}
	if remaining > 1 {
		factors = append(factors, remaining)
	}
	return factors
}
