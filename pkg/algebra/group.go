package algebra

// Cyclic group-algebra parts. A GroupN part holds one integer coefficient per
// group element of Z_N; multiplication is cyclic convolution, which on delta
// elements reduces to index addition mod N (coefficient rotation).

// Group4 is the Z4 group-algebra part.
type Group4 [4]int

// Group3 is the Z3 group-algebra part.
type Group3 [3]int

// Mul returns the cyclic convolution of the two parts.
func (g Group4) Mul(h Group4) Group4 {
	var out Group4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[(i+j)%4] += g[i] * h[j]
		}
	}
	return out
}

// Add returns the coefficient-wise sum.
func (g Group4) Add(h Group4) Group4 {
	var out Group4
	for i := range g {
		out[i] = g[i] + h[i]
	}
	return out
}

// Scale multiplies every coefficient by k.
func (g Group4) Scale(k int) Group4 {
	var out Group4
	for i := range g {
		out[i] = g[i] * k
	}
	return out
}

// Rotate multiplies by the group element k: coefficients shift by k mod 4.
func (g Group4) Rotate(k int) Group4 {
	var out Group4
	for i := range g {
		out[((i+k)%4+4)%4] = g[i]
	}
	return out
}

// Mul returns the cyclic convolution of the two parts.
func (g Group3) Mul(h Group3) Group3 {
	var out Group3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[(i+j)%3] += g[i] * h[j]
		}
	}
	return out
}

// Add returns the coefficient-wise sum.
func (g Group3) Add(h Group3) Group3 {
	var out Group3
	for i := range g {
		out[i] = g[i] + h[i]
	}
	return out
}

// Scale multiplies every coefficient by k.
func (g Group3) Scale(k int) Group3 {
	var out Group3
	for i := range g {
		out[i] = g[i] * k
	}
	return out
}

// Rotate multiplies by the group element k: coefficients shift by k mod 3.
func (g Group3) Rotate(k int) Group3 {
	var out Group3
	for i := range g {
		out[((i+k)%3+3)%3] = g[i]
	}
	return out
}

// Invert applies the group inverse index map i -> -i mod 3. On a delta
// element at d this is the modality mirror 0->0, 1->2, 2->1.
func (g Group3) Invert() Group3 {
	return Group3{g[0], g[2], g[1]}
}
