package perm

// RingOp names a mod-96 ring operation.
type RingOp string

const (
	RingAdd RingOp = "add"
	RingSub RingOp = "sub"
	RingMul RingOp = "mul"
	RingGCD RingOp = "gcd"
	RingLCM RingOp = "lcm"
)

// Valid reports whether op names a ring operation.
func (op RingOp) Valid() bool {
	switch op {
	case RingAdd, RingSub, RingMul, RingGCD, RingLCM:
		return true
	}
	return false
}

// RingResult is the structured outcome of a ring operation in overflow-track
// mode: the reduced value plus whether the unreduced integer result left the
// 0..95 window. Overflow is only ever reported when tracking was explicitly
// requested, never inferred.
type RingResult struct {
	Value    ClassIndex
	Overflow bool
}

// Add returns (a + b) mod 96.
func Add(a, b ClassIndex) ClassIndex {
	return ClassIndex((int(a) + int(b)) % Classes)
}

// Sub returns (a - b) mod 96, always in 0..95.
func Sub(a, b ClassIndex) ClassIndex {
	return ClassIndex(((int(a)-int(b))%Classes + Classes) % Classes)
}

// Mul returns (a * b) mod 96.
func Mul(a, b ClassIndex) ClassIndex {
	return ClassIndex((int(a) * int(b)) % Classes)
}

// ApplyRing applies op to (a, b) without overflow tracking.
func ApplyRing(op RingOp, a, b ClassIndex) ClassIndex {
	switch op {
	case RingAdd:
		return Add(a, b)
	case RingSub:
		return Sub(a, b)
	case RingMul:
		return Mul(a, b)
	case RingGCD:
		return GCD(a, b)
	case RingLCM:
		return LCM(a, b)
	}
	return a
}

// ApplyRingTracked applies op to (a, b) in track mode, reporting whether the
// raw integer result fell outside 0..95 before reduction. GCD never
// overflows; LCM overflows when the unreduced least common multiple leaves
// the window.
func ApplyRingTracked(op RingOp, a, b ClassIndex) RingResult {
	switch op {
	case RingAdd:
		raw := int(a) + int(b)
		return RingResult{Value: ClassIndex(raw % Classes), Overflow: raw >= Classes}
	case RingSub:
		raw := int(a) - int(b)
		return RingResult{Value: Sub(a, b), Overflow: raw < 0}
	case RingMul:
		raw := int(a) * int(b)
		return RingResult{Value: ClassIndex(raw % Classes), Overflow: raw >= Classes}
	case RingGCD:
		return RingResult{Value: GCD(a, b)}
	case RingLCM:
		if a == 0 || b == 0 {
			return RingResult{Value: 0}
		}
		raw := int(a) / int(GCD(a, b)) * int(b)
		return RingResult{Value: ClassIndex(raw % Classes), Overflow: raw >= Classes}
	}
	return RingResult{Value: a}
}

// GCD returns the greatest common divisor of a and b by Euclidean reduction.
// GCD(0, 0) is 0 by convention.
func GCD(a, b ClassIndex) ClassIndex {
	x, y := int(a), int(b)
	for y != 0 {
		x, y = y, x%y
	}
	return ClassIndex(x)
}

// LCM returns the least common multiple of a and b reduced mod 96.
// LCM with either argument 0 is 0.
func LCM(a, b ClassIndex) ClassIndex {
	if a == 0 || b == 0 {
		return 0
	}
	g := int(GCD(a, b))
	return ClassIndex((int(a) / g * int(b)) % Classes)
}

// ReduceOp names a list reduction.
type ReduceOp string

const (
	ReduceSum     ReduceOp = "sum"
	ReduceProduct ReduceOp = "product"
	ReduceMax     ReduceOp = "max"
	ReduceMin     ReduceOp = "min"
)

// Valid reports whether op names a reduction.
func (op ReduceOp) Valid() bool {
	switch op {
	case ReduceSum, ReduceProduct, ReduceMax, ReduceMin:
		return true
	}
	return false
}

// Reduce folds values with op. Sum and product wrap mod 96; max and min are
// taken over the raw values. The empty list reduces to the operation's
// identity: 0 for sum/max, 1 for product, 95 for min.
func Reduce(op ReduceOp, values []int) ClassIndex {
	switch op {
	case ReduceSum:
		total := 0
		for _, v := range values {
			total = (total + v) % Classes
		}
		return ClassIndex((total%Classes + Classes) % Classes)
	case ReduceProduct:
		total := 1
		for _, v := range values {
			total = (total * v) % Classes
		}
		return ClassIndex((total%Classes + Classes) % Classes)
	case ReduceMax:
		best := 0
		for _, v := range values {
			if v > best {
				best = v
			}
		}
		return ClassIndex(best % Classes)
	case ReduceMin:
		best := Classes - 1
		for _, v := range values {
			if v < best {
				best = v
			}
		}
		if best < 0 {
			best = 0
		}
		return ClassIndex(best)
	}
	return 0
}
