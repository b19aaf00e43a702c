package perm

import "testing"

// TestRing_Laws verifies commutativity, associativity and identities of the
// mod-96 ring over the full domain (sampled pairs for associativity).
func TestRing_Laws(t *testing.T) {
	for a := ClassIndex(0); a < Classes; a++ {
		if Add(a, 0) != a {
			t.Errorf("Add(%d, 0) != %d", a, a)
		}
		if Mul(a, 1) != a {
			t.Errorf("Mul(%d, 1) != %d", a, a)
		}
		for b := ClassIndex(0); b < Classes; b++ {
			if Add(a, b) != Add(b, a) {
				t.Errorf("Add not commutative at (%d, %d)", a, b)
			}
			if Mul(a, b) != Mul(b, a) {
				t.Errorf("Mul not commutative at (%d, %d)", a, b)
			}
		}
	}

	for a := ClassIndex(0); a < Classes; a += 7 {
		for b := ClassIndex(0); b < Classes; b += 5 {
			for c := ClassIndex(0); c < Classes; c += 11 {
				if Add(Add(a, b), c) != Add(a, Add(b, c)) {
					t.Errorf("Add not associative at (%d, %d, %d)", a, b, c)
				}
				if Mul(Mul(a, b), c) != Mul(a, Mul(b, c)) {
					t.Errorf("Mul not associative at (%d, %d, %d)", a, b, c)
				}
			}
		}
	}
}

// TestRing_Tracked verifies overflow is reported exactly when the unreduced
// result leaves the 0..95 window.
func TestRing_Tracked(t *testing.T) {
	tests := []struct {
		name         string
		op           RingOp
		a, b         ClassIndex
		wantValue    ClassIndex
		wantOverflow bool
	}{
		{name: "add in range", op: RingAdd, a: 40, b: 50, wantValue: 90},
		{name: "add wraps", op: RingAdd, a: 90, b: 10, wantValue: 4, wantOverflow: true},
		{name: "sub in range", op: RingSub, a: 50, b: 40, wantValue: 10},
		{name: "sub wraps", op: RingSub, a: 10, b: 20, wantValue: 86, wantOverflow: true},
		{name: "mul in range", op: RingMul, a: 9, b: 10, wantValue: 90},
		{name: "mul wraps", op: RingMul, a: 10, b: 10, wantValue: 4, wantOverflow: true},
		{name: "gcd never overflows", op: RingGCD, a: 90, b: 60, wantValue: 30},
		{name: "lcm in range", op: RingLCM, a: 8, b: 24, wantValue: 24},
		{name: "lcm divides despite product wrap", op: RingLCM, a: 16, b: 24, wantValue: 48},
		{name: "lcm wraps", op: RingLCM, a: 32, b: 36, wantValue: 0, wantOverflow: true},
		{name: "lcm zero", op: RingLCM, a: 0, b: 9, wantValue: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyRingTracked(tt.op, tt.a, tt.b)
			if got.Value != tt.wantValue || got.Overflow != tt.wantOverflow {
				t.Errorf("ApplyRingTracked(%s, %d, %d) = %+v, want value=%d overflow=%v",
					tt.op, tt.a, tt.b, got, tt.wantValue, tt.wantOverflow)
			}
		})
	}
}

// TestGCDLCM verifies the Euclidean helpers.
func TestGCDLCM(t *testing.T) {
	tests := []struct {
		a, b     ClassIndex
		wantGCD  ClassIndex
		wantLCM  ClassIndex
	}{
		{a: 12, b: 18, wantGCD: 6, wantLCM: 36},
		{a: 5, b: 7, wantGCD: 1, wantLCM: 35},
		{a: 0, b: 9, wantGCD: 9, wantLCM: 0},
		{a: 0, b: 0, wantGCD: 0, wantLCM: 0},
		{a: 24, b: 36, wantGCD: 12, wantLCM: 72},
		{a: 16, b: 24, wantGCD: 8, wantLCM: 48},
	}

	for _, tt := range tests {
		if got := GCD(tt.a, tt.b); got != tt.wantGCD {
			t.Errorf("GCD(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.wantGCD)
		}
		if got := LCM(tt.a, tt.b); got != tt.wantLCM {
			t.Errorf("LCM(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.wantLCM)
		}
	}
}

// TestReduce verifies the four list reductions and their empty identities.
func TestReduce(t *testing.T) {
	tests := []struct {
		name   string
		op     ReduceOp
		values []int
		want   ClassIndex
	}{
		{name: "sum wraps", op: ReduceSum, values: []int{90, 10, 2}, want: 6},
		{name: "sum empty", op: ReduceSum, values: nil, want: 0},
		{name: "product", op: ReduceProduct, values: []int{5, 7}, want: 35},
		{name: "product wraps", op: ReduceProduct, values: []int{10, 10}, want: 4},
		{name: "product empty", op: ReduceProduct, values: nil, want: 1},
		{name: "max", op: ReduceMax, values: []int{3, 41, 7}, want: 41},
		{name: "min", op: ReduceMin, values: []int{3, 41, 7}, want: 3},
		{name: "min empty", op: ReduceMin, values: nil, want: 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reduce(tt.op, tt.values); got != tt.want {
				t.Errorf("Reduce(%s, %v) = %d, want %d", tt.op, tt.values, got, tt.want)
			}
		})
	}
}

// TestUnits verifies the unit census and the factorization round-trip for
// every unit residue.
func TestUnits(t *testing.T) {
	units := Units()
	if len(units) != 32 {
		t.Fatalf("len(Units()) = %d, want 32 (φ(96))", len(units))
	}

	// 2 divides 96, so it is not a unit; 5 is.
	if IsUnit(2) {
		t.Error("IsUnit(2) = true, want false")
	}
	if !IsUnit(5) {
		t.Error("IsUnit(5) = false, want true")
	}

	for _, u := range units {
		factors := Factor(u)
		if got := Reduce(ReduceProduct, factors); got != u {
			t.Errorf("product(Factor(%d)) = %d, want %d (factors %v)", u, got, u, factors)
		}
	}
}

// TestFactor_Concrete checks concrete factorizations, including the
// documented non-unit behavior: residues with no unit divisor factor to
// themselves.
func TestFactor_Concrete(t *testing.T) {
	tests := []struct {
		n    ClassIndex
		want []int
	}{
		{n: 35, want: []int{5, 7}},
		{n: 25, want: []int{5, 5}},
		{n: 77, want: []int{7, 11}},
		{n: 6, want: []int{6}},  // 2*3 has no unit divisor
		{n: 9, want: []int{9}},  // 3*3 has no unit divisor
		{n: 0, want: []int{0}},
		{n: 1, want: []int{1}},
	}

	for _, tt := range tests {
		got := Factor(tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("Factor(%d) = %v, want %v", tt.n, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Factor(%d) = %v, want %v", tt.n, got, tt.want)
				break
			}
		}
	}
}
