package algebra

import (
	"fmt"
	"strings"
)

// Element is a composite algebra element: the ordered triple of a blade part,
// a Z4 group part and a Z3 group part. The zero value is the algebra zero.
// Elements are ephemeral values with no identity; all operations return new
// elements and never mutate their receivers.
type Element struct {
	Blade BladePart
	G4    Group4
	G3    Group3
}

// Zero returns the zero element.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity: scalar blade 1, delta at the Z4
// and Z3 group identities.
func One() Element {
	var e Element
	e.Blade[0] = 1
	e.G4[0] = 1
	e.G3[0] = 1
	return e
}

// Mul returns the component-wise product of the two composites.
func (e Element) Mul(f Element) Element {
	return Element{
		Blade: e.Blade.Mul(f.Blade),
		G4:    e.G4.Mul(f.G4),
		G3:    e.G3.Mul(f.G3),
	}
}

// Add returns the component-wise sum.
func (e Element) Add(f Element) Element {
	return Element{
		Blade: e.Blade.Add(f.Blade),
		G4:    e.G4.Add(f.G4),
		G3:    e.G3.Add(f.G3),
	}
}

// Scale multiplies every coefficient of every part by k.
func (e Element) Scale(k int) Element {
	return Element{
		Blade: e.Blade.Scale(k),
		G4:    e.G4.Scale(k),
		G3:    e.G3.Scale(k),
	}
}

// GradeProject keeps only the blade coefficients of the given grade; the
// group parts pass through untouched. Reshaping, not validation.
func (e Element) GradeProject(grade int) Element {
	return Element{
		Blade: e.Blade.Project(grade),
		G4:    e.G4,
		G3:    e.G3,
	}
}

// IsZero reports whether every coefficient of every part is zero.
func (e Element) IsZero() bool {
	return e.Blade.IsZero() && e.G4 == (Group4{}) && e.G3 == (Group3{})
}

// Equal reports exact coefficient-wise equality.
func (e Element) Equal(f Element) bool {
	return e.Blade == f.Blade && e.G4 == f.G4 && e.G3 == f.G3
}

// String renders the non-zero blade coefficients plus the group tuples,
// mainly for logs and test failures.
func (e Element) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	first := true
	for mask := uint(0); mask < Blades; mask++ {
		c := e.Blade[mask]
		if c == 0 {
			continue
		}
		if !first {
			sb.WriteString(" + ")
		}
		first = false
		if mask == 0 {
			fmt.Fprintf(&sb, "%d", c)
		} else {
			fmt.Fprintf(&sb, "%d*b%07b", c, mask)
		}
	}
	if first {
		sb.WriteString("0")
	}
	fmt.Fprintf(&sb, "; g4=%v g3=%v}", e.G4, e.G3)
	return sb.String()
}
