package bridge

import (
	"octavia-hq/vela/pkg/algebra"
	"octavia-hq/vela/pkg/perm"
)

// Lift converts a class index to its rank-1 element: blade coefficient 1 at
// the context slot, Z4 delta at the sector, Z3 delta at the modality. It is
// total on 0..95; an out-of-range index is a caller contract violation.
func Lift(c perm.ClassIndex) (algebra.Element, error) {
	triple, err := perm.Decode(c)
	if err != nil {
		return algebra.Element{}, err
	}

	var e algebra.Element
	e.Blade[contextMask(triple.Context)] = 1
	e.G4[triple.Sector] = 1
	e.G3[triple.Modality] = 1
	return e, nil
}

// contextMask maps a context coordinate 0..7 to its basis-blade mask: 0 is
// the scalar blade, k >= 1 is generator e_k.
func contextMask(context int) uint {
	if context == 0 {
		return 0
	}
	return 1 << (context - 1)
}

// ProjectResult is the two-variant outcome of a projection: either the class
// the element corresponds to, or the explicit NotRankOne sentinel. Callers
// must branch on Rank1 before reading Class.
type ProjectResult struct {
	Rank1 bool
	Class perm.ClassIndex
}

// NotRankOne is the sentinel result for elements with no class equivalent.
var NotRankOne = ProjectResult{}

// Project converts an element back to its class index if the element is
// rank-1: the blade part a single scalar-or-generator blade with coefficient
// exactly 1, and each group part a single unit coefficient. Anything else
// yields NotRankOne — projection is partial, not validating, so the fast path
// stays exception-free.
func Project(e algebra.Element) ProjectResult {
	context := -1
	for slot := 0; slot < algebra.Slots; slot++ {
		mask := contextMask(slot)
		switch e.Blade[mask] {
		case 0:
		case 1:
			if context >= 0 {
				return NotRankOne
			}
			context = slot
		default:
			return NotRankOne
		}
	}
	if context < 0 {
		return NotRankOne
	}
	for mask := uint(0); mask < algebra.Blades; mask++ {
		if algebra.Grade(mask) >= 2 && e.Blade[mask] != 0 {
			return NotRankOne
		}
	}

	sector, ok := deltaIndex4(e.G4)
	if !ok {
		return NotRankOne
	}
	modality, ok := deltaIndex3(e.G3)
	if !ok {
		return NotRankOne
	}

	c, err := perm.Encode(perm.Triple{Sector: sector, Modality: modality, Context: context})
	if err != nil {
		return NotRankOne
	}
	return ProjectResult{Rank1: true, Class: c}
}

// deltaIndex4 returns the index of the single unit coefficient of a Z4 part.
func deltaIndex4(g algebra.Group4) (int, bool) {
	index := -1
	for i, c := range g {
		switch c {
		case 0:
		case 1:
			if index >= 0 {
				return 0, false
			}
			index = i
		default:
			return 0, false
		}
	}
	if index < 0 {
		return 0, false
	}
	return index, true
}

// deltaIndex3 returns the index of the single unit coefficient of a Z3 part.
func deltaIndex3(g algebra.Group3) (int, bool) {
	index := -1
	for i, c := range g {
		switch c {
		case 0:
		case 1:
			if index >= 0 {
				return 0, false
			}
			index = i
		default:
			return 0, false
		}
	}
	if index < 0 {
		return 0, false
	}
	return index, true
}
