package perm

// The four generator automorphisms. Each is a pure O(1) map on the coordinate
// triple; inputs are assumed valid (see ClassIndex.Validate), outputs are
// always valid by construction. All four commute pairwise.

// Rotate applies R^k: sector + k mod 4. Order 4.
func Rotate(c ClassIndex, k int) ClassIndex {
	sector := (int(c)/24 + k) % Sectors
	if sector < 0 {
		sector += Sectors
	}
	return ClassIndex(24*sector + int(c)%24)
}

// Triality applies D^k: modality + k mod 3. Order 3.
func Triality(c ClassIndex, k int) ClassIndex {
	modality := ((int(c)/8)%3 + k) % Modalities
	if modality < 0 {
		modality += Modalities
	}
	return ClassIndex(24*(int(c)/24) + 8*modality + int(c)%8)
}

// Twist applies T^k: context + k mod 8. Order 8.
func Twist(c ClassIndex, k int) ClassIndex {
	context := (int(c)%8 + k) % Contexts
	if context < 0 {
		context += Contexts
	}
	return ClassIndex(8*(int(c)/8) + context)
}

// Mirror applies M: modality 0->0, 1->2, 2->1, sector and context untouched.
// Order 2, and M∘D∘M = D² (Mirror inverts Triality).
func Mirror(c ClassIndex) ClassIndex {
	modality := (int(c) / 8) % 3
	if modality != 0 {
		modality = Modalities - modality
	}
	return ClassIndex(24*(int(c)/24) + 8*modality + int(c)%8)
}

// Generator identifies one of the four automorphisms.
type Generator string

const (
	GenRotate   Generator = "rotate"
	GenTriality Generator = "triality"
	GenTwist    Generator = "twist"
	GenMirror   Generator = "mirror"
)

// Period returns the exact order of the generator.
func (g Generator) Period() int {
	switch g {
	case GenRotate:
		return Sectors
	case GenTriality:
		return Modalities
	case GenTwist:
		return Contexts
	case GenMirror:
		return 2
	}
	return 0
}

// Valid reports whether g names one of the four generators.
func (g Generator) Valid() bool {
	return g.Period() != 0
}

// Apply applies g^k to a class index. Mirror powers reduce mod 2: odd powers
// apply the involution, even powers are the identity.
func Apply(g Generator, c ClassIndex, k int) ClassIndex {
	switch g {
	case GenRotate:
		return Rotate(c, k)
	case GenTriality:
		return Triality(c, k)
	case GenTwist:
		return Twist(c, k)
	case GenMirror:
		if k%2 != 0 {
			return Mirror(c)
		}
		return c
	}
	return c
}
