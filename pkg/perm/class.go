package perm

import "fmt"

// Structural constants of the 96-class decomposition.
const (
	// Classes is the size of the equivalence structure.
	Classes = 96

	// Sectors is the range of the sector coordinate (Rotate period).
	Sectors = 4

	// Modalities is the range of the modality coordinate (Triality period).
	Modalities = 3

	// Contexts is the range of the context-ring coordinate (Twist period).
	Contexts = 8
)

// ClassIndex is the canonical representative of one of the 96 equivalence
// classes. Valid values are 0..95; every boundary operation validates its
// inputs, interior arithmetic assumes validity.
type ClassIndex int

// Triple is the unique coordinate decomposition of a class index:
// class = 24*Sector + 8*Modality + Context.
type Triple struct {
	Sector   int // 0..3
	Modality int // 0..2
	Context  int // 0..7
}

// Validate reports whether c is a valid class index. An out-of-range index is
// a caller contract violation, never silently wrapped.
func (c ClassIndex) Validate() error {
	if c < 0 || c >= Classes {
		return &RangeError{Value: int(c)}
	}
	return nil
}

// Decode splits a class index into its coordinate triple.
// It is total on 0..95 and returns a RangeError otherwise.
func Decode(c ClassIndex) (Triple, error) {
	if err := c.Validate(); err != nil {
		return Triple{}, err
	}
	return Triple{
		Sector:   int(c) / 24,
		Modality: (int(c) / 8) % 3,
		Context:  int(c) % 8,
	}, nil
}

// Encode combines a coordinate triple back into a class index.
// It is total on valid triples and returns a RangeError otherwise.
func Encode(t Triple) (ClassIndex, error) {
	if t.Sector < 0 || t.Sector >= Sectors ||
		t.Modality < 0 || t.Modality >= Modalities ||
		t.Context < 0 || t.Context >= Contexts {
		return 0, &TripleRangeError{Triple: t}
	}
	return ClassIndex(24*t.Sector + 8*t.Modality + t.Context), nil
}

// RangeError reports a class index outside 0..95.
type RangeError struct {
	Value int
}

// Error returns the error message.
func (e *RangeError) Error() string {
	return fmt.Sprintf("class index %d out of range [0,%d)", e.Value, Classes)
}

// TripleRangeError reports a coordinate triple with a component outside its
// valid range.
type TripleRangeError struct {
	Triple Triple
}

// Error returns the error message.
func (e *TripleRangeError) Error() string {
	return fmt.Sprintf("coordinate triple (sector=%d, modality=%d, context=%d) out of range",
		e.Triple.Sector, e.Triple.Modality, e.Triple.Context)
}
