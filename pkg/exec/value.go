package exec

import (
	"fmt"

	"octavia-hq/vela/pkg/algebra"
	"octavia-hq/vela/pkg/perm"
)

// ValueKind tags the result and accumulator variants.
type ValueKind string

const (
	KindClass      ValueKind = "class"        // an integer class index 0..95
	KindElement    ValueKind = "element"      // a composite algebra element
	KindRing       ValueKind = "ring"         // a (value, overflow) ring result
	KindInts       ValueKind = "ints"         // a factorization or reduction list
	KindBool       ValueKind = "bool"         // a unit-test outcome
	KindNotRankOne ValueKind = "not_rank_one" // a failed projection, not an error
)

// Value is the tagged accumulator/result variant threaded by the
// interpreters and returned from invocations.
type Value struct {
	Kind    ValueKind
	Class   perm.ClassIndex
	Element algebra.Element
	Ring    perm.RingResult
	Ints    []int
	Bool    bool
}

// ClassValue wraps a class index.
func ClassValue(c perm.ClassIndex) Value {
	return Value{Kind: KindClass, Class: c}
}

// ElementValue wraps an element.
func ElementValue(e algebra.Element) Value {
	return Value{Kind: KindElement, Element: e}
}

// RingValue wraps a tracked ring result.
func RingValue(r perm.RingResult) Value {
	return Value{Kind: KindRing, Ring: r}
}

// IntsValue wraps an integer list.
func IntsValue(values []int) Value {
	return Value{Kind: KindInts, Ints: values}
}

// BoolValue wraps a boolean.
func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// NotRankOneValue is the explicit partial outcome of a failed projection.
func NotRankOneValue() Value {
	return Value{Kind: KindNotRankOne}
}

// String renders the value for logs and test failures.
func (v Value) String() string {
	switch v.Kind {
	case KindClass:
		return fmt.Sprintf("class(%d)", v.Class)
	case KindElement:
		return fmt.Sprintf("element(%s)", v.Element)
	case KindRing:
		return fmt.Sprintf("ring(value=%d, overflow=%v)", v.Ring.Value, v.Ring.Overflow)
	case KindInts:
		return fmt.Sprintf("ints(%v)", v.Ints)
	case KindBool:
		return fmt.Sprintf("bool(%v)", v.Bool)
	case KindNotRankOne:
		return "not_rank_one"
	}
	return "invalid"
}

// Args maps runtime-parameter names to actual values. Each value must be a
// class index or an element; anything else at seed time is a caller contract
// violation.
type Args map[string]Value

// IntList is a convenience for list-valued runtime parameters (reductions).
func IntList(values ...int) Value {
	return IntsValue(values)
}
