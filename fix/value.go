package fix

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Kind identifies the concrete type held by a Value.
type Kind int

const (
	// KindString is a plain string value.
	KindString Kind = iota
	// KindInt is a signed 64-bit integer value.
	KindInt
	// KindDecimal is an arbitrary-precision decimal value.
	KindDecimal
	// KindGroup is a repeating group: an ordered sequence of elements, each
	// an ordered list of fields.
	KindGroup
)

// Value is a single field value: a string, an integer, a decimal, or a
// repeating group. Values are immutable once constructed.
type Value struct {
	kind  Kind
	str   string
	num   int64
	dec   decimal.Decimal
	group Group
}

// Field is a named value inside a repeating group element. Unlike the
// top-level field maps, group element fields keep their declaration order,
// which is the order they are emitted on the wire.
type Field struct {
	Name  string
	Value Value
}

// Element is one entry of a repeating group, an ordered list of fields.
type Element []Field

// Group is an ordered sequence of repeating group elements.
type Group []Element

// String returns a Value holding a plain string.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Int returns a Value holding a signed integer.
func Int(i int64) Value {
	return Value{kind: KindInt, num: i}
}

// Decimal returns a Value holding an arbitrary-precision decimal.
func Decimal(d decimal.Decimal) Value {
	return Value{kind: KindDecimal, dec: d}
}

// GroupOf returns a Value holding a repeating group with the given elements.
// A group with zero elements is valid and encodes as a count field of 0.
func GroupOf(elems ...Element) Value {
	return Value{kind: KindGroup, group: Group(elems)}
}

// Kind returns the kind of value held.
func (v Value) Kind() Kind {
	return v.kind
}

// Group returns the repeating group held by the value, or false if the value
// is not a group.
func (v Value) Group() (Group, bool) {
	if v.kind != KindGroup {
		return nil, false
	}
	return v.group, true
}

// Wire renders the value in its wire text form. For groups this is the
// element count; the group's elements are flattened separately by the
// encoder.
func (v Value) Wire() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindDecimal:
		return v.dec.String()
	case KindGroup:
		return strconv.Itoa(len(v.group))
	default:
		return v.str
	}
}
