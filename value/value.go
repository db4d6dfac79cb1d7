// Package value is an immutable JSON value model.
//
// A Value is one of Null, Bool, Number, String, Array or Object. The zero Value
// is Null. Values never change after construction: constructors and builders
// copy their inputs and accessors never hand out internal slices or maps, so a
// Value can be shared freely between goroutines.
//
// Object keys keep the order in which they were first set.
package value

import (
	"iter"
	"math"
)

// Type identifies the variant held by a Value.
type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	switch t {
	case NullType:
		return "null"
	case BoolType:
		return "boolean"
	case NumberType:
		return "number"
	case StringType:
		return "string"
	case ArrayType:
		return "array"
	case ObjectType:
		return "object"
	default:
		return "unknown"
	}
}

type Value struct {
	kind Type
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  *object
}

type object struct {
	keys []string
	vals map[string]Value
}

func Null() Value { return Value{} }

func Bool(b bool) Value { return Value{kind: BoolType, b: b} }

func Number(n float64) Value { return Value{kind: NumberType, n: n} }

func Int(n int) Value { return Value{kind: NumberType, n: float64(n)} }

func String(s string) Value { return Value{kind: StringType, s: s} }

// OptionalString returns Null for a nil pointer and a String otherwise.
func OptionalString(s *string) Value {
	if s == nil {
		return Null()
	}
	return String(*s)
}

// ArrayOf returns an Array holding a copy of items.
func ArrayOf(items ...Value) Value {
	return Value{kind: ArrayType, arr: append([]Value(nil), items...)}
}

// JSONSerializable marks Value as owning its JSON representation.
func (Value) JSONSerializable() {}

func (v Value) Type() Type { return v.kind }

func (v Value) IsNull() bool { return v.kind == NullType }

// BoolValue returns the boolean, or false for any other variant.
func (v Value) BoolValue() bool { return v.kind == BoolType && v.b }

// Float64Value returns the number, or 0 for any other variant.
func (v Value) Float64Value() float64 {
	if v.kind != NumberType {
		return 0
	}
	return v.n
}

// IntValue returns the number truncated toward zero, or 0 for any other
// variant.
func (v Value) IntValue() int {
	if v.kind != NumberType || math.IsNaN(v.n) {
		return 0
	}
	return int(v.n)
}

// StringValue returns the string, or "" for any other variant.
func (v Value) StringValue() string {
	if v.kind != StringType {
		return ""
	}
	return v.s
}

// Len is the element count of an Array or the key count of an Object.
func (v Value) Len() int {
	switch v.kind {
	case ArrayType:
		return len(v.arr)
	case ObjectType:
		return len(v.obj.keys)
	default:
		return 0
	}
}

// Index returns the i-th array element, or Null when out of range or not an
// Array.
func (v Value) Index(i int) Value {
	if v.kind != ArrayType || i < 0 || i >= len(v.arr) {
		return Null()
	}
	return v.arr[i]
}

// Values yields array elements in order.
func (v Value) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		if v.kind != ArrayType {
			return
		}
		for _, e := range v.arr {
			if !yield(e) {
				return
			}
		}
	}
}

// Keys returns the object's keys in insertion order.
func (v Value) Keys() []string {
	if v.kind != ObjectType {
		return nil
	}
	return append([]string(nil), v.obj.keys...)
}

// Get returns the value under key, or Null when absent or not an Object.
func (v Value) Get(key string) Value {
	if v.kind != ObjectType {
		return Null()
	}
	return v.obj.vals[key]
}

// Entries yields object members in insertion order.
func (v Value) Entries() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if v.kind != ObjectType {
			return
		}
		for _, k := range v.obj.keys {
			if !yield(k, v.obj.vals[k]) {
				return
			}
		}
	}
}

// Equal reports deep equality. Object comparison ignores key order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case NullType:
		return true
	case BoolType:
		return v.b == o.b
	case NumberType:
		return v.n == o.n
	case StringType:
		return v.s == o.s
	case ArrayType:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(v.obj.keys) != len(o.obj.keys) {
			return false
		}
		for _, k := range v.obj.keys {
			ov, ok := o.obj.vals[k]
			if !ok || !v.obj.vals[k].Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}
