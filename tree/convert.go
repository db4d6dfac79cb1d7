// Package tree converts between value.Value and other JSON tree models: the
// jsoniter.Any nodes used by code written against json-iterator, and
// google.protobuf.Value.
//
// Conversions are total and never fail. Array order and object key order are
// preserved wherever the target model can represent order.
package tree

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/unkn0wn-root/jsonbridge/internal/jsonio"
	"github.com/unkn0wn-root/jsonbridge/value"
)

// Shared scalar nodes. jsoniter's scalar nodes are immutable, so reusing them
// is safe; callers must not rely on the identity.
var (
	nullNode  = jsoniter.Wrap(nil)
	trueNode  = jsoniter.Wrap(true)
	falseNode = jsoniter.Wrap(false)
)

// ToAny converts v to a jsoniter.Any. The zero Value is Null and converts to
// the JSON null node, never to a nil interface. Numbers are built from the
// float64 form so large and fractional magnitudes survive.
func ToAny(v value.Value) jsoniter.Any {
	switch v.Type() {
	case value.BoolType:
		if v.BoolValue() {
			return trueNode
		}
		return falseNode
	case value.NumberType:
		return jsoniter.WrapFloat64(v.Float64Value())
	case value.StringType:
		return jsoniter.WrapString(v.StringValue())
	case value.ArrayType:
		a := &Array{items: make([]jsoniter.Any, 0, v.Len())}
		for e := range v.Values() {
			a.Append(ToAny(e))
		}
		return a
	case value.ObjectType:
		o := &Object{vals: make(map[string]jsoniter.Any, v.Len())}
		for k, e := range v.Entries() {
			o.Set(k, ToAny(e))
		}
		return o
	default:
		return nullNode
	}
}

// ToAnyMap converts every value of m with ToAny. The result has the same keys;
// a nil map yields nil.
func ToAnyMap[K comparable](m map[K]value.Value) map[K]jsoniter.Any {
	if m == nil {
		return nil
	}
	out := make(map[K]jsoniter.Any, len(m))
	for k, v := range m {
		out[k] = ToAny(v)
	}
	return out
}

// FromAny converts a jsoniter.Any back to a Value. Nodes from ToAny are walked
// directly; other containers (such as the lazy nodes returned by ReadAny or
// jsoniter.Get) are written out and reparsed, which keeps their key order.
// nil and invalid nodes are Null.
func FromAny(a jsoniter.Any) value.Value {
	if a == nil {
		return value.Null()
	}
	switch n := a.(type) {
	case *Array:
		b := value.ArrayBuild()
		for _, it := range n.items {
			b.Add(FromAny(it))
		}
		return b.Build()
	case *Object:
		b := value.ObjectBuild()
		for _, k := range n.keys {
			b.Set(k, FromAny(n.vals[k]))
		}
		return b.Build()
	}
	switch a.ValueType() {
	case jsoniter.BoolValue:
		return value.Bool(a.ToBool())
	case jsoniter.NumberValue:
		return value.Number(a.ToFloat64())
	case jsoniter.StringValue:
		return value.String(a.ToString())
	case jsoniter.ArrayValue, jsoniter.ObjectValue:
		b, err := jsonio.Encode(a.WriteTo)
		if err != nil {
			return value.Null()
		}
		v, err := value.Parse(b)
		if err != nil {
			return value.Null()
		}
		return v
	default:
		return value.Null()
	}
}
