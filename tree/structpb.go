package tree

import (
	"maps"
	"slices"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/unkn0wn-root/jsonbridge/value"
)

// ToStructpb converts v to a google.protobuf.Value. Struct fields are a map in
// protobuf, so object key order does not survive.
func ToStructpb(v value.Value) *structpb.Value {
	switch v.Type() {
	case value.BoolType:
		return structpb.NewBoolValue(v.BoolValue())
	case value.NumberType:
		return structpb.NewNumberValue(v.Float64Value())
	case value.StringType:
		return structpb.NewStringValue(v.StringValue())
	case value.ArrayType:
		l := &structpb.ListValue{Values: make([]*structpb.Value, 0, v.Len())}
		for e := range v.Values() {
			l.Values = append(l.Values, ToStructpb(e))
		}
		return structpb.NewListValue(l)
	case value.ObjectType:
		s := &structpb.Struct{Fields: make(map[string]*structpb.Value, v.Len())}
		for k, e := range v.Entries() {
			s.Fields[k] = ToStructpb(e)
		}
		return structpb.NewStructValue(s)
	default:
		return structpb.NewNullValue()
	}
}

// FromStructpb converts a google.protobuf.Value to a Value. Struct fields are
// added in sorted key order. nil converts to Null.
func FromStructpb(pv *structpb.Value) value.Value {
	switch k := pv.GetKind().(type) {
	case *structpb.Value_BoolValue:
		return value.Bool(k.BoolValue)
	case *structpb.Value_NumberValue:
		return value.Number(k.NumberValue)
	case *structpb.Value_StringValue:
		return value.String(k.StringValue)
	case *structpb.Value_ListValue:
		b := value.ArrayBuild()
		for _, e := range k.ListValue.GetValues() {
			b.Add(FromStructpb(e))
		}
		return b.Build()
	case *structpb.Value_StructValue:
		fields := k.StructValue.GetFields()
		b := value.ObjectBuild()
		for _, key := range slices.Sorted(maps.Keys(fields)) {
			b.Set(key, FromStructpb(fields[key]))
		}
		return b.Build()
	default:
		return value.Null()
	}
}
