package value

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// AsAny converts v to plain Go values: nil, bool, float64, string, []any and
// map[string]any. Key order is lost in the map form.
func (v Value) AsAny() any {
	switch v.kind {
	case BoolType:
		return v.b
	case NumberType:
		return v.n
	case StringType:
		return v.s
	case ArrayType:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.AsAny()
		}
		return out
	case ObjectType:
		out := make(map[string]any, len(v.obj.keys))
		for _, k := range v.obj.keys {
			out[k] = v.obj.vals[k].AsAny()
		}
		return out
	default:
		return nil
	}
}

// FromAny converts decoded Go data to a Value. It accepts the forms produced by
// the JSON, CBOR and MessagePack decoders: every integer and float width,
// strings, slices, and maps keyed by strings (map[any]any keys are formatted
// with fmt). Map members are added in sorted key order. Anything else is Null.
func FromAny(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int8:
		return Number(float64(t))
	case int16:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint:
		return Number(float64(t))
	case uint8:
		return Number(float64(t))
	case uint16:
		return Number(float64(t))
	case uint32:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case interface{ Float64() (float64, error) }: // json.Number
		f, err := t.Float64()
		if err != nil {
			return Null()
		}
		return Number(f)
	case []any:
		b := ArrayBuild()
		for _, e := range t {
			b.Add(FromAny(e))
		}
		return b.Build()
	case map[string]any:
		b := ObjectBuild()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			b.Set(k, FromAny(t[k]))
		}
		return b.build()
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = e
		}
		return FromAny(m)
	}
	return fromReflect(reflect.ValueOf(x))
}

func fromReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null()
		}
		b := ArrayBuild()
		for i := 0; i < rv.Len(); i++ {
			b.Add(FromAny(rv.Index(i).Interface()))
		}
		return b.Build()
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Null()
		}
		m := make(map[string]any, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			m[it.Key().String()] = it.Value().Interface()
		}
		return FromAny(m)
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	}
	return Null()
}
