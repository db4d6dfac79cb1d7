package tree

import (
	jsoniter "github.com/json-iterator/go"
)

var (
	_ jsoniter.Any = (*Array)(nil)
	_ jsoniter.Any = (*Object)(nil)
)

// Array is a mutable jsoniter.Any holding elements in order.
type Array struct {
	items []jsoniter.Any
}

func NewArray(items ...jsoniter.Any) *Array {
	a := &Array{items: make([]jsoniter.Any, 0, len(items))}
	for _, it := range items {
		a.Append(it)
	}
	return a
}

// Append adds v at the end; a nil v is stored as JSON null.
func (a *Array) Append(v jsoniter.Any) *Array {
	a.items = append(a.items, orNull(v))
	return a
}

func (a *Array) LastError() error              { return nil }
func (a *Array) ValueType() jsoniter.ValueType { return jsoniter.ArrayValue }
func (a *Array) MustBeValid() jsoniter.Any     { return a }
func (a *Array) ToBool() bool                  { return len(a.items) > 0 }
func (a *Array) ToInt() int                    { return boolToInt(a.ToBool()) }
func (a *Array) ToInt32() int32                { return int32(a.ToInt()) }
func (a *Array) ToInt64() int64                { return int64(a.ToInt()) }
func (a *Array) ToUint() uint                  { return uint(a.ToInt()) }
func (a *Array) ToUint32() uint32              { return uint32(a.ToInt()) }
func (a *Array) ToUint64() uint64              { return uint64(a.ToInt()) }
func (a *Array) ToFloat32() float32            { return float32(a.ToInt()) }
func (a *Array) ToFloat64() float64            { return float64(a.ToInt()) }
func (a *Array) ToString() string              { return render(a) }
func (a *Array) ToVal(val interface{})         { toVal(a, val) }
func (a *Array) Size() int                     { return len(a.items) }
func (a *Array) Keys() []string                { return nil }

// Get follows path into the array: an int selects an element and '*' maps the
// rest of the path over every element.
func (a *Array) Get(path ...interface{}) jsoniter.Any {
	if len(path) == 0 {
		return a
	}
	switch p := path[0].(type) {
	case int:
		if p >= 0 && p < len(a.items) {
			return a.items[p].Get(path[1:]...)
		}
	case int32:
		if p == '*' {
			out := NewArray()
			for _, it := range a.items {
				if got := it.Get(path[1:]...); got.LastError() == nil {
					out.Append(got)
				}
			}
			return out
		}
	}
	return missing(path)
}

func (a *Array) GetInterface() interface{} {
	out := make([]interface{}, len(a.items))
	for i, it := range a.items {
		out[i] = it.GetInterface()
	}
	return out
}

func (a *Array) WriteTo(stream *jsoniter.Stream) {
	stream.WriteArrayStart()
	for i, it := range a.items {
		if i > 0 {
			stream.WriteMore()
		}
		it.WriteTo(stream)
	}
	stream.WriteArrayEnd()
}

// Object is a mutable jsoniter.Any whose keys iterate and serialize in
// insertion order.
type Object struct {
	keys []string
	vals map[string]jsoniter.Any
}

func NewObject() *Object {
	return &Object{vals: make(map[string]jsoniter.Any)}
}

// Set stores v under key. A new key goes last; an existing key keeps its
// position. A nil v is stored as JSON null.
func (o *Object) Set(key string, v jsoniter.Any) *Object {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = orNull(v)
	return o
}

// Delete removes key, reporting whether it was present.
func (o *Object) Delete(key string) bool {
	if _, ok := o.vals[key]; !ok {
		return false
	}
	delete(o.vals, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

func (o *Object) LastError() error              { return nil }
func (o *Object) ValueType() jsoniter.ValueType { return jsoniter.ObjectValue }
func (o *Object) MustBeValid() jsoniter.Any     { return o }
func (o *Object) ToBool() bool                  { return len(o.keys) > 0 }
func (o *Object) ToInt() int                    { return boolToInt(o.ToBool()) }
func (o *Object) ToInt32() int32                { return int32(o.ToInt()) }
func (o *Object) ToInt64() int64                { return int64(o.ToInt()) }
func (o *Object) ToUint() uint                  { return uint(o.ToInt()) }
func (o *Object) ToUint32() uint32              { return uint32(o.ToInt()) }
func (o *Object) ToUint64() uint64              { return uint64(o.ToInt()) }
func (o *Object) ToFloat32() float32            { return float32(o.ToInt()) }
func (o *Object) ToFloat64() float64            { return float64(o.ToInt()) }
func (o *Object) ToString() string              { return render(o) }
func (o *Object) ToVal(val interface{})         { toVal(o, val) }
func (o *Object) Size() int                     { return len(o.keys) }
func (o *Object) Keys() []string                { return append([]string(nil), o.keys...) }

// Get follows path into the object: a string selects a member and '*' maps the
// rest of the path over every member.
func (o *Object) Get(path ...interface{}) jsoniter.Any {
	if len(path) == 0 {
		return o
	}
	switch p := path[0].(type) {
	case string:
		if v, ok := o.vals[p]; ok {
			return v.Get(path[1:]...)
		}
	case int32:
		if p == '*' {
			out := NewObject()
			for _, k := range o.keys {
				if got := o.vals[k].Get(path[1:]...); got.LastError() == nil {
					out.Set(k, got)
				}
			}
			return out
		}
	}
	return missing(path)
}

func (o *Object) GetInterface() interface{} {
	out := make(map[string]interface{}, len(o.keys))
	for _, k := range o.keys {
		out[k] = o.vals[k].GetInterface()
	}
	return out
}

func (o *Object) WriteTo(stream *jsoniter.Stream) {
	stream.WriteObjectStart()
	for i, k := range o.keys {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(k)
		o.vals[k].WriteTo(stream)
	}
	stream.WriteObjectEnd()
}

func orNull(v jsoniter.Any) jsoniter.Any {
	if v == nil {
		return nullNode
	}
	return v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// missing is an invalid node carrying the unresolved path, as jsoniter's own
// nodes return for a failed Get.
func missing(path []interface{}) jsoniter.Any {
	return jsoniter.WrapString("").Get(path...)
}

func render(a jsoniter.Any) string {
	s := jsoniter.ConfigDefault.BorrowStream(nil)
	defer jsoniter.ConfigDefault.ReturnStream(s)
	a.WriteTo(s)
	return string(s.Buffer())
}

func toVal(a jsoniter.Any, val interface{}) {
	_ = jsoniter.ConfigDefault.UnmarshalFromString(render(a), val)
}
