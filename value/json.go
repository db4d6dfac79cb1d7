package value

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/unkn0wn-root/jsonbridge/internal/jsonio"
)

// ErrUnsupportedNumber is returned when encoding NaN or an infinity.
var ErrUnsupportedNumber = errors.New("value: number has no JSON representation")

// Parse decodes exactly one JSON value.
func Parse(data []byte) (Value, error) {
	var v Value
	err := jsonio.Decode(data, func(iter *jsoniter.Iterator) {
		v = DecodeFrom(iter)
	})
	if err != nil {
		return Null(), err
	}
	return v, nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	return jsonio.Encode(v.EncodeTo)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// String returns the canonical JSON text. Non-finite numbers, which have no
// JSON form, are printed with strconv.
func (v Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	}
	return string(b)
}

// EncodeTo writes v to s in canonical form. A non-finite number sets s.Error.
func (v Value) EncodeTo(s *jsoniter.Stream) {
	switch v.kind {
	case BoolType:
		s.WriteBool(v.b)
	case NumberType:
		if math.IsNaN(v.n) || math.IsInf(v.n, 0) {
			if s.Error == nil {
				s.Error = fmt.Errorf("%w: %v", ErrUnsupportedNumber, v.n)
			}
			return
		}
		s.WriteRaw(string(AppendNumber(nil, v.n)))
	case StringType:
		s.WriteString(v.s)
	case ArrayType:
		s.WriteArrayStart()
		for i, e := range v.arr {
			if i > 0 {
				s.WriteMore()
			}
			e.EncodeTo(s)
		}
		s.WriteArrayEnd()
	case ObjectType:
		s.WriteObjectStart()
		for i, k := range v.obj.keys {
			if i > 0 {
				s.WriteMore()
			}
			s.WriteObjectField(k)
			v.obj.vals[k].EncodeTo(s)
		}
		s.WriteObjectEnd()
	default:
		s.WriteNil()
	}
}

// DecodeFrom consumes one JSON value from iter. Errors are left on iter.Error.
func DecodeFrom(iter *jsoniter.Iterator) Value {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return Null()
	case jsoniter.BoolValue:
		return Bool(iter.ReadBool())
	case jsoniter.NumberValue:
		return Number(iter.ReadFloat64())
	case jsoniter.StringValue:
		return String(iter.ReadString())
	case jsoniter.ArrayValue:
		var items []Value
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			items = append(items, DecodeFrom(it))
			return jsonio.Err(it) == nil
		})
		return Value{kind: ArrayType, arr: items}
	case jsoniter.ObjectValue:
		b := ObjectBuild()
		iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			b.Set(key, DecodeFrom(it))
			return jsonio.Err(it) == nil
		})
		return b.build()
	default:
		iter.ReportError("value.DecodeFrom", "expected a JSON value")
		return Null()
	}
}

// AppendNumber appends the canonical text of a finite number: shortest
// round-trip digits, exponent form only below 1e-6 or from 1e21 up.
func AppendNumber(dst []byte, n float64) []byte {
	abs := math.Abs(n)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	dst = strconv.AppendFloat(dst, n, format, -1, 64)
	if format == 'e' {
		// e-07 -> e-7
		if l := len(dst); l >= 4 && dst[l-4] == 'e' && dst[l-3] == '-' && dst[l-2] == '0' {
			dst[l-2] = dst[l-1]
			dst = dst[:l-1]
		}
	}
	return dst
}
