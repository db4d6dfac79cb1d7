package eval

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/unkn0wn-root/jsonbridge/internal/jsonio"
)

// Detail is the full result of an evaluation: the value, the index of the
// variation that produced it (absent when the default value was returned) and
// the reason.
//
// JSON form: {"value":V,"variationIndex":N,"reason":R}. variationIndex is
// omitted when absent and reason when zero. The value is decoded as T, so a
// Detail[int] holds an int.
type Detail[T any] struct {
	value          T
	variationIndex int
	hasVariation   bool
	reason         Reason
}

func NewDetail[T any](v T, variationIndex int, reason Reason) Detail[T] {
	return Detail[T]{value: v, variationIndex: variationIndex, hasVariation: true, reason: reason}
}

// NewDefaultDetail is a Detail for a default value, which has no variation.
func NewDefaultDetail[T any](v T, reason Reason) Detail[T] {
	return Detail[T]{value: v, reason: reason}
}

func (Detail[T]) JSONSerializable() {}

func (d Detail[T]) Value() T { return d.value }

func (d Detail[T]) VariationIndex() (int, bool) { return d.variationIndex, d.hasVariation }

func (d Detail[T]) Reason() Reason { return d.reason }

func (d Detail[T]) IsDefaultValue() bool { return !d.hasVariation }

func (d Detail[T]) MarshalJSON() ([]byte, error) {
	inner, err := jsonio.API.Marshal(d.value)
	if err != nil {
		return nil, fmt.Errorf("eval: detail value: %w", err)
	}
	return jsonio.Encode(func(s *jsoniter.Stream) {
		s.WriteObjectStart()
		s.WriteObjectField("value")
		s.WriteRaw(string(inner))
		if d.hasVariation {
			s.WriteMore()
			s.WriteObjectField("variationIndex")
			s.WriteInt(d.variationIndex)
		}
		if !d.reason.IsZero() {
			s.WriteMore()
			s.WriteObjectField("reason")
			d.reason.encodeTo(s)
		}
		s.WriteObjectEnd()
	})
}

func (d *Detail[T]) UnmarshalJSON(data []byte) error {
	var (
		out Detail[T]
		raw []byte
	)
	err := jsonio.Decode(data, func(iter *jsoniter.Iterator) {
		if iter.WhatIsNext() != jsoniter.ObjectValue {
			iter.ReportError("eval.Detail", "expected a JSON object")
			return
		}
		iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
			switch field {
			case "value":
				raw = it.SkipAndReturnBytes()
			case "variationIndex":
				if it.WhatIsNext() == jsoniter.NilValue {
					it.ReadNil()
				} else {
					out.variationIndex = it.ReadInt()
					out.hasVariation = true
				}
			case "reason":
				out.reason = decodeReason(it)
			default:
				it.Skip()
			}
			return jsonio.Err(it) == nil
		})
	})
	if err != nil {
		return err
	}
	if raw != nil {
		if err := jsonio.API.Unmarshal(raw, &out.value); err != nil {
			return fmt.Errorf("eval: detail value: %w", err)
		}
	}
	*d = out
	return nil
}
