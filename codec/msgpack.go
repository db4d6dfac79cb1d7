package codec

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/unkn0wn-root/jsonbridge/value"
)

// Msgpack carries Serializable values as MessagePack via vmihailenco/msgpack/v5.
// The zero value is ready to use. Map keys are written sorted so equal values
// encode to equal bytes.
type Msgpack[V Serializable] struct{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	tv, err := toValue(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(tv.AsAny()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (Msgpack[V]) Decode(b []byte) (V, error) {
	var raw any
	if err := msgpack.Unmarshal(b, &raw); err != nil {
		var zero V
		return zero, &MalformedJSONError{Cause: err}
	}
	return fromValue[V](value.FromAny(raw))
}
