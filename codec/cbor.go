package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/unkn0wn-root/jsonbridge/value"
)

// CBOR carries Serializable values as CBOR via fxamacker/cbor.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
//
// Use deterministic=true for RFC 8949 Core Deterministic encoding when the
// bytes must be stable (hashing, content addressing); object keys are then
// sorted. Otherwise PreferredUnsortedEncOptions are used.
type CBOR[V Serializable] struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewCBOR[V Serializable](deterministic bool) (CBOR[V], error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	em, err := eo.EncMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	return CBOR[V]{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
func MustCBOR[V Serializable](deterministic bool) CBOR[V] {
	c, err := NewCBOR[V](deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR[V]) Encode(v V) ([]byte, error) {
	tv, err := toValue(v)
	if err != nil {
		return nil, err
	}
	return c.enc.Marshal(tv.AsAny())
}

func (c CBOR[V]) Decode(b []byte) (V, error) {
	var raw any
	if err := c.dec.Unmarshal(b, &raw); err != nil {
		var zero V
		return zero, &MalformedJSONError{Cause: err}
	}
	return fromValue[V](value.FromAny(raw))
}
