package codec

import (
	"github.com/unkn0wn-root/jsonbridge/value"
)

var (
	_ Codec[value.Value] = JSON[value.Value]{}
	_ Codec[value.Value] = CBOR[value.Value]{}
	_ Codec[value.Value] = Msgpack[value.Value]{}
	_ Codec[value.Value] = Protobuf[value.Value]{}
)

// toValue lifts v into the value model through its canonical JSON.
func toValue(v Serializable) (value.Value, error) {
	b, err := Serialize(v)
	if err != nil {
		return value.Null(), err
	}
	tv, err := value.Parse(b)
	if err != nil {
		return value.Null(), &SerializationError{Cause: err}
	}
	return tv, nil
}

// fromValue lowers tv to V through the canonical JSON parser, so V's own
// validation applies exactly as it does for text input.
func fromValue[V Serializable](tv value.Value) (V, error) {
	b, err := tv.MarshalJSON()
	if err != nil {
		var zero V
		return zero, &MalformedJSONError{Cause: err}
	}
	return Deserialize[V](b)
}
