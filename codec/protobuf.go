package codec

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/unkn0wn-root/jsonbridge/tree"
)

// Protobuf carries Serializable values as a google.protobuf.Value message, for
// transports that only speak protobuf. Output is deterministic.
type Protobuf[V Serializable] struct{}

func (Protobuf[V]) Encode(v V) ([]byte, error) {
	tv, err := toValue(v)
	if err != nil {
		return nil, err
	}
	return proto.MarshalOptions{Deterministic: true}.Marshal(tree.ToStructpb(tv))
}

func (Protobuf[V]) Decode(b []byte) (V, error) {
	var pv structpb.Value
	if err := proto.Unmarshal(b, &pv); err != nil {
		var zero V
		return zero, &MalformedJSONError{Cause: err}
	}
	return fromValue[V](tree.FromStructpb(&pv))
}
