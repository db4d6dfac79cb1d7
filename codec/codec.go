// Package codec is the canonical codec for library-owned types and a family of
// transport codecs built on it.
//
// A type opts in by implementing Serializable. Its JSON form is whatever its
// MarshalJSON produces and its pointer's UnmarshalJSON accepts; Serialize and
// Deserialize are the only supported entry points, so every caller sees the
// same bytes and the same validation.
//
// Codec[V] implementations (JSON, CBOR, Msgpack, Protobuf) carry Serializable
// values through other formats by way of the canonical JSON form, never by
// reflecting over struct fields.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
