package codec

// Limit wraps another codec to enforce a maximum allowed payload size
// at Decode time. Encode is forwarded to Inner unchanged.
// If MaxDecode <= 0, size limiting is disabled.
//
// Typical use: protect against oversized or deeply nested input from an
// untrusted source before it reaches the parser.
type Limit[V any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec[V]
	// MaxDecode is the maximum permitted length in bytes of the payload
	// passed to Decode.
	MaxDecode int
}

func (c Limit[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }
func (c Limit[V]) Decode(b []byte) (V, error) {
	if err := CheckDecodeSize(b, c.MaxDecode); err != nil {
		var zero V
		return zero, err
	}
	return c.Inner.Decode(b)
}
