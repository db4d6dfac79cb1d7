package codec

// JSON is the canonical JSON codec as a Codec[V].
type JSON[V Serializable] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return Serialize(v) }
func (JSON[V]) Decode(b []byte) (V, error) { return Deserialize[V](b) }
