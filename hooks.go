package jsonbridge

// Hooks lightweight callbacks for bridge events.
// Implementations MUST be cheap and non-blocking: AdapterBound runs while
// jsoniter builds its codec cache, the others on encode/decode paths.
type Hooks interface {
	// An adapter was created for typeName (once per type and configuration).
	AdapterBound(typeName string)

	// The canonical codec rejected a value on the read path.
	DecodeRejected(typeName string, err error)

	// The canonical codec failed to serialize a value.
	EncodeFailed(typeName string, err error)

	// A value's JSON text exceeded Options.MaxDecodeSize.
	PayloadTooLarge(typeName string, size, limit int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) AdapterBound(string)              {}
func (NopHooks) DecodeRejected(string, error)     {}
func (NopHooks) EncodeFailed(string, error)       {}
func (NopHooks) PayloadTooLarge(string, int, int) {}
