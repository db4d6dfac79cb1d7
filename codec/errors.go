package codec

import (
	"errors"
	"fmt"
)

var (
	ErrNotSerializable = errors.New("codec: type is not serializable")
	ErrInvalidTarget   = errors.New("codec: target must be a non-nil pointer")
	ErrPayloadTooLarge = errors.New("codec: payload too large")
)

// MalformedJSONError is returned when input is not valid JSON or does not have
// the shape the target type requires.
type MalformedJSONError struct {
	Cause error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("codec: malformed JSON: %v", e.Cause)
}

func (e *MalformedJSONError) Unwrap() error { return e.Cause }

// SerializationError is returned when a value cannot produce its JSON form.
type SerializationError struct {
	Cause error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("codec: serialize: %v", e.Cause)
}

func (e *SerializationError) Unwrap() error { return e.Cause }
