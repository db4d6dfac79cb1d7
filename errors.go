package jsonbridge

import (
	"fmt"
	"reflect"
)

// ParseError is what jsoniter returns when the canonical codec rejects a value
// on the read path. Cause is usually a *codec.MalformedJSONError.
type ParseError struct {
	Type  reflect.Type
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jsonbridge: decode %s: %v", typeName(e.Type), e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// WriteError is what jsoniter returns when a value cannot produce its
// canonical JSON. Cause is usually a *codec.SerializationError.
type WriteError struct {
	Type  reflect.Type
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("jsonbridge: encode %s: %v", typeName(e.Type), e.Cause)
}

func (e *WriteError) Unwrap() error { return e.Cause }

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
