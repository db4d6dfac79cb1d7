package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// Serializable marks a type whose JSON shape is defined by its own MarshalJSON
// (and, on its pointer, UnmarshalJSON) rather than by its fields.
type Serializable interface {
	json.Marshaler
	JSONSerializable()
}

var (
	serializableType = reflect.TypeFor[Serializable]()
	nullJSON         = []byte("null")
)

// IsSerializable reports whether t carries the Serializable marker.
func IsSerializable(t reflect.Type) bool {
	return t != nil && t.Implements(serializableType)
}

// Serialize returns the canonical JSON for v. A nil v or nil pointer encodes
// as null.
func Serialize(v Serializable) ([]byte, error) {
	if v == nil {
		return nullJSON, nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nullJSON, nil
	}
	b, err := v.MarshalJSON()
	if err != nil {
		return nil, &SerializationError{Cause: err}
	}
	return b, nil
}

func SerializeString(v Serializable) (string, error) {
	b, err := Serialize(v)
	return string(b), err
}

// Deserialize parses data as T.
func Deserialize[T Serializable](data []byte) (T, error) {
	var v T
	err := DeserializeInto(data, &v)
	return v, err
}

func DeserializeString[T Serializable](s string) (T, error) {
	return Deserialize[T]([]byte(s))
}

// DeserializeInto parses data into target, which must be a non-nil pointer.
// Further pointer levels are allowed: JSON null sets the outermost one to nil,
// anything else allocates. The type at the end of the chain must be
// Serializable and its pointer must implement json.Unmarshaler.
//
// Parse failures are returned as *MalformedJSONError; target is left
// untouched when an error is returned.
func DeserializeInto(data []byte, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: %T", ErrInvalidTarget, target)
	}
	dst := rv.Elem()
	base, depth := dst.Type(), 0
	for base.Kind() == reflect.Pointer {
		base = base.Elem()
		depth++
	}
	if base.Kind() == reflect.Interface || !IsSerializable(base) {
		return fmt.Errorf("%w: %s", ErrNotSerializable, base)
	}
	if depth > 0 && bytes.Equal(bytes.TrimSpace(data), nullJSON) {
		dst.SetZero()
		return nil
	}
	fresh := reflect.New(base)
	u, ok := fresh.Interface().(json.Unmarshaler)
	if !ok {
		return fmt.Errorf("%w: %s does not implement json.Unmarshaler", ErrNotSerializable, fresh.Type())
	}
	if err := u.UnmarshalJSON(data); err != nil {
		var me *MalformedJSONError
		if errors.As(err, &me) {
			return err
		}
		return &MalformedJSONError{Cause: err}
	}
	out := fresh.Elem()
	for i := 0; i < depth; i++ {
		p := reflect.New(out.Type())
		p.Elem().Set(out)
		out = p
	}
	dst.Set(out)
	return nil
}

// CheckDecodeSize fails with ErrPayloadTooLarge when max > 0 and b is longer.
func CheckDecodeSize(b []byte, max int) error {
	if max > 0 && len(b) > max {
		return fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, len(b), max)
	}
	return nil
}
