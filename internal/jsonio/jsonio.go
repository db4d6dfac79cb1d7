// Package jsonio is the token-level JSON engine shared by the value model and
// the evaluation records. Library types write and read themselves token by
// token here, so encoding them never goes back through jsoniter's type
// resolution for the same value.
package jsonio

import (
	"errors"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// API is the private jsoniter configuration used for library-owned JSON.
// HTML characters are written as-is so output matches what was parsed.
var API = jsoniter.Config{
	EscapeHTML:             false,
	ValidateJsonRawMessage: true,
}.Froze()

// ErrTrailingData is returned when non-whitespace input follows the value.
var ErrTrailingData = errors.New("jsonio: unexpected data after top-level value")

// Encode runs fn against a pooled stream and returns a copy of what it wrote.
func Encode(fn func(s *jsoniter.Stream)) ([]byte, error) {
	s := API.BorrowStream(nil)
	defer API.ReturnStream(s)
	fn(s)
	if s.Error != nil {
		return nil, s.Error
	}
	return append([]byte(nil), s.Buffer()...), nil
}

// Decode runs fn against a pooled iterator over data. fn must consume exactly
// one JSON value; anything but whitespace after it is ErrTrailingData.
func Decode(data []byte, fn func(iter *jsoniter.Iterator)) error {
	iter := API.BorrowIterator(data)
	defer API.ReturnIterator(iter)
	fn(iter)
	if err := Err(iter); err != nil {
		return err
	}
	// at a clean end of input the iterator reports io.EOF and no value type
	if iter.WhatIsNext() != jsoniter.InvalidValue || iter.Error == nil {
		return ErrTrailingData
	}
	return nil
}

// Err returns the iterator's error, treating io.EOF as success: jsoniter sets
// it when a top-level scalar ends exactly at the end of the input.
func Err(iter *jsoniter.Iterator) error {
	if iter.Error == nil || iter.Error == io.EOF {
		return nil
	}
	return iter.Error
}

// Fail records a decode failure on iter unless an earlier one is already set.
func Fail(iter *jsoniter.Iterator, err error) {
	if Err(iter) == nil {
		iter.Error = err
	}
}
