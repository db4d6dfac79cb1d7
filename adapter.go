package jsonbridge

import (
	"io"
	"reflect"
	"unsafe"

	jsoniter "github.com/json-iterator/go"

	"github.com/unkn0wn-root/jsonbridge/codec"
)

// adapter encodes and decodes one Serializable type through the canonical
// codec. It holds no per-call state and is shared by every goroutine using the
// configuration that created it.
type adapter struct {
	host    jsoniter.API
	typ     reflect.Type // full type, including type arguments
	name    string
	log     Logger
	hooks   Hooks
	maxSize int
}

var (
	_ jsoniter.ValEncoder = (*adapter)(nil)
	_ jsoniter.ValDecoder = (*adapter)(nil)
)

func (a *adapter) IsEmpty(ptr unsafe.Pointer) bool {
	return reflect.NewAt(a.typ, ptr).Elem().IsZero()
}

// Encode writes the canonical JSON verbatim instead of re-emitting it token by
// token, so the output is byte-identical to codec.Serialize.
func (a *adapter) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	v, _ := reflect.NewAt(a.typ, ptr).Elem().Interface().(codec.Serializable)
	text, err := codec.Serialize(v)
	if err != nil {
		a.log.Error("encode failed", Fields{"type": a.name, "err": err})
		a.hooks.EncodeFailed(a.name, err)
		if stream.Error == nil {
			stream.Error = &WriteError{Type: a.typ, Cause: err}
		}
		return
	}
	stream.WriteRaw(string(text))
}

// Decode reads exactly one JSON value as a jsoniter.Any, writes it back to text
// and parses that text with the canonical codec.
func (a *adapter) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	node := iter.ReadAny()
	if iter.Error != nil && iter.Error != io.EOF {
		return // tokenizer error, already reported by jsoniter
	}
	if node.ValueType() == jsoniter.InvalidValue {
		iter.ReportError("jsonbridge", "expected a JSON value")
		return
	}
	text, err := a.render(node, iter)
	if err != nil {
		a.reject(iter, err)
		return
	}
	if err := codec.CheckDecodeSize(text, a.maxSize); err != nil {
		a.hooks.PayloadTooLarge(a.name, len(text), a.maxSize)
		a.reject(iter, err)
		return
	}
	if err := codec.DeserializeInto(text, reflect.NewAt(a.typ, ptr).Interface()); err != nil {
		a.reject(iter, err)
	}
}

func (a *adapter) render(node jsoniter.Any, iter *jsoniter.Iterator) ([]byte, error) {
	pool := a.streams(iter)
	s := pool.BorrowStream(nil)
	defer pool.ReturnStream(s)
	node.WriteTo(s)
	if s.Error != nil {
		return nil, s.Error
	}
	return append([]byte(nil), s.Buffer()...), nil
}

func (a *adapter) streams(iter *jsoniter.Iterator) jsoniter.StreamPool {
	if a.host != nil {
		return a.host
	}
	if p, ok := iter.Pool().(jsoniter.StreamPool); ok {
		return p
	}
	return jsoniter.ConfigDefault
}

func (a *adapter) reject(iter *jsoniter.Iterator, err error) {
	a.log.Warn("decode rejected", Fields{"type": a.name, "err": err})
	a.hooks.DecodeRejected(a.name, err)
	iter.Error = &ParseError{Type: a.typ, Cause: err}
}
