package jsonbridge

import (
	"reflect"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"

	"github.com/unkn0wn-root/jsonbridge/codec"
)

// Factory is a jsoniter.Extension that supplies an adapter for every type
// carrying the codec.Serializable marker and declines everything else, leaving
// those types to jsoniter's default handling.
//
// A Factory is immutable and may be registered with any number of APIs.
type Factory struct {
	jsoniter.DummyExtension

	host    jsoniter.API // nil => taken from the Iterator/Stream of each call
	log     Logger
	hooks   Hooks
	maxSize int
}

var _ jsoniter.Extension = (*Factory)(nil)

func NewFactory(opts Options) *Factory {
	return &Factory{
		log:     coalesce[Logger](opts.Logger, NopLogger{}),
		hooks:   coalesce[Hooks](opts.Hooks, NopHooks{}),
		maxSize: opts.MaxDecodeSize,
	}
}

// Owns reports whether t carries the marker. Interface types are left to
// jsoniter, which resolves the dynamic type and comes back for it.
func (f *Factory) Owns(t reflect.Type) bool {
	return t != nil && t.Kind() != reflect.Interface && codec.IsSerializable(t)
}

func (f *Factory) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if a := f.bind(typ); a != nil {
		return a
	}
	return nil
}

func (f *Factory) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if a := f.bind(typ); a != nil {
		return a
	}
	return nil
}

func (f *Factory) bind(typ reflect2.Type) *adapter {
	if typ == nil {
		return nil
	}
	t := typ.Type1()
	if !f.Owns(t) {
		return nil
	}
	name := t.String()
	f.log.Debug("bound adapter", Fields{"type": name})
	f.hooks.AdapterBound(name)
	return &adapter{
		host:    f.host,
		typ:     t,
		name:    name,
		log:     f.log,
		hooks:   f.hooks,
		maxSize: f.maxSize,
	}
}
