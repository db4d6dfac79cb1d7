package jsonbridge

import (
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/unkn0wn-root/jsonbridge/tree"
	"github.com/unkn0wn-root/jsonbridge/value"
)

// Options tune a Factory. The zero value is ready to use.
type Options struct {
	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used

	// MaxDecodeSize caps the length in bytes of one value's JSON text on the
	// read path. 0 => unlimited.
	MaxDecodeSize int
}

var defaultFactory = sync.OnceValue(func() *Factory {
	return NewFactory(Options{})
})

// Register returns the process-wide Factory, creating it on first use. Install
// it with RegisterExtension on a jsoniter API (or jsoniter.RegisterExtension
// for every configuration).
func Register() *Factory {
	return defaultFactory()
}

// Configure freezes cfg and registers a Factory bound to the resulting API.
func Configure(cfg jsoniter.Config, opts Options) jsoniter.API {
	api := cfg.Froze()
	f := NewFactory(opts)
	f.host = api
	api.RegisterExtension(f)
	return api
}

// ValueToAny converts v to jsoniter's tree form. See tree.ToAny.
func ValueToAny(v value.Value) jsoniter.Any {
	return tree.ToAny(v)
}

// ValueMapToAnyMap converts each value of m. See tree.ToAnyMap.
func ValueMapToAnyMap[K comparable](m map[K]value.Value) map[K]jsoniter.Any {
	return tree.ToAnyMap(m)
}
