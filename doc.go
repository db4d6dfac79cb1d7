// Package jsonbridge lets json-iterator encode and decode the library's
// self-describing types (value.Value, eval.Reason, eval.Detail[T] and any other
// codec.Serializable) in their canonical JSON form, wherever they appear in an
// object graph: top level, struct fields, slices, maps, pointers.
//
// Without the bridge a reflection-based encoder would walk the types' fields
// and produce the wrong wire format.
//
// Setup:
//
//	api := jsonbridge.Configure(jsoniter.Config{EscapeHTML: true}, jsonbridge.Options{})
//	b, err := api.Marshal(payload)
//
// or, for an existing configuration:
//
//	api := jsoniter.ConfigCompatibleWithStandardLibrary
//	api.RegisterExtension(jsonbridge.Register())
//
// Register the extension before the configuration encodes or decodes anything:
// jsoniter caches the codec it picks for each type.
//
// Writes inject codec.Serialize's bytes verbatim. Reads materialize the next
// JSON value as a jsoniter.Any, write it back to text and hand that text to
// codec.DeserializeInto, so the library's own validation applies no matter how
// the value arrived. Codec failures surface from jsoniter as *ParseError or
// *WriteError, which unwrap to the codec error. jsoniter flattens errors raised
// inside struct fields to text prefixed with the field name, so the typed error
// is only available for top-level values.
//
// ValueToAny and ValueMapToAnyMap expose value.Value as jsoniter.Any trees for
// code written against jsoniter's tree API.
package jsonbridge
