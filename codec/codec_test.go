package codec

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/unkn0wn-root/jsonbridge/eval"
	"github.com/unkn0wn-root/jsonbridge/value"
)

type plain struct{ A int }

// failing is Serializable but cannot produce JSON.
type failing struct{}

func (failing) JSONSerializable()            {}
func (failing) MarshalJSON() ([]byte, error) { return nil, errors.New("boom") }

// markedNoUnmarshal carries the marker but has no UnmarshalJSON.
type markedNoUnmarshal struct{}

func (markedNoUnmarshal) JSONSerializable()            {}
func (markedNoUnmarshal) MarshalJSON() ([]byte, error) { return []byte(`{}`), nil }

func sample() value.Value {
	return value.ObjectBuild().
		Set("name", value.String("flag")).
		Set("on", value.Bool(true)).
		Set("weights", value.ArrayOf(value.Number(0.25), value.Int(100000), value.Null())).
		Set("meta", value.ObjectBuild().Set("z", value.Int(-1)).Set("a", value.String("")).Build()).
		Build()
}

func TestIsSerializable(t *testing.T) {
	cases := []struct {
		v    any
		want bool
	}{
		{value.Null(), true},
		{eval.NewOff(), true},
		{eval.Detail[int]{}, true},
		{&eval.Detail[string]{}, true},
		{plain{}, false},
		{"x", false},
	}
	for _, tc := range cases {
		v := tc.v
		if got := IsSerializable(reflect.TypeOf(v)); got != tc.want {
			t.Fatalf("IsSerializable(%T)=%v, want %v", v, got, tc.want)
		}
	}
	if IsSerializable(nil) {
		t.Fatalf("IsSerializable(nil) should be false")
	}
}

func TestSerializeNilAndNilPointer(t *testing.T) {
	if s, err := SerializeString(nil); err != nil || s != "null" {
		t.Fatalf("Serialize(nil)=%q,%v", s, err)
	}
	var p *value.Value
	if s, err := SerializeString(p); err != nil || s != "null" {
		t.Fatalf("Serialize(nil pointer)=%q,%v", s, err)
	}
}

func TestSerializeWrapsFailure(t *testing.T) {
	_, err := Serialize(failing{})
	var se *SerializationError
	if !errors.As(err, &se) {
		t.Fatalf("err=%v, want *SerializationError", err)
	}
	if se.Cause == nil || se.Cause.Error() != "boom" {
		t.Fatalf("cause=%v", se.Cause)
	}
}

func TestDeserializeRoundTrip(t *testing.T) {
	in := sample()
	s, err := SerializeString(in)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	out, err := DeserializeString[value.Value](s)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if !out.Equal(in) {
		t.Fatalf("got %v, want %v", out, in)
	}
	again, _ := SerializeString(out)
	if again != s {
		t.Fatalf("re-serialized %s, want %s", again, s)
	}
}

func TestDeserializeMalformed(t *testing.T) {
	for _, in := range []string{`{`, `{"kind":"NOPE"}`, `[]`, ``} {
		_, err := DeserializeString[eval.Reason](in)
		var me *MalformedJSONError
		if !errors.As(err, &me) {
			t.Fatalf("Deserialize(%q) err=%v, want *MalformedJSONError", in, err)
		}
	}
	_, err := DeserializeString[eval.Reason](`{"kind":"NOPE"}`)
	if !errors.Is(err, eval.ErrUnknownKind) {
		t.Fatalf("cause not preserved: %v", err)
	}
}

func TestDeserializeIntoTargets(t *testing.T) {
	var v value.Value
	if err := DeserializeInto([]byte(`[1]`), v); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("non-pointer target err=%v", err)
	}
	if err := DeserializeInto([]byte(`[1]`), (*value.Value)(nil)); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("nil pointer target err=%v", err)
	}
	var p plain
	if err := DeserializeInto([]byte(`{}`), &p); !errors.Is(err, ErrNotSerializable) {
		t.Fatalf("plain target err=%v", err)
	}
	var m markedNoUnmarshal
	if err := DeserializeInto([]byte(`{}`), &m); !errors.Is(err, ErrNotSerializable) {
		t.Fatalf("marker without UnmarshalJSON err=%v", err)
	}
	var i any
	if err := DeserializeInto([]byte(`{}`), &i); !errors.Is(err, ErrNotSerializable) {
		t.Fatalf("interface target err=%v", err)
	}
}

func TestDeserializeIntoPointerChain(t *testing.T) {
	r := eval.NewOff()
	rp := &r
	if err := DeserializeInto([]byte(` null `), &rp); err != nil {
		t.Fatalf("DeserializeInto(null): %v", err)
	}
	if rp != nil {
		t.Fatalf("null should clear the pointer")
	}
	if err := DeserializeInto([]byte(`{"kind":"TARGET_MATCH"}`), &rp); err != nil {
		t.Fatalf("DeserializeInto: %v", err)
	}
	if rp == nil || *rp != eval.NewTargetMatch() {
		t.Fatalf("got %v", rp)
	}
	if r != eval.NewOff() {
		t.Fatalf("decoding must allocate, not write through the old pointer")
	}

	// At depth zero null is handed to the type itself.
	v := value.String("x")
	if err := DeserializeInto([]byte(`null`), &v); err != nil || !v.IsNull() {
		t.Fatalf("Value from null: %v, %v", v, err)
	}
}

func TestDeserializeIntoLeavesTargetOnError(t *testing.T) {
	v := value.Int(7)
	if err := DeserializeInto([]byte(`[1,`), &v); err == nil {
		t.Fatalf("expected error")
	}
	if v.IntValue() != 7 {
		t.Fatalf("target changed on error: %v", v)
	}
}

func TestCheckDecodeSize(t *testing.T) {
	if err := CheckDecodeSize(make([]byte, 10), 0); err != nil {
		t.Fatalf("0 means unlimited: %v", err)
	}
	if err := CheckDecodeSize(make([]byte, 10), 10); err != nil {
		t.Fatalf("limit is inclusive: %v", err)
	}
	if err := CheckDecodeSize(make([]byte, 11), 10); !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("err=%v, want ErrPayloadTooLarge", err)
	}
}

func TestLimit(t *testing.T) {
	c := Limit[value.Value]{Inner: JSON[value.Value]{}, MaxDecode: 8}
	b, err := c.Encode(sample())
	if err != nil {
		t.Fatalf("Encode should not be limited: %v", err)
	}
	if _, err := c.Decode(b); !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("Decode err=%v, want ErrPayloadTooLarge", err)
	}
	v, err := c.Decode([]byte(`[1,2]`))
	if err != nil || v.Len() != 2 {
		t.Fatalf("Decode small: %v, %v", v, err)
	}
}

func TestTransportCodecsRoundTrip(t *testing.T) {
	codecs := map[string]Codec[value.Value]{
		"json":      JSON[value.Value]{},
		"cbor":      MustCBOR[value.Value](false),
		"cbor-det":  MustCBOR[value.Value](true),
		"msgpack":   Msgpack[value.Value]{},
		"protobuf":  Protobuf[value.Value]{},
		"json-lim":  Limit[value.Value]{Inner: JSON[value.Value]{}, MaxDecode: 1 << 10},
		"cbor-lim":  Limit[value.Value]{Inner: MustCBOR[value.Value](true), MaxDecode: 1 << 10},
		"proto-lim": Limit[value.Value]{Inner: Protobuf[value.Value]{}, MaxDecode: 1 << 10},
	}
	in := sample()
	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			b, err := c.Encode(in)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			out, err := c.Decode(b)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !out.Equal(in) {
				t.Fatalf("got %v, want %v", out, in)
			}
		})
	}
}

func TestTransportCodecsDeterministic(t *testing.T) {
	a := value.ObjectBuild().Set("b", value.Int(1)).Set("a", value.Int(2)).Build()
	b := value.ObjectBuild().Set("a", value.Int(2)).Set("b", value.Int(1)).Build()
	codecs := map[string]Codec[value.Value]{
		"cbor-det": MustCBOR[value.Value](true),
		"msgpack":  Msgpack[value.Value]{},
		"protobuf": Protobuf[value.Value]{},
	}
	for name, c := range codecs {
		ab, err := c.Encode(a)
		if err != nil {
			t.Fatalf("%s Encode: %v", name, err)
		}
		bb, err := c.Encode(b)
		if err != nil {
			t.Fatalf("%s Encode: %v", name, err)
		}
		if string(ab) != string(bb) {
			t.Fatalf("%s: key order changed the encoding", name)
		}
	}
}

func TestTransportCodecsCarryEvalRecords(t *testing.T) {
	in := eval.NewDetail(value.ArrayOf(value.String("x")), 3, eval.NewRuleMatch(0, "r"))
	c := Msgpack[eval.Detail[value.Value]]{}
	b, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if idx, _ := out.VariationIndex(); idx != 3 || out.Reason() != in.Reason() || !out.Value().Equal(in.Value()) {
		t.Fatalf("got %+v", out)
	}
}

func TestTransportCodecsValidateOnDecode(t *testing.T) {
	bad := value.ObjectBuild().Set("kind", value.String("NOPE")).Build()
	b, err := Msgpack[value.Value]{}.Encode(bad)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	_, err = Msgpack[eval.Reason]{}.Decode(b)
	var me *MalformedJSONError
	if !errors.As(err, &me) {
		t.Fatalf("err=%v, want *MalformedJSONError", err)
	}

	if _, err := (Protobuf[value.Value]{}).Decode([]byte{0xff, 0xff}); !errors.As(err, &me) {
		t.Fatalf("protobuf garbage err=%v", err)
	}
	if _, err := MustCBOR[value.Value](false).Decode([]byte{0xff}); !errors.As(err, &me) {
		t.Fatalf("cbor garbage err=%v", err)
	}
	if _, err := (JSON[value.Value]{}).Decode([]byte(strings.Repeat("[", 3))); !errors.As(err, &me) {
		t.Fatalf("json garbage err=%v", err)
	}
}
