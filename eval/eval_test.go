package eval

import (
	"errors"
	"testing"

	"github.com/unkn0wn-root/jsonbridge/value"
)

func TestReasonJSON(t *testing.T) {
	cases := []struct {
		name string
		r    Reason
		want string
	}{
		{"zero", Reason{}, `null`},
		{"off", NewOff(), `{"kind":"OFF"}`},
		{"fallthrough", NewFallthrough(), `{"kind":"FALLTHROUGH"}`},
		{"target", NewTargetMatch(), `{"kind":"TARGET_MATCH"}`},
		{"rule", NewRuleMatch(2, "r-1"), `{"kind":"RULE_MATCH","ruleIndex":2,"ruleId":"r-1"}`},
		{"rule-no-id", NewRuleMatch(0, ""), `{"kind":"RULE_MATCH","ruleIndex":0}`},
		{"prereq", NewPrerequisiteFailed("p"), `{"kind":"PREREQUISITE_FAILED","prerequisiteKey":"p"}`},
		{"error", NewError(ErrorFlagNotFound), `{"kind":"ERROR","errorKind":"FLAG_NOT_FOUND"}`},
		{"experiment", NewFallthrough().WithInExperiment(true), `{"kind":"FALLTHROUGH","inExperiment":true}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := tc.r.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON: %v", err)
			}
			if string(b) != tc.want {
				t.Fatalf("got %s, want %s", b, tc.want)
			}
			var back Reason
			if err := back.UnmarshalJSON(b); err != nil {
				t.Fatalf("UnmarshalJSON(%s): %v", b, err)
			}
			if back != tc.r {
				t.Fatalf("round trip got %+v, want %+v", back, tc.r)
			}
		})
	}
}

func TestReasonAccessors(t *testing.T) {
	r := NewRuleMatch(4, "id")
	if r.Kind() != ReasonRuleMatch || r.RuleIndex() != 4 || r.RuleID() != "id" {
		t.Fatalf("unexpected rule reason %+v", r)
	}
	if NewOff().RuleIndex() != -1 {
		t.Fatalf("RuleIndex outside RULE_MATCH should be -1")
	}
	if !(Reason{}).IsZero() || NewOff().IsZero() {
		t.Fatalf("IsZero mismatch")
	}
	if got := NewError(ErrorWrongType).String(); got != "ERROR(WRONG_TYPE)" {
		t.Fatalf("String()=%q", got)
	}
	if got := NewRuleMatch(1, "x").String(); got != "RULE_MATCH(1,x)" {
		t.Fatalf("String()=%q", got)
	}
}

func TestReasonUnmarshalIgnoresUnknownFields(t *testing.T) {
	var r Reason
	if err := r.UnmarshalJSON([]byte(`{"extra":{"a":[1]},"kind":"OFF","bigSegmentsStatus":"HEALTHY"}`)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if r != NewOff() {
		t.Fatalf("got %+v", r)
	}
}

func TestReasonUnmarshalRejects(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{`{"kind":"NOPE"}`, ErrUnknownKind},
		{`{}`, ErrMissingKind},
		{`{"ruleIndex":1}`, ErrMissingKind},
	}
	for _, tc := range cases {
		r := NewOff()
		err := r.UnmarshalJSON([]byte(tc.in))
		if !errors.Is(err, tc.want) {
			t.Fatalf("UnmarshalJSON(%s) err=%v, want %v", tc.in, err, tc.want)
		}
		if r != NewOff() {
			t.Fatalf("target modified on error")
		}
	}
	for _, in := range []string{`"OFF"`, `[1]`, `{"kind":1}`, `{"kind":"OFF"`} {
		var r Reason
		if err := r.UnmarshalJSON([]byte(in)); err == nil {
			t.Fatalf("UnmarshalJSON(%s) succeeded, want error", in)
		}
	}
}

func TestDetailDecodesTypedValue(t *testing.T) {
	var d Detail[int]
	in := `{"value": 3, "variationIndex": 1, "reason": {"kind": "OFF"}}`
	if err := d.UnmarshalJSON([]byte(in)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if d.Value() != 3 {
		t.Fatalf("value=%d, want 3", d.Value())
	}
	if idx, ok := d.VariationIndex(); !ok || idx != 1 {
		t.Fatalf("variationIndex=(%d,%v), want (1,true)", idx, ok)
	}
	if d.Reason() != NewOff() {
		t.Fatalf("reason=%+v", d.Reason())
	}
	if d.IsDefaultValue() {
		t.Fatalf("detail with a variation is not a default value")
	}
}

func TestDetailJSON(t *testing.T) {
	d := NewDetail("on", 0, NewRuleMatch(1, "r"))
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	want := `{"value":"on","variationIndex":0,"reason":{"kind":"RULE_MATCH","ruleIndex":1,"ruleId":"r"}}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}

	var back Detail[string]
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if back != d {
		t.Fatalf("round trip got %+v, want %+v", back, d)
	}
}

func TestDefaultDetailOmitsAbsentFields(t *testing.T) {
	d := NewDefaultDetail(false, Reason{})
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(b) != `{"value":false}` {
		t.Fatalf("got %s", b)
	}

	var back Detail[bool]
	if err := back.UnmarshalJSON([]byte(`{"value":false,"variationIndex":null,"reason":null}`)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if !back.IsDefaultValue() || !back.Reason().IsZero() {
		t.Fatalf("got %+v", back)
	}
}

func TestDetailOfValue(t *testing.T) {
	v := value.ObjectBuild().Set("b", value.Int(1)).Set("a", value.Null()).Build()
	d := NewDetail(v, 2, NewFallthrough())
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	want := `{"value":{"b":1,"a":null},"variationIndex":2,"reason":{"kind":"FALLTHROUGH"}}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}
	var back Detail[value.Value]
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if !back.Value().Equal(v) {
		t.Fatalf("value=%v, want %v", back.Value(), v)
	}
}

func TestDetailRejects(t *testing.T) {
	for _, in := range []string{
		`[]`,
		`{"value":}`,
		`{"value":"x"}`,
		`{"value":1,"reason":{"kind":"BAD"}}`,
		`{"value":1,"variationIndex":"one"}`,
	} {
		var d Detail[int]
		if err := d.UnmarshalJSON([]byte(in)); err == nil {
			t.Fatalf("UnmarshalJSON(%s) succeeded, want error", in)
		}
	}
}
