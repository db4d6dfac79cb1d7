// Package eval defines the records produced when a flag is evaluated: the
// Reason explaining the result and the generic Detail that carries the result
// value, its variation index and the reason.
//
// Both types own their JSON form; it does not follow their field layout.
package eval

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/unkn0wn-root/jsonbridge/internal/jsonio"
)

type ReasonKind string

const (
	ReasonOff                ReasonKind = "OFF"
	ReasonFallthrough        ReasonKind = "FALLTHROUGH"
	ReasonTargetMatch        ReasonKind = "TARGET_MATCH"
	ReasonRuleMatch          ReasonKind = "RULE_MATCH"
	ReasonPrerequisiteFailed ReasonKind = "PREREQUISITE_FAILED"
	ReasonError              ReasonKind = "ERROR"
)

type ErrorKind string

const (
	ErrorClientNotReady   ErrorKind = "CLIENT_NOT_READY"
	ErrorFlagNotFound     ErrorKind = "FLAG_NOT_FOUND"
	ErrorMalformedFlag    ErrorKind = "MALFORMED_FLAG"
	ErrorUserNotSpecified ErrorKind = "USER_NOT_SPECIFIED"
	ErrorWrongType        ErrorKind = "WRONG_TYPE"
	ErrorException        ErrorKind = "EXCEPTION"
)

var (
	ErrMissingKind = errors.New("eval: reason has no kind")
	ErrUnknownKind = errors.New("eval: unknown reason kind")
)

// Reason explains how an evaluation arrived at its result. The zero Reason is
// "no reason" and encodes as JSON null.
type Reason struct {
	kind            ReasonKind
	ruleIndex       int
	ruleID          string
	prerequisiteKey string
	errorKind       ErrorKind
	inExperiment    bool
}

func NewOff() Reason { return Reason{kind: ReasonOff} }

func NewFallthrough() Reason { return Reason{kind: ReasonFallthrough} }

func NewTargetMatch() Reason { return Reason{kind: ReasonTargetMatch} }

func NewRuleMatch(ruleIndex int, ruleID string) Reason {
	return Reason{kind: ReasonRuleMatch, ruleIndex: ruleIndex, ruleID: ruleID}
}

func NewPrerequisiteFailed(prerequisiteKey string) Reason {
	return Reason{kind: ReasonPrerequisiteFailed, prerequisiteKey: prerequisiteKey}
}

func NewError(kind ErrorKind) Reason {
	return Reason{kind: ReasonError, errorKind: kind}
}

// WithInExperiment returns a copy of r with the experiment flag set.
func (r Reason) WithInExperiment(in bool) Reason {
	r.inExperiment = in
	return r
}

func (Reason) JSONSerializable() {}

func (r Reason) Kind() ReasonKind { return r.kind }

func (r Reason) IsZero() bool { return r.kind == "" }

// RuleIndex is the matched rule's index for RULE_MATCH, otherwise -1.
func (r Reason) RuleIndex() int {
	if r.kind != ReasonRuleMatch {
		return -1
	}
	return r.ruleIndex
}

func (r Reason) RuleID() string { return r.ruleID }

func (r Reason) PrerequisiteKey() string { return r.prerequisiteKey }

func (r Reason) ErrorKind() ErrorKind { return r.errorKind }

func (r Reason) InExperiment() bool { return r.inExperiment }

func (r Reason) String() string {
	switch r.kind {
	case "":
		return ""
	case ReasonRuleMatch:
		return fmt.Sprintf("%s(%d,%s)", r.kind, r.ruleIndex, r.ruleID)
	case ReasonPrerequisiteFailed:
		return fmt.Sprintf("%s(%s)", r.kind, r.prerequisiteKey)
	case ReasonError:
		return fmt.Sprintf("%s(%s)", r.kind, r.errorKind)
	default:
		return string(r.kind)
	}
}

func (r Reason) MarshalJSON() ([]byte, error) {
	return jsonio.Encode(r.encodeTo)
}

func (r *Reason) UnmarshalJSON(data []byte) error {
	var out Reason
	if err := jsonio.Decode(data, func(iter *jsoniter.Iterator) {
		out = decodeReason(iter)
	}); err != nil {
		return err
	}
	*r = out
	return nil
}

func (r Reason) encodeTo(s *jsoniter.Stream) {
	if r.kind == "" {
		s.WriteNil()
		return
	}
	s.WriteObjectStart()
	s.WriteObjectField("kind")
	s.WriteString(string(r.kind))
	switch r.kind {
	case ReasonRuleMatch:
		s.WriteMore()
		s.WriteObjectField("ruleIndex")
		s.WriteInt(r.ruleIndex)
		if r.ruleID != "" {
			s.WriteMore()
			s.WriteObjectField("ruleId")
			s.WriteString(r.ruleID)
		}
	case ReasonPrerequisiteFailed:
		s.WriteMore()
		s.WriteObjectField("prerequisiteKey")
		s.WriteString(r.prerequisiteKey)
	case ReasonError:
		s.WriteMore()
		s.WriteObjectField("errorKind")
		s.WriteString(string(r.errorKind))
	}
	if r.inExperiment {
		s.WriteMore()
		s.WriteObjectField("inExperiment")
		s.WriteTrue()
	}
	s.WriteObjectEnd()
}

func decodeReason(iter *jsoniter.Iterator) Reason {
	var r Reason
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return r
	case jsoniter.ObjectValue:
	default:
		iter.ReportError("eval.Reason", "expected a JSON object")
		return r
	}
	iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		switch field {
		case "kind":
			r.kind = ReasonKind(it.ReadString())
		case "ruleIndex":
			r.ruleIndex = it.ReadInt()
		case "ruleId":
			r.ruleID = it.ReadString()
		case "prerequisiteKey":
			r.prerequisiteKey = it.ReadString()
		case "errorKind":
			r.errorKind = ErrorKind(it.ReadString())
		case "inExperiment":
			r.inExperiment = it.ReadBool()
		default:
			it.Skip()
		}
		return jsonio.Err(it) == nil
	})
	if jsonio.Err(iter) != nil {
		return Reason{}
	}
	switch r.kind {
	case ReasonOff, ReasonFallthrough, ReasonTargetMatch, ReasonRuleMatch,
		ReasonPrerequisiteFailed, ReasonError:
		return r
	case "":
		jsonio.Fail(iter, ErrMissingKind)
	default:
		jsonio.Fail(iter, fmt.Errorf("%w: %q", ErrUnknownKind, r.kind))
	}
	return Reason{}
}
