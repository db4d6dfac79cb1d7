package slog

import (
	"bytes"
	"errors"
	stdslog "log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/jsonbridge"
)

func TestGroupAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelInfo})))

	l.Debug("bound adapter", jsonbridge.Fields{"type": "value.Value"})
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered: %s", buf.String())
	}

	l.Warn("decode rejected", jsonbridge.Fields{"type": "eval.Reason", "err": errors.New("bad")})
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, `msg="decode rejected"`) {
		t.Fatalf("out=%s", out)
	}
	if !strings.Contains(out, "jsonbridge.err=bad jsonbridge.type=eval.Reason") {
		t.Fatalf("attributes not grouped and sorted: %s", out)
	}
}
