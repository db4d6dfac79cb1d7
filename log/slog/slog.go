//go:build go1.23

// Package slog adapts a *slog.Logger to jsonbridge.Logger.
package slog

import (
	"context"
	stdslog "log/slog"
	"maps"
	"slices"

	"github.com/unkn0wn-root/jsonbridge"
)

var _ jsonbridge.Logger = Logger{}

type Logger struct{ L *stdslog.Logger }

// New wraps l in a "jsonbridge" group; a nil l uses slog.Default().
func New(l *stdslog.Logger) Logger {
	if l == nil {
		l = stdslog.Default()
	}
	return Logger{L: l.WithGroup("jsonbridge")}
}

func (s Logger) Debug(msg string, f jsonbridge.Fields) { s.log(stdslog.LevelDebug, msg, f) }
func (s Logger) Info(msg string, f jsonbridge.Fields)  { s.log(stdslog.LevelInfo, msg, f) }
func (s Logger) Warn(msg string, f jsonbridge.Fields)  { s.log(stdslog.LevelWarn, msg, f) }
func (s Logger) Error(msg string, f jsonbridge.Fields) { s.log(stdslog.LevelError, msg, f) }

func (s Logger) log(level stdslog.Level, msg string, f jsonbridge.Fields) {
	ctx := context.Background()
	if !s.L.Enabled(ctx, level) {
		return
	}
	s.L.LogAttrs(ctx, level, msg, attrs(f)...)
}

func attrs(f jsonbridge.Fields) []stdslog.Attr {
	if len(f) == 0 {
		return nil
	}
	out := make([]stdslog.Attr, 0, len(f))
	for _, k := range slices.Sorted(maps.Keys(f)) {
		switch v := f[k].(type) {
		case error:
			out = append(out, stdslog.String(k, v.Error()))
		default:
			out = append(out, stdslog.Any(k, v))
		}
	}
	return out
}
