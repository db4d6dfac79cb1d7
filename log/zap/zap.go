// Package zap adapts a *zap.Logger to jsonbridge.Logger.
package zap

import (
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/unkn0wn-root/jsonbridge"
)

var _ jsonbridge.Logger = ZapLogger{}

type ZapLogger struct{ L *zap.Logger }

// New wraps l; a nil l logs nowhere.
func New(l *zap.Logger) ZapLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return ZapLogger{L: l.Named("jsonbridge")}
}

func (z ZapLogger) Debug(msg string, f jsonbridge.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f jsonbridge.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f jsonbridge.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f jsonbridge.Fields) { z.L.Error(msg, zf(f)...) }

// zf orders fields by key and logs errors as zap error fields so the cause
// chain reaches the encoder.
func zf(f jsonbridge.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for _, k := range slices.Sorted(maps.Keys(f)) {
		switch v := f[k].(type) {
		case error:
			out = append(out, zap.NamedError(k, v))
		case string:
			out = append(out, zap.String(k, v))
		default:
			out = append(out, zap.Any(k, v))
		}
	}
	return out
}
