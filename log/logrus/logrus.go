// Package logrus adapts a *logrus.Entry to jsonbridge.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/jsonbridge"
)

var _ jsonbridge.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

// New wraps l with a component field; a nil l uses the standard logger.
func New(l *logrus.Logger) LogrusLogger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return LogrusLogger{E: l.WithField("component", "jsonbridge")}
}

func (l LogrusLogger) Debug(msg string, f jsonbridge.Fields) { l.with(f).Debug(msg) }
func (l LogrusLogger) Info(msg string, f jsonbridge.Fields)  { l.with(f).Info(msg) }
func (l LogrusLogger) Warn(msg string, f jsonbridge.Fields)  { l.with(f).Warn(msg) }
func (l LogrusLogger) Error(msg string, f jsonbridge.Fields) { l.with(f).Error(msg) }

// with moves an "err" field to logrus' own error key.
func (l LogrusLogger) with(f jsonbridge.Fields) *logrus.Entry {
	e := l.E
	if len(f) == 0 {
		return e
	}
	fields := make(logrus.Fields, len(f))
	for k, v := range f {
		if err, ok := v.(error); ok && k == "err" {
			e = e.WithError(err)
			continue
		}
		fields[k] = v
	}
	return e.WithFields(fields)
}
