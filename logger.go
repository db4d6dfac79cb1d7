package jsonbridge

// Fields is structured context for one log entry. Bridge events set "type" to
// the Go type name and "err" to the failure, if any.
type Fields map[string]any

// Logger receives the bridge's leveled events. Wrap your logging stack with one
// of log/zap, log/logrus or log/slog. A nil Options.Logger disables logging.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}
