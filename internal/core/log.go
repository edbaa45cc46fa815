package core

// Logger is the subset of *log.Logger the engine packages use. Keeping it an
// interface lets game logic run without a configured logger.
type Logger interface {
	Debug(msg any, keyvals ...any)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(any, ...any) {}
