package logger

// Field represents a structured logging key/value pair.
type Field struct {
	Key   string
	Value any
}

// F builds a Field. Exists so call sites stay one-liners.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger is the minimal contract the snapshot engine logs through.
// Implementations may forward to go-logger, zap, logrus, etc. The engine only
// ever logs key names and counts, never configuration values.
type Logger interface {
	With(fields ...Field) Logger
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Nop is a no-op logger. It is the default when no logger is configured.
type Nop struct{}

var _ Logger = (*Nop)(nil)

func (n *Nop) With(fields ...Field) Logger       { return n }
func (n *Nop) Debug(msg string, fields ...Field) {}
func (n *Nop) Info(msg string, fields ...Field)  {}
func (n *Nop) Warn(msg string, fields ...Field)  {}
func (n *Nop) Error(msg string, fields ...Field) {}
