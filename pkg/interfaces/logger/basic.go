package logger

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Basic prints log lines to stdout. Useful for examples and tests; real
// deployments are expected to adapt their own logger behind the interface.
type Basic struct {
	mu     *sync.Mutex
	fields map[string]any
}

var _ Logger = (*Basic)(nil)

// New returns a Basic logger writing to stdout.
func New() *Basic {
	return &Basic{
		mu:     &sync.Mutex{},
		fields: make(map[string]any),
	}
}

// With returns a logger that includes the given fields on every line.
func (l *Basic) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}
	next := l.clone()
	for _, f := range fields {
		next.fields[f.Key] = f.Value
	}
	return next
}

func (l *Basic) Debug(msg string, fields ...Field) { l.log("DEBUG", msg, fields) }
func (l *Basic) Info(msg string, fields ...Field)  { l.log("INFO", msg, fields) }
func (l *Basic) Warn(msg string, fields ...Field)  { l.log("WARN", msg, fields) }
func (l *Basic) Error(msg string, fields ...Field) { l.log("ERROR", msg, fields) }

func (l *Basic) log(level, msg string, fields []Field) {
	line := fmt.Sprintf("[%s] %s", level, msg)
	if rendered := l.render(fields); rendered != "" {
		line += " " + rendered
	}
	l.mu.Lock()
	fmt.Println(line)
	l.mu.Unlock()
}

// render merges bound and per-call fields, bound first, sorted for stable output.
func (l *Basic) render(fields []Field) string {
	parts := make([]string, 0, len(l.fields)+len(fields))
	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, l.fields[k]))
	}
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s=%v", f.Key, f.Value))
	}
	return strings.Join(parts, " ")
}

func (l *Basic) clone() *Basic {
	out := &Basic{
		mu:     l.mu,
		fields: make(map[string]any, len(l.fields)),
	}
	for k, v := range l.fields {
		out.fields[k] = v
	}
	return out
}
