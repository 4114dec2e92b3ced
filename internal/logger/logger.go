// Package logger writes prefixed log lines to a hal.Logger.
package logger

import (
	"fmt"

	"presto/hal"
)

// Logger is a component-scoped line logger. The zero value and a nil *Logger drop every line.
type Logger struct {
	out    hal.Logger
	prefix string
}

// New returns a logger that prefixes each line with "name: ". An empty name writes lines as-is.
func New(out hal.Logger, name string) *Logger {
	l := &Logger{out: out}
	if name != "" {
		l.prefix = name + ": "
	}
	return l
}

// Println writes one line.
func (l *Logger) Println(line string) {
	if l == nil || l.out == nil {
		return
	}
	l.out.WriteLineString(l.prefix + line)
}

// Printf formats and writes one line.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || l.out == nil {
		return
	}
	l.out.WriteLineString(l.prefix + fmt.Sprintf(format, args...))
}
