// Package trace is an opt-in step tracer for the sweep engine. Every
// site event, circle event, and tree-surgery step can be logged
// through it; with no Logger configured, the engine's calls are no-ops.
//
// Grounded on wanghanting-voronoi/Shamos.go, the only logging pattern
// present anywhere in the retrieved corpus: plain log.Printf calls at
// each event-handling step, no structured fields, no third-party
// logging library.
package trace

import "log"

// Logger traces sweep-engine progress through the standard library's
// log package. The zero value and a nil *Logger are both safe to call
// and produce no output.
type Logger struct {
	std *log.Logger
}

// New returns a Logger that writes through l, or through the standard
// library's default logger if l is nil.
func New(l *log.Logger) *Logger {
	if l == nil {
		l = log.Default()
	}
	return &Logger{std: l}
}

func (l *Logger) Sitef(format string, args ...interface{}) {
	if l == nil || l.std == nil {
		return
	}
	l.std.Printf("site event: "+format, args...)
}

func (l *Logger) Circlef(format string, args ...interface{}) {
	if l == nil || l.std == nil {
		return
	}
	l.std.Printf("circle event: "+format, args...)
}

func (l *Logger) Surgeryf(format string, args ...interface{}) {
	if l == nil || l.std == nil {
		return
	}
	l.std.Printf("tree surgery: "+format, args...)
}
