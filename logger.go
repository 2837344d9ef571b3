package treelog

import (
	"sync"

	"go.uber.org/atomic"
)

// callerSkip is the number of frames between a public emission method and
// its call site.
const callerSkip = 2

// Logger is a named node in the logger hierarchy. Loggers are created and
// owned by a Registry; the parent link is a lookup relation used for level
// inheritance and additive propagation only.
//
// All methods are safe for concurrent use. Configuration changes (level,
// additive flag, sink list) take effect for emissions that start after the
// change is visible; emissions already in flight may observe the previous
// configuration.
type Logger struct {
	registry *Registry
	parent   *Logger
	name     string

	level    atomic.Int32
	additive atomic.Bool

	mu    sync.RWMutex
	sinks []Sink
}

func newLogger(registry *Registry, name string, parent *Logger, level Level) *Logger {
	l := &Logger{
		registry: registry,
		parent:   parent,
		name:     name,
	}
	l.level.Store(int32(level))
	l.additive.Store(true)
	return l
}

// Name returns the dotted name of the logger. The root logger's name is the
// empty string.
func (l *Logger) Name() string {
	return l.name
}

// Parent returns the parent logger, or nil for the root.
func (l *Logger) Parent() *Logger {
	return l.parent
}

// SetLevel sets the stored level. Setting LevelInherit on the root logger is
// a no-op: the root has no parent to inherit from and its stored level must
// stay concrete.
func (l *Logger) SetLevel(level Level) {
	if level == LevelInherit && l.parent == nil {
		return
	}
	l.level.Store(int32(level))
}

// Level returns the effective level: the stored level if concrete, otherwise
// the nearest ancestor's effective level. The root always stores a concrete
// level, so resolution terminates.
func (l *Logger) Level() Level {
	node := l
	for {
		level := Level(node.level.Load())
		if level != LevelInherit {
			return level
		}
		node = node.parent
	}
}

// Additive reports whether accepted entries propagate to ancestor sinks.
func (l *Logger) Additive() bool {
	return l.additive.Load()
}

// SetAdditive controls propagation of accepted entries to ancestor sinks.
// Loggers are additive by default.
func (l *Logger) SetAdditive(additive bool) {
	l.additive.Store(additive)
}

// AddSink attaches a sink to the logger. Fan-out order is insertion order.
// The same sink may be attached to any number of loggers.
func (l *Logger) AddSink(sink Sink) {
	if sink == nil {
		return
	}
	l.mu.Lock()
	l.sinks = append(l.sinks, sink)
	l.mu.Unlock()
}

// RemoveSink detaches the first occurrence of sink. Removing a sink that is
// not attached is a no-op.
func (l *Logger) RemoveSink(sink Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, s := range l.sinks {
		if s == sink {
			l.sinks = append(l.sinks[:i], l.sinks[i+1:]...)
			return
		}
	}
}

// Sinks returns a snapshot of the attached sinks in fan-out order.
func (l *Logger) Sinks() []Sink {
	l.mu.RLock()
	defer l.mu.RUnlock()
	sinks := make([]Sink, len(l.sinks))
	copy(sinks, l.sinks)
	return sinks
}

// Log submits an eager message at the given level, capturing the caller's
// source context. Messages below the effective level are discarded before
// any entry is built. LevelInherit is not a message level and is ignored.
func (l *Logger) Log(level Level, msg string) {
	l.emit(level, msg, callerSkip)
}

// Trace logs an eager message at LevelTrace.
func (l *Logger) Trace(msg string) { l.emit(LevelTrace, msg, callerSkip) }

// Debug logs an eager message at LevelDebug.
func (l *Logger) Debug(msg string) { l.emit(LevelDebug, msg, callerSkip) }

// Info logs an eager message at LevelInfo.
func (l *Logger) Info(msg string) { l.emit(LevelInfo, msg, callerSkip) }

// Warn logs an eager message at LevelWarn.
func (l *Logger) Warn(msg string) { l.emit(LevelWarn, msg, callerSkip) }

// Error logs an eager message at LevelError.
func (l *Logger) Error(msg string) { l.emit(LevelError, msg, callerSkip) }

// Fatal logs an eager message at LevelFatal. It does not terminate the
// process; LevelFatal is a severity, not a control-flow primitive.
func (l *Logger) Fatal(msg string) { l.emit(LevelFatal, msg, callerSkip) }

// WithLevel returns a deferred-emission stream bound to the given level.
// If the level does not pass the logger's effective level the returned
// stream is inert: appenders are no-ops and nothing is ever emitted.
func (l *Logger) WithLevel(level Level) *Stream {
	return l.stream(level, callerSkip)
}

// TraceWith returns a deferred-emission stream at LevelTrace.
func (l *Logger) TraceWith() *Stream { return l.stream(LevelTrace, callerSkip) }

// DebugWith returns a deferred-emission stream at LevelDebug.
func (l *Logger) DebugWith() *Stream { return l.stream(LevelDebug, callerSkip) }

// InfoWith returns a deferred-emission stream at LevelInfo.
func (l *Logger) InfoWith() *Stream { return l.stream(LevelInfo, callerSkip) }

// WarnWith returns a deferred-emission stream at LevelWarn.
func (l *Logger) WarnWith() *Stream { return l.stream(LevelWarn, callerSkip) }

// ErrorWith returns a deferred-emission stream at LevelError.
func (l *Logger) ErrorWith() *Stream { return l.stream(LevelError, callerSkip) }

// FatalWith returns a deferred-emission stream at LevelFatal.
func (l *Logger) FatalWith() *Stream { return l.stream(LevelFatal, callerSkip) }

func (l *Logger) emit(level Level, msg string, skip int) {
	if level == LevelInherit {
		return
	}
	if !level.Enabled(l.Level()) {
		return
	}
	l.logEntry(newEntry(Caller(skip), l, level, msg))
}

func (l *Logger) stream(level Level, skip int) *Stream {
	if level == LevelInherit || !level.Enabled(l.Level()) {
		return &Stream{}
	}
	return &Stream{entry: newEntry(Caller(skip), l, level, "")}
}

// logEntry fans the entry out to the sinks of the receiver and, while nodes
// are additive, of its ancestors. Sinks observe a read-only entry; each sink
// applies its own severity floor.
func (l *Logger) logEntry(e *Entry) {
	for node := l; node != nil; node = node.parent {
		for _, sink := range node.Sinks() {
			_ = sink.Log(e)
		}
		if !node.additive.Load() {
			return
		}
	}
}
