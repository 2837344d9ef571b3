// Package zerosink bridges treelog entries into rs/zerolog. The sink maps
// an entry's fixed metadata (logger name, source location, capture time) to
// zerolog structured fields and emits the message through a zerolog.Logger,
// so hierarchies can fan out to JSON destinations without a treelog
// formatter.
package zerosink

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/treelog/treelog"
)

var _ treelog.Sink = (*Sink)(nil)

// Sink forwards entries to a zerolog logger. The zero floor is
// treelog.LevelAll; entries below the floor are dropped locally.
type Sink struct {
	logger zerolog.Logger
	level  atomic.Int32
}

// Option configures a Sink during construction.
type Option func(*Sink)

// WithOutput directs the underlying zerolog logger at w instead of
// os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(s *Sink) {
		s.logger = s.logger.Output(w)
	}
}

// WithLevel sets the sink's severity floor.
func WithLevel(level treelog.Level) Option {
	return func(s *Sink) {
		s.level.Store(int32(level))
	}
}

// WithSetupFn applies fn to the underlying zerolog logger, for settings not
// covered by the other options.
func WithSetupFn(fn func(logger zerolog.Logger) zerolog.Logger) Option {
	return func(s *Sink) {
		s.logger = fn(s.logger)
	}
}

// New constructs a zerolog-backed sink. By default it writes to os.Stderr
// and passes every entry.
func New(opts ...Option) *Sink {
	s := &Sink{logger: zerolog.New(os.Stderr)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Level returns the sink's severity floor.
func (s *Sink) Level() treelog.Level {
	return treelog.Level(s.level.Load())
}

// SetLevel sets the sink's severity floor.
func (s *Sink) SetLevel(level treelog.Level) {
	s.level.Store(int32(level))
}

// Log implements treelog.Sink.
func (s *Sink) Log(e *treelog.Entry) error {
	if !e.Level.Enabled(s.Level()) {
		return nil
	}

	evt := s.logger.WithLevel(zerologLevel(e.Level)).
		Time(zerolog.TimestampFieldName, e.Time)
	if e.Logger != nil && e.Logger.Name() != "" {
		evt = evt.Str("logger", e.Logger.Name())
	}
	if e.File != "" {
		evt = evt.Str("file", e.File).Int("line", e.Line)
	}
	if e.Function != "" {
		evt = evt.Str("function", e.Function)
	}
	evt.Msg(e.Message)
	return nil
}

// zerologLevel maps a treelog message level onto zerolog's scale. Emission
// through Logger.WithLevel never terminates the process, even at fatal.
func zerologLevel(level treelog.Level) zerolog.Level {
	switch level {
	case treelog.LevelTrace:
		return zerolog.TraceLevel
	case treelog.LevelDebug:
		return zerolog.DebugLevel
	case treelog.LevelInfo:
		return zerolog.InfoLevel
	case treelog.LevelWarn:
		return zerolog.WarnLevel
	case treelog.LevelError:
		return zerolog.ErrorLevel
	case treelog.LevelFatal:
		return zerolog.FatalLevel
	default:
		return zerolog.NoLevel
	}
}
