// Package zapsink bridges treelog entries into uber-go/zap. Entries are
// written straight to a zapcore.Core with the entry's own capture time and
// source location, so the hierarchy's fan-out decisions stay in treelog and
// zap only does encoding and output.
package zapsink

import (
	"io"
	"os"

	"go.uber.org/atomic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/treelog/treelog"
)

var _ treelog.Sink = (*Sink)(nil)

// Sink forwards entries to a zapcore.Core. The zero floor is
// treelog.LevelAll; entries below the floor are dropped locally.
type Sink struct {
	core  zapcore.Core
	level atomic.Int32
}

// config collects construction options before the core is built.
type config struct {
	output io.Writer
	core   zapcore.Core
}

// Option configures a Sink during construction.
type Option func(*config, *Sink)

// WithOutput directs the default JSON core at w instead of os.Stderr.
// Ignored when WithCore is also given.
func WithOutput(w io.Writer) Option {
	return func(c *config, _ *Sink) {
		c.output = w
	}
}

// WithCore replaces the default JSON core entirely.
func WithCore(core zapcore.Core) Option {
	return func(c *config, _ *Sink) {
		c.core = core
	}
}

// WithLevel sets the sink's severity floor.
func WithLevel(level treelog.Level) Option {
	return func(_ *config, s *Sink) {
		s.level.Store(int32(level))
	}
}

// New constructs a zap-backed sink. By default it encodes entries as
// production JSON to os.Stderr and passes every entry.
func New(opts ...Option) *Sink {
	s := &Sink{}
	c := &config{output: os.Stderr}
	for _, opt := range opts {
		opt(c, s)
	}
	if c.core == nil {
		c.core = zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(c.output),
			zapcore.DebugLevel,
		)
	}
	s.core = c.core
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

// Log implements treelog.Sink. Writing through the core directly keeps zap's
// fatal-exit behavior out of the path: LevelFatal encodes like any other
// level.
func (s *Sink) Log(e *treelog.Entry) error {
	if !e.Level.Enabled(s.Level()) {
		return nil
	}

	ent := zapcore.Entry{
		Level:   zapLevel(e.Level),
		Time:    e.Time,
		Message: e.Message,
		Caller:  zapcore.NewEntryCaller(0, e.File, e.Line, e.File != ""),
	}
	if e.Logger != nil {
		ent.LoggerName = e.Logger.Name()
	}
	if !s.core.Enabled(ent.Level) {
		return nil
	}

	var fields []zapcore.Field
	if e.Function != "" {
		fields = append(fields, zap.String("function", e.Function))
	}
	return s.core.Write(ent, fields)
}

// Sync flushes the underlying core.
func (s *Sink) Sync() error {
	return s.core.Sync()
}

// zapLevel maps a treelog message level onto zap's scale. Zap has no trace
// level; trace entries are written at debug.
func zapLevel(level treelog.Level) zapcore.Level {
	switch level {
	case treelog.LevelTrace, treelog.LevelDebug:
		return zapcore.DebugLevel
	case treelog.LevelInfo:
		return zapcore.InfoLevel
	case treelog.LevelWarn:
		return zapcore.WarnLevel
	case treelog.LevelError:
		return zapcore.ErrorLevel
	case treelog.LevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.DebugLevel
	}
}
