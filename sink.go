package treelog

import (
	"bufio"
	"io"
	"os"
	"sync"

	"go.uber.org/atomic"
)

// Sink is the terminal destination of rendered entries. Implementations must
// be safe for concurrent use from any number of loggers; a sink may be
// attached to several loggers at once.
//
// Log applies the sink's own severity floor before writing, so one physical
// destination can receive a stricter subset than the loggers emit. Write
// failures are returned as-is: the core neither retries nor fails over.
type Sink interface {
	Log(e *Entry) error
}

// sinkCore carries the severity floor and the attached formatter shared by
// the built-in sinks. The zero floor is LevelAll.
type sinkCore struct {
	level atomic.Int32

	fmu       sync.RWMutex
	formatter Formatter
}

// Level returns the sink's severity floor.
func (c *sinkCore) Level() Level {
	return Level(c.level.Load())
}

// SetLevel sets the sink's severity floor. Entries below it are dropped even
// when a logger forwards them.
func (c *sinkCore) SetLevel(level Level) {
	c.level.Store(int32(level))
}

// Formatter returns the attached formatter.
func (c *sinkCore) Formatter() Formatter {
	c.fmu.RLock()
	defer c.fmu.RUnlock()
	return c.formatter
}

// SetFormatter replaces the attached formatter. A nil formatter restores the
// default "<LEVEL> - <message>\n" layout.
func (c *sinkCore) SetFormatter(f Formatter) {
	if f == nil {
		f = DefaultFormatter{}
	}
	c.fmu.Lock()
	c.formatter = f
	c.fmu.Unlock()
}

func (c *sinkCore) accepts(e *Entry) bool {
	return e.Level.Enabled(c.Level())
}

// WriterSink renders entries and writes them to an io.Writer, one write call
// per entry so concurrent emissions never interleave mid-message. Writes are
// not buffered: each entry reaches the writer immediately.
type WriterSink struct {
	sinkCore

	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a sink writing rendered entries to w with the
// default formatter and a floor of LevelAll. A nil writer discards output.
func NewWriterSink(w io.Writer) *WriterSink {
	if w == nil {
		w = io.Discard
	}
	s := &WriterSink{w: w}
	s.SetFormatter(DefaultFormatter{})
	return s
}

// Log implements Sink.
func (s *WriterSink) Log(e *Entry) error {
	if !s.accepts(e) {
		return nil
	}
	text := s.Formatter().Format(e)

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, text)
	return err
}

// FileSink renders entries into a buffered file, created or truncated at
// construction. Unlike WriterSink, writes may sit in the buffer until Flush
// or Close.
type FileSink struct {
	sinkCore

	mu   sync.Mutex
	file *os.File
	buf  *bufio.Writer
}

// NewFileSink creates or truncates the file at path and returns a sink
// writing rendered entries to it.
func NewFileSink(path string) (*FileSink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	s := &FileSink{file: file, buf: bufio.NewWriter(file)}
	s.SetFormatter(DefaultFormatter{})
	return s, nil
}

// Log implements Sink.
func (s *FileSink) Log(e *Entry) error {
	if !s.accepts(e) {
		return nil
	}
	text := s.Formatter().Format(e)

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.buf.WriteString(text)
	return err
}

// Flush forces buffered entries out to the file.
func (s *FileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Flush()
}

// Close flushes and closes the underlying file. The sink must not be used
// afterwards. It's safe to call Close multiple times; later calls report the
// file as already closed.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.buf.Flush(); err != nil {
		_ = s.file.Close()
		return err
	}
	return s.file.Close()
}
