package treelog

import (
	"fmt"
	"strings"
)

// Stream accumulates a log message for a single (logger, level, context)
// binding and emits it exactly once when Msg or Send is called. Streams are
// returned by the *With methods on Logger; an inert stream (level filtered
// out, or already sent) accepts appends and terminal calls as no-ops.
//
// Stream performs no level filtering of its own: filtering happened when the
// stream was created. A Stream must not be copied; pass the pointer and call
// the terminal method exactly once.
type Stream struct {
	entry *Entry
	buf   strings.Builder
}

// Enabled reports whether the stream will emit on its terminal call.
func (s *Stream) Enabled() bool {
	return s != nil && s.entry != nil
}

// Print appends the default textual rendering of vals to the message,
// following fmt.Fprint spacing rules.
func (s *Stream) Print(vals ...any) *Stream {
	if s.Enabled() {
		fmt.Fprint(&s.buf, vals...)
	}
	return s
}

// Printf appends a formatted fragment to the message.
func (s *Stream) Printf(format string, args ...any) *Stream {
	if s.Enabled() {
		fmt.Fprintf(&s.buf, format, args...)
	}
	return s
}

// Stringer appends val.String() to the message. A nil val is ignored.
func (s *Stream) Stringer(val fmt.Stringer) *Stream {
	if s.Enabled() && val != nil {
		s.buf.WriteString(val.String())
	}
	return s
}

// Msg appends msg and emits the entry. Calling any terminal method again is
// a no-op.
func (s *Stream) Msg(msg string) {
	if !s.Enabled() {
		return
	}
	s.buf.WriteString(msg)
	s.Send()
}

// Send finalizes the accumulated text as the entry's message and submits the
// entry for sink fan-out, exactly once. After Send the stream is inert.
func (s *Stream) Send() {
	if !s.Enabled() {
		return
	}
	entry := s.entry
	s.entry = nil
	entry.Message = s.buf.String()
	entry.Logger.logEntry(entry)
}
