package treelog

import (
	"runtime"
	"time"
)

// EntryContext records where an entry was logged. It is captured at the call
// site and consumed when the entry is built.
type EntryContext struct {
	// File is the full path of the source file.
	File string
	// Line is the line number within File.
	Line int
	// Function is the fully qualified function name, may be empty.
	Function string
}

// Caller captures the context of the caller skip frames up the stack.
// skip follows the runtime.Caller convention: 0 is the caller of Caller.
func Caller(skip int) EntryContext {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return EntryContext{}
	}
	ctx := EntryContext{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		ctx.Function = fn.Name()
	}
	return ctx
}

// Entry is one immutable record of a logging event. The timestamp is fixed
// at construction; the message is set exactly once before any sink sees the
// entry. The Logger reference is informational and does not extend the
// logger's lifetime in any way.
type Entry struct {
	EntryContext

	// Time is the capture timestamp.
	Time time.Time

	// Logger is the logger the entry was submitted to.
	Logger *Logger

	// Level is the concrete severity of the entry, never LevelInherit.
	Level Level

	// Message is the rendered text payload.
	Message string
}

func newEntry(ctx EntryContext, logger *Logger, level Level, msg string) *Entry {
	return &Entry{
		EntryContext: ctx,
		Time:         time.Now(),
		Logger:       logger,
		Level:        level,
		Message:      msg,
	}
}
