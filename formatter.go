package treelog

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// Formatter turns an entry into the text a sink writes. Implementations must
// be safe for concurrent use; entries are read-only.
type Formatter interface {
	Format(e *Entry) string
}

// NameConfigurable is implemented by formatters that want to see the full
// set of known logger names, e.g. to compute a column width for alignment.
// Registry.RefreshFormatters calls Configure on every attached formatter
// implementing it.
type NameConfigurable interface {
	Configure(names []string)
}

// DefaultFormatter renders "<LEVEL> - <message>\n". This layout is the
// compatibility contract for sinks constructed without an explicit
// formatter.
type DefaultFormatter struct{}

// Format implements Formatter.
func (DefaultFormatter) Format(e *Entry) string {
	return e.Level.String() + " - " + e.Message + "\n"
}

// FieldKind selects which entry field a FieldSpec renders.
type FieldKind int

const (
	// FieldFileName renders the source file name without its directory.
	FieldFileName FieldKind = iota
	// FieldFilePath renders the full source file path.
	FieldFilePath
	// FieldLine renders the source line number.
	FieldLine
	// FieldFunction renders the function name.
	FieldFunction
	// FieldLoggerName renders the dotted name of the owning logger.
	FieldLoggerName
	// FieldMessage renders the message payload.
	FieldMessage
	// FieldLevel renders the entry level.
	FieldLevel
	// FieldWallTime renders milliseconds elapsed since process start.
	FieldWallTime
)

// Justification controls which side of a padded field the content sits on.
type Justification int

const (
	// JustifyRight pads on the left.
	JustifyRight Justification = iota
	// JustifyLeft pads on the right.
	JustifyLeft
)

// FieldSpec renders one entry field with optional padding. Content wider
// than Width is never truncated. A zero Fill pads with spaces.
type FieldSpec struct {
	Kind    FieldKind
	Width   int
	Justify Justification
	Fill    rune
}

// Field returns a FieldSpec for kind with no padding.
func Field(kind FieldKind) FieldSpec {
	return FieldSpec{Kind: kind}
}

// TimeSpec renders the entry timestamp with a time.Time layout string.
type TimeSpec struct {
	Layout string
}

// Timestamp returns a TimeSpec for the given layout.
func Timestamp(layout string) TimeSpec {
	return TimeSpec{Layout: layout}
}

// TemplateFormatter renders an entry by concatenating a fixed sequence of
// elements in declaration order. Elements may be FieldSpec values, TimeSpec
// values, or arbitrary literals rendered through their default fmt
// representation. No newline is appended unless included as a literal.
type TemplateFormatter struct {
	elements []any

	// Widest known logger name, cached by Configure for column alignment.
	nameWidth atomic.Int32
}

// NewTemplateFormatter builds a template formatter from elements, e.g.
//
//	treelog.NewTemplateFormatter(
//		treelog.Field(treelog.FieldLevel), " - ",
//		treelog.Field(treelog.FieldMessage), "\n",
//	)
func NewTemplateFormatter(elements ...any) *TemplateFormatter {
	return &TemplateFormatter{elements: elements}
}

// Configure implements NameConfigurable: it caches the widest of the given
// logger names. FieldLoggerName elements pad to at least that width, so a
// column of names lines up. Not refreshed automatically; see
// Registry.RefreshFormatters.
func (f *TemplateFormatter) Configure(names []string) {
	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}
	f.nameWidth.Store(int32(width))
}

// Format implements Formatter.
func (f *TemplateFormatter) Format(e *Entry) string {
	var b strings.Builder
	for _, element := range f.elements {
		switch v := element.(type) {
		case FieldSpec:
			b.WriteString(f.renderField(v, e))
		case TimeSpec:
			b.WriteString(e.Time.Format(v.Layout))
		default:
			fmt.Fprint(&b, v)
		}
	}
	return b.String()
}

func (f *TemplateFormatter) renderField(spec FieldSpec, e *Entry) string {
	var content string
	switch spec.Kind {
	case FieldFileName:
		content = filepath.Base(e.File)
	case FieldFilePath:
		content = e.File
	case FieldLine:
		content = strconv.Itoa(e.Line)
	case FieldFunction:
		content = e.Function
	case FieldLoggerName:
		if e.Logger != nil {
			content = e.Logger.Name()
		}
	case FieldMessage:
		content = e.Message
	case FieldLevel:
		content = e.Level.String()
	case FieldWallTime:
		content = strconv.FormatInt(e.Time.Sub(startTime()).Milliseconds(), 10)
	}

	width := spec.Width
	if spec.Kind == FieldLoggerName {
		if cached := int(f.nameWidth.Load()); cached > width {
			width = cached
		}
	}
	return pad(content, width, spec.Justify, spec.Fill)
}

// pad grows s to the minimum width with the fill rune on the side opposite
// the justification. Content wider than width is returned unchanged.
func pad(s string, width int, justify Justification, fill rune) string {
	if len(s) >= width {
		return s
	}
	if fill == 0 {
		fill = ' '
	}
	padding := strings.Repeat(string(fill), width-len(s))
	if justify == JustifyLeft {
		return s + padding
	}
	return padding + s
}

var (
	startOnce sync.Once
	start     time.Time
)

// startTime returns the process-wide start instant used by FieldWallTime,
// captured once at first use.
func startTime() time.Time {
	startOnce.Do(func() {
		start = time.Now()
	})
	return start
}
