package treelog

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerIdentity(t *testing.T) {
	reg := NewRegistry()

	a := reg.Logger("app.db")
	b := reg.Logger("app.db")
	require.Same(t, a, b)

	require.Same(t, reg.Root(), reg.Logger(""))
}

func TestAncestorChainCreation(t *testing.T) {
	reg := NewRegistry()

	leaf := reg.Logger("app.module.sub")
	require.Equal(t, "app.module.sub", leaf.Name())

	mid := leaf.Parent()
	require.NotNil(t, mid)
	require.Equal(t, "app.module", mid.Name())
	require.Same(t, mid, reg.Logger("app.module"))

	top := mid.Parent()
	require.NotNil(t, top)
	require.Equal(t, "app", top.Name())
	require.Same(t, top, reg.Logger("app"))

	require.Same(t, reg.Root(), top.Parent())
	require.Nil(t, reg.Root().Parent())
}

func TestAncestorsCreatedOnce(t *testing.T) {
	reg := NewRegistry()

	// Creating the deep name first must not leave a second "app" node behind
	// when "app" is requested afterwards.
	deep := reg.Logger("app.x.y")
	require.Same(t, deep.Parent().Parent(), reg.Logger("app.x").Parent())
	require.Same(t, reg.Logger("app"), deep.Parent().Parent())
}

func TestNames(t *testing.T) {
	reg := NewRegistry()
	reg.Logger("b")
	reg.Logger("a.sub")

	require.Equal(t, []string{"", "a", "a.sub", "b"}, reg.Names())
}

func TestReset(t *testing.T) {
	reg := NewRegistry()
	old := reg.Logger("app")
	reg.Root().SetLevel(LevelTrace)
	reg.Root().SetAdditive(false)
	reg.Root().AddSink(NewWriterSink(nil))

	reg.Reset()

	require.Equal(t, []string{""}, reg.Names())
	require.Equal(t, DefaultLevel, reg.Root().Level())
	require.True(t, reg.Root().Additive())
	require.Empty(t, reg.Root().Sinks())
	require.NotSame(t, old, reg.Logger("app"))
}

func TestConcurrentLookupNoDuplicates(t *testing.T) {
	reg := NewRegistry()

	const goroutines = 32
	results := make([]*Logger, goroutines)

	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer done.Done()
			start.Wait()
			// Overlapping ancestor chains from all goroutines.
			results[i] = reg.Logger(fmt.Sprintf("svc.worker.%d", i%4))
		}(i)
	}
	start.Done()
	done.Wait()

	for i := 0; i < goroutines; i++ {
		require.Same(t, reg.Logger(fmt.Sprintf("svc.worker.%d", i%4)), results[i])
	}
	require.Same(t, reg.Logger("svc.worker"), results[0].Parent())
}

func TestDefaultRegistry(t *testing.T) {
	defer Default().Reset()

	l := GetLogger("pkgtest.default")
	require.Same(t, l, GetLogger("pkgtest.default"))
	require.Same(t, Root(), Default().Root())
	require.Same(t, Root(), l.Parent().Parent())
}

func TestRefreshFormatters(t *testing.T) {
	reg := NewRegistry()
	reg.Logger("app.service.handler")

	f := NewTemplateFormatter(Field(FieldLoggerName))
	sink := NewWriterSink(nil)
	sink.SetFormatter(f)
	reg.Logger("app").AddSink(sink)

	reg.RefreshFormatters()

	// Padded to the widest known name, "app.service.handler" (19 chars).
	e := newEntry(EntryContext{}, reg.Logger("app"), LevelInfo, "m")
	require.Equal(t, strings.Repeat(" ", 16)+"app", f.Format(e))
}
