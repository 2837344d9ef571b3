package treelog

import (
	"strconv"
	"testing"
)

// newBenchRegistry builds a hierarchy with a discarding sink at the root so
// benchmarks measure the emission path, not I/O.
func newBenchRegistry(level Level) *Registry {
	reg := NewRegistry()
	reg.Root().SetLevel(level)
	reg.Root().AddSink(NewWriterSink(nil))
	return reg
}

func BenchmarkEagerEmit(b *testing.B) {
	reg := newBenchRegistry(LevelTrace)
	l := reg.Logger("bench.worker")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("hello")
	}
}

func BenchmarkSuppressedEmit(b *testing.B) {
	reg := newBenchRegistry(LevelError)
	l := reg.Logger("bench.worker")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Debug("dropped before any allocation")
	}
}

func BenchmarkStreamEmit(b *testing.B) {
	reg := newBenchRegistry(LevelTrace)
	l := reg.Logger("bench.worker")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.InfoWith().Print("i=").Print(i).Send()
	}
}

func BenchmarkSuppressedStream(b *testing.B) {
	reg := newBenchRegistry(LevelError)
	l := reg.Logger("bench.worker")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.DebugWith().Print("dropped").Send()
	}
}

func BenchmarkRegistryLookup(b *testing.B) {
	reg := NewRegistry()
	reg.Logger("bench.hot.path")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.Logger("bench.hot.path")
	}
}

func BenchmarkDeepHierarchyEmit(b *testing.B) {
	for _, depth := range []int{1, 4, 8} {
		b.Run("depth_"+strconv.Itoa(depth), func(b *testing.B) {
			reg := newBenchRegistry(LevelTrace)
			name := "d0"
			for i := 1; i < depth; i++ {
				name += ".d" + strconv.Itoa(i)
			}
			l := reg.Logger(name)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l.Warn("climbs the tree")
			}
		})
	}
}
