package treelog

import (
	"sort"
	"strings"
	"sync"
)

// Registry owns every logger of one hierarchy, mapped by dotted name.
// Lookups lazily create the requested logger and all of its missing
// ancestors: every dot-separated prefix of a name becomes a real node. The
// registry grows monotonically; loggers live as long as the registry.
//
// A process-wide default registry is available through GetLogger and Root.
// Tests that need an isolated hierarchy should use NewRegistry or Reset.
type Registry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
	root    *Logger
}

// NewRegistry returns a registry holding a fresh hierarchy. The root logger
// exists from the start with a concrete stored level of DefaultLevel.
func NewRegistry() *Registry {
	r := &Registry{loggers: make(map[string]*Logger)}
	r.root = newLogger(r, rootName, nil, DefaultLevel)
	return r
}

// Root returns the root logger. It is always present and its stored level is
// always concrete.
func (r *Registry) Root() *Logger {
	return r.root
}

// Logger returns the unique logger for the dotted name, creating it and any
// missing ancestors on first use. Repeated calls with the same name return
// the identical instance. The empty name returns the root logger.
func (r *Registry) Logger(name string) *Logger {
	if name == rootName {
		return r.root
	}

	r.mu.RLock()
	l, ok := r.loggers[name]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getOrCreateLocked(name)
}

func (r *Registry) getOrCreateLocked(name string) *Logger {
	if name == rootName {
		return r.root
	}
	if l, ok := r.loggers[name]; ok {
		return l
	}

	parentName := rootName
	if i := strings.LastIndexByte(name, nameSeparator); i >= 0 {
		parentName = name[:i]
	}
	parent := r.getOrCreateLocked(parentName)

	l := newLogger(r, name, parent, LevelInherit)
	r.loggers[name] = l
	return l
}

// Names returns the sorted names of all known loggers, including the root's
// empty name.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.loggers)+1)
	names = append(names, rootName)
	for name := range r.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RefreshFormatters offers the full set of known logger names to every
// attached formatter that supports reconfiguration (see NameConfigurable).
// Call it once after the final logger topology is set up and before
// steady-state logging; it is not kept in sync automatically.
func (r *Registry) RefreshFormatters() {
	names := r.Names()

	r.mu.RLock()
	loggers := make([]*Logger, 0, len(r.loggers)+1)
	loggers = append(loggers, r.root)
	for _, l := range r.loggers {
		loggers = append(loggers, l)
	}
	r.mu.RUnlock()

	seen := make(map[Formatter]struct{})
	for _, l := range loggers {
		for _, sink := range l.Sinks() {
			carrier, ok := sink.(formatterCarrier)
			if !ok {
				continue
			}
			f := carrier.Formatter()
			if f == nil {
				continue
			}
			if _, done := seen[f]; done {
				continue
			}
			seen[f] = struct{}{}
			if nc, ok := f.(NameConfigurable); ok {
				nc.Configure(names)
			}
		}
	}
}

// Reset discards every logger except the root and restores the root to its
// initial state (DefaultLevel, additive, no sinks). Intended for test
// isolation; loggers handed out before the reset keep working but are no
// longer reachable by name.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loggers = make(map[string]*Logger)
	r.root.SetLevel(DefaultLevel)
	r.root.SetAdditive(true)
	r.root.mu.Lock()
	r.root.sinks = nil
	r.root.mu.Unlock()
}

// formatterCarrier is implemented by sinks that expose an attached
// formatter, allowing RefreshFormatters to reach it.
type formatterCarrier interface {
	Formatter() Formatter
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry backing GetLogger and Root.
func Default() *Registry {
	return defaultRegistry
}

// GetLogger returns the named logger from the default registry.
func GetLogger(name string) *Logger {
	return defaultRegistry.Logger(name)
}

// Root returns the default registry's root logger.
func Root() *Logger {
	return defaultRegistry.root
}
