// Package treelog provides a hierarchy of named loggers with inheritable
// severity thresholds, additive propagation to ancestor sinks, and pluggable
// formatting.
//
// Key features
//   - Dotted logger names form a tree: the parent of "app.db.tx" is "app.db",
//     created on demand, rooted at the unnamed root logger
//   - Per-logger levels with an Inherit sentinel that defers to the parent
//   - Sinks (writers, files, zerolog/zap bridges) attached anywhere in the
//     tree; additive loggers forward accepted entries to ancestor sinks
//   - Composable template formatters built from field renderers, timestamp
//     renderers and literals, with width/justification/fill padding
//   - Deferred-emission streams: accumulate with Print/Printf, emit exactly
//     once on Msg or Send
//
// Typical usage
//
//	reg := treelog.NewRegistry()
//	sink := treelog.NewWriterSink(os.Stderr)
//	reg.Root().AddSink(sink)
//
//	log := reg.Logger("app.db")
//	log.SetLevel(treelog.LevelDebug)
//	log.Info("connected")
//	log.DebugWith().Print("rows=").Print(42).Send()
package treelog
