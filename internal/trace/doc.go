// Package trace records what the renderer does, for debugging slow or
// surprising renders.
//
// Enable it from the command line:
//
//	ftml render --trace=- --trace-level=phase page.ftml
//
// Implementations:
//
//   - Nop: disabled tracer, zero overhead
//   - StreamTracer: writes every event as it happens (text or NDJSON)
//   - RingTracer: keeps the last N events for a dump after a crash
//   - MultiTracer: fans out to several tracers
//
// Levels: LevelOff, LevelError, LevelPhase (render calls and passes),
// LevelDetail (files of a batch), LevelDebug (single warnings).
//
// Scopes, coarse to fine: ScopeDriver, ScopePass, ScopeFile, ScopeNode.
//
// Tracers travel through the pipeline in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", parentID)
//	defer span.End("")
package trace
