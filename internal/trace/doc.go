// Package trace is kremap's structured event log.
//
// Spans mark the driver run, each file and each pass over a file (parse,
// remap, write); points mark single events such as cache hits. Tracers are
// carried through the pipeline in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.Start(ctx, trace.ScopeFile, "file:a.kt")
//	defer span.End("")
//
// Implementations: a no-op tracer when tracing is off, StreamTracer for
// immediate text or NDJSON output, RingTracer keeping the last events in
// memory for dumping on failure, and MultiTracer to combine them.
//
// Levels filter by scope: phase keeps driver and pass spans, detail adds
// per-file spans, debug adds node-level points.
package trace
