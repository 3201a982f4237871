package nock

import "github.com/Native-Planet/nocktensors/internal/engine"

// Snapshot is a read-only view of GC and allocator counters at a point
// in time: usage, capacity, collection counts, and timing.
type Snapshot = engine.Snapshot

// TraceReport summarises one Eval call's task-kind mix and final GC
// state, returned by EvalTraced.
type TraceReport = engine.TraceReport
