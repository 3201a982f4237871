package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/dsnet/golib/unitconv"
)

const recentTimesWindow = 16

// Stats accumulates allocator and collector counters for a Heap. It is
// read through snapshotting accessors rather than exposed directly, so
// callers never observe a torn update mid-collection.
type Stats struct {
	highWaterMark        int
	collections          int
	emergencyCollections int
	generationalRuns     int
	expansions           int
	totalCellsFreed       int
	lastTimeNS           int64
	totalTimeNS          int64
	timedCollections     int
	recentTimesNS        [recentTimesWindow]int64
	recentCount          int
	recentNext           int
}

// Snapshot is an immutable read of Stats at a point in time.
type Snapshot struct {
	Usage                int
	Capacity             int
	HighWaterMark        int
	Collections          int
	EmergencyCollections int
	GenerationalRuns     int
	Expansions           int
	TotalCellsFreed      int
	LastTimeMS           float64
	AvgTimeMS            float64
	RecentTimesMS        []float64
}

func (s *Stats) recordHighWater(free int) {
	if free > s.highWaterMark {
		s.highWaterMark = free
	}
}

func (s *Stats) recordCollection(emergency, generational bool, freed int, d time.Duration) {
	s.collections++
	if emergency {
		s.emergencyCollections++
	}
	if generational {
		s.generationalRuns++
	}
	s.totalCellsFreed += freed
	ns := d.Nanoseconds()
	s.lastTimeNS = ns
	s.totalTimeNS += ns
	s.timedCollections++
	s.recentTimesNS[s.recentNext] = ns
	s.recentNext = (s.recentNext + 1) % recentTimesWindow
	if s.recentCount < recentTimesWindow {
		s.recentCount++
	}
}

func (s *Stats) recordExpansion() { s.expansions++ }

func (s *Stats) reset() { *s = Stats{} }

func msFromNS(ns int64) float64 { return float64(ns) / 1e6 }

func (s *Stats) snapshot(usage, capacity int) Snapshot {
	avg := 0.0
	if s.timedCollections > 0 {
		avg = msFromNS(s.totalTimeNS / int64(s.timedCollections))
	}
	recent := make([]float64, s.recentCount)
	for i := 0; i < s.recentCount; i++ {
		// recentNext points one past the most recently written slot when
		// the window hasn't wrapped; walk backwards from there.
		idx := (s.recentNext - 1 - i + recentTimesWindow) % recentTimesWindow
		recent[i] = msFromNS(s.recentTimesNS[idx])
	}
	return Snapshot{
		Usage:                usage,
		Capacity:             capacity,
		HighWaterMark:        s.highWaterMark,
		Collections:          s.collections,
		EmergencyCollections: s.emergencyCollections,
		GenerationalRuns:     s.generationalRuns,
		Expansions:           s.expansions,
		TotalCellsFreed:      s.totalCellsFreed,
		LastTimeMS:           msFromNS(s.lastTimeNS),
		AvgTimeMS:            avg,
		RecentTimesMS:        recent,
	}
}

// TraceReport summarises one Eval call for diagnostic/benchmark use,
// grounded on the teacher's instruction_statistics.go: a fixed table of
// per-kind counts alongside a final GC snapshot, rather than a per-step
// log (that granularity is Config.Debug's stderr trace, after
// instruction_logger.go).
type TraceReport struct {
	Steps      int
	KindCounts [int(KindGuard) + 1]int
	GC         Snapshot
}

// String renders a one-line-per-kind breakdown.
func (r TraceReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "steps=%d\n", r.Steps)
	for k, n := range r.KindCounts {
		if n == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %-10s %d\n", TaskKind(k), n)
	}
	fmt.Fprintf(&b, "%s", r.GC)
	return b.String()
}

// String renders a human-readable summary, grounded on the teacher's
// throughput-formatting idiom in ct/driver/stats.go.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "usage=%s/%s high_water=%s collections=%d (emergency=%d, generational=%d) expansions=%d freed=%s\n",
		unitconv.FormatPrefix(float64(s.Usage), unitconv.SI, 0),
		unitconv.FormatPrefix(float64(s.Capacity), unitconv.SI, 0),
		unitconv.FormatPrefix(float64(s.HighWaterMark), unitconv.SI, 0),
		s.Collections, s.EmergencyCollections, s.GenerationalRuns,
		s.Expansions,
		unitconv.FormatPrefix(float64(s.TotalCellsFreed), unitconv.SI, 0),
	)
	fmt.Fprintf(&b, "last=%.3fms avg=%.3fms", s.LastTimeMS, s.AvgTimeMS)
	return b.String()
}
