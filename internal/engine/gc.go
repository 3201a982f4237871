package engine

import (
	"fmt"
	"os"
	"time"
)

// gc is the mark-compact collector of spec.md C7: mark from task-stack
// roots, relocate survivors by stable compaction, rewrite every pointer
// (including the roots themselves) through the resulting index map.
//
// Grounded on the teacher's pattern of a lightweight wrapper struct that
// observes a hot loop and keeps its own counters
// (interpreter/lfvm/instruction_statistics.go's statisticRunner),
// generalized here from "count executed opcodes" to "count and reclaim
// heap cells".
// RootSource is the root-set abstraction the collector marks and rewrites
// through. *TaskStack is the production implementation; tests substitute a
// mock to verify the collector's marking and rewriting contract in
// isolation from a live evaluator (see roots_mock.go).
type RootSource interface {
	Len() int
	TaskAt(i int) Task
	SetArgAt(i, argIdx int, v int32)
}

type gc struct {
	heap  *Heap
	stack RootSource
	cfg   *Config
	sts   *Stats
}

func newGC(h *Heap, s RootSource, cfg *Config, sts *Stats) *gc {
	return &gc{heap: h, stack: s, cfg: cfg, sts: sts}
}

// maybeCollect runs a standard or emergency collection when usage has
// crossed the configured thresholds. It is the allocator's probe hook,
// run before every allocation (see Heap.reserve).
func (g *gc) maybeCollect() error {
	h := g.heap
	capacity := h.Capacity()
	if capacity == 0 || !g.cfg.EnableGC {
		return nil
	}
	usage := float64(h.Free()) / float64(capacity)
	switch {
	case usage >= g.cfg.EmergencyThreshold:
		return g.collect(true, false)
	case usage >= g.cfg.GCThreshold:
		return g.collect(false, false)
	default:
		return nil
	}
}

// maybeGenerational runs the cheaper generational variant when invoked by
// the trampoline's fixed-step schedule and usage exceeds the generational
// fraction.
func (g *gc) maybeGenerational() error {
	h := g.heap
	if !g.cfg.EnableGC || h.Capacity() == 0 {
		return nil
	}
	usage := float64(h.Free()) / float64(h.Capacity())
	if usage >= g.cfg.GenerationalFraction {
		return g.collect(false, true)
	}
	return nil
}

// collect runs one mark-compact pass. emergency additionally requests
// heap growth afterwards if usage is still high; generational pre-marks
// old entries as roots-equivalent, admitting floating garbage among them.
func (g *gc) collect(emergency, generational bool) error {
	start := time.Now()
	h := g.heap
	n := h.Capacity()
	marked := make([]bool, n)

	if generational {
		for i := 0; i < h.Free(); i++ {
			if h.gen[i] >= g.cfg.MaxGeneration {
				g.markFrom(i, marked)
			}
		}
	}
	for i := 0; i < g.stack.Len(); i++ {
		task := g.stack.TaskAt(i)
		for _, a := range task.Arg {
			idx := int(a)
			if idx >= 0 && idx < h.Free() {
				g.markFrom(idx, marked)
			}
		}
	}

	newIndex := make([]int, n)
	next := 0
	for i := 0; i < h.Free(); i++ {
		if marked[i] {
			newIndex[i] = next
			next++
		} else {
			newIndex[i] = -1
		}
	}

	for i := 0; i < h.Free(); i++ {
		if !marked[i] {
			continue
		}
		ni := newIndex[i]
		h.tags[ni] = h.tags[i]
		if h.tags[i] == tagCell {
			h.x[ni] = uint64(newIndex[int(h.x[i])])
			h.y[ni] = uint64(newIndex[int(h.y[i])])
		} else {
			h.x[ni] = h.x[i]
			h.y[ni] = 0
		}
		gen := h.gen[i]
		if gen < g.cfg.MaxGeneration {
			gen++
		}
		h.gen[ni] = gen
	}
	freed := h.Free() - next
	h.free = next

	// Roots are updated in place: every index held by the task stack must
	// refer to a live entry under the new numbering (spec.md I1).
	for i := 0; i < g.stack.Len(); i++ {
		task := g.stack.TaskAt(i)
		for argIdx, a := range task.Arg {
			idx := int(a)
			if idx >= 0 && idx < n && marked[idx] {
				g.stack.SetArgAt(i, argIdx, int32(newIndex[idx]))
			}
		}
	}

	dur := time.Since(start)
	g.sts.recordCollection(emergency, generational, freed, dur)
	if g.cfg.Debug {
		fmt.Fprintf(os.Stderr, "gc: freed=%d emergency=%v generational=%v dur=%s\n", freed, emergency, generational, dur)
	}

	if emergency && g.cfg.AutoExpand {
		usage := float64(h.Free()) / float64(h.Capacity())
		if usage >= 0.9 {
			g.grow()
		}
	}
	return nil
}

// markFrom marks idx and, if it is a cell, transitively marks every
// reachable descendant via an explicit worklist (no host recursion).
func (g *gc) markFrom(idx int, marked []bool) {
	h := g.heap
	work := []int{idx}
	for len(work) > 0 {
		i := work[len(work)-1]
		work = work[:len(work)-1]
		if i < 0 || i >= h.Free() || marked[i] {
			continue
		}
		marked[i] = true
		if h.tags[i] == tagCell {
			work = append(work, int(h.x[i]), int(h.y[i]))
		}
	}
}

// growOnly reallocates the heap to a larger capacity without compacting.
// It is the only collection variant safe to run while indices are live
// that the task stack does not root, such as during Materialise.
func (g *gc) growOnly() {
	g.grow()
}

// grow reallocates the heap's backing arrays to a larger capacity,
// preserving every index (growth is never combined with compaction, so no
// remapping is needed).
func (g *gc) grow() {
	h := g.heap
	newCap := int(float64(h.Capacity()) * g.cfg.GrowthFactor)
	if g.cfg.MaxCapacity > 0 && newCap > g.cfg.MaxCapacity {
		newCap = g.cfg.MaxCapacity
	}
	if newCap <= h.Capacity() {
		return
	}
	tags := make([]tag, newCap)
	x := make([]uint64, newCap)
	y := make([]uint64, newCap)
	gen := make([]uint8, newCap)
	copy(tags, h.tags)
	copy(x, h.x)
	copy(y, h.y)
	copy(gen, h.gen)
	h.tags, h.x, h.y, h.gen = tags, x, y, gen
	g.sts.recordExpansion()
}
