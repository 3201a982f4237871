package nock

import "github.com/Native-Planet/nocktensors/internal/engine"

const defaultHeapCapacity = 4096

// Context is the mutable execution state a Nock evaluation runs
// against: a noun heap, a task stack, GC configuration and stats. It is
// the re-implementation of spec.md §9's design note that a
// library-quality implementation should parameterise the heap/stack/
// stats as an explicit context value instead of process-wide globals. A
// Context is not safe for concurrent use; callers needing isolated
// evaluations create one Context each.
type Context struct {
	vm *engine.VM
}

// NewContext constructs a Context with the given GC configuration and a
// default-sized heap and task stack.
func NewContext(cfg Config) *Context {
	return &Context{vm: engine.NewVM(cfg, defaultHeapCapacity, 0)}
}

// NewDefaultContext constructs a Context using DefaultConfig.
func NewDefaultContext() *Context {
	return NewContext(DefaultConfig())
}

// Eval computes *[subject formula] and returns the result as an
// external noun. It materialises both arguments into the context's
// heap, runs the trampoline to completion, and externalises the result.
func (c *Context) Eval(subject, formula Noun) (Noun, error) {
	dst, err := c.evalIndices(subject, formula)
	if err != nil {
		return nil, err
	}
	return engine.Externalise(c.vm.Heap, dst)
}

// EvalTraced behaves like Eval but also returns a TraceReport counting
// how many tasks of each kind the trampoline executed.
func (c *Context) EvalTraced(subject, formula Noun) (Noun, TraceReport, error) {
	s, err := c.vm.Materialise(subject)
	if err != nil {
		return nil, TraceReport{}, err
	}
	f, err := c.vm.Materialise(formula)
	if err != nil {
		return nil, TraceReport{}, err
	}
	dst, report, err := c.vm.EvalTraced(s, f)
	if err != nil {
		return nil, report, err
	}
	result, err := engine.Externalise(c.vm.Heap, dst)
	return result, report, err
}

func (c *Context) evalIndices(subject, formula Noun) (int, error) {
	s, err := c.vm.Materialise(subject)
	if err != nil {
		return 0, err
	}
	f, err := c.vm.Materialise(formula)
	if err != nil {
		return 0, err
	}
	return c.vm.Eval(s, f)
}

// GCStatus reports a read-only snapshot of the context's GC and
// allocator counters.
func (c *Context) GCStatus() Snapshot {
	return c.vm.GCStatus()
}

// RunGC manually triggers a standard or emergency collection.
func (c *Context) RunGC(emergency bool) Snapshot {
	return c.vm.RunGC(emergency)
}

// ConfigureGC updates the context's GC configuration and returns the
// resulting configuration.
func (c *Context) ConfigureGC(cfg Config) Config {
	c.vm.Cfg = cfg
	return c.vm.Cfg
}

// ResetMemory zeroes the heap, task stack and stats; every index
// previously returned by this context becomes invalid.
func (c *Context) ResetMemory() {
	c.vm.Reset()
}

// Print materialises n into the context's heap and renders it using the
// diagnostic format of spec.md §6.
func (c *Context) Print(n Noun) (string, error) {
	idx, err := c.vm.Materialise(n)
	if err != nil {
		return "", err
	}
	return engine.Print(c.vm.Heap, idx)
}

// Eval is the stateless convenience form of the core API: it builds a
// Context around a pooled task stack, evaluates once, and returns the
// stack to the pool before returning. Repeated calls do not share a heap;
// callers that need GC stats, tracing, or amortised allocation across many
// evaluations should use a Context directly.
func Eval(subject, formula Noun) (Noun, error) {
	c := newPooledDefaultContext()
	defer c.releasePooledStack()
	return c.Eval(subject, formula)
}

// Print is the stateless convenience form of the diagnostic printer.
func Print(n Noun) (string, error) {
	c := newPooledDefaultContext()
	defer c.releasePooledStack()
	return c.Print(n)
}

// newPooledDefaultContext builds a Context whose task stack is drawn from
// engine's shared TaskStack pool rather than freshly allocated, for the
// single-shot, build-and-discard usage of the package-level Eval/Print
// helpers above.
func newPooledDefaultContext() *Context {
	return &Context{vm: engine.NewPooledVM(DefaultConfig(), defaultHeapCapacity)}
}

// releasePooledStack returns a pooled-context's task stack to the shared
// pool. It must only be called on a Context obtained from
// newPooledDefaultContext, never on one returned by NewContext.
func (c *Context) releasePooledStack() {
	engine.ReleaseTaskStack(c.vm.Stack)
}
