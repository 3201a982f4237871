package engine

// VM bundles a Heap, TaskStack, configuration and stats into the single
// mutable execution context a Nock evaluation runs against. Per spec.md
// §9's design note, this is an explicit interpreter-context value rather
// than global mutable state: a goroutine that wants its own nested
// evaluation creates its own VM. A single VM is not safe for concurrent
// use, mirroring the teacher's *context discipline
// (interpreter/lfvm/interpreter.go's context struct).
type VM struct {
	Heap  *Heap
	Stack *TaskStack
	Cfg   Config
	Sts   *Stats

	steps int
	gc    *gc

	// onStep, when set, is invoked with each task's kind immediately
	// before it executes. It exists only to support EvalTraced's per-kind
	// counting (interpreter.go) and plays no role in an
	// ordinary Eval call.
	onStep func(TaskKind)
}

// NewVM constructs a VM with the given configuration and initial
// capacities.
func NewVM(cfg Config, heapCapacity, stackCapacity int) *VM {
	return newVM(cfg, heapCapacity, NewTaskStack(stackCapacity))
}

// NewPooledVM constructs a VM whose task stack is drawn from the shared
// TaskStack pool (AcquireTaskStack in stack.go) instead of freshly
// allocated, for short-lived VMs built and discarded on every call such as
// the package-level nock.Eval/nock.Print convenience forms. The caller
// must return the stack with ReleaseTaskStack once the VM is discarded;
// Reset alone does not return it to the pool.
func NewPooledVM(cfg Config, heapCapacity int) *VM {
	return newVM(cfg, heapCapacity, AcquireTaskStack())
}

func newVM(cfg Config, heapCapacity int, stack *TaskStack) *VM {
	sts := &Stats{}
	vm := &VM{
		Cfg:   cfg,
		Sts:   sts,
		Stack: stack,
	}
	vm.Heap = NewHeap(heapCapacity, &vm.Cfg, sts)
	vm.gc = newGC(vm.Heap, vm.Stack, &vm.Cfg, sts)
	vm.Heap.probe = vm.probe
	return vm
}

// probe is the allocator's safety-net hook: Heap.reserve runs it before
// every allocation. The trampoline's fixed-step schedule calls the
// generational collector directly instead (see interpreter.go).
func (vm *VM) probe() error {
	return vm.gc.maybeCollect()
}

// Reset zeroes the heap, task stack and stats; all prior indices become
// invalid.
func (vm *VM) Reset() {
	vm.Heap.Reset()
	vm.Stack.Reset()
	vm.steps = 0
}

// growProbe is installed as the heap's probe hook while Materialise is
// building a noun from outside the heap. The builder's in-progress
// children are ordinary Go locals, not task-stack roots, so a compacting
// collection during that window could discard them; only capacity growth
// (which preserves every index) is safe to run there.
func (vm *VM) growProbe() error {
	if !vm.Cfg.AutoExpand || !vm.Cfg.EnableGC {
		return nil
	}
	capacity := vm.Heap.Capacity()
	if capacity == 0 {
		return nil
	}
	usage := float64(vm.Heap.Free()) / float64(capacity)
	if usage < vm.Cfg.EmergencyThreshold {
		return nil
	}
	vm.gc.growOnly()
	return nil
}

// Materialise maps an external noun into the VM's heap. GC is restricted
// to growth for the duration of the call; see growProbe.
func (vm *VM) Materialise(node External) (int, error) {
	prev := vm.Heap.probe
	vm.Heap.probe = vm.growProbe
	defer func() { vm.Heap.probe = prev }()
	return Materialise(vm.Heap, node, vm.Cfg.MaxDepth)
}

// guard temporarily roots up to five indices on the task stack for the
// duration of an allocation the evaluator issues mid-dispatch, after the
// triggering task has already been popped. Without it those indices would
// be plain Go locals invisible to the collector. Because GC rewrites task
// args in place, callers must re-read the guard's args after any
// allocation made while it is held rather than trust previously read
// copies, which may have been relocated.
type guard struct {
	vm  *VM
	pos int
}

func (vm *VM) newGuard(a0, a1, a2, a3, a4 int32) (*guard, error) {
	if err := vm.Stack.Push(KindGuard, a0, a1, a2, a3, a4); err != nil {
		return nil, err
	}
	return &guard{vm: vm, pos: vm.Stack.Len() - 1}, nil
}

func (g *guard) set(i int, v int32) { g.vm.Stack.SetArgAt(g.pos, i, v) }

func (g *guard) args() [5]int32 { return g.vm.Stack.TaskAt(g.pos).Arg }

func (g *guard) release() { _, _ = g.vm.Stack.Pop() }

// RunGC triggers a manual collection, standard or emergency.
func (vm *VM) RunGC(emergency bool) Snapshot {
	if emergency {
		_ = vm.gc.collect(true, false)
	} else {
		_ = vm.gc.collect(false, false)
	}
	return vm.Sts.snapshot(vm.Heap.Free(), vm.Heap.Capacity())
}

// GCStatus reports a read-only snapshot of the current stats.
func (vm *VM) GCStatus() Snapshot {
	return vm.Sts.snapshot(vm.Heap.Free(), vm.Heap.Capacity())
}
