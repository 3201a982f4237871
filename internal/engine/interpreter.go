package engine

import (
	"fmt"
	"os"
)

// Eval runs *[subject formula], writing the result into a freshly
// allocated root cell and returning its index. It is the trampoline of
// spec.md C6: rather than recursing in Go, it drives vm.Stack as an
// explicit LIFO work list until only the guard rooting the result is
// left, the way interpreter/lfvm's step
// loop consumes a fixed instruction stream instead of recursing through
// calls.
func (vm *VM) Eval(subject, formula int) (int, error) {
	g, err := vm.newGuard(int32(subject), int32(formula), -1, -1, -1)
	if err != nil {
		return 0, err
	}
	dst, err := vm.Heap.AllocCell(0, 0)
	if err != nil {
		return 0, err
	}
	a := g.args()
	g.release()
	subject, formula = int(a[0]), int(a[1])

	// dst stays rooted under a guard beneath this evaluation's tasks, so a
	// compaction during the loop relocates it like any other root.
	root, err := vm.newGuard(int32(dst), -1, -1, -1, -1)
	if err != nil {
		return 0, err
	}
	if err := vm.Stack.Push(KindEval, int32(subject), int32(formula), int32(dst), -1, -1); err != nil {
		return 0, err
	}

	for vm.Stack.Len() > root.pos+1 {
		task, err := vm.Stack.Pop()
		if err != nil {
			return 0, err
		}
		if vm.onStep != nil {
			vm.onStep(task.Kind)
		}
		if vm.Cfg.Debug {
			fmt.Fprintf(os.Stderr, "%v, %d, %v\n", task.Kind, vm.steps, task.Arg)
		}
		if err := vm.step(task); err != nil {
			return 0, err
		}
		vm.steps++
		if vm.Cfg.GenerationalInterval > 0 && vm.steps%vm.Cfg.GenerationalInterval == 0 {
			if err := vm.gc.maybeGenerational(); err != nil {
				return 0, err
			}
		}
	}
	dst = int(root.args()[0])
	root.release()
	return dst, nil
}

// EvalTraced runs Eval while additionally counting how many tasks of each
// kind executed, returning both the result index and a TraceReport. It is
// the alternate, instrumented entry point named in SPEC_FULL.md's
// execution-statistics expansion (C11); ordinary callers should use Eval.
func (vm *VM) EvalTraced(subject, formula int) (int, TraceReport, error) {
	var report TraceReport
	prevHook := vm.onStep
	vm.onStep = func(k TaskKind) { report.KindCounts[k]++ }
	defer func() { vm.onStep = prevHook }()

	startSteps := vm.steps
	dst, err := vm.Eval(subject, formula)
	report.Steps = vm.steps - startSteps
	report.GC = vm.GCStatus()
	return dst, report, err
}

// step executes a single popped task, implementing spec.md §4.6's task
// kinds. EVAL, REDUCE and K_COMPOSE share evalDispatch: all three mean
// "decode a formula against a subject and continue from there", differing
// only in which op dispatch put them on the stack.
func (vm *VM) step(t Task) error {
	h := vm.Heap
	switch t.Kind {
	case KindEval, KindReduce, KindCompose:
		return vm.evalDispatch(int(t.Arg[0]), int(t.Arg[1]), int(t.Arg[2]))

	case KindIsCell:
		temp, dst := int(t.Arg[0]), int(t.Arg[1])
		if h.IsCell(temp) {
			h.SetAtom(dst, 0)
		} else {
			h.SetAtom(dst, 1)
		}
		return nil

	case KindInc:
		temp, dst := int(t.Arg[0]), int(t.Arg[1])
		if h.IsCell(temp) {
			return ErrNonAtomIncrement
		}
		v, err := h.Value(temp)
		if err != nil {
			return err
		}
		if v == ^uint64(0) {
			return ErrHeapOverflow
		}
		h.SetAtom(dst, v+1)
		return nil

	case KindEq:
		temp, dst := int(t.Arg[0]), int(t.Arg[1])
		if !h.IsCell(temp) {
			return ErrNonCellEquality
		}
		head, err := h.Head(temp)
		if err != nil {
			return err
		}
		tailIdx, err := h.Tail(temp)
		if err != nil {
			return err
		}
		eq, err := Equal(h, head, tailIdx)
		if err != nil {
			return err
		}
		if eq {
			h.SetAtom(dst, 0)
		} else {
			h.SetAtom(dst, 1)
		}
		return nil

	case KindIf:
		temp, thenF, elseF, subject, dst := int(t.Arg[0]), int(t.Arg[1]), int(t.Arg[2]), int(t.Arg[3]), int(t.Arg[4])
		if h.IsCell(temp) {
			return ErrBadBooleanCond
		}
		v, err := h.Value(temp)
		if err != nil {
			return err
		}
		switch v {
		case 0:
			return vm.Stack.Push(KindEval, int32(subject), int32(thenF), int32(dst), -1, -1)
		case 1:
			return vm.Stack.Push(KindEval, int32(subject), int32(elseF), int32(dst), -1, -1)
		default:
			return ErrBadBooleanCond
		}

	case KindPush:
		pushed, oldSubject, formula, dst := t.Arg[0], t.Arg[1], t.Arg[2], t.Arg[3]
		g, err := vm.newGuard(pushed, oldSubject, formula, dst, -1)
		if err != nil {
			return err
		}
		// Reserve the cell first and fill it from the guard afterwards: the
		// reservation may compact, so pushed/oldSubject are re-read.
		slots, err := h.ReserveAtoms(1)
		if err != nil {
			return err
		}
		a := g.args()
		g.release()
		cell := slots[0]
		h.SetCell(cell, int(a[0]), int(a[1]))
		formula, dst = a[2], a[3]
		return vm.Stack.Push(KindEval, int32(cell), formula, dst, -1, -1)

	case KindInvoke:
		core, axisAtom, dst := int(t.Arg[0]), int(t.Arg[1]), int(t.Arg[2])
		axisVal, err := h.Value(axisAtom)
		if err != nil {
			return err
		}
		target, err := Slot(h, int64(axisVal), core)
		if err != nil {
			return err
		}
		return vm.Stack.Push(KindEval, int32(core), int32(target), int32(dst), -1, -1)

	case KindCons:
		x, y, dst := int(t.Arg[0]), int(t.Arg[1]), int(t.Arg[2])
		h.SetCell(dst, x, y)
		return nil

	case KindGuard:
		// Always released by its own pusher before the trampoline can see
		// it; reached only if a caller leaks one, in which case it is
		// inert.
		return nil

	default:
		return ErrUnsupportedOp
	}
}
