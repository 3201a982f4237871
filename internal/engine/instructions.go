package engine

// evalDispatch performs one EVAL/REDUCE/K_COMPOSE step: it decodes
// formula's operator and pushes whatever continuation tasks the operator
// requires, per spec.md §4.6's dispatch table and the decisions recorded
// in SPEC_FULL.md §9 (op10 reduces to *[s d]; a cell in formula's head is
// a fault rather than implicit autocons; op5 is the reference's single
// sub-formula idiosyncrasy, not canonical two-argument Nock 5).
//
// Every case that allocates while subject, dst or other already-decoded
// locals are not yet back on the task stack wraps the allocation in a
// guard (vm.go) so those locals survive a GC triggered by the allocation
// itself.
func (vm *VM) evalDispatch(subject, formula, dst int) error {
	h := vm.Heap
	if !h.IsCell(formula) {
		return ErrNotAFormula
	}
	headF, err := h.Head(formula)
	if err != nil {
		return err
	}
	if h.IsCell(headF) {
		return ErrUnsupportedOp
	}
	op, err := h.Value(headF)
	if err != nil {
		return err
	}
	tail, err := h.Tail(formula)
	if err != nil {
		return err
	}

	switch op {
	case 0:
		axis, err := h.Value(tail)
		if err != nil {
			return err
		}
		slotIdx, err := Slot(h, int64(axis), subject)
		if err != nil {
			return err
		}
		h.CopyEntry(dst, slotIdx)
		return nil

	case 1:
		h.CopyEntry(dst, tail)
		return nil

	case 2:
		b, c, err := headTail(h, tail)
		if err != nil {
			return err
		}
		g, err := vm.newGuard(int32(subject), int32(dst), int32(b), int32(c), -1)
		if err != nil {
			return err
		}
		slots, err := h.ReserveAtoms(2)
		if err != nil {
			return err
		}
		a := g.args()
		g.release()
		x, y := slots[0], slots[1]
		subject, dst, b, c = int(a[0]), int(a[1]), int(a[2]), int(a[3])
		if err := vm.Stack.Push(KindCons, int32(x), int32(y), int32(dst), -1, -1); err != nil {
			return err
		}
		if err := vm.Stack.Push(KindEval, int32(subject), int32(c), int32(y), -1, -1); err != nil {
			return err
		}
		return vm.Stack.Push(KindEval, int32(subject), int32(b), int32(x), -1, -1)

	case 3:
		g, err := vm.newGuard(int32(subject), int32(dst), int32(tail), -1, -1)
		if err != nil {
			return err
		}
		temp, err := h.AllocAtom(0)
		if err != nil {
			return err
		}
		a := g.args()
		g.release()
		subject, dst, tail = int(a[0]), int(a[1]), int(a[2])
		if err := vm.Stack.Push(KindIsCell, int32(temp), int32(dst), -1, -1, -1); err != nil {
			return err
		}
		return vm.Stack.Push(KindEval, int32(subject), int32(tail), int32(temp), -1, -1)

	case 4:
		g, err := vm.newGuard(int32(subject), int32(dst), int32(tail), -1, -1)
		if err != nil {
			return err
		}
		temp, err := h.AllocAtom(0)
		if err != nil {
			return err
		}
		a := g.args()
		g.release()
		subject, dst, tail = int(a[0]), int(a[1]), int(a[2])
		if err := vm.Stack.Push(KindInc, int32(temp), int32(dst), -1, -1, -1); err != nil {
			return err
		}
		return vm.Stack.Push(KindEval, int32(subject), int32(tail), int32(temp), -1, -1)

	case 5:
		g, err := vm.newGuard(int32(subject), int32(dst), int32(tail), -1, -1)
		if err != nil {
			return err
		}
		temp, err := h.AllocAtom(0)
		if err != nil {
			return err
		}
		a := g.args()
		g.release()
		subject, dst, tail = int(a[0]), int(a[1]), int(a[2])
		if err := vm.Stack.Push(KindEq, int32(temp), int32(dst), -1, -1, -1); err != nil {
			return err
		}
		return vm.Stack.Push(KindEval, int32(subject), int32(tail), int32(temp), -1, -1)

	case 6:
		b, rest, err := headTail(h, tail)
		if err != nil {
			return err
		}
		c, d, err := headTail(h, rest)
		if err != nil {
			return err
		}
		g, err := vm.newGuard(int32(subject), int32(dst), int32(b), int32(c), int32(d))
		if err != nil {
			return err
		}
		temp, err := h.AllocAtom(0)
		if err != nil {
			return err
		}
		a := g.args()
		g.release()
		subject, dst, b, c, d = int(a[0]), int(a[1]), int(a[2]), int(a[3]), int(a[4])
		if err := vm.Stack.Push(KindIf, int32(temp), int32(c), int32(d), int32(subject), int32(dst)); err != nil {
			return err
		}
		return vm.Stack.Push(KindEval, int32(subject), int32(b), int32(temp), -1, -1)

	case 7:
		b, c, err := headTail(h, tail)
		if err != nil {
			return err
		}
		g, err := vm.newGuard(int32(subject), int32(dst), int32(b), int32(c), -1)
		if err != nil {
			return err
		}
		temp, err := h.AllocAtom(0)
		if err != nil {
			return err
		}
		a := g.args()
		g.release()
		subject, dst, b, c = int(a[0]), int(a[1]), int(a[2]), int(a[3])
		if err := vm.Stack.Push(KindCompose, int32(temp), int32(c), int32(dst), -1, -1); err != nil {
			return err
		}
		return vm.Stack.Push(KindEval, int32(subject), int32(b), int32(temp), -1, -1)

	case 8:
		b, c, err := headTail(h, tail)
		if err != nil {
			return err
		}
		g, err := vm.newGuard(int32(subject), int32(dst), int32(b), int32(c), -1)
		if err != nil {
			return err
		}
		temp, err := h.AllocAtom(0)
		if err != nil {
			return err
		}
		a := g.args()
		g.release()
		subject, dst, b, c = int(a[0]), int(a[1]), int(a[2]), int(a[3])
		if err := vm.Stack.Push(KindPush, int32(temp), int32(subject), int32(c), int32(dst), -1); err != nil {
			return err
		}
		return vm.Stack.Push(KindEval, int32(subject), int32(b), int32(temp), -1, -1)

	case 9:
		bIdx, c, err := headTail(h, tail)
		if err != nil {
			return err
		}
		g, err := vm.newGuard(int32(subject), int32(dst), int32(bIdx), int32(c), -1)
		if err != nil {
			return err
		}
		core, err := h.AllocAtom(0)
		if err != nil {
			return err
		}
		a := g.args()
		g.release()
		subject, dst, bIdx, c = int(a[0]), int(a[1]), int(a[2]), int(a[3])
		if err := vm.Stack.Push(KindInvoke, int32(core), int32(bIdx), int32(dst), -1, -1); err != nil {
			return err
		}
		return vm.Stack.Push(KindEval, int32(subject), int32(c), int32(core), -1, -1)

	case 10:
		_, d, err := headTail(h, tail)
		if err != nil {
			return err
		}
		return vm.Stack.Push(KindEval, int32(subject), int32(d), int32(dst), -1, -1)

	case 11:
		_, c, err := headTail(h, tail)
		if err != nil {
			return err
		}
		return vm.Stack.Push(KindEval, int32(subject), int32(c), int32(dst), -1, -1)

	default:
		return ErrUnsupportedOp
	}
}

func headTail(h *Heap, cell int) (int, int, error) {
	head, err := h.Head(cell)
	if err != nil {
		return 0, 0, err
	}
	tail, err := h.Tail(cell)
	if err != nil {
		return 0, 0, err
	}
	return head, tail, nil
}
