package engine

// equalFrame is a pending comparison on the explicit equality worklist.
type equalFrame struct {
	a, b int
}

// Equal reports whether the nouns at a and b are structurally identical:
// atoms compare by value, cells compare head-to-head and tail-to-tail,
// and an atom never equals a cell (spec.md §4.5). It uses an explicit
// worklist rather than host recursion so deeply nested nouns cannot
// exhaust the Go call stack.
func Equal(h *Heap, a, b int) (bool, error) {
	work := []equalFrame{{a, b}}
	for len(work) > 0 {
		f := work[len(work)-1]
		work = work[:len(work)-1]

		aCell, bCell := h.IsCell(f.a), h.IsCell(f.b)
		if aCell != bCell {
			return false, nil
		}
		if !aCell {
			av, err := h.Value(f.a)
			if err != nil {
				return false, err
			}
			bv, err := h.Value(f.b)
			if err != nil {
				return false, err
			}
			if av != bv {
				return false, nil
			}
			continue
		}
		ah, err := h.Head(f.a)
		if err != nil {
			return false, err
		}
		bh, err := h.Head(f.b)
		if err != nil {
			return false, err
		}
		at, err := h.Tail(f.a)
		if err != nil {
			return false, err
		}
		bt, err := h.Tail(f.b)
		if err != nil {
			return false, err
		}
		work = append(work, equalFrame{at, bt}, equalFrame{ah, bh})
	}
	return true, nil
}
