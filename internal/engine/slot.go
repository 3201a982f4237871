package engine

// Slot navigates a noun tree by the standard Nock axis addressing scheme
// (spec.md §4.4): axis 1 is the root, even axes descend into the head,
// odd axes greater than 1 descend into the tail. It is iterative and
// constant-space in this function's own frame.
func Slot(h *Heap, n int64, root int) (int, error) {
	if n < 1 {
		return 0, ErrBadAxis
	}
	cur := root
	for n > 1 {
		if !h.IsCell(cur) {
			return 0, ErrSlotOutOfRange
		}
		if n%2 == 0 {
			next, err := h.Head(cur)
			if err != nil {
				return 0, err
			}
			cur = next
			n /= 2
		} else {
			next, err := h.Tail(cur)
			if err != nil {
				return 0, err
			}
			cur = next
			n = (n - 1) / 2
		}
	}
	return cur, nil
}
