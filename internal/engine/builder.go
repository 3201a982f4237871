package engine

// External is the host-language representation of a noun used at the
// API boundary: an unsigned integer (atom) or a slice of two or more
// External values (cell / right-nested sequence), per spec.md §4.3.
type External = any

func atomValue(v any) (uint64, bool) {
	switch n := v.(type) {
	case uint64:
		return n, true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case uint:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case int32:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case float64:
		// encoding/json decodes all numbers as float64; accept exact
		// non-negative integral values so JSON noun literals round-trip.
		if n < 0 || n != float64(uint64(n)) {
			return 0, false
		}
		return uint64(n), true
	default:
		return 0, false
	}
}

// buildFrame is one pending node of the iterative materialiser. It mirrors
// the explicit-stack discipline used by the trampoline evaluator (C6): a
// node's result is written into a pre-allocated output slot owned by its
// parent, rather than returned through host recursion.
type buildFrame struct {
	node     External
	depth    int
	out      *int
	children []int
	expanded bool
}

// Materialise maps an external noun into the heap, returning the index of
// its root. Sequences of two elements become a cell; sequences of three
// or more become a right-nested chain of cells. The traversal is
// iterative so host stack depth never bounds accepted input depth; the
// *noun's* nesting depth is still bounded by maxDepth (ErrNounTooDeep).
func Materialise(h *Heap, node External, maxDepth int) (int, error) {
	var result int
	stack := []*buildFrame{{node: node, depth: 0, out: &result}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if f.depth > maxDepth {
			return 0, ErrNounTooDeep
		}

		if v, ok := atomValue(f.node); ok {
			idx, err := h.AllocAtom(v)
			if err != nil {
				return 0, err
			}
			*f.out = idx
			stack = stack[:len(stack)-1]
			continue
		}

		seq, ok := f.node.([]External)
		if !ok || len(seq) < 2 {
			return 0, ErrMalformedNoun
		}

		if !f.expanded {
			f.expanded = true
			f.children = make([]int, len(seq))
			for i := len(seq) - 1; i >= 0; i-- {
				stack = append(stack, &buildFrame{
					node:  seq[i],
					depth: f.depth + 1,
					out:   &f.children[i],
				})
			}
			continue
		}

		idx := f.children[len(f.children)-1]
		for i := len(f.children) - 2; i >= 0; i-- {
			var err error
			idx, err = h.AllocCell(f.children[i], idx)
			if err != nil {
				return 0, err
			}
		}
		*f.out = idx
		stack = stack[:len(stack)-1]
	}

	return result, nil
}
