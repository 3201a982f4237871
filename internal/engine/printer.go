package engine

import "strconv"

// printFrame is one pending node of the iterative externaliser /
// diagnostic printer, mirroring buildFrame's discipline in reverse.
type printFrame struct {
	idx int
	out *External
}

// Externalise is the inverse of Materialise: atoms become uint64 values,
// cells become two-element []External pairs. It walks the heap
// iteratively so a deeply right-nested noun cannot exhaust the host
// stack.
func Externalise(h *Heap, idx int) (External, error) {
	var result External
	stack := []*printFrame{{idx: idx, out: &result}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if h.IsCell(f.idx) {
			head, err := h.Head(f.idx)
			if err != nil {
				return nil, err
			}
			tail, err := h.Tail(f.idx)
			if err != nil {
				return nil, err
			}
			pair := make([]External, 2)
			*f.out = pair
			// Push tail first so head is resolved first; order has no
			// observable effect here since both slots are independent.
			stack = append(stack, &printFrame{idx: tail, out: &pair[1]})
			stack = append(stack, &printFrame{idx: head, out: &pair[0]})
			continue
		}
		v, err := h.Value(f.idx)
		if err != nil {
			return nil, err
		}
		*f.out = v
	}
	return result, nil
}

// Print renders the noun at idx in the diagnostic format of spec.md §6:
// "[head tail]" with a single space between head and tail, atoms as
// decimal integers, no outer brackets around a lone atom.
func Print(h *Heap, idx int) (string, error) {
	var b []byte
	var err error
	b, err = appendNoun(b, h, idx)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func appendNoun(b []byte, h *Heap, idx int) ([]byte, error) {
	if !h.IsCell(idx) {
		v, err := h.Value(idx)
		if err != nil {
			return nil, err
		}
		return strconv.AppendUint(b, v, 10), nil
	}
	head, err := h.Head(idx)
	if err != nil {
		return nil, err
	}
	tail, err := h.Tail(idx)
	if err != nil {
		return nil, err
	}
	b = append(b, '[')
	if b, err = appendNoun(b, h, head); err != nil {
		return nil, err
	}
	b = append(b, ' ')
	if b, err = appendNoun(b, h, tail); err != nil {
		return nil, err
	}
	b = append(b, ']')
	return b, nil
}
