package engine

import "testing"

// buildAxisTree builds [[1 2] [3 4]] and returns its root index, for
// axis-navigation tests. Axis 1=root, 2=head=[1 2], 3=tail=[3 4],
// 4=1, 5=2, 6=3, 7=4.
func buildAxisTree(t *testing.T, h *Heap) int {
	t.Helper()
	one, _ := h.AllocAtom(1)
	two, _ := h.AllocAtom(2)
	three, _ := h.AllocAtom(3)
	four, _ := h.AllocAtom(4)
	left, err := h.AllocCell(one, two)
	if err != nil {
		t.Fatalf("AllocCell: %v", err)
	}
	right, err := h.AllocCell(three, four)
	if err != nil {
		t.Fatalf("AllocCell: %v", err)
	}
	root, err := h.AllocCell(left, right)
	if err != nil {
		t.Fatalf("AllocCell: %v", err)
	}
	return root
}

func TestSlot_AxisWalk(t *testing.T) {
	h := newTestHeap(16)
	root := buildAxisTree(t, h)

	cases := []struct {
		axis int64
		want uint64
	}{
		{4, 1}, {5, 2}, {6, 3}, {7, 4},
	}
	for _, c := range cases {
		idx, err := Slot(h, c.axis, root)
		if err != nil {
			t.Fatalf("Slot(%d) error: %v", c.axis, err)
		}
		v, err := h.Value(idx)
		if err != nil || v != c.want {
			t.Errorf("Slot(%d) = %d, want %d", c.axis, v, c.want)
		}
	}

	if idx, err := Slot(h, 1, root); err != nil || idx != root {
		t.Errorf("Slot(1, root) = %d, %v, want %d, nil", idx, err, root)
	}
}

func TestSlot_BadAxis(t *testing.T) {
	h := newTestHeap(16)
	root := buildAxisTree(t, h)
	if _, err := Slot(h, 0, root); err != ErrBadAxis {
		t.Fatalf("Slot(0) = %v, want ErrBadAxis", err)
	}
	if _, err := Slot(h, -1, root); err != ErrBadAxis {
		t.Fatalf("Slot(-1) = %v, want ErrBadAxis", err)
	}
}

func TestSlot_OutOfRange(t *testing.T) {
	h := newTestHeap(16)
	atom, _ := h.AllocAtom(7)
	if _, err := Slot(h, 2, atom); err != ErrSlotOutOfRange {
		t.Fatalf("Slot(2, atom) = %v, want ErrSlotOutOfRange", err)
	}
}
