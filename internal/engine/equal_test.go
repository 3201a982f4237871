package engine

import "testing"

func TestEqual_AtomsByValue(t *testing.T) {
	h := newTestHeap(16)
	a, _ := h.AllocAtom(5)
	b, _ := h.AllocAtom(5)
	c, _ := h.AllocAtom(6)

	eq, err := Equal(h, a, b)
	if err != nil || !eq {
		t.Fatalf("Equal(5,5) = %v, %v, want true, nil", eq, err)
	}
	eq, err = Equal(h, a, c)
	if err != nil || eq {
		t.Fatalf("Equal(5,6) = %v, %v, want false, nil", eq, err)
	}
}

func TestEqual_CellsStructurally(t *testing.T) {
	h := newTestHeap(16)
	mkPair := func(x, y uint64) int {
		a, _ := h.AllocAtom(x)
		b, _ := h.AllocAtom(y)
		c, _ := h.AllocCell(a, b)
		return c
	}
	p1 := mkPair(1, 2)
	p2 := mkPair(1, 2)
	p3 := mkPair(1, 3)

	if eq, err := Equal(h, p1, p2); err != nil || !eq {
		t.Fatalf("Equal(p1,p2) = %v, %v, want true, nil", eq, err)
	}
	if eq, err := Equal(h, p1, p3); err != nil || eq {
		t.Fatalf("Equal(p1,p3) = %v, %v, want false, nil", eq, err)
	}
}

func TestEqual_AtomNeverEqualsCell(t *testing.T) {
	h := newTestHeap(16)
	a, _ := h.AllocAtom(1)
	x, _ := h.AllocAtom(1)
	y, _ := h.AllocAtom(2)
	cell, _ := h.AllocCell(x, y)

	if eq, err := Equal(h, a, cell); err != nil || eq {
		t.Fatalf("Equal(atom,cell) = %v, %v, want false, nil", eq, err)
	}
}

func TestEqual_DeeplyNestedDoesNotPanic(t *testing.T) {
	h := newTestHeap(4096)
	leaf, _ := h.AllocAtom(0)
	cur := leaf
	const depth = 1000
	for i := 0; i < depth; i++ {
		next, err := h.AllocCell(leaf, cur)
		if err != nil {
			t.Fatalf("AllocCell: %v", err)
		}
		cur = next
	}
	other := cur
	if eq, err := Equal(h, cur, other); err != nil || !eq {
		t.Fatalf("Equal(self) = %v, %v, want true, nil", eq, err)
	}
}
