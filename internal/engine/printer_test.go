package engine

import "testing"

func TestExternalise_Atom(t *testing.T) {
	h := newTestHeap(16)
	idx, _ := h.AllocAtom(42)
	got, err := Externalise(h, idx)
	if err != nil {
		t.Fatalf("Externalise: %v", err)
	}
	if got.(uint64) != 42 {
		t.Fatalf("got %v, want 42", got)
	}
}

func TestExternalise_Cell(t *testing.T) {
	h := newTestHeap(16)
	a, _ := h.AllocAtom(1)
	b, _ := h.AllocAtom(2)
	c, _ := h.AllocCell(a, b)
	got, err := Externalise(h, c)
	if err != nil {
		t.Fatalf("Externalise: %v", err)
	}
	pair, ok := got.([]External)
	if !ok || len(pair) != 2 {
		t.Fatalf("got %#v, want a two-element pair", got)
	}
	if pair[0].(uint64) != 1 || pair[1].(uint64) != 2 {
		t.Fatalf("got %v, want [1 2]", pair)
	}
}

func TestPrint_LoneAtomHasNoBrackets(t *testing.T) {
	h := newTestHeap(16)
	idx, _ := h.AllocAtom(7)
	s, err := Print(h, idx)
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	if s != "7" {
		t.Fatalf("Print(atom) = %q, want %q", s, "7")
	}
}

func TestPrint_CellFormat(t *testing.T) {
	h := newTestHeap(16)
	one, _ := h.AllocAtom(1)
	two, _ := h.AllocAtom(2)
	three, _ := h.AllocAtom(3)
	inner, _ := h.AllocCell(two, three)
	root, _ := h.AllocCell(one, inner)

	s, err := Print(h, root)
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	if s != "[1 [2 3]]" {
		t.Fatalf("Print(root) = %q, want %q", s, "[1 [2 3]]")
	}
}
