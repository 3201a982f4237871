package nock_test

import (
	"errors"
	"testing"

	"github.com/Native-Planet/nocktensors"
)

// formulaFromBytes decodes an arbitrary byte string into a nock.Noun shaped
// like a formula: mostly small cells so the evaluator actually dispatches
// through its op table rather than immediately faulting on a bare atom.
// Decoding strictly consumes input and stops at budget or end of data, so
// it always terminates.
func formulaFromBytes(data []byte, cursor *int, budget *int) nock.Noun {
	if *budget <= 0 || *cursor >= len(data) {
		return uint64(0)
	}
	*budget--
	selector := data[*cursor]
	*cursor++

	if selector%4 == 0 {
		if *cursor >= len(data) {
			return uint64(0)
		}
		v := uint64(data[*cursor]) % 12 // bias toward valid-looking op codes
		*cursor++
		return v
	}
	n := 2 + int(selector%3) // 2, 3 or 4 element sequence
	seq := make([]nock.Noun, n)
	for i := range seq {
		seq[i] = formulaFromBytes(data, cursor, budget)
	}
	return seq
}

// To run this fuzzer: go test . -run none -fuzz FuzzEval --fuzztime 1m
//
// Every fault this evaluator can raise is a nock.ConstError; this fuzzer's
// job is only to confirm Eval never panics and never returns an error
// outside that closed set, for arbitrary formula shapes.
func FuzzEval(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{3, 0, 4, 0, 5, 3, 0, 0, 0, 2})   // subject [4 5], formula [0 2]: op0 axis 2
	f.Add([]byte{0, 7, 3, 0, 4, 3, 0, 0, 0, 1})   // subject 7, formula [4 [0 1]]: op4 increment of axis 1
	f.Add([]byte{0, 0, 1, 0, 8, 3, 0, 1, 0, 1, 1, 0, 8, 3, 0, 1, 0, 2, 3, 0, 0, 0, 2}) // [8 [1 1] [8 [1 2] [0 2]]]: nested op8 pushes
	f.Add([]byte{0, 0, 3, 3, 0, 1, 0, 2, 0, 3})   // formula [[1 2] 3]: cell in formula head, forces UnsupportedOp

	knownFaults := []error{
		nock.ErrMalformedNoun,
		nock.ErrNounTooDeep,
		nock.ErrHeapOverflow,
		nock.ErrStackOverflow,
		nock.ErrStackUnderflow,
		nock.ErrTypeError,
		nock.ErrBadAxis,
		nock.ErrSlotOutOfRange,
		nock.ErrNotAFormula,
		nock.ErrUnsupportedOp,
		nock.ErrBadBooleanCond,
		nock.ErrNonAtomIncrement,
		nock.ErrNonCellEquality,
		nock.ErrStepLimitExceeded,
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		cursor := 0
		budget := 300
		subject := formulaFromBytes(data, &cursor, &budget)
		formula := formulaFromBytes(data, &cursor, &budget)

		_, err := nock.Eval(subject, formula)
		if err == nil {
			return
		}
		for _, known := range knownFaults {
			if errors.Is(err, known) {
				return
			}
		}
		t.Fatalf("Eval returned an error outside the documented fault set: %v", err)
	})
}
