package nock

import "github.com/Native-Planet/nocktensors/internal/engine"

// ConstError is an immutable error constant, safe to compare with
// errors.Is, grounded on the teacher's go/vm/lfvm/errors.go idiom.
type ConstError = engine.ConstError

// Fault kinds, one per row of spec.md §7's error table.
const (
	ErrMalformedNoun     = engine.ErrMalformedNoun
	ErrNounTooDeep       = engine.ErrNounTooDeep
	ErrHeapOverflow      = engine.ErrHeapOverflow
	ErrStackOverflow     = engine.ErrStackOverflow
	ErrStackUnderflow    = engine.ErrStackUnderflow
	ErrTypeError         = engine.ErrTypeError
	ErrBadAxis           = engine.ErrBadAxis
	ErrSlotOutOfRange    = engine.ErrSlotOutOfRange
	ErrNotAFormula       = engine.ErrNotAFormula
	ErrUnsupportedOp     = engine.ErrUnsupportedOp
	ErrBadBooleanCond    = engine.ErrBadBooleanCond
	ErrNonAtomIncrement  = engine.ErrNonAtomIncrement
	ErrNonCellEquality   = engine.ErrNonCellEquality
	ErrStepLimitExceeded = engine.ErrStepLimitExceeded
)
