// Package nock implements the core of a Nock interpreter: a stack-driven
// evaluator for the twelve Nock combinators over a managed heap of
// nouns, with a compacting garbage collector. The concrete heap,
// task stack, and evaluator live in internal/engine; this package is the
// stable surface client code imports, mirroring the teacher's split
// between its public vm package and the concrete lfvm engine beneath it.
package nock

import "github.com/Native-Planet/nocktensors/internal/engine"

// Noun is the host-language representation of a noun at the API
// boundary: a non-negative integer (atom) or a slice of two or more
// Noun values (cell / right-nested sequence). It is a type alias for
// engine.External so literal []any values and JSON-decoded data pass
// through without conversion.
type Noun = engine.External
