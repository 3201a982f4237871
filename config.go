package nock

import "github.com/Native-Planet/nocktensors/internal/engine"

// Config holds every tunable of spec.md §4.8: GC thresholds, growth
// policy, builder depth limit and debug tracing.
type Config = engine.Config

// DefaultConfig returns the reference tunables: GC enabled, 0.7/0.9
// standard/emergency thresholds, growth by doubling up to 16M cells,
// generational sweeps every 1000 steps past 40% usage, 500-deep builder
// limit.
func DefaultConfig() Config {
	return engine.DefaultConfig()
}
