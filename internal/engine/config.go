package engine

// Config holds the tunables of the heap allocator and garbage collector.
// A zero Config is not usable; use DefaultConfig to obtain sane defaults.
type Config struct {
	// EnableGC is the master switch. When false, allocations past
	// capacity fault with ErrHeapOverflow instead of collecting.
	EnableGC bool

	// GCThreshold is the free/capacity fraction that triggers a standard
	// collection. Must be in (0, 1).
	GCThreshold float64

	// EmergencyThreshold is the free/capacity fraction that triggers an
	// emergency collection (which may also grow the heap). Must be in
	// (0, 1) and is expected to be >= GCThreshold.
	EmergencyThreshold float64

	// AutoExpand enables heap growth from an emergency collection.
	AutoExpand bool

	// MaxCapacity is the hard ceiling for heap growth. Zero means no
	// ceiling is applied.
	MaxCapacity int

	// GrowthFactor is the multiplicative step applied to capacity when
	// growing. Must be > 1.
	GrowthFactor float64

	// GenerationalInterval is the number of trampoline steps between
	// generational GC probes.
	GenerationalInterval int

	// GenerationalFraction is the free/capacity fraction above which a
	// generational probe actually runs a collection.
	GenerationalFraction float64

	// MaxGeneration caps the per-entry generation counter used by the
	// generational collector.
	MaxGeneration uint8

	// MaxDepth bounds the nesting depth of nouns the builder accepts.
	MaxDepth int

	// Debug enables diagnostic tracing of GC and trampoline activity,
	// written to os.Stderr one line per trampoline step and per
	// collection, in the style of the teacher's loggingRunner.
	Debug bool
}

// DefaultConfig returns the configuration described in spec.md §4.7/4.8.
func DefaultConfig() Config {
	return Config{
		EnableGC:              true,
		GCThreshold:           0.7,
		EmergencyThreshold:    0.9,
		AutoExpand:            true,
		MaxCapacity:           1 << 24,
		GrowthFactor:          2.0,
		GenerationalInterval:  1000,
		GenerationalFraction:  0.4,
		MaxGeneration:         2,
		MaxDepth:              500,
		Debug:                 false,
	}
}

// Validate checks that the configuration's fractions and factors are in
// their required ranges.
func (c Config) Validate() error {
	if c.GCThreshold <= 0 || c.GCThreshold >= 1 {
		return ConstError("gc_threshold must be in (0,1)")
	}
	if c.EmergencyThreshold <= 0 || c.EmergencyThreshold >= 1 {
		return ConstError("emergency_threshold must be in (0,1)")
	}
	if c.AutoExpand && c.GrowthFactor <= 1 {
		return ConstError("growth_factor must be > 1")
	}
	return nil
}
