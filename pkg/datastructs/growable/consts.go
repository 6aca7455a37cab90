package growable

const (
	// DefaultCapacity is the number of slots allocated by New.
	DefaultCapacity = 32

	// growthFactor is the multiplier applied to the capacity when the buffer is full.
	growthFactor = 2
)
