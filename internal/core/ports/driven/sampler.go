package driven

// Sampler is the only source of randomness used by the recommendation selector.
// Implementations must be safe for concurrent use.
type Sampler interface {
	// IntN returns a uniformly distributed integer in [0, n). n is always > 0.
	IntN(n int) int
}
