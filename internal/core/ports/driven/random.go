package driven

// RandomSource supplies random integers for quiz generation.
type RandomSource interface {
	// IntN returns a uniformly distributed integer in [0, n). n must be positive.
	IntN(n int) int
}
