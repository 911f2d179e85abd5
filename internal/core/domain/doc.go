// Package domain defines the core value types for vecalc.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Rational: An exact fraction kept in canonical reduced form
//   - Vector: A 1, 2 or 3 dimensional tuple of Rationals
//   - Calculation: A recorded evaluation (expression and result)
//   - Question: A generated practice question
//   - Settings: User configurable behaviour
//
// All values are immutable; every operation returns a new value, so they
// are safe to share between goroutines without locking.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
