// Package typeguess infers the narrowest storage type capable of holding
// every value in a stream of observed inputs, along with the width metadata
// (digit counts, decimal scale, string length) needed to declare a
// fixed-width destination column before any row is written.
//
// typeguess is designed to be:
//   - Sound (never under-estimates a type or width that would lose data)
//   - Order-independent (every permutation of the same values ends in the
//     same guess)
//   - Allocation-free on the hot path for already-typed scalars
//   - Usable for both free-text tokens and already-typed Go scalars
//
// # Type Model
//
// Candidate types, from most specific to most general:
//
//	Boolean, Integer, Decimal, DateTime, Duration, String
//
// String is the universal fallback: it belongs to no compatibility group and
// accepts everything. The remaining types are partitioned into compatibility
// groups (Boolean; Numerical = Integer, Decimal; Temporal = DateTime,
// Duration). Types in the same group widen into one another; a conflict
// across groups falls back to String permanently.
//
// # Usage
//
//	g := typeguess.NewGuesser()
//	for _, token := range column {
//		if err := g.AdjustToCompensateForValue(token); err != nil {
//			return err
//		}
//	}
//	req := g.Guess() // e.g. {Decimal, {IntegerDigits:4 FractionalDigits:2 ...}}
//
// A Guesser consumes one logical value stream (typically one column) and is
// not safe for concurrent mutation. Distinct Guessers share only immutable
// decider tables and may run fully in parallel. GuesserPool recycles
// instances for allocation-sensitive loaders.
//
// # Input Regimes
//
// A Guesser operates in one of two regimes, fixed by the first value it
// accepts: string tokens, or already-typed scalars (bool, integer kinds,
// floats, decimal.Decimal, time.Time, time.Duration). Mixing regimes on one
// instance is a caller bug and fails with a MixedTypingError; Reset returns
// an instance to the unset state.
package typeguess
