package typeguess

import (
	"errors"
	"fmt"
)

// Guessing errors. All failures are synchronous and leave the Guesser's
// state exactly as it was before the offending call.
var (
	// ErrUnsupportedType reports a scalar whose Go type has no registered
	// decider. This is a configuration or programming gap, not a data issue.
	ErrUnsupportedType = errors.New("typeguess: no decider for scalar type")

	// ErrMixedTypes is the base kind for every input-regime violation.
	// Match with errors.Is; inspect *MixedTypingError for the offending
	// family.
	ErrMixedTypes = errors.New("typeguess: mixed hard-typed and string input")

	// ErrIncompatibleTypes reports two hard-typed families that share no
	// compatibility group, under the strict (default) scalar-clash policy.
	ErrIncompatibleTypes = errors.New("typeguess: incompatible hard-typed families")

	// ErrParse reports a Parse call with a string the final type cannot in
	// fact parse: either the string was never ingested, or a soundness
	// invariant broke. Treated as a programming-error signal.
	ErrParse = errors.New("typeguess: string not parseable as guessed type")

	// ErrBadDecider reports a malformed decider registration. Defensive
	// guard; never triggered by user data.
	ErrBadDecider = errors.New("typeguess: invalid decider registration")
)

// MixedTypingError is raised when one Guesser instance receives both string
// and hard-typed input, or two non-mergeable hard-typed families, without an
// intervening Reset. It unwraps to ErrMixedTypes; Incoming identifies the
// offending value's family for diagnostics.
type MixedTypingError struct {
	Incoming          TypeTag
	IncomingWasString bool
}

func (e *MixedTypingError) Error() string {
	if e.IncomingWasString {
		return "typeguess: string value arrived after hard-typed input on the same guesser"
	}
	return fmt.Sprintf("typeguess: hard-typed %s value arrived after string input on the same guesser", e.Incoming)
}

func (e *MixedTypingError) Unwrap() error { return ErrMixedTypes }

func errScalarAfterString(incoming TypeTag) error {
	return &MixedTypingError{Incoming: incoming}
}

func errStringAfterScalar() error {
	return &MixedTypingError{Incoming: TagString, IncomingWasString: true}
}

func errIncompatibleScalars(locked, incoming TypeTag) error {
	return fmt.Errorf("%w: %s locked in, %s arrived", ErrIncompatibleTypes, locked, incoming)
}

func parseFailure(candidate string, tag TypeTag) error {
	return fmt.Errorf("%w: %q as %s", ErrParse, candidate, tag)
}
