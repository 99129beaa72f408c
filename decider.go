package typeguess

import "fmt"

// ============================================================
// Decider Framework
// ============================================================

// A Decider binds one concrete storage type: it tests whether a candidate is
// representable as that type, grows a Size accumulator to cover accepted
// candidates, and parses accepted strings into concrete values.
//
// Deciders are stateless and immutable; the package-level registry is shared
// by every Guesser and safe for concurrent reads.
type Decider interface {
	// TypeTag identifies the decider's concrete type.
	TypeTag() TypeTag

	// Group is the decider's compatibility group.
	Group() CompatibilityGroup

	// IsAcceptable reports whether candidate is representable as this type.
	// On acceptance it grows size to at least cover candidate; on rejection
	// it leaves size untouched. Acceptance and growth are one atomic
	// operation from the caller's point of view.
	IsAcceptable(candidate string, st *Settings, size *Size) bool

	// Parse converts candidate into the decider's concrete value. Valid only
	// for strings this decider has already accepted; parsing an unchecked
	// string is undefined.
	Parse(candidate string, st *Settings) (any, error)

	// AcceptScalar reports whether v is structurally one of the decider's
	// subsumed scalar kinds. On acceptance it grows size by exactly what the
	// scalar's own magnitude implies; on rejection it leaves size untouched.
	AcceptScalar(v any, size *Size) bool
}

// deciders is the preference order: most specific first, ending in the
// universal String fallback. Scan order for raw strings, and the merge
// winner is whichever side sits later.
var deciders = []Decider{
	boolDecider{},
	intDecider{},
	decimalDecider{},
	dateTimeDecider{},
	durationDecider{},
	stringDecider{},
}

func init() {
	if err := checkRegistry(deciders); err != nil {
		panic(err)
	}
}

// preferenceIndex returns the decider's position in preference order.
func preferenceIndex(d Decider) int {
	for i, r := range deciders {
		if r.TypeTag() == d.TypeTag() {
			return i
		}
	}
	return len(deciders)
}

// deciderFor returns the registered decider for tag, falling back to the
// String decider for anything unregistered.
func deciderFor(tag TypeTag) Decider {
	for _, d := range deciders {
		if d.TypeTag() == tag {
			return d
		}
	}
	return deciders[len(deciders)-1]
}

// deciderForScalar maps an already-typed value to the decider subsuming its
// Go type. size is grown on success. Unknown types yield ErrUnsupportedType.
func deciderForScalar(v any, size *Size) (Decider, error) {
	for _, d := range deciders {
		if d.AcceptScalar(v, size) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
}

// checkRegistry validates a decider registry: every entry must carry a known
// tag, belong to a group, and the String fallback must close the order.
// Guards against malformed registrations; the built-in registry always
// passes.
func checkRegistry(rs []Decider) error {
	if len(rs) == 0 {
		return fmt.Errorf("%w: empty registry", ErrBadDecider)
	}
	seen := make(map[TypeTag]bool, len(rs))
	for _, d := range rs {
		if d.TypeTag() > TagString {
			return fmt.Errorf("%w: unknown tag %d", ErrBadDecider, uint8(d.TypeTag()))
		}
		if seen[d.TypeTag()] {
			return fmt.Errorf("%w: duplicate decider for %s", ErrBadDecider, d.TypeTag())
		}
		seen[d.TypeTag()] = true
		if d.Group() > GroupTextual {
			return fmt.Errorf("%w: %s claims no compatibility group", ErrBadDecider, d.TypeTag())
		}
	}
	if rs[len(rs)-1].TypeTag() != TagString {
		return fmt.Errorf("%w: preference order must end in the string fallback", ErrBadDecider)
	}
	return nil
}
