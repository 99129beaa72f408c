package typeguess

// inputRegime locks a Guesser to one kind of input after its first accepted
// value: free-text string tokens, or already-typed scalars. The two regimes
// carry different soundness obligations and never mix on one instance.
type inputRegime uint8

const (
	regimeUnset inputRegime = iota
	regimeString
	regimeScalar
)

// Guesser incrementally infers the narrowest storage type for one value
// stream, typically one column. It holds the current best decider and the
// accreted Size, and only ever widens: every previously accepted value stays
// representable by the current estimate.
//
// A Guesser is owned by a single caller and is not safe for concurrent
// mutation. Distinct instances share only the immutable decider tables.
type Guesser struct {
	// Settings may be changed between ingestions; changes affect subsequent
	// acceptance tests only.
	Settings Settings

	current Decider
	size    Size
	regime  inputRegime
}

// NewGuesser returns a Guesser with DefaultSettings.
func NewGuesser() *Guesser {
	return NewGuesserWithSettings(DefaultSettings())
}

// NewGuesserWithSettings returns a Guesser with explicit settings.
func NewGuesserWithSettings(st Settings) *Guesser {
	return &Guesser{Settings: st}
}

// Reset returns the Guesser to its initial state: estimate cleared, size
// zeroed, input regime unset. Settings are kept.
func (g *Guesser) Reset() {
	g.current = nil
	g.size = Size{}
	g.regime = regimeUnset
}

// Guess reads the current best estimate. It is a pure projection: callable
// any number of times, at any point, with no side effects. Before any value
// has been accepted it returns the widest safe default, String with zero
// size.
func (g *Guesser) Guess() DatabaseTypeRequest {
	if g.current == nil {
		return DatabaseTypeRequest{Tag: TagString}
	}
	return DatabaseTypeRequest{Tag: g.current.TypeTag(), Size: g.size}
}

// AdjustToCompensateForValue widens the estimate to cover one more value: a
// string token, an already-typed scalar (bool, the integer kinds through
// int64, float32/64, decimal.Decimal, time.Time, time.Duration), or nil.
// Nil and the empty string are no-ops.
//
// On any error the Guesser is left exactly as it was. The scalar path
// performs no heap allocation.
func (g *Guesser) AdjustToCompensateForValue(value any) error {
	if value == nil {
		return nil
	}
	if s, ok := value.(string); ok {
		return g.adjustString(s)
	}
	return g.adjustScalar(value)
}

// AdjustToCompensateForValues ingests values in order, stopping at the first
// error. The end state is identical to calling AdjustToCompensateForValue
// for each element in the same order.
func (g *Guesser) AdjustToCompensateForValues(values []any) error {
	for _, v := range values {
		if err := g.AdjustToCompensateForValue(v); err != nil {
			return err
		}
	}
	return nil
}

// Parse converts candidate into the concrete value of the current estimate,
// re-validating acceptability first. It succeeds for every string previously
// accepted by this instance, because merges only widen. A failure is
// ErrParse and signals caller misuse, not bad data.
func (g *Guesser) Parse(candidate string) (any, error) {
	if candidate == "" {
		return nil, nil
	}
	d := g.current
	if d == nil {
		d = deciderFor(TagString)
	}
	scratch := g.size
	if !d.IsAcceptable(candidate, &g.Settings, &scratch) {
		return nil, parseFailure(candidate, d.TypeTag())
	}
	return d.Parse(candidate, &g.Settings)
}

func (g *Guesser) adjustString(s string) error {
	if s == "" {
		return nil
	}
	if g.regime == regimeScalar {
		return errStringAfterScalar()
	}
	// Scan in preference order; the first decider to accept grows scratch.
	scratch := g.size
	var selected Decider
	for _, d := range deciders {
		if d.IsAcceptable(s, &g.Settings, &scratch) {
			selected = d
			break
		}
	}

	if g.fallen() {
		// The fallback is terminal: the estimate stays String, but the size
		// keeps accreting so the final guess is order-independent.
		g.size = scratch
	} else {
		g.commit(g.merge(selected, scratch))
	}
	g.regime = regimeString
	return nil
}

func (g *Guesser) adjustScalar(v any) error {
	scratch := g.size
	selected, err := deciderForScalar(v, &scratch)
	if err != nil {
		return err
	}
	if g.regime == regimeString {
		return errScalarAfterString(selected.TypeTag())
	}
	if g.fallen() {
		g.commit(state{deciderFor(TagString), scratch})
		g.regime = regimeScalar
		return nil
	}
	if g.current != nil && selected.TypeTag() != g.current.TypeTag() &&
		selected.Group() != g.current.Group() && !g.Settings.ScalarClashFallback {
		return errIncompatibleScalars(g.current.TypeTag(), selected.TypeTag())
	}

	g.commit(g.merge(selected, scratch))
	g.regime = regimeScalar
	return nil
}

// state is a merge outcome, committed atomically.
type state struct {
	decider Decider
	size    Size
}

func (g *Guesser) commit(st state) {
	g.current = st.decider
	g.size = st.size
}

// merge resolves the selected decider against the current estimate.
// scratch already holds the current size grown to cover the new value.
//
//   - no estimate yet: adopt the selected decider
//   - same type: size growth only
//   - same compatibility group: the side later in preference order wins;
//     digit counts re-expressed in the wider type carry over unchanged
//   - different groups: permanent fallback to String, with the length
//     raised to cover the canonical rendering of both sides
func (g *Guesser) merge(selected Decider, scratch Size) state {
	switch {
	case g.current == nil, selected.TypeTag() == g.current.TypeTag():
		return state{selected, scratch}
	case selected.Group() == g.current.Group():
		winner := selected
		if preferenceIndex(g.current) > preferenceIndex(selected) {
			winner = g.current
		}
		return state{winner, scratch}
	default:
		scratch = scratch.
			GrowLength(scratch.StringWidthFor(g.current.TypeTag())).
			GrowLength(scratch.StringWidthFor(selected.TypeTag()))
		return state{deciderFor(TagString), scratch}
	}
}

// fallen reports whether the estimate has reached the terminal String
// fallback.
func (g *Guesser) fallen() bool {
	return g.current != nil && g.current.TypeTag() == TagString
}
