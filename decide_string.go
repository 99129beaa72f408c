package typeguess

// stringDecider is the universal fallback. It accepts every candidate,
// belongs to no widening set, and closes the preference order.
type stringDecider struct{}

func (stringDecider) TypeTag() TypeTag          { return TagString }
func (stringDecider) Group() CompatibilityGroup { return GroupTextual }

func (stringDecider) IsAcceptable(candidate string, st *Settings, size *Size) bool {
	*size = size.GrowLength(uint(len(candidate)))
	return true
}

func (stringDecider) Parse(candidate string, st *Settings) (any, error) {
	return candidate, nil
}

// AcceptScalar always reports false: text reaches the guesser through the
// string regime, never as a hard-typed scalar.
func (stringDecider) AcceptScalar(v any, size *Size) bool { return false }
