package typeguess

import "strings"

// boolDecider accepts boolean literal tokens and bool scalars.
type boolDecider struct{}

func (boolDecider) TypeTag() TypeTag          { return TagBoolean }
func (boolDecider) Group() CompatibilityGroup { return GroupBoolean }

func (boolDecider) IsAcceptable(candidate string, st *Settings, size *Size) bool {
	ok, _ := matchBoolLiteral(candidate, st)
	if !ok {
		return false
	}
	*size = size.GrowLength(uint(len(candidate)))
	return true
}

func (d boolDecider) Parse(candidate string, st *Settings) (any, error) {
	ok, value := matchBoolLiteral(candidate, st)
	if !ok {
		return nil, parseFailure(candidate, TagBoolean)
	}
	return value, nil
}

func (boolDecider) AcceptScalar(v any, size *Size) bool {
	_, ok := v.(bool)
	if ok {
		*size = size.GrowLength(5) // "false"
	}
	return ok
}

// matchBoolLiteral tests candidate against the culture's literal sets and,
// when CharCanBeBoolean is on, the single-character forms t/f/y/n. Digit
// tokens "1" and "0" are deliberately excluded: they belong to the integer
// decider.
func matchBoolLiteral(candidate string, st *Settings) (ok, value bool) {
	if len(candidate) == 1 {
		if !st.CharCanBeBoolean {
			return false, false
		}
		switch candidate[0] {
		case 't', 'T', 'y', 'Y':
			return true, true
		case 'f', 'F', 'n', 'N':
			return true, false
		}
		return false, false
	}
	for _, lit := range st.Culture.TrueLiterals {
		if strings.EqualFold(candidate, lit) {
			return true, true
		}
	}
	for _, lit := range st.Culture.FalseLiterals {
		if strings.EqualFold(candidate, lit) {
			return true, false
		}
	}
	return false, false
}
