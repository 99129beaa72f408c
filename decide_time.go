package typeguess

import "time"

// dateTimeDecider accepts date, time-of-day and combined tokens in the
// culture's layouts, plus time.Time scalars.
type dateTimeDecider struct{}

// dateTimeScalarWidth is the rendering width of "2006-01-02 15:04:05".
const dateTimeScalarWidth = 19

func (dateTimeDecider) TypeTag() TypeTag          { return TagDateTime }
func (dateTimeDecider) Group() CompatibilityGroup { return GroupTemporal }

func (dateTimeDecider) IsAcceptable(candidate string, st *Settings, size *Size) bool {
	if _, ok := parseTemporal(candidate, &st.Culture); !ok {
		return false
	}
	*size = size.GrowLength(uint(len(candidate)))
	return true
}

func (dateTimeDecider) Parse(candidate string, st *Settings) (any, error) {
	v, ok := parseTemporal(candidate, &st.Culture)
	if !ok {
		return nil, parseFailure(candidate, TagDateTime)
	}
	return v, nil
}

func (dateTimeDecider) AcceptScalar(v any, size *Size) bool {
	_, ok := v.(time.Time)
	if ok {
		*size = size.GrowLength(dateTimeScalarWidth)
	}
	return ok
}

// parseTemporal tries the culture's datetime, date and time layouts in
// order. Candidates that cannot start a temporal token (wrong first
// character) are rejected before any layout is tried.
func parseTemporal(candidate string, c *Culture) (time.Time, bool) {
	if len(candidate) < 3 || !(candidate[0] >= '0' && candidate[0] <= '9' || candidate[0] >= 'A' && candidate[0] <= 'Z') {
		return time.Time{}, false
	}
	for _, layouts := range [][]string{c.DateTimeLayouts, c.DateLayouts, c.TimeLayouts} {
		for _, layout := range layouts {
			if v, err := time.Parse(layout, candidate); err == nil {
				return v, true
			}
		}
	}
	return time.Time{}, false
}
