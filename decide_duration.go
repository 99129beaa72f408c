package typeguess

import "time"

// durationDecider accepts elapsed-time tokens: clock-style "H:MM:SS" spans
// whose hour field may exceed 23, and Go unit-suffixed literals such as
// "1h30m" or "150ms". Time-of-day tokens within a single day are claimed by
// the date/time decider first, which scans earlier.
type durationDecider struct{}

func (durationDecider) TypeTag() TypeTag          { return TagDuration }
func (durationDecider) Group() CompatibilityGroup { return GroupTemporal }

func (durationDecider) IsAcceptable(candidate string, st *Settings, size *Size) bool {
	if _, ok := parseSpan(candidate); !ok {
		return false
	}
	*size = size.GrowLength(uint(len(candidate)))
	return true
}

func (durationDecider) Parse(candidate string, st *Settings) (any, error) {
	v, ok := parseSpan(candidate)
	if !ok {
		return nil, parseFailure(candidate, TagDuration)
	}
	return v, nil
}

func (durationDecider) AcceptScalar(v any, size *Size) bool {
	d, ok := v.(time.Duration)
	if !ok {
		return false
	}
	*size = size.GrowLength(clockWidth(d))
	return true
}

// clockWidth is the rendering width of d in canonical clock form
// "[-]H…H:MM:SS", computed without formatting.
func clockWidth(d time.Duration) uint {
	var width uint = 6 // ":MM:SS"
	if d < 0 {
		width++
		d = -d
	}
	return width + digitsOf(uint64(d/time.Hour))
}

// parseSpan parses a clock-style or unit-suffixed span token.
func parseSpan(candidate string) (time.Duration, bool) {
	if h, m, s, ok := scanClock(candidate); ok {
		span := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
		if candidate[0] == '-' {
			span = -span
		}
		return span, true
	}
	// Unit-suffixed literals must contain a unit; time.ParseDuration also
	// takes bare "0", which belongs to the integer decider.
	if !hasUnitSuffix(candidate) {
		return 0, false
	}
	v, err := time.ParseDuration(candidate)
	if err != nil {
		return 0, false
	}
	return v, true
}

// scanClock matches "H:MM" and "H:MM:SS" with an optional sign and an
// unbounded hour field.
func scanClock(s string) (h, m, sec int, ok bool) {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		h = h*10 + int(s[i]-'0')
		i++
	}
	if i == start || i == len(s) || s[i] != ':' {
		return 0, 0, 0, false
	}
	i++
	if len(s)-i < 2 || !twoDigits(s[i:], &m) || m > 59 {
		return 0, 0, 0, false
	}
	i += 2
	if i == len(s) {
		return h, m, 0, true
	}
	if s[i] != ':' {
		return 0, 0, 0, false
	}
	i++
	if len(s)-i != 2 || !twoDigits(s[i:], &sec) || sec > 59 {
		return 0, 0, 0, false
	}
	return h, m, sec, true
}

func twoDigits(s string, out *int) bool {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return false
	}
	*out = int(s[0]-'0')*10 + int(s[1]-'0')
	return true
}

func hasUnitSuffix(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' || c == 'µ' {
			return true
		}
	}
	return false
}
