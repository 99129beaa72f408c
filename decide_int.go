package typeguess

import "strconv"

// intDecider accepts signed whole-number tokens that fit int64, and the
// integer scalar kinds up to int64 (uint64 and uintptr are unsupported: they
// can exceed int64 range and have no lossless home here).
type intDecider struct{}

func (intDecider) TypeTag() TypeTag          { return TagInteger }
func (intDecider) Group() CompatibilityGroup { return GroupNumerical }

func (intDecider) IsAcceptable(candidate string, st *Settings, size *Size) bool {
	digits, ok := scanInteger(candidate)
	if !ok {
		return false
	}
	// Digit-only strings shaped like explicit dates (e.g. "20250131") defer
	// to the date/time decider rather than masquerade as plain integers.
	if st.explicitDate(candidate) {
		return false
	}
	if digits > 19 {
		return false // beyond int64; the decimal decider still takes it
	}
	if _, err := strconv.ParseInt(candidate, 10, 64); err != nil {
		return false
	}
	*size = size.GrowNumeric(digits, 0).GrowLength(uint(len(candidate)))
	return true
}

func (intDecider) Parse(candidate string, st *Settings) (any, error) {
	v, err := strconv.ParseInt(candidate, 10, 64)
	if err != nil {
		return nil, parseFailure(candidate, TagInteger)
	}
	return v, nil
}

func (intDecider) AcceptScalar(v any, size *Size) bool {
	var u uint64
	var neg bool
	switch n := v.(type) {
	case int:
		u, neg = absUint(int64(n))
	case int8:
		u, neg = absUint(int64(n))
	case int16:
		u, neg = absUint(int64(n))
	case int32:
		u, neg = absUint(int64(n))
	case int64:
		u, neg = absUint(n)
	case uint8:
		u = uint64(n)
	case uint16:
		u = uint64(n)
	case uint32:
		u = uint64(n)
	default:
		return false
	}
	digits := digitsOf(u)
	width := digits
	if neg {
		width++
	}
	*size = size.GrowNumeric(digits, 0).GrowLength(width)
	return true
}

// scanInteger reports whether s is an optionally signed run of digits, and
// the digit count.
func scanInteger(s string) (digits uint, ok bool) {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	if i == len(s) {
		return 0, false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		digits++
	}
	return digits, true
}

// digitsOf returns the decimal digit count of u; 0 has one digit.
func digitsOf(u uint64) uint {
	var digits uint = 1
	for u >= 10 {
		u /= 10
		digits++
	}
	return digits
}

func absUint(n int64) (uint64, bool) {
	if n < 0 {
		return uint64(-(n + 1)) + 1, true
	}
	return uint64(n), false
}
