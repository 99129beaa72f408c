package typeguess

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// decimalDecider accepts fixed-point number tokens using the culture's
// decimal separator, plus float and decimal.Decimal scalars. Integer tokens
// too wide for int64 land here as scale-0 decimals.
type decimalDecider struct{}

func (decimalDecider) TypeTag() TypeTag          { return TagDecimal }
func (decimalDecider) Group() CompatibilityGroup { return GroupNumerical }

func (decimalDecider) IsAcceptable(candidate string, st *Settings, size *Size) bool {
	intDigits, fracDigits, ok := scanDecimal(candidate, st.Culture.sep())
	if !ok {
		return false
	}
	// Separator-free candidates shaped like explicit dates defer to the
	// date/time decider, same as the integer decider does.
	if fracDigits == 0 && st.explicitDate(candidate) {
		return false
	}
	*size = size.GrowNumeric(intDigits, fracDigits).GrowLength(uint(len(candidate)))
	return true
}

func (decimalDecider) Parse(candidate string, st *Settings) (any, error) {
	normalized := candidate
	if sep := st.Culture.sep(); sep != '.' {
		normalized = strings.ReplaceAll(candidate, string(sep), ".")
	}
	v, err := decimal.NewFromString(normalized)
	if err != nil {
		return nil, parseFailure(candidate, TagDecimal)
	}
	return v, nil
}

func (decimalDecider) AcceptScalar(v any, size *Size) bool {
	switch n := v.(type) {
	case float32:
		growFloat(float64(n), 32, size)
	case float64:
		growFloat(n, 64, size)
	case decimal.Decimal:
		// NumDigits counts coefficient digits only; a positive exponent
		// shifts them all left of the separator and appends zeros.
		intDigits := uint(1)
		var fracDigits uint
		total := uint(n.NumDigits())
		if exp := n.Exponent(); exp > 0 {
			intDigits = total + uint(exp)
		} else {
			fracDigits = uint(-exp)
			if total > fracDigits {
				intDigits = total - fracDigits
			}
		}
		width := intDigits + fracDigits + 1
		if fracDigits > 0 {
			width++
		}
		*size = size.GrowNumeric(intDigits, fracDigits).GrowLength(width)
	default:
		return false
	}
	return true
}

// growFloat measures a float via its shortest decimal rendering into a
// stack buffer, keeping the scalar path allocation-free. bitSize is the
// origin width: a float32 rendered at 64 bits picks up spurious fractional
// digits (float32(0.1) would measure 17 instead of 1).
func growFloat(f float64, bitSize int, size *Size) {
	var buf [336]byte
	s := strconv.AppendFloat(buf[:0], f, 'f', -1, bitSize)
	var intDigits, fracDigits uint
	seenPoint := false
	for _, c := range s {
		switch {
		case c == '.':
			seenPoint = true
		case c >= '0' && c <= '9':
			if seenPoint {
				fracDigits++
			} else {
				intDigits++
			}
		}
	}
	*size = size.GrowNumeric(intDigits, fracDigits).GrowLength(uint(len(s)))
}

// scanDecimal reports whether s is an optionally signed digit run with at
// most one separator, and the digit counts on either side. A bare separator
// with no digits, or a trailing separator, is rejected.
func scanDecimal(s string, sep byte) (intDigits, fracDigits uint, ok bool) {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	if i == len(s) {
		return 0, 0, false
	}
	seenSep := false
	anyDigit := false
	for ; i < len(s); i++ {
		switch {
		case s[i] == sep:
			if seenSep {
				return 0, 0, false
			}
			seenSep = true
		case s[i] >= '0' && s[i] <= '9':
			anyDigit = true
			if seenSep {
				fracDigits++
			} else {
				intDigits++
			}
		default:
			return 0, 0, false
		}
	}
	if !anyDigit || (seenSep && fracDigits == 0) {
		return 0, 0, false
	}
	if intDigits == 0 {
		intDigits = 1 // ".5" renders with a leading zero
	}
	return intDigits, fracDigits, true
}
