package typeguess

import "strconv"

// Size holds accreted width metadata for a value stream. Every field is
// non-decreasing across the lifetime of a Guesser: growing and combining
// only ever take component-wise maxima.
//
// Size is a value type. Grow and Combine return a new Size rather than
// mutating, so an externally held copy can never alias a Guesser's
// accumulator.
type Size struct {
	IntegerDigits    uint `yaml:"integer_digits"`
	FractionalDigits uint `yaml:"fractional_digits"`
	StringLength     uint `yaml:"string_length"`
}

// GrowNumeric widens the digit counts to cover a value with the given
// integer and fractional digit counts.
func (s Size) GrowNumeric(integerDigits, fractionalDigits uint) Size {
	if integerDigits > s.IntegerDigits {
		s.IntegerDigits = integerDigits
	}
	if fractionalDigits > s.FractionalDigits {
		s.FractionalDigits = fractionalDigits
	}
	return s
}

// GrowLength widens the string length to cover a rendering of n characters.
func (s Size) GrowLength(n uint) Size {
	if n > s.StringLength {
		s.StringLength = n
	}
	return s
}

// Combine merges two sizes component-wise. Combine is commutative and
// associative, which makes size accretion order-independent.
func (s Size) Combine(o Size) Size {
	return s.GrowNumeric(o.IntegerDigits, o.FractionalDigits).GrowLength(o.StringLength)
}

// StringWidthFor returns the width of the canonical string rendering of the
// widest value counted so far, were it stored under tag. Used when a guess
// falls back to String: the textual column must cover the rendering of every
// previously accepted numeric or boolean value, not just its digit count.
func (s Size) StringWidthFor(tag TypeTag) uint {
	switch tag {
	case TagBoolean:
		return 5 // "false"
	case TagInteger:
		return s.IntegerDigits + 1 // sign
	case TagDecimal:
		w := s.IntegerDigits + 1
		if s.FractionalDigits > 0 {
			w += s.FractionalDigits + 1 // separator
		}
		return w
	default:
		// Temporal and textual values are tracked via StringLength directly.
		return s.StringLength
	}
}

// String renders the size in a compact diagnostic form.
func (s Size) String() string {
	return "(" + strconv.FormatUint(uint64(s.IntegerDigits), 10) +
		"," + strconv.FormatUint(uint64(s.FractionalDigits), 10) +
		",len=" + strconv.FormatUint(uint64(s.StringLength), 10) + ")"
}
