package typeguess

// TypeTag identifies a concrete storage type.
type TypeTag uint8

const (
	TagBoolean TypeTag = iota
	TagInteger
	TagDecimal
	TagDateTime
	TagDuration
	TagString
)

// String returns the type name.
func (t TypeTag) String() string {
	switch t {
	case TagBoolean:
		return "boolean"
	case TagInteger:
		return "integer"
	case TagDecimal:
		return "decimal"
	case TagDateTime:
		return "datetime"
	case TagDuration:
		return "duration"
	case TagString:
		return "string"
	default:
		return "unknown"
	}
}

// CompatibilityGroup is a set of types allowed to widen into one another.
// Deciders in different groups never merge; the guess falls back to String
// instead.
type CompatibilityGroup uint8

const (
	GroupBoolean CompatibilityGroup = iota
	GroupNumerical
	GroupTemporal
	GroupTextual // the String fallback; member of no widening set
)

// String returns the group name.
func (g CompatibilityGroup) String() string {
	switch g {
	case GroupBoolean:
		return "boolean"
	case GroupNumerical:
		return "numerical"
	case GroupTemporal:
		return "temporal"
	case GroupTextual:
		return "textual"
	default:
		return "unknown"
	}
}

// DatabaseTypeRequest is the immutable result of a guess: the narrowest type
// that can represent every value seen so far, plus the width metadata a
// column-creation statement needs. Produced only by Guesser.Guess.
type DatabaseTypeRequest struct {
	Tag  TypeTag
	Size Size
}

// String renders the request in a compact diagnostic form.
func (r DatabaseTypeRequest) String() string {
	return r.Tag.String() + r.Size.String()
}
