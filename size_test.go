package typeguess

import "testing"

func TestSizeGrowMonotonic(t *testing.T) {
	s := Size{}
	s = s.GrowNumeric(3, 2)
	if s.IntegerDigits != 3 || s.FractionalDigits != 2 {
		t.Fatalf("GrowNumeric = %v, want (3,2)", s)
	}

	// Smaller inputs never shrink a field.
	s = s.GrowNumeric(1, 5)
	if s.IntegerDigits != 3 || s.FractionalDigits != 5 {
		t.Errorf("GrowNumeric shrank: %v", s)
	}

	s = s.GrowLength(10)
	s = s.GrowLength(4)
	if s.StringLength != 10 {
		t.Errorf("GrowLength shrank: %v", s)
	}
}

func TestSizeCombine(t *testing.T) {
	a := Size{IntegerDigits: 4, FractionalDigits: 1, StringLength: 6}
	b := Size{IntegerDigits: 2, FractionalDigits: 3, StringLength: 9}
	want := Size{IntegerDigits: 4, FractionalDigits: 3, StringLength: 9}

	if got := a.Combine(b); got != want {
		t.Errorf("Combine = %v, want %v", got, want)
	}

	// Commutative.
	if a.Combine(b) != b.Combine(a) {
		t.Errorf("Combine not commutative: %v vs %v", a.Combine(b), b.Combine(a))
	}

	// Associative.
	c := Size{IntegerDigits: 1, FractionalDigits: 7, StringLength: 2}
	if a.Combine(b).Combine(c) != a.Combine(b.Combine(c)) {
		t.Error("Combine not associative")
	}
}

func TestSizeStringWidthFor(t *testing.T) {
	tests := []struct {
		name string
		size Size
		tag  TypeTag
		want uint
	}{
		{"boolean", Size{}, TagBoolean, 5},
		{"integer_sign_slot", Size{IntegerDigits: 3}, TagInteger, 4},
		{"decimal_with_scale", Size{IntegerDigits: 2, FractionalDigits: 3}, TagDecimal, 7},
		{"decimal_no_scale", Size{IntegerDigits: 2}, TagDecimal, 3},
		{"datetime_uses_length", Size{StringLength: 19}, TagDateTime, 19},
		{"string_uses_length", Size{StringLength: 8}, TagString, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.size.StringWidthFor(tt.tag); got != tt.want {
				t.Errorf("StringWidthFor(%s) = %d, want %d", tt.tag, got, tt.want)
			}
		})
	}
}

func TestTypeTagString(t *testing.T) {
	tags := map[TypeTag]string{
		TagBoolean:  "boolean",
		TagInteger:  "integer",
		TagDecimal:  "decimal",
		TagDateTime: "datetime",
		TagDuration: "duration",
		TagString:   "string",
	}
	for tag, want := range tags {
		if tag.String() != want {
			t.Errorf("TypeTag(%d).String() = %q, want %q", uint8(tag), tag.String(), want)
		}
	}
}
