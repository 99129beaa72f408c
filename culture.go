package typeguess

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Culture carries the locale-dependent parsing rules the deciders consult:
// numeric separators, accepted date/time layouts, and boolean literal sets.
// The zero value is not usable; start from InvariantCulture and override.
type Culture struct {
	// Name labels the culture in config files and diagnostics, e.g. "invariant"
	// or "de-DE". It carries no behavior.
	Name string `yaml:"name"`

	// DecimalSeparator splits integer from fractional digits, '.' in the
	// invariant culture.
	DecimalSeparator string `yaml:"decimal_separator"`

	// DateLayouts, TimeLayouts and DateTimeLayouts are Go reference layouts
	// tried in order by the date/time decider.
	DateLayouts     []string `yaml:"date_layouts"`
	TimeLayouts     []string `yaml:"time_layouts"`
	DateTimeLayouts []string `yaml:"datetime_layouts"`

	// TrueLiterals and FalseLiterals are the multi-character boolean tokens,
	// compared case-insensitively. Single-character tokens are governed by
	// Settings.CharCanBeBoolean instead.
	TrueLiterals  []string `yaml:"true_literals"`
	FalseLiterals []string `yaml:"false_literals"`
}

// InvariantCulture returns the locale-neutral default: '.' decimal
// separator, ISO-style date layouts, english boolean literals.
func InvariantCulture() Culture {
	return Culture{
		Name:             "invariant",
		DecimalSeparator: ".",
		DateLayouts: []string{
			"2006-01-02",
			"2006/01/02",
			"20060102",
			"02 Jan 2006",
			"Jan 2 2006",
		},
		TimeLayouts: []string{
			"15:04:05",
			"15:04",
		},
		DateTimeLayouts: []string{
			"2006-01-02 15:04:05",
			"2006-01-02T15:04:05",
			"2006-01-02T15:04:05Z07:00",
			"2006/01/02 15:04:05",
		},
		TrueLiterals:  []string{"true", "yes"},
		FalseLiterals: []string{"false", "no"},
	}
}

// sep returns the separator byte, '.' when unset or multi-byte.
func (c *Culture) sep() byte {
	if len(c.DecimalSeparator) == 1 {
		return c.DecimalSeparator[0]
	}
	return '.'
}

// Settings configures a Guesser. Mutable before and between ingestions; a
// change affects subsequent acceptance tests only.
type Settings struct {
	Culture Culture `yaml:"culture"`

	// CharCanBeBoolean admits single-character tokens ("Y", "n", "t", "F")
	// into the boolean decider. Off by default: one-letter columns are more
	// often codes than flags.
	CharCanBeBoolean bool `yaml:"char_can_be_boolean"`

	// ScalarClashFallback selects the policy for two hard-typed values from
	// different compatibility groups on one instance: false (default) fails
	// with ErrIncompatibleTypes, true falls back to String silently, the
	// same way string input does.
	ScalarClashFallback bool `yaml:"scalar_clash_fallback"`

	// ExplicitDateTest recognizes digit-only strings that denote dates
	// (e.g. "20250131") so the integer decider defers them to the date/time
	// decider. Nil selects the built-in yyyymmdd-shape heuristic.
	ExplicitDateTest func(string) bool `yaml:"-"`
}

// DefaultSettings returns the invariant-culture defaults.
func DefaultSettings() Settings {
	return Settings{Culture: InvariantCulture()}
}

// explicitDate applies the configured or default explicit-date predicate.
func (s *Settings) explicitDate(candidate string) bool {
	if s.ExplicitDateTest != nil {
		return s.ExplicitDateTest(candidate)
	}
	return looksLikeDateSerial(candidate)
}

// looksLikeDateSerial is the default explicit-date heuristic: an 8-digit
// string whose digits form a plausible yyyymmdd date, e.g. "20250131".
// Years before 1000 are not considered dates, so ordinary large integers
// such as "00001234" stay integers.
func looksLikeDateSerial(candidate string) bool {
	if len(candidate) != 8 {
		return false
	}
	for i := 0; i < 8; i++ {
		if candidate[i] < '0' || candidate[i] > '9' {
			return false
		}
	}
	year := atoi4(candidate[0:4])
	month := atoi2(candidate[4:6])
	day := atoi2(candidate[6:8])
	return year >= 1000 && month >= 1 && month <= 12 && day >= 1 && day <= 31
}

func atoi4(s string) int {
	return int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
}

func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}

// ParseSettings decodes Settings from YAML, layered over DefaultSettings so
// partial config files work. ETL tooling persists per-source settings this
// way.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("typeguess: parsing settings: %w", err)
	}
	return s, nil
}

// EncodeSettings renders Settings as YAML. The explicit-date predicate is a
// function and is not serialized.
func EncodeSettings(s Settings) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("typeguess: encoding settings: %w", err)
	}
	return data, nil
}
