package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// RollNumberPattern - a roll number is entered as exactly 5 digits
	RollNumberPattern = `^\d{5}$`

	// NamePattern - student names are ASCII letters only
	NamePattern = `^[a-zA-Z]+$`

	// DigitsPattern matches any non-empty run of decimal digits
	DigitsPattern = `^\d+$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	RollNumber *regexp.Regexp
	Name       *regexp.Regexp
	Digits     *regexp.Regexp
}{
	RollNumber: regexp.MustCompile(RollNumberPattern),
	Name:       regexp.MustCompile(NamePattern),
	Digits:     regexp.MustCompile(DigitsPattern),
}

// IsRollNumber reports whether s is a well-formed roll number entry
func IsRollNumber(s string) bool {
	return NewStringValidation(s).WithPattern(CompiledPatterns.RollNumber).Validate()
}

// IsName reports whether s is a well-formed student name
func IsName(s string) bool {
	return NewStringValidation(s).WithPattern(CompiledPatterns.Name).Validate()
}

// IsDigits reports whether s consists only of decimal digits
func IsDigits(s string) bool {
	return NewStringValidation(s).WithPattern(CompiledPatterns.Digits).Validate()
}

// String validation
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// Numeric validation. Bounds are only applied when set via WithMin/WithMax.
type NumericValidation struct {
	Value  int
	Min    int
	Max    int
	hasMin bool
	hasMax bool
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation(value int) *NumericValidation {
	return &NumericValidation{
		Value: value,
	}
}

// WithMin sets minimum value
func (v *NumericValidation) WithMin(min int) *NumericValidation {
	v.Min = min
	v.hasMin = true
	return v
}

// WithMax sets maximum value
func (v *NumericValidation) WithMax(max int) *NumericValidation {
	v.Max = max
	v.hasMax = true
	return v
}

// Validate performs validation
func (v *NumericValidation) Validate() bool {
	if v.hasMin && v.Value < v.Min {
		return false
	}

	if v.hasMax && v.Value > v.Max {
		return false
	}

	return true
}
