package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRollNumber(t *testing.T) {
	cases := map[string]bool{
		"10001":  true,
		"00042":  true,
		"1234":   false,
		"123456": false,
		"12a45":  false,
		"":       false,
		" 12345": false,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsRollNumber(in), "input %q", in)
	}
}

func TestIsName(t *testing.T) {
	assert.True(t, IsName("Alice"))
	assert.True(t, IsName("bob"))
	assert.False(t, IsName("Mary Jane"))
	assert.False(t, IsName("R2D2"))
	assert.False(t, IsName(""))
}

func TestNumericValidation_Bounds(t *testing.T) {
	assert.True(t, NewNumericValidation(0).Validate())
	assert.True(t, NewNumericValidation(5).WithMin(1).WithMax(10).Validate())
	assert.False(t, NewNumericValidation(0).WithMin(1).Validate())
	assert.False(t, NewNumericValidation(11).WithMin(1).WithMax(10).Validate())
}

func TestStruct_FormatsFieldErrors(t *testing.T) {
	type sample struct {
		Name string `validate:"required,alpha"`
		Dept string `validate:"oneof=AIE CSE CYS"`
	}

	require.NoError(t, Struct(sample{Name: "Alice", Dept: "CSE"}))

	err := Struct(sample{Name: "Al1ce", Dept: "MEC"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name must contain alphabetic characters only")
	assert.Contains(t, err.Error(), "Dept must be one of: AIE CSE CYS")
}
