package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeight(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12.5", "12.50"},
		{" 7 ", "7.00"},
		{"12,5", "12.50"},
		{"0", "0.00"},
		{"3.456", "3.46"},
		{"3.454", "3.45"},
		{"-1.5", "-1.50"},
	}
	for _, tc := range cases {
		got, err := ParseWeight(tc.in)
		require.NoError(t, err, "input=%q", tc.in)
		assert.Equal(t, tc.want, FormatWeight(got), "input=%q", tc.in)
	}
}

func TestParseWeight_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "1,2,3", "12kg"} {
		_, err := ParseWeight(in)
		require.Error(t, err, "input=%q", in)
		assert.ErrorIs(t, err, ErrInvalidWeight)
	}
}

func TestValidateScaleWeight(t *testing.T) {
	v, err := ValidateScaleWeight(decimal.RequireFromString("25.005"))
	require.NoError(t, err)
	assert.Equal(t, "25.01", FormatWeight(v))

	v, err = ValidateScaleWeight(decimal.Zero)
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	_, err = ValidateScaleWeight(decimal.RequireFromString("-0.5"))
	assert.ErrorIs(t, err, ErrNegativeWeight)
}

func TestValidateScaleWeight_SignCheckedBeforeRounding(t *testing.T) {
	_, err := ValidateScaleWeight(decimal.RequireFromString("-0.004"))
	assert.ErrorIs(t, err, ErrNegativeWeight)

	parsed, err := ParseWeight("-0,004")
	require.NoError(t, err)
	assert.True(t, parsed.IsNegative())
	_, err = ValidateScaleWeight(parsed)
	assert.ErrorIs(t, err, ErrNegativeWeight)

	v, err := ValidateScaleWeight(decimal.RequireFromString("0.004"))
	require.NoError(t, err)
	assert.True(t, v.IsZero())
}
