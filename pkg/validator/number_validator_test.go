package validator_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func TestValidateNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   any
		opts    validator.NumberOptions
		wantKey string
		wantMsg string
		want    float64
	}{
		{
			name:  "defaults accept any number",
			value: -3.75,
			want:  -3.75,
		},
		{
			name:  "bounded integer",
			value: 42,
			opts: validator.NumberOptions{
				MinValue:  validator.Ptr(0.0),
				MaxValue:  validator.Ptr(100.0),
				IsInteger: true,
			},
			want: 42,
		},
		{
			name:  "json number",
			value: json.Number("12.5"),
			want:  12.5,
		},
		{
			name:    "numeric string is not a number",
			value:   "42",
			wantKey: "isNumberError",
			wantMsg: "Value must be a number.",
		},
		{
			name:    "nil is not a number",
			value:   nil,
			opts:    validator.NumberOptions{IsRequired: true},
			wantKey: "isNumberError",
			wantMsg: "Value must be a number.",
		},
		{
			name:    "below minimum",
			value:   5,
			opts:    validator.NumberOptions{MinValue: validator.Ptr(10.0)},
			wantKey: "minValueError",
			wantMsg: "Number should not be less than the minimum value",
		},
		{
			name:    "above maximum",
			value:   11,
			opts:    validator.NumberOptions{MaxValue: validator.Ptr(10.0)},
			wantKey: "maxValueError",
			wantMsg: "Number should not exceed the maximum value",
		},
		{
			name:    "not an integer",
			value:   3.5,
			opts:    validator.NumberOptions{IsInteger: true},
			wantKey: "integerError",
			wantMsg: "Number should be an integer",
		},
		{
			name:    "negative disallowed",
			value:   -5,
			opts:    validator.NumberOptions{AllowNegative: validator.Ptr(false)},
			wantKey: "negativeError",
			wantMsg: "Negative numbers are not allowed",
		},
		{
			name:    "zero disallowed",
			value:   0,
			opts:    validator.NumberOptions{AllowZero: validator.Ptr(false)},
			wantKey: "zeroError",
			wantMsg: "Zero is not allowed",
		},
		{
			name:  "zero passes sign policies",
			value: 0,
			opts: validator.NumberOptions{
				AllowNegative: validator.Ptr(false),
				AllowPositive: validator.Ptr(false),
			},
			want: 0,
		},
		{
			name:    "positive disallowed",
			value:   5,
			opts:    validator.NumberOptions{AllowPositive: validator.Ptr(false)},
			wantKey: "positiveError",
			wantMsg: "Positive numbers are not allowed",
		},
		{
			name:    "decimal part required",
			value:   3,
			opts:    validator.NumberOptions{OnlyDecimal: true},
			wantKey: "decimalError",
			wantMsg: "Number must have a decimal part",
		},
		{
			name:    "too many decimal places",
			value:   1.234,
			opts:    validator.NumberOptions{MaxDecimalPlaces: validator.Ptr(2)},
			wantKey: "maxDecimalError",
			wantMsg: "Number must have at most 2 decimal places",
		},
		{
			name:    "too few decimal places",
			value:   1.5,
			opts:    validator.NumberOptions{MinDecimalPlaces: validator.Ptr(2)},
			wantKey: "minDecimalError",
			wantMsg: "Number must have at least 2 decimal places",
		},
		{
			name:    "not binary",
			value:   102,
			opts:    validator.NumberOptions{OnlyBinary: true},
			wantKey: "binaryError",
			wantMsg: "Number must be a binary number",
		},
		{
			name:  "binary",
			value: 1011,
			opts:  validator.NumberOptions{OnlyBinary: true},
			want:  1011,
		},
		{
			name:    "custom message",
			value:   -1,
			opts:    validator.NumberOptions{AllowNegative: validator.Ptr(false), NegativeError: "Must be positive"},
			wantKey: "negativeError",
			wantMsg: "Must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := validator.ValidateNumber(tt.value, tt.opts)
			require.NoError(t, err)

			if tt.wantKey == "" {
				assert.True(t, res.IsValid, res.ErrorMessage)
				assert.Equal(t, tt.want, res.ReturnedNumber)
				return
			}

			assert.False(t, res.IsValid)
			assert.Equal(t, tt.wantKey, res.ErrorKey)
			assert.Equal(t, tt.wantMsg, res.ErrorMessage)
		})
	}
}

func TestValidateNumber_RuleOrder(t *testing.T) {
	t.Parallel()

	opts := validator.NumberOptions{
		MinValue:      validator.Ptr(0.0),
		IsInteger:     true,
		AllowNegative: validator.Ptr(false),
	}

	res, err := validator.ValidateNumber(-5.5, opts)
	require.NoError(t, err)
	assert.Equal(t, "minValueError", res.ErrorKey)

	opts.MinValue = nil
	res, err = validator.ValidateNumber(-5.5, opts)
	require.NoError(t, err)
	assert.Equal(t, "integerError", res.ErrorKey)

	res, err = validator.ValidateNumber(-5, opts)
	require.NoError(t, err)
	assert.Equal(t, "negativeError", res.ErrorKey)
}

func TestValidateNumberOf(t *testing.T) {
	t.Parallel()

	res := validator.ValidateNumberOf(int8(7), validator.NumberOptions{MaxValue: validator.Ptr(10.0)})
	assert.True(t, res.IsValid)
	assert.Equal(t, 7.0, res.ReturnedNumber)

	res = validator.ValidateNumberOf(uint(20), validator.NumberOptions{MaxValue: validator.Ptr(10.0)})
	assert.False(t, res.IsValid)
	assert.Equal(t, "maxValueError", res.ErrorKey)
}

func TestValidateNumberMap(t *testing.T) {
	t.Parallel()

	t.Run("weakly typed options", func(t *testing.T) {
		res, err := validator.ValidateNumberMap(5, map[string]any{"minValue": "10"})
		require.NoError(t, err)
		assert.Equal(t, "minValueError", res.ErrorKey)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := validator.ValidateNumberMap(5, map[string]any{"min": 1})
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrInvalidOptions)
	})
}
