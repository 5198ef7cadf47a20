package validator

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Numeric is the set of Go number types ValidateNumberOf accepts.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsNumber reports whether v holds any Go integer or float, or a json.Number
// that parses as one.
func IsNumber(v any) bool {
	_, ok := ToNumber(v)
	return ok
}

// ToNumber converts v to float64 when it is a number.
func ToNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// IsNumberRequired reports whether v satisfies the required flag.
// A required number only has to be present.
func IsNumberRequired(v any, isRequired bool) bool {
	if !isRequired {
		return true
	}
	return v != nil
}

func IsMinValue(value, min float64) bool {
	return value >= min
}

func IsMaxValue(value, max float64) bool {
	return value <= max
}

// IsInteger checks integrality against the wanted polarity: with want set the
// value must be an integer, otherwise it must not be one.
func IsInteger(value float64, want bool) bool {
	return isWhole(value) == want
}

func isWhole(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0) && math.Trunc(value) == value
}

// AllowNegative fails only negative values, and only when they are not allowed.
func AllowNegative(value float64, allow bool) bool {
	return allow || value >= 0
}

// AllowZero fails only zero, and only when it is not allowed.
func AllowZero(value float64, allow bool) bool {
	return allow || value != 0
}

// AllowPositive fails only positive values, and only when they are not allowed.
func AllowPositive(value float64, allow bool) bool {
	return allow || value <= 0
}

// HasDecimal reports whether value is finite and has a fractional part.
func HasDecimal(value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	return !isWhole(value)
}

// DecimalPlaces counts the digits after the decimal point in the shortest
// representation of value.
func DecimalPlaces(value float64) int {
	if !HasDecimal(value) {
		return 0
	}
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func IsValidMaxDecimalPlaces(value float64, max int) bool {
	return DecimalPlaces(value) <= max
}

func IsValidMinDecimalPlaces(value float64, min int) bool {
	return DecimalPlaces(value) >= min
}

// IsBinary reports whether value is a whole number written only with the digits 0 and 1.
func IsBinary(value float64) bool {
	if !isWhole(value) {
		return false
	}
	digits := strconv.FormatFloat(math.Abs(value), 'f', -1, 64)
	return strings.Trim(digits, "01") == ""
}
