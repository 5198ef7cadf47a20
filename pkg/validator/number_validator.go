package validator

import "fmt"

// Default number messages.
const (
	msgIsNumber   = "Value must be a number."
	msgRequired   = "Number is required"
	msgMinValue   = "Number should not be less than the minimum value"
	msgMaxValue   = "Number should not exceed the maximum value"
	msgInteger    = "Number should be an integer"
	msgNegative   = "Negative numbers are not allowed"
	msgZero       = "Zero is not allowed"
	msgPositive   = "Positive numbers are not allowed"
	msgDecimal    = "Number must have a decimal part"
	msgMaxDecimal = "Number must have at most %d decimal places"
	msgMinDecimal = "Number must have at least %d decimal places"
	msgBinary     = "Number must be a binary number"
)

// ValidateNumber checks value against opts. Any Go integer or float type is a
// number, and so is a json.Number holding a valid literal.
//
// NumberOptions has no option that can be misconfigured, so the error is
// always nil; it is kept for symmetry with ValidateString and ValidateNumberMap.
func ValidateNumber(value any, opts NumberOptions) (NumberResult, error) {
	n, ok := ToNumber(value)
	if !ok {
		return NumberResult{
			ErrorKey:     "isNumberError",
			ErrorMessage: message(opts.IsNumberError, msgIsNumber),
		}, nil
	}

	if failure := First(numberRules(value, n, opts)...); failure != nil {
		return NumberResult{ErrorKey: failure.Key, ErrorMessage: failure.Message}, nil
	}

	return NumberResult{IsValid: true, ReturnedNumber: n}, nil
}

// ValidateNumberOf is ValidateNumber for statically typed numbers.
func ValidateNumberOf[T Numeric](value T, opts NumberOptions) NumberResult {
	res, _ := ValidateNumber(float64(value), opts)
	return res
}

// ValidateNumberMap normalises raw with ParseNumberOptions, then validates value.
func ValidateNumberMap(value any, raw map[string]any) (NumberResult, error) {
	opts, err := ParseNumberOptions(raw)
	if err != nil {
		return NumberResult{}, err
	}
	return ValidateNumber(value, opts)
}

func numberRules(raw any, n float64, opts NumberOptions) []Rule {
	rules := make([]Rule, 0, 11)

	if opts.IsRequired {
		rules = append(rules, Rule{
			Key:     "requiredError",
			Check:   func() bool { return IsNumberRequired(raw, true) },
			Message: message(opts.RequiredError, msgRequired),
		})
	}
	if opts.MinValue != nil {
		min := *opts.MinValue
		rules = append(rules, Rule{
			Key:     "minValueError",
			Check:   func() bool { return IsMinValue(n, min) },
			Message: message(opts.MinValueError, msgMinValue),
		})
	}
	if opts.MaxValue != nil {
		max := *opts.MaxValue
		rules = append(rules, Rule{
			Key:     "maxValueError",
			Check:   func() bool { return IsMaxValue(n, max) },
			Message: message(opts.MaxValueError, msgMaxValue),
		})
	}
	if opts.IsInteger {
		rules = append(rules, Rule{
			Key:     "integerError",
			Check:   func() bool { return IsInteger(n, true) },
			Message: message(opts.IntegerError, msgInteger),
		})
	}

	allowNegative, allowZero, allowPositive := opts.NegativeAllowed(), opts.ZeroAllowed(), opts.PositiveAllowed()
	rules = append(rules,
		Rule{
			Key:     "negativeError",
			Check:   func() bool { return AllowNegative(n, allowNegative) },
			Message: message(opts.NegativeError, msgNegative),
		},
		Rule{
			Key:     "zeroError",
			Check:   func() bool { return AllowZero(n, allowZero) },
			Message: message(opts.ZeroError, msgZero),
		},
		Rule{
			Key:     "positiveError",
			Check:   func() bool { return AllowPositive(n, allowPositive) },
			Message: message(opts.PositiveError, msgPositive),
		},
	)

	if opts.OnlyDecimal {
		rules = append(rules, Rule{
			Key:     "decimalError",
			Check:   func() bool { return HasDecimal(n) },
			Message: message(opts.DecimalError, msgDecimal),
		})
	}
	if opts.MaxDecimalPlaces != nil {
		max := *opts.MaxDecimalPlaces
		rules = append(rules, Rule{
			Key:     "maxDecimalError",
			Check:   func() bool { return IsValidMaxDecimalPlaces(n, max) },
			Message: message(opts.MaxDecimalError, fmt.Sprintf(msgMaxDecimal, max)),
		})
	}
	if opts.MinDecimalPlaces != nil {
		min := *opts.MinDecimalPlaces
		rules = append(rules, Rule{
			Key:     "minDecimalError",
			Check:   func() bool { return IsValidMinDecimalPlaces(n, min) },
			Message: message(opts.MinDecimalError, fmt.Sprintf(msgMinDecimal, min)),
		})
	}
	if opts.OnlyBinary {
		rules = append(rules, Rule{
			Key:     "binaryError",
			Check:   func() bool { return IsBinary(n) },
			Message: message(opts.BinaryError, msgBinary),
		})
	}

	return rules
}
