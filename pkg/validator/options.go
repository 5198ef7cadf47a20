package validator

import (
	"math"
	"reflect"
	"slices"

	"github.com/mitchellh/mapstructure"
)

const optionTag = "option"

// StringOptions configures ValidateString. The zero value validates a
// required string with no further constraints.
//
// Pointer fields distinguish "not set" from an explicit value because their
// defaults are not the Go zero value. Integer thresholds of 0 count as not set.
type StringOptions struct {
	IsRequired              *bool             `option:"isRequired"`
	MinStringLength         int               `option:"minStringLength"`
	MaxStringLength         int               `option:"maxStringLength"`
	AllowedChars            []string          `option:"allowedChars"`
	DisallowedChars         []string          `option:"disallowedChars"`
	BlacklistWords          []string          `option:"blacklistWords"`
	WordSeparator           *string           `option:"wordSeparator"`
	StartsWithPattern       string            `option:"startsWithPattern"`
	EndsWithPattern         string            `option:"endsWithPattern"`
	AllowSpaces             *bool             `option:"allowSpaces"`
	MinWordsCount           int               `option:"minWordsCount"`
	MaxWordsCount           int               `option:"maxWordsCount"`
	MaxRepetitiveCharsLimit *int              `option:"maxRepetitiveCharsLimit"`
	// RegexPattern is a predefined pattern name, a Matcher or a *regexp2.Regexp.
	RegexPattern       any               `option:"regexPattern"`
	CustomValidationFn func(string) bool `option:"customValidationFn"`

	IsStringError           string `option:"isStringError"`
	LengthError             string `option:"lengthError"`
	CustomError             string `option:"customError"`
	AllowedCharsError       string `option:"allowedCharsError"`
	DisallowedCharsError    string `option:"disallowedCharsError"`
	BlacklistWordsError     string `option:"blacklistWordsError"`
	IsRequiredError         string `option:"isRequiredError"`
	StartsWithError         string `option:"startsWithError"`
	EndsWithError           string `option:"endsWithError"`
	AllowedSpacesError      string `option:"allowedSpacesError"`
	MinWordsError           string `option:"minWordsError"`
	MaxWordsError           string `option:"maxWordsError"`
	MaxRepetitiveCharsError string `option:"maxRepetitiveCharsError"`
	RegexPatternError       string `option:"regexPatternError"`
}

// stringOptionKeys is the canonical key set for string options.
var stringOptionKeys = []string{
	"isRequired",
	"minStringLength",
	"maxStringLength",
	"allowedChars",
	"disallowedChars",
	"blacklistWords",
	"wordSeparator",
	"startsWithPattern",
	"endsWithPattern",
	"allowSpaces",
	"minWordsCount",
	"maxWordsCount",
	"maxRepetitiveCharsLimit",
	"regexPattern",
	"customValidationFn",
	"isStringError",
	"lengthError",
	"customError",
	"allowedCharsError",
	"disallowedCharsError",
	"blacklistWordsError",
	"isRequiredError",
	"startsWithError",
	"endsWithError",
	"allowedSpacesError",
	"minWordsError",
	"maxWordsError",
	"maxRepetitiveCharsError",
	"regexPatternError",
}

// Required reports the effective isRequired flag (default true).
func (o StringOptions) Required() bool {
	return o.IsRequired == nil || *o.IsRequired
}

// Separator reports the effective wordSeparator (default a single space).
func (o StringOptions) Separator() string {
	if o.WordSeparator == nil {
		return " "
	}
	return *o.WordSeparator
}

// SpacesAllowed reports the effective allowSpaces flag (default true).
func (o StringOptions) SpacesAllowed() bool {
	return o.AllowSpaces == nil || *o.AllowSpaces
}

// RepetitionLimit reports the effective maxRepetitiveCharsLimit.
// Unbounded is math.MaxInt.
func (o StringOptions) RepetitionLimit() int {
	if o.MaxRepetitiveCharsLimit == nil {
		return math.MaxInt
	}
	return *o.MaxRepetitiveCharsLimit
}

// NumberOptions configures ValidateNumber. The zero value accepts any number.
type NumberOptions struct {
	IsRequired    bool     `option:"isRequired"`
	MinValue      *float64 `option:"minValue"`
	MaxValue      *float64 `option:"maxValue"`
	IsInteger     bool     `option:"isInteger"`
	AllowNegative *bool    `option:"allowNegative"`
	AllowPositive *bool    `option:"allowPositive"`
	AllowZero     *bool    `option:"allowZero"`

	// OnlyDecimal requires a fractional part.
	OnlyDecimal      bool `option:"onlyDecimal"`
	MaxDecimalPlaces *int `option:"maxDecimalPlaces"`
	MinDecimalPlaces *int `option:"minDecimalPlaces"`
	// OnlyBinary requires a whole number made of the digits 0 and 1.
	OnlyBinary bool `option:"onlyBinary"`

	IsNumberError   string `option:"isNumberError"`
	RequiredError   string `option:"requiredError"`
	MinValueError   string `option:"minValueError"`
	MaxValueError   string `option:"maxValueError"`
	IntegerError    string `option:"integerError"`
	NegativeError   string `option:"negativeError"`
	PositiveError   string `option:"positiveError"`
	ZeroError       string `option:"zeroError"`
	DecimalError    string `option:"decimalError"`
	MaxDecimalError string `option:"maxDecimalError"`
	MinDecimalError string `option:"minDecimalError"`
	BinaryError     string `option:"binaryError"`
}

// numberOptionKeys is the canonical key set for number options.
var numberOptionKeys = []string{
	"isRequired",
	"minValue",
	"maxValue",
	"isInteger",
	"allowNegative",
	"allowPositive",
	"allowZero",
	"onlyDecimal",
	"maxDecimalPlaces",
	"minDecimalPlaces",
	"onlyBinary",
	"isNumberError",
	"requiredError",
	"minValueError",
	"maxValueError",
	"integerError",
	"negativeError",
	"positiveError",
	"zeroError",
	"decimalError",
	"maxDecimalError",
	"minDecimalError",
	"binaryError",
}

func (o NumberOptions) NegativeAllowed() bool {
	return o.AllowNegative == nil || *o.AllowNegative
}

func (o NumberOptions) PositiveAllowed() bool {
	return o.AllowPositive == nil || *o.AllowPositive
}

func (o NumberOptions) ZeroAllowed() bool {
	return o.AllowZero == nil || *o.AllowZero
}

// StringOptionKeys returns the recognised string option names in canonical order.
func StringOptionKeys() []string {
	return slices.Clone(stringOptionKeys)
}

// NumberOptionKeys returns the recognised number option names in canonical order.
func NumberOptionKeys() []string {
	return slices.Clone(numberOptionKeys)
}

// textOptionKeys holds the options whose value is free text, used as written.
var textOptionKeys = collectTextOptions(reflect.TypeFor[StringOptions](), reflect.TypeFor[NumberOptions]())

func collectTextOptions(types ...reflect.Type) map[string]struct{} {
	keys := make(map[string]struct{})
	for _, t := range types {
		for i := range t.NumField() {
			field := t.Field(i)
			ft := field.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			switch ft.Kind() {
			case reflect.String, reflect.Interface:
				keys[field.Tag.Get(optionTag)] = struct{}{}
			}
		}
	}
	return keys
}

// IsTextOption reports whether key names a string or number option that takes
// free text, such as wordSeparator or an error message. Loosely typed sources
// such as command-line flags should pass these values through unparsed.
func IsTextOption(key string) bool {
	_, ok := textOptionKeys[key]
	return ok
}

// ParseStringOptions normalises a loosely typed option map, as decoded from
// YAML, JSON or command-line flags, into StringOptions. Keys outside the
// canonical set are rejected as a whole before any value is looked at.
func ParseStringOptions(raw map[string]any) (StringOptions, error) {
	var opts StringOptions
	if err := decodeOptions(raw, stringOptionKeys, &opts); err != nil {
		return StringOptions{}, err
	}
	return opts, nil
}

// ParseNumberOptions is ParseStringOptions for NumberOptions.
func ParseNumberOptions(raw map[string]any) (NumberOptions, error) {
	var opts NumberOptions
	if err := decodeOptions(raw, numberOptionKeys, &opts); err != nil {
		return NumberOptions{}, err
	}
	return opts, nil
}

func decodeOptions(raw map[string]any, known []string, out any) error {
	if unknown := unknownKeys(raw, known); len(unknown) > 0 {
		return &ConfigurationError{
			Unknown:   unknown,
			Available: slices.Clone(known),
		}
	}
	if len(raw) == 0 {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          optionTag,
		WeaklyTypedInput: true,
		ZeroFields:       true,
	})
	if err != nil {
		return &ConfigurationError{Err: err}
	}
	if err := dec.Decode(raw); err != nil {
		return &ConfigurationError{Err: err}
	}
	return nil
}

// unknownKeys returns the keys of raw absent from known, sorted.
func unknownKeys(raw map[string]any, known []string) []string {
	var unknown []string
	for key := range raw {
		if !slices.Contains(known, key) {
			unknown = append(unknown, key)
		}
	}
	slices.Sort(unknown)
	return unknown
}
