package validator

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dmitrymomot/fieldcheck/pkg/sanitizer"
)

// Default string messages.
const (
	msgIsString        = "Name must be a string"
	msgIsRequired      = "Name is required"
	msgAllowedChars    = "Name contains disallowed characters"
	msgMinLength       = "Name must be at least %d characters long"
	msgMaxLength       = "Name must be at most %d characters long"
	msgRegexPattern    = "Invalid input pattern"
	msgDisallowedChars = "Name contains disallowed characters"
	msgCustom          = "Custom validation failed"
	msgBlacklistWords  = "Name contains blacklisted words"
	msgStartsWith      = "Name must start with %s"
	msgEndsWith        = "Name must end with '%s'"
	msgAllowedSpaces   = "Spaces are not allowed in the name"
	msgMinWords        = "Name must contain at least %d words"
	msgMaxWords        = "Name must contain at most %d words"
	msgMaxRepetitive   = "Name contains consecutive repetitive characters exceeding the limit of %s"
)

// ValidateString checks value against opts.
//
// The returned error is reserved for a broken option set (an unknown
// predefined pattern name or an unsupported regexPattern type); in that case
// the result is empty. Anything wrong with value itself is reported through
// the result, naming only the first failing rule.
func ValidateString(value any, opts StringOptions) (StringResult, error) {
	pattern, err := ResolvePattern(opts.RegexPattern)
	if err != nil {
		return StringResult{}, err
	}

	if !IsString(value) {
		return StringResult{
			ErrorKey:     "isStringError",
			ErrorMessage: message(opts.IsStringError, msgIsString),
		}, nil
	}

	trimmed := TrimString(value)
	candidate := sanitizer.Apply(trimmed, sanitizer.JoinWords(opts.Separator()))

	if failure := First(stringRules(trimmed, opts, pattern)...); failure != nil {
		return StringResult{ErrorKey: failure.Key, ErrorMessage: failure.Message}, nil
	}

	return StringResult{IsValid: true, ValidatedInput: candidate}, nil
}

// ValidateStringMap normalises raw with ParseStringOptions, then validates
// value. Unknown option keys are reported before value is inspected.
func ValidateStringMap(value any, raw map[string]any) (StringResult, error) {
	opts, err := ParseStringOptions(raw)
	if err != nil {
		return StringResult{}, err
	}
	return ValidateString(value, opts)
}

// stringRules lists the configured rules in evaluation order. Options that are
// not configured contribute no rule, except the space and repetition policies
// which always run against their effective values.
func stringRules(s string, opts StringOptions, pattern Matcher) []Rule {
	rules := make([]Rule, 0, 14)

	if required := opts.Required(); required {
		rules = append(rules, Rule{
			Key:     "isRequiredError",
			Check:   func() bool { return IsStringRequired(s, required) },
			Message: message(opts.IsRequiredError, msgIsRequired),
		})
	}
	if opts.AllowedChars != nil {
		rules = append(rules, Rule{
			Key: "allowedCharsError",
			Check: func() bool {
				_, found := ContainsAllowedChar(s, opts.AllowedChars)
				return found
			},
			Message: message(opts.AllowedCharsError, msgAllowedChars),
		})
	}
	if opts.MinStringLength != 0 {
		rules = append(rules, Rule{
			Key:     "lengthError",
			Check:   func() bool { return IsStringLengthAtLeast(s, opts.MinStringLength) },
			Message: message(opts.LengthError, fmt.Sprintf(msgMinLength, opts.MinStringLength)),
		})
	}
	if opts.MaxStringLength != 0 {
		rules = append(rules, Rule{
			Key:     "lengthError",
			Check:   func() bool { return IsStringLengthAtMost(s, opts.MaxStringLength) },
			Message: message(opts.LengthError, fmt.Sprintf(msgMaxLength, opts.MaxStringLength)),
		})
	}
	if pattern != nil {
		rules = append(rules, Rule{
			Key:     "regexPatternError",
			Check:   func() bool { return pattern.MatchString(s) },
			Message: message(opts.RegexPatternError, msgRegexPattern),
		})
	}
	if opts.DisallowedChars != nil {
		rules = append(rules, Rule{
			Key: "disallowedCharsError",
			Check: func() bool {
				_, found := ContainsDisallowedChar(s, opts.DisallowedChars)
				return !found
			},
			Message: message(opts.DisallowedCharsError, msgDisallowedChars),
		})
	}
	if opts.CustomValidationFn != nil {
		rules = append(rules, Rule{
			Key:     "customError",
			Check:   func() bool { return opts.CustomValidationFn(s) },
			Message: message(opts.CustomError, msgCustom),
		})
	}
	if opts.BlacklistWords != nil {
		rules = append(rules, Rule{
			Key: "blacklistWordsError",
			Check: func() bool {
				_, found := ContainsBlacklistedWord(s, opts.BlacklistWords)
				return !found
			},
			Message: message(opts.BlacklistWordsError, msgBlacklistWords),
		})
	}
	if opts.StartsWithPattern != "" {
		rules = append(rules, Rule{
			Key:     "startsWithError",
			Check:   func() bool { return DoesStringStartWith(s, opts.StartsWithPattern) },
			Message: message(opts.StartsWithError, fmt.Sprintf(msgStartsWith, opts.StartsWithPattern)),
		})
	}
	if opts.EndsWithPattern != "" {
		rules = append(rules, Rule{
			Key:     "endsWithError",
			Check:   func() bool { return DoesStringEndWith(s, opts.EndsWithPattern) },
			Message: message(opts.EndsWithError, fmt.Sprintf(msgEndsWith, opts.EndsWithPattern)),
		})
	}

	allowSpaces := opts.SpacesAllowed()
	rules = append(rules, Rule{
		Key:     "allowedSpacesError",
		Check:   func() bool { return IsSpacesAllowed(s, allowSpaces) },
		Message: message(opts.AllowedSpacesError, msgAllowedSpaces),
	})

	if opts.MinWordsCount != 0 {
		rules = append(rules, Rule{
			Key:     "minWordsError",
			Check:   func() bool { return IsWordCountAtLeast(s, opts.MinWordsCount) },
			Message: message(opts.MinWordsError, fmt.Sprintf(msgMinWords, opts.MinWordsCount)),
		})
	}
	if opts.MaxWordsCount != 0 {
		rules = append(rules, Rule{
			Key:     "maxWordsError",
			Check:   func() bool { return IsWordCountAtMost(s, opts.MaxWordsCount) },
			Message: message(opts.MaxWordsError, fmt.Sprintf(msgMaxWords, opts.MaxWordsCount)),
		})
	}

	limit := opts.RepetitionLimit()
	rules = append(rules, Rule{
		Key:     "maxRepetitiveCharsError",
		Check:   func() bool { return !HasExcessiveRepetitiveChars(s, limit) },
		Message: message(opts.MaxRepetitiveCharsError, fmt.Sprintf(msgMaxRepetitive, formatLimit(limit))),
	})

	return rules
}

// formatLimit renders a repetition limit; unbounded prints as Infinity.
func formatLimit(limit int) string {
	if limit == math.MaxInt {
		return "Infinity"
	}
	return strconv.Itoa(limit)
}
