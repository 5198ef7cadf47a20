package validator

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/dlclark/regexp2"
)

// Matcher is anything that can test a string against a pattern.
// *regexp.Regexp and *Pattern both satisfy it.
type Matcher interface {
	MatchString(s string) bool
}

var _ Matcher = (*regexp.Regexp)(nil)

// Pattern is an ECMAScript-compatible compiled regular expression.
// Unlike the standard library's RE2 engine it supports backreferences and lookaround.
type Pattern struct {
	name string
	re   *regexp2.Regexp
}

// CompilePattern compiles expr with ECMAScript semantics.
func CompilePattern(expr string) (*Pattern, error) {
	re, err := regexp2.Compile(expr, regexp2.ECMAScript)
	if err != nil {
		return nil, err
	}
	return &Pattern{re: re}, nil
}

func (p *Pattern) Name() string {
	return p.name
}

// String returns the source expression.
func (p *Pattern) String() string {
	return p.re.String()
}

// MatchString reports whether s contains a match. A match that errors out
// (timeout) counts as no match.
func (p *Pattern) MatchString(s string) bool {
	ok, err := p.re.MatchString(s)
	return err == nil && ok
}

// Predefined pattern names.
const (
	PatternLettersOnly                       = "LETTERS_ONLY"
	PatternLettersWithSpaces                 = "LETTERS_WITH_SPACES"
	PatternLettersNumbersWithSpaces          = "LETTERS_NUMBERS_WITH_SPACES"
	PatternNumbersOnly                       = "NUMBERS_ONLY"
	PatternAlphanumeric                      = "ALPHANUMERIC"
	PatternEmailAddress                      = "EMAIL_ADDRESS"
	PatternPhoneNumber                       = "PHONE_NUMBER"
	PatternPostalCodeUS                      = "POSTAL_CODE_US"
	PatternURL                               = "URL"
	PatternHexColorCode                      = "HEX_COLOR_CODE"
	PatternTime24Hours                       = "TIME_24_HOURS_FORMAT"
	PatternDateMMDDYYYY                      = "DATE_MM_DD_YYYY"
	PatternUsername                          = "USERNAME"
	PatternHTMLTag                           = "HTML_TAG"
	PatternIPAddress                         = "IP_ADDRESS"
	PatternHTMLColorCode                     = "HTML_COLOR_CODE"
	PatternCreditCard                        = "CREDIT_CARD"
	PatternUSSSN                             = "US_SSN"
	PatternHTMLHexadecimalColor              = "HTML_HEXADECIMAL_COLOR"
	PatternMACAddress                        = "MAC_ADDRESS"
	PatternAlphabetUppercaseOnly             = "ALPHABET_UPPERCASE_ONLY"
	PatternAlphabetLowercaseOnly             = "ALPHABET_LOWERCASE_ONLY"
	PatternAlphabetMixedCase                 = "ALPHABET_MIXED_CASE"
	PatternNumbersWithDecimals               = "NUMBERS_WITH_DECIMALS"
	PatternDateYYYYMMDD                      = "DATE_YYYY_MM_DD"
	PatternDateDDMMYYYY                      = "DATE_DD_MM_YYYY"
	PatternTime12Hours                       = "TIME_12_HOURS_FORMAT"
	PatternHTMLComment                       = "HTML_COMMENT"
	PatternUSPhoneNumber                     = "US_PHONE_NUMBER"
	PatternInternationalPhoneNumber          = "INTERNATIONAL_PHONE_NUMBER"
	PatternUKPostalCode                      = "UK_POSTAL_CODE"
	PatternAlphaNumericWithSpecialCharacters = "ALPHA_NUMERIC_WITH_SPECIAL_CHARACTERS"
	PatternHTMLImageTag                      = "HTML_IMAGE_TAG"
	PatternHTMLLinkTag                       = "HTML_LINK_TAG"
	PatternHTMLScriptTag                     = "HTML_SCRIPT_TAG"
	PatternHTMLStyleTag                      = "HTML_STYLE_TAG"
)

// predefinedPatterns is built once and never written afterwards.
var predefinedPatterns = map[string]*Pattern{
	PatternLettersOnly:              mustPattern(PatternLettersOnly, `^[A-Za-z]+$`, 0),
	PatternLettersWithSpaces:        mustPattern(PatternLettersWithSpaces, `^[A-Za-z\s]+$`, 0),
	PatternLettersNumbersWithSpaces: mustPattern(PatternLettersNumbersWithSpaces, `^[A-Za-z0-9\s]+$`, 0),
	PatternNumbersOnly:              mustPattern(PatternNumbersOnly, `^[0-9]+$`, 0),
	PatternAlphanumeric:             mustPattern(PatternAlphanumeric, `^[A-Za-z0-9]+$`, 0),
	PatternEmailAddress:             mustPattern(PatternEmailAddress, `^[^\s@]+@[^\s@]+\.[^\s@]+$`, 0),
	PatternPhoneNumber:              mustPattern(PatternPhoneNumber, `^\+?[0-9]{1,3}[-. (]?\d{3}[-. )]?\d{3}[-. ]?\d{4}$`, 0),
	PatternPostalCodeUS:             mustPattern(PatternPostalCodeUS, `(^\d{5}$)|(^\d{5}-\d{4}$)`, 0),
	PatternURL:                      mustPattern(PatternURL, `^(https?|ftp):\/\/[^\s/$.?#]+\.[^\s]*$`, 0),
	PatternHexColorCode:             mustPattern(PatternHexColorCode, `^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`, 0),
	PatternTime24Hours:              mustPattern(PatternTime24Hours, `^(0[0-9]|1[0-9]|2[0-3]):[0-5][0-9]$`, 0),
	PatternDateMMDDYYYY:             mustPattern(PatternDateMMDDYYYY, `^(0[1-9]|1[0-2])\/(0[1-9]|[12]\d|3[01])\/\d{4}$`, 0),
	PatternUsername:                 mustPattern(PatternUsername, `^[a-zA-Z0-9_]+$`, 0),
	PatternHTMLTag:                  mustPattern(PatternHTMLTag, `^<([a-z]+)([^<]+)*(?:>(.*)<\/\1>|\s+\/>)$`, 0),
	PatternIPAddress:                mustPattern(PatternIPAddress, `^\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b$`, 0),
	PatternHTMLColorCode:            mustPattern(PatternHTMLColorCode, `^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`, 0),
	PatternCreditCard:               mustPattern(PatternCreditCard, `^\d{4} \d{4} \d{4} \d{4}$`, 0),
	PatternUSSSN:                    mustPattern(PatternUSSSN, `^(?!000|666|9\d{2})\d{3}-(?!00)\d{2}-(?!0000)\d{4}$`, 0),
	PatternHTMLHexadecimalColor:     mustPattern(PatternHTMLHexadecimalColor, `#(?:[0-9a-fA-F]{3}){1,2}\b`, 0),
	PatternMACAddress:               mustPattern(PatternMACAddress, `^([0-9A-Fa-f]{2}[:-]){5}([0-9A-Fa-f]{2})$`, 0),
	PatternAlphabetUppercaseOnly:    mustPattern(PatternAlphabetUppercaseOnly, `^[A-Z]+$`, 0),
	PatternAlphabetLowercaseOnly:    mustPattern(PatternAlphabetLowercaseOnly, `^[a-z]+$`, 0),
	PatternAlphabetMixedCase:        mustPattern(PatternAlphabetMixedCase, `^[A-Za-z]+$`, 0),
	PatternNumbersWithDecimals:      mustPattern(PatternNumbersWithDecimals, `^-?\d+(\.\d+)?$`, 0),
	PatternDateYYYYMMDD:             mustPattern(PatternDateYYYYMMDD, `^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`, 0),
	PatternDateDDMMYYYY:             mustPattern(PatternDateDDMMYYYY, `^(0[1-9]|[12]\d|3[01])-(0[1-9]|1[0-2])-\d{4}$`, 0),
	PatternTime12Hours:              mustPattern(PatternTime12Hours, `^(0?[1-9]|1[0-2]):[0-5][0-9]\s?(AM|PM)$`, 0),
	PatternHTMLComment:              mustPattern(PatternHTMLComment, `<!--[\s\S]*?-->`, 0),
	PatternUSPhoneNumber:            mustPattern(PatternUSPhoneNumber, `^(1\s?)?(\([0-9]{3}\)|[0-9]{3})[\s.-]?[0-9]{3}[\s.-]?[0-9]{4}$`, 0),
	PatternInternationalPhoneNumber: mustPattern(PatternInternationalPhoneNumber, `^\+(?:[0-9] ?){6,14}[0-9]$`, 0),
	PatternUKPostalCode:             mustPattern(PatternUKPostalCode, `^[A-Za-z]{1,2}\d{1,2}[A-Za-z]?\s*\d[A-Za-z]{2}$`, 0),
	// Contains a backtick, so it cannot be a raw string literal.
	PatternAlphaNumericWithSpecialCharacters: mustPattern(PatternAlphaNumericWithSpecialCharacters,
		"^[a-zA-Z0-9!\"#$%&'()*+,\\-./:;<=>?@[\\\\\\]^_`{|}~]+$", 0),
	PatternHTMLImageTag:  mustPattern(PatternHTMLImageTag, `<img\s+(?:[^>]*?\s+)?src=(["'])(.*?)\1`, 0),
	PatternHTMLLinkTag:   mustPattern(PatternHTMLLinkTag, `<a\s+(?:[^>]*?\s+)?href=(["'])(.*?)\1`, 0),
	PatternHTMLScriptTag: mustPattern(PatternHTMLScriptTag, `<script[^>]*>[\s\S]*?<\/script>`, regexp2.IgnoreCase),
	PatternHTMLStyleTag:  mustPattern(PatternHTMLStyleTag, `<style[^>]*>[\s\S]*?<\/style>`, regexp2.IgnoreCase),
}

func mustPattern(name, expr string, opts regexp2.RegexOptions) *Pattern {
	re, err := regexp2.Compile(expr, regexp2.ECMAScript|opts)
	if err != nil {
		panic(fmt.Sprintf("validator: predefined pattern %s does not compile: %v", name, err))
	}
	return &Pattern{name: name, re: re}
}

// LookupPattern returns the predefined pattern registered under name.
func LookupPattern(name string) (*Pattern, bool) {
	p, ok := predefinedPatterns[name]
	return p, ok
}

// PatternNames returns every predefined pattern name in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(predefinedPatterns))
	for name := range predefinedPatterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ResolvePattern turns a regexPattern option into a Matcher.
//
// A string is looked up in the predefined registry and an unknown name yields
// *UnknownPatternError. A Matcher (including *regexp.Regexp) is returned as is,
// and *regexp2.Regexp is wrapped. nil, "" and nil *regexp.Regexp, *regexp2.Regexp
// or *Pattern values mean no pattern: the returned Matcher is nil with a nil
// error.
func ResolvePattern(p any) (Matcher, error) {
	switch v := p.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		pattern, ok := predefinedPatterns[v]
		if !ok {
			return nil, &UnknownPatternError{Name: v}
		}
		return pattern, nil
	case *regexp2.Regexp:
		if v == nil {
			return nil, nil
		}
		return &Pattern{re: v}, nil
	case *regexp.Regexp:
		if v == nil {
			return nil, nil
		}
		return v, nil
	case *Pattern:
		if v == nil || v.re == nil {
			return nil, nil
		}
		return v, nil
	case Matcher:
		return v, nil
	default:
		return nil, &ConfigurationError{
			Err: fmt.Errorf("regexPattern: unsupported type %T", p),
		}
	}
}
