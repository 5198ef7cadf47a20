package validator

import (
	"strings"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IsString reports whether v holds a string.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// TrimString trims surrounding whitespace from v, returning "" when v is not a string.
func TrimString(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// IsStringRequired reports whether value satisfies the required flag:
// a required string must be non-empty after trimming.
func IsStringRequired(value string, isRequired bool) bool {
	if !isRequired {
		return true
	}
	return strings.TrimSpace(value) != ""
}

// StringLength counts UTF-16 code units, so characters outside the BMP count twice.
func StringLength(value string) int {
	n := 0
	for _, r := range value {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

func IsStringLengthAtLeast(value string, min int) bool {
	return StringLength(value) >= min
}

func IsStringLengthAtMost(value string, max int) bool {
	return StringLength(value) <= max
}

// ContainsAllowedChar returns the first entry of chars found in value.
// The scan follows the order of chars, not of value.
func ContainsAllowedChar(value string, chars []string) (string, bool) {
	return firstContained(value, chars)
}

// ContainsDisallowedChar returns the first entry of chars found in value.
func ContainsDisallowedChar(value string, chars []string) (string, bool) {
	return firstContained(value, chars)
}

func firstContained(value string, candidates []string) (string, bool) {
	for _, c := range candidates {
		if c != "" && strings.Contains(value, c) {
			return c, true
		}
	}
	return "", false
}

// ContainsBlacklistedWord returns the first blacklist entry, as supplied,
// that occurs anywhere in value ignoring case.
func ContainsBlacklistedWord(value string, blacklist []string) (string, bool) {
	lower := cases.Lower(language.Und)
	haystack := lower.String(value)
	for _, word := range blacklist {
		if word == "" {
			continue
		}
		if strings.Contains(haystack, lower.String(word)) {
			return word, true
		}
	}
	return "", false
}

// DoesStringStartWith reports whether value starts with prefix.
// An empty prefix is always satisfied.
func DoesStringStartWith(value, prefix string) bool {
	return prefix == "" || strings.HasPrefix(value, prefix)
}

// DoesStringEndWith reports whether value ends with suffix.
// An empty suffix is always satisfied.
func DoesStringEndWith(value, suffix string) bool {
	return suffix == "" || strings.HasSuffix(value, suffix)
}

// IsSpacesAllowed passes when spaces are allowed or value has no U+0020.
func IsSpacesAllowed(value string, allowSpaces bool) bool {
	return allowSpaces || !strings.Contains(value, " ")
}

// WordCount splits value on whitespace runs. A blank value has zero words.
func WordCount(value string) int {
	return len(strings.Fields(value))
}

func IsWordCountAtLeast(value string, min int) bool {
	return WordCount(value) >= min
}

func IsWordCountAtMost(value string, max int) bool {
	return WordCount(value) <= max
}

// HasExcessiveRepetitiveChars reports whether some run of identical
// consecutive characters is longer than limit. With limit 0 any non-empty
// value trips it.
func HasExcessiveRepetitiveChars(value string, limit int) bool {
	var prev rune
	run := 0
	for i, r := range value {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run > limit {
			return true
		}
		prev = r
	}
	return false
}
