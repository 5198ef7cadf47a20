package sanitizer

import "strings"

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// RemoveExtraWhitespace normalizes whitespace by replacing multiple consecutive
// whitespace characters with a single space and trimming.
func RemoveExtraWhitespace(s string) string {
	return JoinWords(" ")(s)
}

// JoinWords returns a transform that trims s and replaces every run of
// whitespace inside it with sep. Any Unicode space counts as whitespace.
//
//	sanitizer.JoinWords("_")("  John   Doe ") // "John_Doe"
func JoinWords(sep string) func(string) string {
	return func(s string) string {
		return strings.Join(strings.Fields(s), sep)
	}
}
