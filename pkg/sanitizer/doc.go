// Package sanitizer provides small string transforms used to normalise field
// input before it is validated or returned to the caller.
//
// Transforms are plain func(string) string values, so they combine with the
// generic Apply and Compose helpers:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.JoinWords("-"),
//	)
//
//	slug := clean("  Mixed CASE   Input\n") // "Mixed-CASE-Input"
//
// # Usage
//
//	import "github.com/dmitrymomot/fieldcheck/pkg/sanitizer"
//
//	name := sanitizer.RemoveExtraWhitespace("  John \t Doe ") // "John Doe"
//
// # Error handling
//
// None of the helpers returns an error.
//
// # Performance
//
// The helpers hold no state and are safe for concurrent use.
package sanitizer
