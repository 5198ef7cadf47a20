// Package validator checks a single string or number against a declarative
// option set and reports the first rule it breaks.
//
// There are two entry points, ValidateString and ValidateNumber. Each builds
// an ordered list of Rule values from the options, evaluates them in that
// fixed order and stops at the first failure, so an input that breaks several
// rules always reports the same one. A successful string validation also
// returns the normalised input: trimmed, with every whitespace run replaced by
// the configured word separator.
//
// # Two failure channels
//
// A value that does not satisfy the rules is an expected outcome and is
// reported in the result:
//
//	res, err := validator.ValidateString("ab", validator.StringOptions{MinStringLength: 3})
//	// err == nil, res.IsValid == false,
//	// res.ErrorMessage == "Name must be at least 3 characters long"
//
// A broken option set is a programming mistake and is returned as an error:
// *ConfigurationError for unknown option keys or badly typed values and
// *UnknownPatternError for a predefined pattern name that does not exist. Use
// errors.Is with ErrInvalidOptions, ErrInvalidOptionValue or ErrUnknownPattern,
// or IsConfigurationError, to tell them apart.
//
// # Options
//
// StringOptions and NumberOptions are plain structs. Fields whose default is
// not the Go zero value are pointers; Ptr helps build them:
//
//	opts := validator.StringOptions{
//	    AllowSpaces:  validator.Ptr(false),
//	    RegexPattern: validator.PatternUsername,
//	}
//
// Option sets that come from configuration files or flags are maps keyed by
// the canonical option names (see StringOptionKeys and NumberOptionKeys).
// ParseStringOptions and ParseNumberOptions reject unknown keys as a whole
// and coerce loosely typed values; ValidateStringMap and ValidateNumberMap
// combine parsing and validation.
//
// # Patterns
//
// The regexPattern option takes either a Matcher (for example a
// *regexp.Regexp) or the name of a predefined pattern such as "EMAIL_ADDRESS".
// Predefined patterns use ECMAScript regular expression semantics through
// github.com/dlclark/regexp2, because several of them rely on backreferences
// or lookahead. PatternNames lists them.
//
// # Predicates
//
// Every check used by the pipelines is exported as a plain function
// (ContainsBlacklistedWord, HasExcessiveRepetitiveChars, IsInteger, ...) for
// callers who want to compose their own rules with First.
//
// # Concurrency
//
// Validation holds no state. The predefined pattern table is built at init
// and only read afterwards, so every function is safe for concurrent use.
package validator
