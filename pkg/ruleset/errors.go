package ruleset

import "errors"

var (
	// ErrInvalidRule is returned when a rule's options are rejected by the validator.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrRuleNotFound is returned when validating against a name the set does not define.
	ErrRuleNotFound = errors.New("rule not found")

	// ErrUnsupportedFormat is returned for a document format other than yaml, json or toml.
	ErrUnsupportedFormat = errors.New("unsupported rule set format")

	// ErrInvalidDocument is returned when the document cannot be decoded.
	ErrInvalidDocument = errors.New("invalid rule set document")
)
