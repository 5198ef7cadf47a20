package cli

import "errors"

var (
	// ErrInvalidInput is returned when a value fails validation. The result has
	// already been printed, so callers only map it to an exit status.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidOptionFlag is returned for an --option flag that is not key=value.
	ErrInvalidOptionFlag = errors.New("option flag must be key=value")

	// ErrNoRuleSet is returned when --rule is used without a rule set file.
	ErrNoRuleSet = errors.New("no rule set: pass --rules or set FIELDCHECK_RULES")
)

// Exit statuses.
const (
	ExitValid   = 0
	ExitInvalid = 1
	ExitConfig  = 2
)

// ExitCode maps an error returned by the root command to a process exit status.
// Anything other than a validation failure is a usage or configuration problem.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitValid
	case errors.Is(err, ErrInvalidInput):
		return ExitInvalid
	default:
		return ExitConfig
	}
}
