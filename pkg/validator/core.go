package validator

import "encoding/json"

// Rule pairs one predicate with the message reported when it fails.
type Rule struct {
	// Key is the option name of the message, e.g. "lengthError".
	Key   string
	Check func() bool
	// Message is the caller override when set, otherwise the default text.
	Message string
}

// Failure is the first rule of a pipeline that did not pass.
type Failure struct {
	Key     string
	Message string
}

// First evaluates rules in order and stops at the first failing one.
// Rules after it are never evaluated. Returns nil when every rule passes.
func First(rules ...Rule) *Failure {
	for _, rule := range rules {
		if !rule.Check() {
			return &Failure{Key: rule.Key, Message: rule.Message}
		}
	}
	return nil
}

// StringResult is the outcome of ValidateString.
type StringResult struct {
	IsValid      bool   `json:"isValid"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	// ErrorKey names the message option of the failed rule.
	ErrorKey string `json:"errorKey,omitempty"`
	// ValidatedInput is the trimmed input with whitespace runs replaced by the
	// word separator. Only set when IsValid is true.
	ValidatedInput string `json:"validatedInput,omitempty"`
}

// NumberResult is the outcome of ValidateNumber.
type NumberResult struct {
	IsValid      bool   `json:"isValid"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	ErrorKey     string `json:"errorKey,omitempty"`
	// ReturnedNumber is the validated input. Only meaningful when IsValid is true.
	ReturnedNumber float64 `json:"returnedNumber,omitempty"`
}

// resultJSON is the wire shape of both results: a valid result carries the
// value and no message, a failed one carries the message and no value.
type resultJSON struct {
	IsValid        bool     `json:"isValid"`
	ErrorMessage   string   `json:"errorMessage,omitempty"`
	ErrorKey       string   `json:"errorKey,omitempty"`
	ValidatedInput *string  `json:"validatedInput,omitempty"`
	ReturnedNumber *float64 `json:"returnedNumber,omitempty"`
}

// MarshalJSON writes validatedInput only when the result is valid, including
// an empty one for a blank optional input.
func (r StringResult) MarshalJSON() ([]byte, error) {
	out := resultJSON{IsValid: r.IsValid}
	if r.IsValid {
		out.ValidatedInput = &r.ValidatedInput
	} else {
		out.ErrorMessage = r.ErrorMessage
		out.ErrorKey = r.ErrorKey
	}
	return json.Marshal(out)
}

// MarshalJSON writes returnedNumber only when the result is valid.
func (r NumberResult) MarshalJSON() ([]byte, error) {
	out := resultJSON{IsValid: r.IsValid}
	if r.IsValid {
		out.ReturnedNumber = &r.ReturnedNumber
	} else {
		out.ErrorMessage = r.ErrorMessage
		out.ErrorKey = r.ErrorKey
	}
	return json.Marshal(out)
}

// message returns the override when it is set, the default otherwise.
func message(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}

// Ptr returns a pointer to v. Handy for the pointer-typed option fields.
func Ptr[T any](v T) *T {
	return &v
}
