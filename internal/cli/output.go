package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeStringResult prints res and returns ErrInvalidInput when it failed.
func writeStringResult(w io.Writer, res validator.StringResult, asJSON bool) error {
	if err := printResult(w, asJSON, res, res.IsValid, res.ValidatedInput, res.ErrorKey, res.ErrorMessage); err != nil {
		return err
	}
	return resultError(res.IsValid, res.ErrorKey)
}

// writeNumberResult prints res and returns ErrInvalidInput when it failed.
func writeNumberResult(w io.Writer, res validator.NumberResult, asJSON bool) error {
	value := strconv.FormatFloat(res.ReturnedNumber, 'f', -1, 64)
	if err := printResult(w, asJSON, res, res.IsValid, value, res.ErrorKey, res.ErrorMessage); err != nil {
		return err
	}
	return resultError(res.IsValid, res.ErrorKey)
}

func printResult(w io.Writer, asJSON bool, res any, valid bool, value, key, msg string) error {
	if asJSON {
		return writeJSON(w, res)
	}
	if valid {
		_, err := fmt.Fprintln(w, value)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", key, msg)
	return err
}

func resultError(valid bool, key string) error {
	if valid {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, key)
}
