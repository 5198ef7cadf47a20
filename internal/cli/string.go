package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func newStringCmd(a *app) *cobra.Command {
	var f validateFlags

	cmd := &cobra.Command{
		Use:   "string VALUE",
		Short: "Validate a string value",
		Long: `Validate VALUE as a string and print the normalised value: trimmed, with
every whitespace run replaced by the word separator.

On failure the message of the first broken rule is printed instead.`,
		Example: `  fieldcheck string "  John   Doe " -o minWordsCount=2
  fieldcheck string jdoe -o regexPattern=USERNAME -o minStringLength=5
  fieldcheck string jdoe --rules rules.yaml --rule username --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.validateString(cmd, f, args[0])
			if err != nil {
				return err
			}
			return writeStringResult(cmd.OutOrStdout(), res, f.json)
		},
	}
	f.register(cmd)

	return cmd
}

func (a *app) validateString(cmd *cobra.Command, f validateFlags, value string) (validator.StringResult, error) {
	ctx := cmd.Context()

	var (
		res validator.StringResult
		err error
	)
	if f.rule != "" {
		set, loadErr := a.loadRuleSet(ctx, f.rules)
		if loadErr != nil {
			return validator.StringResult{}, loadErr
		}
		res, err = set.ValidateString(f.rule, value)
	} else {
		raw, parseErr := parseOptionFlags(f.options)
		if parseErr != nil {
			return validator.StringResult{}, parseErr
		}
		res, err = validator.ValidateStringMap(value, raw)
	}
	if err != nil {
		return validator.StringResult{}, err
	}

	a.logger.DebugContext(ctx, "string validated",
		logger.Rule(f.rule),
		logger.Valid(res.IsValid),
		logger.ErrorKey(res.ErrorKey),
	)
	return res, nil
}
