package cli

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func newNumberCmd(a *app) *cobra.Command {
	var f validateFlags

	cmd := &cobra.Command{
		Use:   "number VALUE",
		Short: "Validate a numeric value",
		Long: `Validate VALUE as a number and print it back.

VALUE is parsed as a decimal float. Anything that does not parse is passed on
unchanged and fails the number type check.`,
		Example: `  fieldcheck number 42 -o minValue=0 -o maxValue=100 -o isInteger=true
  fieldcheck number -o allowNegative=false -- -5
  fieldcheck number 19.99 --rules rules.toml --rule price`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.validateNumber(cmd, f, parseNumberArg(args[0]))
			if err != nil {
				return err
			}
			return writeNumberResult(cmd.OutOrStdout(), res, f.json)
		},
	}
	f.register(cmd)

	return cmd
}

// parseNumberArg returns the float value of s, or s itself when it is not a
// finite number.
func parseNumberArg(s string) any {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return s
	}
	return n
}

func (a *app) validateNumber(cmd *cobra.Command, f validateFlags, value any) (validator.NumberResult, error) {
	ctx := cmd.Context()

	var (
		res validator.NumberResult
		err error
	)
	if f.rule != "" {
		set, loadErr := a.loadRuleSet(ctx, f.rules)
		if loadErr != nil {
			return validator.NumberResult{}, loadErr
		}
		res, err = set.ValidateNumber(f.rule, value)
	} else {
		raw, parseErr := parseOptionFlags(f.options)
		if parseErr != nil {
			return validator.NumberResult{}, parseErr
		}
		res, err = validator.ValidateNumberMap(value, raw)
	}
	if err != nil {
		return validator.NumberResult{}, err
	}

	a.logger.DebugContext(ctx, "number validated",
		logger.Rule(f.rule),
		logger.Valid(res.IsValid),
		logger.ErrorKey(res.ErrorKey),
	)
	return res, nil
}
