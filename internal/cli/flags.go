package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/ruleset"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// validateFlags are shared by the string and number commands.
type validateFlags struct {
	rules   string
	rule    string
	options []string
	json    bool
}

func (f *validateFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.rules, "rules", "", "rule set file (default $FIELDCHECK_RULES)")
	flags.StringVarP(&f.rule, "rule", "r", "", "name of the rule to apply from the rule set")
	flags.StringArrayVarP(&f.options, "option", "o", nil, "validation option as key=value, repeatable")
	flags.BoolVar(&f.json, "json", false, "print the result as JSON")

	cmd.MarkFlagsMutuallyExclusive("rule", "option")
}

// parseOptionFlags turns key=value pairs into a raw option map. Text options
// such as wordSeparator keep the value as written. Other values are read as
// YAML so numbers, booleans and flow sequences such as [a, b] keep their type;
// anything YAML rejects is kept as a plain string.
func parseOptionFlags(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	raw := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOptionFlag, pair)
		}
		if validator.IsTextOption(key) {
			raw[key] = value
			continue
		}
		raw[key] = parseOptionValue(value)
	}
	return raw, nil
}

func parseOptionValue(value string) any {
	if value == "" {
		return ""
	}
	var v any
	if err := yaml.Unmarshal([]byte(value), &v); err != nil || v == nil {
		return value
	}
	if _, isMap := v.(map[string]any); isMap {
		return value
	}
	return v
}

// loadRuleSet loads the rule set named by --rules, falling back to FIELDCHECK_RULES.
func (a *app) loadRuleSet(ctx context.Context, path string) (*ruleset.Set, error) {
	if path == "" {
		path = a.settings.Rules
	}
	if path == "" {
		return nil, ErrNoRuleSet
	}

	set, err := ruleset.Load(path, ruleset.WithLogger(a.logger))
	if err != nil {
		a.logger.WarnContext(ctx, "rule set rejected", logger.Path(path), logger.Error(err))
		return nil, err
	}
	return set, nil
}
