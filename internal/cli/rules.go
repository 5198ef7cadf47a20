package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/ruleset"
)

type ruleSummary struct {
	Strings []string `json:"strings"`
	Numbers []string `json:"numbers"`
}

func newRulesCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rules FILE",
		Short: "Check a rule set file and list its rules",
		Long: `Load FILE (.yaml, .yml, .json or .toml), normalise every rule and resolve
every pattern name, then list the rule names. Any unknown option key or pattern
name is reported with the rule it belongs to.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			set, err := ruleset.Load(path, ruleset.WithLogger(a.logger))
			if err != nil {
				return err
			}
			a.logger.InfoContext(cmd.Context(), "rule set ok", logger.Path(path))

			summary := ruleSummary{Strings: set.StringRules(), Numbers: set.NumberRules()}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), summary)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d rules\n", path, set.Len())
			printSection(out, "strings", summary.Strings)
			printSection(out, "numbers", summary.Numbers)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}

func printSection(w io.Writer, title string, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", name)
	}
}
