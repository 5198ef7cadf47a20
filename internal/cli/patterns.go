package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

type patternInfo struct {
	Name       string `json:"name"`
	Expression string `json:"expression"`
	Match      *bool  `json:"match,omitempty"`
}

func newPatternsCmd(a *app) *cobra.Command {
	var (
		test    string
		asJSON  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "patterns [NAME]",
		Short: "List predefined patterns or show one",
		Long: `Without NAME, list every predefined pattern usable as regexPattern.
With NAME, print its expression; add --test to match a value against it.`,
		Example: `  fieldcheck patterns -v
  fieldcheck patterns US_SSN
  fieldcheck patterns EMAIL_ADDRESS --test user@example.com`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				if cmd.Flags().Changed("test") {
					return fmt.Errorf("--test needs a pattern NAME")
				}
				return listPatterns(cmd, asJSON, verbose)
			}

			name := args[0]
			p, ok := validator.LookupPattern(name)
			if !ok {
				return &validator.UnknownPatternError{Name: name}
			}
			info := patternInfo{Name: name, Expression: p.String()}

			if !cmd.Flags().Changed("test") {
				if asJSON {
					return writeJSON(out, info)
				}
				_, err := fmt.Fprintln(out, info.Expression)
				return err
			}

			var err error
			matched := p.MatchString(test)
			info.Match = &matched
			a.logger.DebugContext(cmd.Context(), "pattern tested", logger.Pattern(name), logger.Valid(matched))

			if asJSON {
				err = writeJSON(out, info)
			} else if matched {
				_, err = fmt.Fprintln(out, "match")
			} else {
				_, err = fmt.Fprintln(out, "no match")
			}
			if err != nil {
				return err
			}
			return resultError(matched, "regexPatternError")
		},
	}

	cmd.Flags().StringVarP(&test, "test", "t", "", "value to match against the pattern")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "include expressions in the listing")

	return cmd
}

func listPatterns(cmd *cobra.Command, asJSON, verbose bool) error {
	out := cmd.OutOrStdout()
	names := validator.PatternNames()

	if asJSON {
		infos := make([]patternInfo, 0, len(names))
		for _, name := range names {
			p, _ := validator.LookupPattern(name)
			infos = append(infos, patternInfo{Name: name, Expression: p.String()})
		}
		return writeJSON(out, infos)
	}

	if !verbose {
		for _, name := range names {
			if _, err := fmt.Fprintln(out, name); err != nil {
				return err
			}
		}
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, name := range names {
		p, _ := validator.LookupPattern(name)
		fmt.Fprintf(tw, "%s\t%s\n", name, p.String())
	}
	return tw.Flush()
}
