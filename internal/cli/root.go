package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldcheck/pkg/config"
	"github.com/dmitrymomot/fieldcheck/pkg/environment"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

const serviceName = "fieldcheck"

// settings is read from the environment (and ./.env) once per process.
type settings struct {
	Env       string `env:"FIELDCHECK_ENV" envDefault:"development"`
	LogLevel  string `env:"FIELDCHECK_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"FIELDCHECK_LOG_FORMAT"`
	Rules     string `env:"FIELDCHECK_RULES"`
}

// app holds what every subcommand shares once the root pre-run has finished.
type app struct {
	settings settings
	logger   *slog.Logger
}

// Execute runs the command line in args and returns the process exit status.
// Errors other than a failed validation are written to stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil && ExitCode(err) != ExitInvalid {
		fmt.Fprintf(stderr, "%s: %v\n", serviceName, err)
	}
	return ExitCode(err)
}

// NewRootCmd builds the full command tree. Each call returns an independent
// tree with fresh flag state.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   serviceName,
		Short: "Validate single string and number fields against declarative rules",
		Long: `fieldcheck validates one value at a time against a set of options and
reports the first rule it breaks.

Options come from repeatable --option key=value flags or from a named rule in a
YAML, JSON or TOML rule set file.

Exit status is 0 when the value is valid, 1 when it is not, and 2 for usage or
configuration errors.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.AddCommand(
		newStringCmd(a),
		newNumberCmd(a),
		newPatternsCmd(a),
		newRulesCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads settings, builds the logger and stores the environment in the
// command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Load(&a.settings); err != nil {
		return err
	}

	env, err := environment.Parse(a.settings.Env)
	if err != nil {
		return err
	}

	opts := []logger.Option{
		logger.WithEnvironment(env, serviceName),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	}
	if a.settings.LogLevel != "" {
		level, err := logger.ParseLevel(a.settings.LogLevel)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if a.settings.LogFormat != "" {
		format, err := logger.ParseFormat(a.settings.LogFormat)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	a.logger = logger.New(opts...).With(logger.Component(cmd.Name()))

	cmd.SetContext(environment.WithContext(cmd.Context(), env))
	return nil
}
