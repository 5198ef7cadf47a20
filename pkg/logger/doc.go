// Package logger builds *slog.Logger values from functional options and
// injects attributes taken from context.Context into every record.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it in LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks on each Handle call. Without options the logger
// writes text records at warn level to stderr so that command output on
// stdout stays clean.
//
// # Usage
//
//	import "github.com/dmitrymomot/fieldcheck/pkg/logger"
//
//	log := logger.New(
//	    logger.WithEnvironment(env, "fieldcheck"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.DebugContext(ctx, "validated", logger.Rule("username"), logger.Valid(true))
//
// Values read from configuration go through ParseLevel and ParseFormat, which
// return errors instead of panicking like WithFormat does.
//
// # Attributes
//
// attr.go holds constructors for the attribute keys used across the module
// (rule, error_key, pattern, path, ...). Error, Errors and the name helpers
// return an empty Attr for nil or empty input, which slog drops, so callers
// need no nil checks:
//
//	log.Warn("rule set rejected", logger.Path(p), logger.Error(err))
package logger
