// Package environment carries the deployment environment (development,
// staging or production) through context.Context and into structured logs.
//
// Parse turns a configuration value such as FIELDCHECK_ENV into an
// Environment:
//
//	env, err := environment.Parse(os.Getenv("FIELDCHECK_ENV"))
//	ctx = environment.WithContext(ctx, env)
//
//	if environment.IsProduction(ctx) {
//	    // production-only behaviour
//	}
//
// LoggerExtractor plugs into logger.WithContextExtractors so every record
// logged with that context carries an "env" attribute.
//
// FromContext returns the zero value when no environment was stored; it never
// fails.
package environment
