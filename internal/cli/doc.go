// Package cli implements the fieldcheck command line on top of cobra.
//
// Commands:
//
//	fieldcheck string VALUE  [-o key=value]... [--rules FILE --rule NAME] [--json]
//	fieldcheck number VALUE  [-o key=value]... [--rules FILE --rule NAME] [--json]
//	fieldcheck patterns [NAME] [--test VALUE] [--json] [-v]
//	fieldcheck rules FILE [--json]
//	fieldcheck version
//
// Settings come from the environment through pkg/config: FIELDCHECK_ENV
// selects the logging preset, FIELDCHECK_LOG_LEVEL and FIELDCHECK_LOG_FORMAT
// override it, and FIELDCHECK_RULES names the rule set used when --rules is
// omitted. Logs go to stderr; results go to stdout.
//
// Execute returns ExitValid, ExitInvalid or ExitConfig.
package cli
