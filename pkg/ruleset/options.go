package ruleset

import "log/slog"

type config struct {
	logger *slog.Logger
}

// Option configures Parse and Load.
type Option func(*config)

// WithLogger sets the logger that receives debug records while a set is loaded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}
