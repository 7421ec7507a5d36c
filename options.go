package concurrent

// Option configures a component at construction time. The functional-
// options shape mirrors logiface.Option[E] and keeps the zero-option path
// (the common case) allocation-free: no options means no config struct is
// even populated beyond its zero value.
type Option func(*config)

type config struct {
	logger Logger
}

func resolveOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger attaches a diagnostic logger to a component. When unset (the
// default), components never log; logging is entirely opt-in since this
// is a library meant to sit on hot paths. See logging.go.
func WithLogger(l Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
