package structdiff

type options struct {
	logger  *Logger
	metrics MetricsCollector
}

// Option configures diff execution behavior.
//
// The algorithms themselves take no tuning knobs; options exist for the
// ambient concerns (logging, metrics) so the API surface stays a single
// entry point per container kind.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

func applyOptions(optFns []Option) *options {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(o)
	}
	return o
}

// WithLogger configures structured logging for diff operations.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for diff operations.
// If nil is passed, metrics collection is disabled.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}
