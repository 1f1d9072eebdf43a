package multivec

import "log/slog"

type options struct {
	workers          int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures MultiVector constructor behavior.
//
// Options exist to avoid exploding the API surface; a container built with
// the zero value or without options behaves exactly like one built with the
// defaults (serial execution, no logging, no metrics).
type Option func(*options)

// WithWorkers sets the number of goroutines used by the batched read
// operations (DotVector, Dot, GramSelf, Norms).
//
// Every per-element task is independent; the symmetric Gram path partitions
// the unordered index pairs so that the mirrored writes of distinct workers
// never overlap. Batched mutators always run on the calling goroutine.
//
// If n <= 1, parallel execution is disabled (the default).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// batched operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &multivec.BasicMetricsCollector{}
//	mv := multivec.New(template, 16, multivec.WithMetricsCollector(metrics))
//	// ... use mv ...
//	stats := metrics.GetStats()
//	fmt.Printf("Gram ops: %d, avg latency: %dns\n", stats.GramCount, stats.GramAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := multivec.NewJSONLogger(slog.LevelInfo)
//	mv := multivec.New(template, 16, multivec.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		workers:          1,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
