// SPDX-License-Identifier: MIT
// Package: edmindex/params
//
// options.go — functional options for Validate.

package params

// Logf receives advisory diagnostics.
type Logf func(format string, args ...interface{})

// Option customizes a Validate call.
type Option func(*config)

type config struct {
	logf Logf
}

func newConfig(opts ...Option) config {
	cfg := config{logf: func(string, ...interface{}) {}}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogf routes advisory diagnostics to f. Panics on nil.
func WithLogf(f Logf) Option {
	if f == nil {
		panic("params: WithLogf(nil)")
	}
	return func(c *config) {
		c.logf = f
	}
}

// advise emits an advisory when verbose diagnostics were requested.
func (c config) advise(verbose bool, format string, args ...interface{}) {
	if verbose {
		c.logf(format, args...)
	}
}
