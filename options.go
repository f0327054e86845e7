package gen

import (
	"context"
	"log/slog"
)

// Option configures a generator.
type Option func(*config)

type config struct {
	name    string
	sharing Sharing
	logger  *slog.Logger
}

func newConfig(opts []Option) *config {
	c := &config{
		name:    "generator",
		sharing: Exclusive,
		logger:  slog.New(discardHandler{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithName sets the name the generator reports in its Stats and logs.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithSharing selects how the generator guards against use from multiple
// goroutines. The default is Exclusive.
func WithSharing(sharing Sharing) Option {
	return func(c *config) {
		c.sharing = sharing
	}
}

// WithLogger sets the logger receiving the generator's lifecycle events.
// Generators are silent by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
