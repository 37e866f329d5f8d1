package taglex

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring a Tokenizer.
type Option func(*config)

// config holds the internal configuration for a Tokenizer.
type config struct {
	logger *zap.Logger
}

// defaultConfig returns the default tokenizer configuration.
func defaultConfig() *config {
	return &config{
		logger: nil,
	}
}

// WithLogger sets the logger for the tokenizer.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
