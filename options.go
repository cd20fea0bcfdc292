package huffman

import "github.com/rs/zerolog"

// Config holds configuration for training a Table.
type Config struct {
	sentinel Symbol         // End-of-message symbol (EOM or an in-band byte)
	logger   zerolog.Logger // Receives debug events from Train and NewLookupDecoder
}

// Option is a functional option for configuring Train.
type Option func(*Config)

// WithSentinel reserves b as an in-band end-of-message marker instead of
// the out-of-band EOM symbol. Messages containing b cannot be encoded, and
// b's corpus frequency is replaced by 1.
//
// This exists for compatibility with encoders that terminate messages with
// LegacySentinel.
func WithSentinel(b byte) Option {
	return func(c *Config) {
		c.sentinel = Symbol(b)
	}
}

// WithLogger sets the logger used for training diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) {
		c.logger = l
	}
}

func newConfig(opts []Option) Config {
	cfg := Config{sentinel: EOM, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
