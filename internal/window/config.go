// Package window computes which rows of a long fixed-height list have to be
// materialized for a given scroll position, and where each of them goes.
package window

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultItemHeight is the height of one row when no option overrides it.
	DefaultItemHeight = 50
	// DefaultTolerance is the number of extra rows rendered past each viewport edge.
	DefaultTolerance = 5
)

// ErrInvalidConfiguration is returned when a list cannot be constructed.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config describes one virtualized list. It is immutable for the lifetime of the list.
type Config struct {
	ItemHeight int // height of every row, > 0
	ItemCount  int // total logical rows, > 0
	Tolerance  int // overscan rows per edge, >= 0
}

// Option adjusts a Config built by NewConfig.
type Option func(*Config)

// WithItemHeight sets the per-row height.
func WithItemHeight(h int) Option {
	return func(c *Config) { c.ItemHeight = h }
}

// WithTolerance sets the overscan row count.
func WithTolerance(n int) Option {
	return func(c *Config) { c.Tolerance = n }
}

// NewConfig builds a validated Config for itemCount rows, starting from
// DefaultItemHeight and DefaultTolerance.
func NewConfig(itemCount int, opts ...Option) (Config, error) {
	cfg := Config{
		ItemHeight: DefaultItemHeight,
		ItemCount:  itemCount,
		Tolerance:  DefaultTolerance,
	}
	for _, o := range opts {
		o(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether the config can drive a list.
// Values are never coerced: a bad field is an error.
func (c Config) Validate() error {
	if c.ItemHeight <= 0 {
		return fmt.Errorf("%w: itemHeight must be a positive number, got %d", ErrInvalidConfiguration, c.ItemHeight)
	}
	if c.ItemCount <= 0 {
		return fmt.Errorf("%w: itemCount must be a positive number, got %d", ErrInvalidConfiguration, c.ItemCount)
	}
	if c.ItemCount > math.MaxInt/c.ItemHeight {
		return fmt.Errorf("%w: total extent of %d items of height %d overflows", ErrInvalidConfiguration, c.ItemCount, c.ItemHeight)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance must be non-negative, got %d", ErrInvalidConfiguration, c.Tolerance)
	}
	return nil
}
