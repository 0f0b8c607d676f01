// Package config holds the tunable numeric defaults for the algebra
// engine and renderer: significant-digit precision for N, the default
// truncation order for series, and debug toggles for tracing the
// parser and resolver during development.
package config // import "github.com/lacas-dev/lacas/config"

import "math/big"

// A Config holds the configuration of one evaluation session. The zero
// value of a Config holds the default values for all settings.
type Config struct {
	precision   int // significant digits for N(expr, prec)
	seriesOrder int // default truncation order for series()
	debug       map[string]bool

	// bigPrecision is the working precision (in bits) used internally
	// by big.Float arithmetic; derived from precision but kept apart
	// so N() can request a different precision than the engine's
	// internal float work without reallocating constants each call.
	bigPrecision uint
}

// Default precision and series order, per spec §4.7: N(expr, prec=15)
// and series(expr, var?, point=0, n=6).
const (
	DefaultPrecision   = 15
	DefaultSeriesOrder = 6
)

// New returns a Config initialized with the defaults from spec §4.7.
func New() *Config {
	c := &Config{
		precision:   DefaultPrecision,
		seriesOrder: DefaultSeriesOrder,
	}
	c.bigPrecision = bitsForDigits(c.precision)
	return c
}

func bitsForDigits(digits int) uint {
	// log2(10) ≈ 3.3219; pad generously so rounding at the last
	// significant digit doesn't lose accuracy.
	return uint(float64(digits)*3.3219281) + 64
}

func (c *Config) Precision() int {
	if c == nil || c.precision == 0 {
		return DefaultPrecision
	}
	return c.precision
}

func (c *Config) SetPrecision(prec int) {
	if prec <= 0 {
		prec = DefaultPrecision
	}
	c.precision = prec
	c.bigPrecision = bitsForDigits(prec)
}

func (c *Config) BigPrecision() uint {
	if c == nil || c.bigPrecision == 0 {
		return bitsForDigits(DefaultPrecision)
	}
	return c.bigPrecision
}

func (c *Config) SeriesOrder() int {
	if c == nil || c.seriesOrder == 0 {
		return DefaultSeriesOrder
	}
	return c.seriesOrder
}

func (c *Config) SetSeriesOrder(n int) {
	if n <= 0 {
		n = DefaultSeriesOrder
	}
	c.seriesOrder = n
}

func (c *Config) Debug(s string) bool {
	if c == nil {
		return false
	}
	return c.debug[s]
}

func (c *Config) SetDebug(s string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
}

// NewFloat returns a *big.Float with the session's working precision,
// set to x.
func (c *Config) NewFloat(x float64) *big.Float {
	return new(big.Float).SetPrec(c.BigPrecision()).SetFloat64(x)
}
