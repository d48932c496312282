package fixfmt

import "github.com/go-logr/logr"

// DefaultMaxPrecision bounds the fractional digits inferred for floats.
const DefaultMaxPrecision = 8

// InferOption configures inference.
type InferOption func(*inferConfig)

type inferConfig struct {
	maxPrecision int
	maxWidth     int
	trueText     string
	falseText    string
	log          logr.Logger
}

func newInferConfig(opts []InferOption) inferConfig {
	cfg := inferConfig{
		maxPrecision: DefaultMaxPrecision,
		trueText:     "true",
		falseText:    "false",
		log:          logr.Discard(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxPrecision caps the inferred fractional digits of floats. Values
// that need more digits, such as 1/3, are rendered rounded at the cap.
func WithMaxPrecision(n int) InferOption {
	return func(c *inferConfig) {
		if n >= 0 {
			c.maxPrecision = n
		}
	}
}

// WithMaxWidth caps the width inferred for strings. Zero means no cap.
func WithMaxWidth(n int) InferOption {
	return func(c *inferConfig) {
		if n >= 0 {
			c.maxWidth = n
		}
	}
}

// WithBoolText sets the labels of inferred [Bool] formatters.
func WithBoolText(t, f string) InferOption {
	return func(c *inferConfig) {
		c.trueText = t
		c.falseText = f
	}
}

// WithLogger logs inference decisions at V(1).
func WithLogger(log logr.Logger) InferOption {
	return func(c *inferConfig) {
		c.log = log
	}
}
