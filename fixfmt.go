package fixfmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInsufficientData = errors.New("insufficient data")
	ErrNoVariation      = errors.New("no variation")
	ErrOverflow         = errors.New("value overflows format")
	ErrSchemaMismatch   = errors.New("schema mismatch")
	ErrUnsupportedKind  = errors.New("unsupported kind")
	ErrInvalidConfig    = errors.New("invalid format config")
)

// Kind names the data type of a column of values.
type Kind string

const (
	Int      Kind = "int"
	Uint     Kind = "uint"
	Float    Kind = "float"
	Boolean  Kind = "bool"
	Text     Kind = "string"
	Datetime Kind = "datetime"
	Duration Kind = "duration"
)

var kinds = []Kind{Int, Uint, Float, Boolean, Text, Datetime, Duration}

// String returns the kind name.
func (k Kind) String() string { return string(k) }

// Kinds returns all supported kinds.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind parses a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
}

// Temporal reports whether values of the kind are raw time ticks.
func (k Kind) Temporal() bool { return k == Datetime || k == Duration }

// TimeUnit is the resolution of raw temporal values.
type TimeUnit string

const (
	Second      TimeUnit = "s"
	Millisecond TimeUnit = "ms"
	Microsecond TimeUnit = "us"
	Nanosecond  TimeUnit = "ns"
)

var timeUnits = map[TimeUnit]int64{
	Second:      1,
	Millisecond: 1_000,
	Microsecond: 1_000_000,
	Nanosecond:  1_000_000_000,
}

// String returns the unit abbreviation.
func (u TimeUnit) String() string { return string(u) }

// Scale returns the number of raw units per second, or 0 for an unknown unit.
func (u TimeUnit) Scale() int64 { return timeUnits[u] }

// ParseTimeUnit parses a unit abbreviation. "µs" is accepted for
// microseconds.
func ParseTimeUnit(s string) (TimeUnit, error) {
	if s == "µs" {
		return Microsecond, nil
	}
	if _, ok := timeUnits[TimeUnit(s)]; ok {
		return TimeUnit(s), nil
	}
	return "", fmt.Errorf("%w: time unit %q", ErrUnsupportedKind, s)
}

// DType describes a batch of sample values.
type DType struct {
	Kind Kind
	// ByteWidth is the size of one value in the source representation. For
	// floats, 4 selects single precision tolerance.
	ByteWidth int
	// Unit is the resolution of temporal values. Ignored for other kinds.
	Unit TimeUnit
}

// Formatter is a fixed-width renderer configuration. The set of
// implementations is closed: [Number], [TickTime], [Bool] and [String].
type Formatter interface {
	// Width returns the exact length of every string the formatter renders.
	Width() int
	// Kind returns the kind of value the formatter renders.
	Kind() Kind
	// Validate reports whether the configuration is usable.
	Validate() error

	formatter()
}

func (Number) formatter()   {}
func (TickTime) formatter() {}
func (Bool) formatter()     {}
func (String) formatter()   {}
