package fixfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PrecisionNone marks an integral [Number]: no decimal point and no
// fractional digits are rendered.
const PrecisionNone = -1

// Number renders numbers in a fixed-width decimal form.
//
// The rendered string is the integer part right-aligned in Size cells
// (padded with spaces), preceded by a sign cell when Signed is set, and
// followed by a decimal point and exactly Precision fractional digits when
// Precision is positive. The sign cell holds "-" for negative values and a
// space otherwise.
//
// A Precision of zero renders like [PrecisionNone] but marks the format as
// fractional: floats are rounded to whole numbers. An integral format never
// rounds; a float with a fractional part is an [ErrOverflow].
type Number struct {
	Size      int
	Precision int
	Signed    bool
	// NaN is rendered for NaN values. Default "NaN".
	NaN string
	// Inf is rendered for infinite values, prefixed with "-" for negative
	// infinity. Default "inf".
	Inf string
}

// NewNumber returns an integral number formatter if precision is
// [PrecisionNone], or a fractional one otherwise.
func NewNumber(size, precision int, signed bool) Number {
	return Number{Size: size, Precision: precision, Signed: signed}
}

// Width returns the length of every rendered value.
func (n Number) Width() int {
	w := n.Size
	if n.Signed {
		w++
	}
	if n.Precision > 0 {
		w += 1 + n.Precision
	}
	return w
}

// Kind returns [Float] for fractional formats and [Int] otherwise.
func (n Number) Kind() Kind {
	if n.Precision >= 0 {
		return Float
	}
	return Int
}

// Validate reports an [ErrInvalidConfig] for negative sizes or precisions
// other than [PrecisionNone].
func (n Number) Validate() error {
	if n.Size < 0 {
		return fmt.Errorf("%w: negative size %d", ErrInvalidConfig, n.Size)
	}
	if n.Precision < PrecisionNone {
		return fmt.Errorf("%w: negative precision %d", ErrInvalidConfig, n.Precision)
	}
	if n.Width() == 0 {
		return fmt.Errorf("%w: zero width", ErrInvalidConfig)
	}
	return nil
}

// Format renders v. Values are rounded half away from zero on their
// shortest decimal representation, so 2.675 renders as "2.68" at precision
// 2 even though its binary value is slightly below.
//
// Format returns [ErrOverflow] if the integer part of v needs more than
// Size digits, if v is negative and the formatter is unsigned, or if v has
// a fractional part and Precision is [PrecisionNone].
func (n Number) Format(v float64) (string, error) {
	return n.formatFloat(v, 64)
}

// FormatFloat32 renders v rounding from its shortest float32 decimal
// representation, so float32(0.1) renders as "0.1" at any precision.
func (n Number) FormatFloat32(v float32) (string, error) {
	return n.formatFloat(float64(v), 32)
}

func (n Number) formatFloat(v float64, bitSize int) (string, error) {
	switch {
	case math.IsNaN(v):
		return n.special(n.nanText()), nil
	case v < 0 && !n.Signed:
		return "", fmt.Errorf("%w: negative value %v in unsigned format", ErrOverflow, v)
	case math.IsInf(v, 0):
		text := n.infText()
		if v < 0 {
			text = "-" + text
		}
		return n.special(text), nil
	case n.Precision == PrecisionNone && v != math.Trunc(v):
		return "", fmt.Errorf("%w: fractional value %v in integral format", ErrOverflow, v)
	}
	intPart, frac := decimalDigits(math.Abs(v), bitSize)
	return n.render(v < 0, intPart, frac, v)
}

// FormatInt renders v exactly, without passing through float64.
func (n Number) FormatInt(v int64) (string, error) {
	u := uint64(v)
	if v < 0 {
		if !n.Signed {
			return "", fmt.Errorf("%w: negative value %d in unsigned format", ErrOverflow, v)
		}
		u = -u
	}
	return n.render(v < 0, strconv.FormatUint(u, 10), "", v)
}

// FormatUint renders v exactly, without passing through float64.
func (n Number) FormatUint(v uint64) (string, error) {
	return n.render(false, strconv.FormatUint(v, 10), "", v)
}

func (n Number) render(neg bool, intPart, frac string, v any) (string, error) {
	prec := n.Precision
	if prec < 0 {
		prec = 0
	}
	intPart, frac = roundDecimal(intPart, frac, prec)
	if neg && isZeroDigits(intPart) && isZeroDigits(frac) {
		// Rounded to zero; no sign.
		neg = false
	}
	if intPart == "0" && n.Size == 0 {
		intPart = ""
	}
	if len(intPart) > n.Size {
		return "", fmt.Errorf("%w: %v needs %d integer digits, format has %d", ErrOverflow, v, len(intPart), n.Size)
	}

	var sb strings.Builder
	sb.Grow(n.Width())
	sb.WriteString(strings.Repeat(" ", n.Size-len(intPart)))
	if n.Signed {
		if neg {
			sb.WriteByte('-')
		} else {
			sb.WriteByte(' ')
		}
	}
	sb.WriteString(intPart)
	if n.Precision > 0 {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}
	return sb.String(), nil
}

func (n Number) special(text string) string {
	return Palide(text, n.Width(), "", ElideEnd, AlignRight)
}

func (n Number) nanText() string {
	if n.NaN == "" {
		return "NaN"
	}
	return n.NaN
}

func (n Number) infText() string {
	if n.Inf == "" {
		return "inf"
	}
	return n.Inf
}

// decimalDigits splits the shortest decimal representation of abs, which
// must be finite and non-negative, into integer and fractional digits.
// bits is 32 or 64 and selects the shortest representation for that size.
func decimalDigits(abs float64, bits int) (string, string) {
	s := strconv.FormatFloat(abs, 'f', -1, bits)
	intPart, frac, _ := strings.Cut(s, ".")
	return intPart, frac
}

// roundDecimal rounds the decimal number intPart.frac to exactly prec
// fractional digits, half away from zero. intPart must be non-empty.
func roundDecimal(intPart, frac string, prec int) (string, string) {
	if len(frac) <= prec {
		return intPart, frac + strings.Repeat("0", prec-len(frac))
	}
	roundUp := frac[prec] >= '5'
	digits := []byte(intPart + frac[:prec])
	if roundUp {
		i := len(digits) - 1
		for ; i >= 0; i-- {
			if digits[i] == '9' {
				digits[i] = '0'
				continue
			}
			digits[i]++
			break
		}
		if i < 0 {
			digits = append([]byte{'1'}, digits...)
		}
	}
	cut := len(digits) - prec
	return string(digits[:cut]), string(digits[cut:])
}

func isZeroDigits(s string) bool {
	return strings.Trim(s, "0") == ""
}

// digitCount returns the number of decimal digits in u; zero has one.
func digitCount(u uint64) int {
	n := 1
	for u >= 10 {
		u /= 10
		n++
	}
	return n
}
