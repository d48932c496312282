package fixfmt

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
	"time"
)

// NaT is the raw tick value that marks a missing time.
const NaT = math.MinInt64

// maxTickPrecision keeps 10^precision within a uint64.
const maxTickPrecision = 19

// TickTime renders raw integer time ticks as fixed-width decimal seconds.
//
// A raw value v is rendered as v / Scale seconds, with exactly Precision
// fractional digits, using the same layout as [Number]: Size integer
// digits, an optional sign cell, and a decimal point only when Precision is
// positive. There is no calendar decomposition; absolute times render as
// seconds since the epoch, which keeps the column fixed-width and sortable.
type TickTime struct {
	// Scale is the number of raw units per second.
	Scale     int64
	Precision int
	Size      int
	Signed    bool
	// NaT is rendered for [NaT] values. Default "NaT".
	NaT string
	// Duration marks a column of elapsed times. It only changes [TickTime.Kind].
	Duration bool
}

// NewTickTime returns a formatter for values in unit.
func NewTickTime(unit TimeUnit, precision, size int, signed bool) TickTime {
	return TickTime{Scale: unit.Scale(), Precision: precision, Size: size, Signed: signed}
}

// Width returns the length of every rendered value.
func (t TickTime) Width() int {
	return t.number().Width()
}

// Kind returns [Duration] for elapsed times and [Datetime] otherwise.
func (t TickTime) Kind() Kind {
	if t.Duration {
		return Duration
	}
	return Datetime
}

// Validate reports an [ErrInvalidConfig] for a nonpositive scale or an out
// of range precision or size.
func (t TickTime) Validate() error {
	if t.Scale <= 0 {
		return fmt.Errorf("%w: nonpositive scale %d", ErrInvalidConfig, t.Scale)
	}
	if t.Precision < 0 || t.Precision > maxTickPrecision {
		return fmt.Errorf("%w: precision %d out of range", ErrInvalidConfig, t.Precision)
	}
	if t.Size < 0 {
		return fmt.Errorf("%w: negative size %d", ErrInvalidConfig, t.Size)
	}
	if t.Width() == 0 {
		return fmt.Errorf("%w: zero width", ErrInvalidConfig)
	}
	return nil
}

// Format renders the raw tick value v. The conversion to seconds is exact
// integer arithmetic; the last digit is rounded half away from zero.
func (t TickTime) Format(v int64) (string, error) {
	if v == NaT {
		return Palide(t.natText(), t.Width(), "", ElideEnd, AlignRight), nil
	}
	if t.Scale <= 0 {
		return "", fmt.Errorf("%w: nonpositive scale %d", ErrInvalidConfig, t.Scale)
	}
	neg := v < 0
	if neg && !t.Signed {
		return "", fmt.Errorf("%w: negative value %d in unsigned format", ErrOverflow, v)
	}
	u := uint64(v)
	if neg {
		u = -u
	}
	scale := uint64(t.Scale)
	sec, rem := u/scale, u%scale

	var frac string
	if t.Precision > 0 {
		p := min(t.Precision, maxTickPrecision)
		unit := pow10(p)
		hi, lo := bits.Mul64(rem, unit)
		f, r := bits.Div64(hi, lo, scale)
		if r >= scale-r {
			f++
		}
		if f == unit {
			f = 0
			sec++
		}
		frac = strconv.FormatUint(f, 10)
		frac = strings.Repeat("0", p-len(frac)) + frac
	} else if rem >= scale-rem {
		sec++
	}
	return t.number().render(neg, strconv.FormatUint(sec, 10), frac, v)
}

// FormatTime renders an absolute time as seconds since the Unix epoch. The
// zero time renders as [NaT]. A time whose tick count does not fit an int64
// returns [ErrOverflow].
func (t TickTime) FormatTime(tm time.Time) (string, error) {
	if tm.IsZero() {
		return t.Format(NaT)
	}
	v, err := ticks(tm.Unix(), int64(tm.Nanosecond()), t.Scale)
	if err != nil {
		return "", err
	}
	return t.Format(v)
}

// FormatDuration renders an elapsed time.
func (t TickTime) FormatDuration(d time.Duration) (string, error) {
	v, err := ticks(int64(d/time.Second), int64(d%time.Second), t.Scale)
	if err != nil {
		return "", err
	}
	return t.Format(v)
}

func (t TickTime) number() Number {
	p := t.Precision
	if p <= 0 {
		p = PrecisionNone
	}
	return Number{Size: t.Size, Precision: p, Signed: t.Signed}
}

func (t TickTime) natText() string {
	if t.NaT == "" {
		return "NaT"
	}
	return t.NaT
}

// ticks converts sec seconds plus nsec nanoseconds, |nsec| < 1e9, into raw
// units of the given scale. Sub-unit remainders are truncated toward zero.
// Results outside the int64 range, or equal to [NaT], return [ErrOverflow].
func ticks(sec, nsec, scale int64) (int64, error) {
	if scale <= 0 {
		return 0, fmt.Errorf("%w: nonpositive scale %d", ErrInvalidConfig, scale)
	}
	neg := nsec < 0
	n := uint64(nsec)
	if neg {
		n = -n
	}
	hi, lo := bits.Mul64(n, uint64(scale))
	part, _ := bits.Div64(hi, lo, uint64(time.Second))
	if neg {
		part = -part
	}
	p := int64(part)

	// NaT is excluded, so the lower bound is MinInt64+1.
	if sec > math.MaxInt64/scale || sec < (math.MinInt64+1)/scale {
		return 0, tickOverflow(sec, nsec, scale)
	}
	v := sec * scale
	if p > 0 && v > math.MaxInt64-p || p < 0 && v < math.MinInt64+1-p {
		return 0, tickOverflow(sec, nsec, scale)
	}
	return v + p, nil
}

func tickOverflow(sec, nsec, scale int64) error {
	return fmt.Errorf("%w: %ds%+dns does not fit in int64 at %d ticks per second",
		ErrOverflow, sec, nsec, scale)
}

func pow10(p int) uint64 {
	u := uint64(1)
	for range p {
		u *= 10
	}
	return u
}
