package fixfmt

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
)

// Integer is the set of signed integer types [InferInts] accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types [InferUints] accepts.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Real is the set of floating-point types [InferFloats] accepts.
type Real interface {
	~float32 | ~float64
}

// Infer chooses the smallest formatter that renders every value in samples
// without loss. samples must be a slice whose element type matches
// dt.Kind; see [DTypeOf] for the accepted slice types.
//
// Infer is deterministic and does not modify samples.
func Infer(samples any, dt DType, opts ...InferOption) (Formatter, error) {
	got, err := DTypeOf(samples)
	if err != nil {
		return nil, err
	}
	if got.Kind != dt.Kind && !(got.Kind.Temporal() && dt.Kind.Temporal()) && !(got.Kind == Int && dt.Kind.Temporal()) {
		return nil, fmt.Errorf("%w: %s samples for %s dtype", ErrSchemaMismatch, got.Kind, dt.Kind)
	}

	switch s := samples.(type) {
	case []int:
		return inferInts(s, dt, opts)
	case []int8:
		return inferInts(s, dt, opts)
	case []int16:
		return inferInts(s, dt, opts)
	case []int32:
		return inferInts(s, dt, opts)
	case []int64:
		return inferInts(s, dt, opts)
	case []uint:
		return InferUints(s, opts...)
	case []uint8:
		return InferUints(s, opts...)
	case []uint16:
		return InferUints(s, opts...)
	case []uint32:
		return InferUints(s, opts...)
	case []uint64:
		return InferUints(s, opts...)
	case []float32:
		return InferFloats(s, opts...)
	case []float64:
		if dt.ByteWidth == 4 {
			return inferFloats(s, 32, newInferConfig(opts))
		}
		return InferFloats(s, opts...)
	case []bool:
		return InferBools(s, opts...)
	case []string:
		return InferStrings(s, opts...)
	case []time.Time:
		t, err := InferTimes(s, unitOr(dt.Unit, Nanosecond), opts...)
		return withKind(t, dt.Kind, err)
	case []time.Duration:
		t, err := InferDurations(s, unitOr(dt.Unit, Nanosecond), opts...)
		return withKind(t, dt.Kind, err)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedKind, samples)
}

// inferInts treats integer samples declared temporal as raw ticks.
func inferInts[T Integer](s []T, dt DType, opts []InferOption) (Formatter, error) {
	if !dt.Kind.Temporal() {
		return InferInts(s, opts...)
	}
	if dt.Unit.Scale() == 0 {
		return nil, fmt.Errorf("%w: time unit %q", ErrUnsupportedKind, dt.Unit)
	}
	raw := make([]int64, len(s))
	for i, v := range s {
		raw[i] = int64(v)
	}
	t, err := InferTicks(raw, dt.Unit, opts...)
	return withKind(t, dt.Kind, err)
}

// withKind marks t as a duration column when the declared kind is one.
func withKind(t TickTime, k Kind, err error) (Formatter, error) {
	if err != nil {
		return nil, err
	}
	t.Duration = k == Duration
	return t, nil
}

func unitOr(u, def TimeUnit) TimeUnit {
	if u == "" {
		return def
	}
	return u
}

// DTypeOf describes a slice of samples: []int and its sized variants are
// [Int], unsigned slices [Uint], []float32 and []float64 [Float], []bool
// [Boolean], []string [Text], []time.Time [Datetime] and []time.Duration
// [Duration] in nanoseconds.
func DTypeOf(samples any) (DType, error) {
	switch samples.(type) {
	case []int, []int64:
		return DType{Kind: Int, ByteWidth: 8}, nil
	case []int8:
		return DType{Kind: Int, ByteWidth: 1}, nil
	case []int16:
		return DType{Kind: Int, ByteWidth: 2}, nil
	case []int32:
		return DType{Kind: Int, ByteWidth: 4}, nil
	case []uint, []uint64:
		return DType{Kind: Uint, ByteWidth: 8}, nil
	case []uint8:
		return DType{Kind: Uint, ByteWidth: 1}, nil
	case []uint16:
		return DType{Kind: Uint, ByteWidth: 2}, nil
	case []uint32:
		return DType{Kind: Uint, ByteWidth: 4}, nil
	case []float32:
		return DType{Kind: Float, ByteWidth: 4}, nil
	case []float64:
		return DType{Kind: Float, ByteWidth: 8}, nil
	case []bool:
		return DType{Kind: Boolean, ByteWidth: 1}, nil
	case []string:
		return DType{Kind: Text}, nil
	case []time.Time:
		return DType{Kind: Datetime, ByteWidth: 8, Unit: Nanosecond}, nil
	case []time.Duration:
		return DType{Kind: Duration, ByteWidth: 8, Unit: Nanosecond}, nil
	}
	return DType{}, fmt.Errorf("%w: %T", ErrUnsupportedKind, samples)
}

// InferInts returns an integral [Number] wide enough for the largest
// magnitude in samples, signed if any sample is negative.
func InferInts[T Integer](samples []T, opts ...InferOption) (Number, error) {
	cfg := newInferConfig(opts)
	if len(samples) == 0 {
		return Number{}, fmt.Errorf("%w: no int samples", ErrInsufficientData)
	}
	var maxAbs uint64
	signed := false
	for _, v := range samples {
		u := uint64(int64(v))
		if v < 0 {
			signed = true
			u = -u
		}
		maxAbs = max(maxAbs, u)
	}
	n := Number{Size: digitCount(maxAbs), Precision: PrecisionNone, Signed: signed}
	cfg.log.V(1).Info("inferred number format", "kind", Int, "samples", len(samples), "size", n.Size, "signed", n.Signed)
	return n, nil
}

// InferUints returns an unsigned integral [Number] wide enough for the
// largest value in samples.
func InferUints[T Unsigned](samples []T, opts ...InferOption) (Number, error) {
	cfg := newInferConfig(opts)
	if len(samples) == 0 {
		return Number{}, fmt.Errorf("%w: no uint samples", ErrInsufficientData)
	}
	var maxVal uint64
	for _, v := range samples {
		maxVal = max(maxVal, uint64(v))
	}
	n := Number{Size: digitCount(maxVal), Precision: PrecisionNone}
	cfg.log.V(1).Info("inferred number format", "kind", Uint, "samples", len(samples), "size", n.Size)
	return n, nil
}

// InferFloats returns a fractional [Number] with the fewest fractional
// digits that reproduce every sample, capped at [WithMaxPrecision].
//
// A sample counts as reproduced at p digits when |v|·10^p lies within half
// a unit of the cap's last digit of an integer. This absorbs binary
// rounding noise, so 0.1+0.2 needs one digit, not seventeen. float32
// samples are first reduced to their shortest float32 decimal form.
//
// NaN and infinities are missing values: they are skipped here and
// rendered as markers by the formatter. A sample with no finite values is
// an [ErrInsufficientData].
func InferFloats[T Real](samples []T, opts ...InferOption) (Number, error) {
	bitSize := reflect.TypeFor[T]().Bits()
	vals := make([]float64, len(samples))
	for i, v := range samples {
		vals[i] = float64(v)
	}
	return inferFloats(vals, bitSize, newInferConfig(opts))
}

func inferFloats(vals []float64, bitSize int, cfg inferConfig) (Number, error) {
	tolerance := math.Pow10(-cfg.maxPrecision) / 2
	precision := 0
	scale := 1.0
	count := 0
	signed := false
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		count++
		if v < 0 {
			signed = true
		}
		if bitSize == 32 {
			v = shortest32(v)
		}
		for precision < cfg.maxPrecision {
			scaled := math.Abs(v) * scale
			if scaled-math.Floor(scaled+tolerance) < tolerance {
				break
			}
			precision++
			scale *= 10
			tolerance *= 10
		}
	}
	if count == 0 {
		return Number{}, fmt.Errorf("%w: no finite float samples among %d", ErrInsufficientData, len(vals))
	}

	// Size the integer part from the rounded values, as the formatter will
	// see them, so that 9.996 at two digits reserves room for "10".
	size := 1
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		intPart, frac := decimalDigits(math.Abs(v), 64)
		ip, _ := roundDecimal(intPart, frac, precision)
		size = max(size, len(ip))
		if bitSize == 32 {
			intPart, frac = decimalDigits(math.Abs(v), 32)
			ip, _ = roundDecimal(intPart, frac, precision)
			size = max(size, len(ip))
		}
	}

	n := Number{Size: size, Precision: precision, Signed: signed}
	cfg.log.V(1).Info("inferred number format", "kind", Float, "samples", count, "missing", len(vals)-count,
		"size", n.Size, "precision", n.Precision, "signed", n.Signed)
	return n, nil
}

// shortest32 returns the float64 nearest the shortest decimal that
// round-trips v as a float32.
func shortest32(v float64) float64 {
	f, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', -1, 32), 64)
	if err != nil {
		return v
	}
	return f
}

// InferTicks returns a [TickTime] for raw time values in unit.
//
// The tick is the greatest common divisor of the first value and the
// differences between consecutive values, so the fractional digits cover
// both the spacing of the series and its offset from whole seconds. The
// precision is the fewest digits p for which tick·10^p is a whole multiple
// of the unit's scale: 100 ticks of a millisecond series need one digit,
// 10000 ticks of a microsecond series need two.
//
// [NaT] values are missing. If every remaining value is equal the tick is
// undefined and InferTicks returns [ErrNoVariation]; callers pick a
// default precision in that case. Noisy series degrade toward a tick of one
// raw unit, which means full precision.
func InferTicks(samples []int64, unit TimeUnit, opts ...InferOption) (TickTime, error) {
	cfg := newInferConfig(opts)
	scale := unit.Scale()
	if scale == 0 {
		return TickTime{}, fmt.Errorf("%w: time unit %q", ErrUnsupportedKind, unit)
	}

	var (
		tick   uint64
		first  = true
		prev   int64
		varies bool
		maxAbs uint64
		signed bool
		count  int
	)
	for _, v := range samples {
		if v == NaT {
			continue
		}
		count++
		u := uint64(v)
		if v < 0 {
			signed = true
			u = -u
		}
		maxAbs = max(maxAbs, u)
		if first {
			tick = u
			first = false
		} else if v != prev {
			varies = true
			tick = gcd(tick, absDiff(v, prev))
		}
		prev = v
	}
	if count == 0 {
		return TickTime{}, fmt.Errorf("%w: no time samples", ErrInsufficientData)
	}
	if !varies {
		return TickTime{}, fmt.Errorf("%w: %d identical time samples", ErrNoVariation, count)
	}

	t := TickTime{
		Scale:     scale,
		Precision: tickPrecision(tick, uint64(scale)),
		Signed:    signed,
	}
	// Rounding can carry into a new integer digit only when the precision
	// falls short of the tick, which tickPrecision rules out, so the
	// largest magnitude sizes the column.
	t.Size = digitCount(maxAbs / uint64(scale))
	cfg.log.V(1).Info("inferred tick format", "unit", unit, "samples", count, "tick", tick,
		"scale", t.Scale, "precision", t.Precision, "size", t.Size, "signed", t.Signed)
	return t, nil
}

// InferTimes infers a [TickTime] for absolute times, counted in unit since
// the Unix epoch. Zero times are missing. A time whose tick count does not
// fit an int64, such as one past 2262 at [Nanosecond], returns [ErrOverflow].
func InferTimes(samples []time.Time, unit TimeUnit, opts ...InferOption) (TickTime, error) {
	scale := unit.Scale()
	if scale == 0 {
		return TickTime{}, fmt.Errorf("%w: time unit %q", ErrUnsupportedKind, unit)
	}
	raw := make([]int64, len(samples))
	for i, tm := range samples {
		if tm.IsZero() {
			raw[i] = NaT
			continue
		}
		v, err := ticks(tm.Unix(), int64(tm.Nanosecond()), scale)
		if err != nil {
			return TickTime{}, fmt.Errorf("sample %d: %w", i, err)
		}
		raw[i] = v
	}
	return InferTicks(raw, unit, opts...)
}

// InferDurations infers a [TickTime] for elapsed times counted in unit. The
// result has Duration set.
func InferDurations(samples []time.Duration, unit TimeUnit, opts ...InferOption) (TickTime, error) {
	scale := unit.Scale()
	if scale == 0 {
		return TickTime{}, fmt.Errorf("%w: time unit %q", ErrUnsupportedKind, unit)
	}
	raw := make([]int64, len(samples))
	for i, d := range samples {
		v, err := ticks(int64(d/time.Second), int64(d%time.Second), scale)
		if err != nil {
			return TickTime{}, fmt.Errorf("sample %d: %w", i, err)
		}
		raw[i] = v
	}
	t, err := InferTicks(raw, unit, opts...)
	if err != nil {
		return TickTime{}, err
	}
	t.Duration = true
	return t, nil
}

// InferBools returns a [Bool] with the configured labels.
func InferBools(samples []bool, opts ...InferOption) (Bool, error) {
	cfg := newInferConfig(opts)
	if len(samples) == 0 {
		return Bool{}, fmt.Errorf("%w: no bool samples", ErrInsufficientData)
	}
	return Bool{True: cfg.trueText, False: cfg.falseText}, nil
}

// InferStrings returns a [String] as wide as the widest sample, capped at
// [WithMaxWidth]. Wider values are elided with [Ellipsis].
func InferStrings(samples []string, opts ...InferOption) (String, error) {
	cfg := newInferConfig(opts)
	if len(samples) == 0 {
		return String{}, fmt.Errorf("%w: no string samples", ErrInsufficientData)
	}
	width := 1
	for _, s := range samples {
		width = max(width, StringWidth(s))
	}
	if cfg.maxWidth > 0 {
		width = min(width, cfg.maxWidth)
	}
	cfg.log.V(1).Info("inferred string format", "samples", len(samples), "size", width)
	return NewString(width), nil
}

// tickPrecision returns the fewest fractional digits p such that tick/scale
// is exact with p digits. For a scale that is not a power of ten this may
// never happen; the search stops at the digits of scale.
func tickPrecision(tick, scale uint64) int {
	if tick == 0 {
		return 0
	}
	limit := min(digitCount(scale), maxTickPrecision)
	r := tick % scale
	for p := 0; p < limit; p++ {
		if r == 0 {
			return p
		}
		// Unit scales are at most 1e9, so r*10 cannot wrap.
		r = (r * 10) % scale
	}
	return limit
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func absDiff(a, b int64) uint64 {
	if a > b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}
