package fixfmt_test

import (
	"errors"
	"testing"

	"github.com/bjaus/fixfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Helpers ---

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

// failAfterN fails on the (n+1)th call to Write.
type failAfterN struct {
	n     int
	calls int
}

func (f *failAfterN) Write(p []byte) (int, error) {
	if f.calls >= f.n {
		return 0, errWriteFailed
	}
	f.calls++
	return len(p), nil
}

var errWriteFailed = errors.New("write failed")

type stringer string

func (s stringer) String() string { return string(s) }

// ============================================================
// Tests
// ============================================================

func TestParseKind(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    fixfmt.Kind
		wantErr require.ErrorAssertionFunc
	}{
		"int":      {input: "int", want: fixfmt.Int, wantErr: require.NoError},
		"uint":     {input: "uint", want: fixfmt.Uint, wantErr: require.NoError},
		"float":    {input: "float", want: fixfmt.Float, wantErr: require.NoError},
		"bool":     {input: "bool", want: fixfmt.Boolean, wantErr: require.NoError},
		"string":   {input: "string", want: fixfmt.Text, wantErr: require.NoError},
		"datetime": {input: "datetime", want: fixfmt.Datetime, wantErr: require.NoError},
		"duration": {input: "duration", want: fixfmt.Duration, wantErr: require.NoError},
		"unknown":  {input: "decimal", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := fixfmt.ParseKind(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKindUnsupported(t *testing.T) {
	t.Parallel()
	_, err := fixfmt.ParseKind("decimal")
	assert.ErrorIs(t, err, fixfmt.ErrUnsupportedKind)
}

func TestKinds(t *testing.T) {
	t.Parallel()
	got := fixfmt.Kinds()
	assert.Equal(t, []fixfmt.Kind{
		fixfmt.Int, fixfmt.Uint, fixfmt.Float, fixfmt.Boolean,
		fixfmt.Text, fixfmt.Datetime, fixfmt.Duration,
	}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, fixfmt.Int, fixfmt.Kinds()[0])
}

func TestKindTemporal(t *testing.T) {
	t.Parallel()
	assert.True(t, fixfmt.Datetime.Temporal())
	assert.True(t, fixfmt.Duration.Temporal())
	assert.False(t, fixfmt.Int.Temporal())
	assert.Equal(t, "datetime", fixfmt.Datetime.String())
}

func TestParseTimeUnit(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input     string
		want      fixfmt.TimeUnit
		wantScale int64
		wantErr   require.ErrorAssertionFunc
	}{
		"seconds":      {input: "s", want: fixfmt.Second, wantScale: 1, wantErr: require.NoError},
		"milliseconds": {input: "ms", want: fixfmt.Millisecond, wantScale: 1_000, wantErr: require.NoError},
		"microseconds": {input: "us", want: fixfmt.Microsecond, wantScale: 1_000_000, wantErr: require.NoError},
		"micro sign":   {input: "µs", want: fixfmt.Microsecond, wantScale: 1_000_000, wantErr: require.NoError},
		"nanoseconds":  {input: "ns", want: fixfmt.Nanosecond, wantScale: 1_000_000_000, wantErr: require.NoError},
		"unknown":      {input: "min", want: "", wantScale: 0, wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := fixfmt.ParseTimeUnit(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantScale, got.Scale())
		})
	}
}

func TestFormatterKinds(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		f    fixfmt.Formatter
		want fixfmt.Kind
	}{
		"integral number":    {f: fixfmt.NewNumber(3, fixfmt.PrecisionNone, false), want: fixfmt.Int},
		"fractional number":  {f: fixfmt.NewNumber(3, 2, false), want: fixfmt.Float},
		"zero precision":     {f: fixfmt.NewNumber(3, 0, false), want: fixfmt.Float},
		"tick time":          {f: fixfmt.NewTickTime(fixfmt.Millisecond, 1, 2, false), want: fixfmt.Datetime},
		"duration tick time": {f: fixfmt.TickTime{Scale: 1000, Precision: 1, Size: 2, Duration: true}, want: fixfmt.Duration},
		"bool":               {f: fixfmt.NewBool(), want: fixfmt.Boolean},
		"string":             {f: fixfmt.NewString(4), want: fixfmt.Text},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.f.Kind())
			assert.NoError(t, tt.f.Validate())
		})
	}
}

func TestSentinelErrors(t *testing.T) {
	t.Parallel()
	sentinels := []error{
		fixfmt.ErrInsufficientData,
		fixfmt.ErrNoVariation,
		fixfmt.ErrOverflow,
		fixfmt.ErrSchemaMismatch,
		fixfmt.ErrUnsupportedKind,
		fixfmt.ErrInvalidConfig,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
