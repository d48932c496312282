package fixfmt_test

import (
	"math"
	"testing"

	"github.com/bjaus/fixfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberWidth(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		n    fixfmt.Number
		want int
	}{
		"integral":          {n: fixfmt.NewNumber(4, fixfmt.PrecisionNone, false), want: 4},
		"integral signed":   {n: fixfmt.NewNumber(4, fixfmt.PrecisionNone, true), want: 5},
		"fractional":        {n: fixfmt.NewNumber(2, 2, false), want: 5},
		"fractional signed": {n: fixfmt.NewNumber(2, 2, true), want: 6},
		"zero precision":    {n: fixfmt.NewNumber(2, 0, false), want: 2},
		"no integer part":   {n: fixfmt.NewNumber(0, 3, false), want: 4},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.n.Width())
		})
	}
}

func TestNumberFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		n    fixfmt.Number
		v    float64
		want string
	}{
		"pads integer part":       {n: fixfmt.NewNumber(2, 2, false), v: 3.14159, want: " 3.14"},
		"pads fraction":           {n: fixfmt.NewNumber(2, 3, false), v: 1.5, want: " 1.500"},
		"half away from zero":     {n: fixfmt.NewNumber(1, 2, false), v: 0.005, want: "0.01"},
		"decimal half":            {n: fixfmt.NewNumber(1, 2, false), v: 2.675, want: "2.68"},
		"negative half":           {n: fixfmt.NewNumber(1, 2, true), v: -2.675, want: "-2.68"},
		"carry":                   {n: fixfmt.NewNumber(2, 1, false), v: 9.96, want: "10.0"},
		"sign space":              {n: fixfmt.NewNumber(2, 1, true), v: 4.2, want: "  4.2"},
		"sign next to digits":     {n: fixfmt.NewNumber(3, 1, true), v: -4.2, want: "  -4.2"},
		"negative zero rounding":  {n: fixfmt.NewNumber(1, 1, true), v: -0.04, want: " 0.0"},
		"negative rounds away":    {n: fixfmt.NewNumber(1, 1, true), v: -0.05, want: "-0.1"},
		"integral whole float":    {n: fixfmt.NewNumber(3, fixfmt.PrecisionNone, false), v: 12, want: " 12"},
		"zero precision":          {n: fixfmt.NewNumber(2, 0, false), v: 2.5, want: " 3"},
		"no integer digits":       {n: fixfmt.NewNumber(0, 2, false), v: 0.5, want: ".50"},
		"zero":                    {n: fixfmt.NewNumber(1, 1, false), v: 0, want: "0.0"},
		"large":                   {n: fixfmt.NewNumber(16, fixfmt.PrecisionNone, false), v: 1e15, want: "1000000000000000"},
		"nan":                     {n: fixfmt.NewNumber(3, 1, false), v: math.NaN(), want: "  NaN"},
		"nan elided":              {n: fixfmt.NewNumber(2, fixfmt.PrecisionNone, false), v: math.NaN(), want: "Na"},
		"inf":                     {n: fixfmt.NewNumber(3, 1, false), v: math.Inf(1), want: "  inf"},
		"negative inf":            {n: fixfmt.NewNumber(3, 1, true), v: math.Inf(-1), want: "  -inf"},
		"custom nan":              {n: fixfmt.Number{Size: 3, Precision: 1, NaN: "-"}, v: math.NaN(), want: "    -"},
		"custom inf":              {n: fixfmt.Number{Size: 3, Precision: 1, Inf: "Inf"}, v: math.Inf(1), want: "  Inf"},
		"precision exceeds value": {n: fixfmt.NewNumber(1, 4, false), v: 0.25, want: "0.2500"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.n.Format(tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.n.Width(), fixfmt.StringWidth(got))
		})
	}
}

func TestNumberFormatOverflow(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		n fixfmt.Number
		v float64
	}{
		"too many digits":     {n: fixfmt.NewNumber(2, 1, false), v: 123.4},
		"carry overflows":     {n: fixfmt.NewNumber(2, 2, false), v: 99.999},
		"negative unsigned":   {n: fixfmt.NewNumber(2, 1, false), v: -1},
		"negative inf":        {n: fixfmt.NewNumber(3, 1, false), v: math.Inf(-1)},
		"nonzero in size 0":   {n: fixfmt.NewNumber(0, 2, false), v: 1.5},
		"tiny negative value": {n: fixfmt.NewNumber(1, 1, false), v: -0.001},
		"integral fraction":   {n: fixfmt.NewNumber(3, fixfmt.PrecisionNone, false), v: 12.5},
		"integral tiny":       {n: fixfmt.NewNumber(1, fixfmt.PrecisionNone, true), v: -0.25},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.n.Format(tt.v)
			assert.ErrorIs(t, err, fixfmt.ErrOverflow)
		})
	}
}

func TestNumberFormatInt(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		n    fixfmt.Number
		v    int64
		want string
	}{
		"pads":            {n: fixfmt.NewNumber(3, fixfmt.PrecisionNone, false), v: 42, want: " 42"},
		"signed":          {n: fixfmt.NewNumber(3, fixfmt.PrecisionNone, true), v: -42, want: " -42"},
		"signed positive": {n: fixfmt.NewNumber(3, fixfmt.PrecisionNone, true), v: 42, want: "  42"},
		"fractional":      {n: fixfmt.NewNumber(2, 2, false), v: 7, want: " 7.00"},
		"min int64":       {n: fixfmt.NewNumber(19, fixfmt.PrecisionNone, true), v: math.MinInt64, want: "-9223372036854775808"},
		"max int64":       {n: fixfmt.NewNumber(19, fixfmt.PrecisionNone, false), v: math.MaxInt64, want: "9223372036854775807"},
		"zero":            {n: fixfmt.NewNumber(1, fixfmt.PrecisionNone, false), v: 0, want: "0"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.n.FormatInt(tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumberFormatIntOverflow(t *testing.T) {
	t.Parallel()
	n := fixfmt.NewNumber(2, fixfmt.PrecisionNone, false)
	_, err := n.FormatInt(100)
	assert.ErrorIs(t, err, fixfmt.ErrOverflow)
	_, err = n.FormatInt(-1)
	assert.ErrorIs(t, err, fixfmt.ErrOverflow)
}

func TestNumberFormatUint(t *testing.T) {
	t.Parallel()
	n := fixfmt.NewNumber(20, fixfmt.PrecisionNone, false)
	got, err := n.FormatUint(math.MaxUint64)
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551615", got)

	_, err = fixfmt.NewNumber(19, fixfmt.PrecisionNone, false).FormatUint(math.MaxUint64)
	assert.ErrorIs(t, err, fixfmt.ErrOverflow)
}

func TestNumberFormatFloat32(t *testing.T) {
	t.Parallel()
	n := fixfmt.NewNumber(1, 9, false)
	got, err := n.FormatFloat32(0.1)
	require.NoError(t, err)
	assert.Equal(t, "0.100000000", got)

	// The same value widened to float64 carries its binary error.
	got, err = n.Format(float64(float32(0.1)))
	require.NoError(t, err)
	assert.Equal(t, "0.100000001", got)
}

func TestNumberIdempotent(t *testing.T) {
	t.Parallel()
	n := fixfmt.NewNumber(3, 4, true)
	first, err := n.Format(-12.34567)
	require.NoError(t, err)
	for range 10 {
		again, err := n.Format(-12.34567)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, " -12.3457", first)
}

func TestNumberValidate(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		n       fixfmt.Number
		wantErr require.ErrorAssertionFunc
	}{
		"valid":              {n: fixfmt.NewNumber(3, 2, true), wantErr: require.NoError},
		"fraction only":      {n: fixfmt.NewNumber(0, 2, false), wantErr: require.NoError},
		"negative size":      {n: fixfmt.NewNumber(-1, 2, false), wantErr: require.Error},
		"negative precision": {n: fixfmt.NewNumber(2, -2, false), wantErr: require.Error},
		"zero width":         {n: fixfmt.NewNumber(0, fixfmt.PrecisionNone, false), wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := tt.n.Validate()
			tt.wantErr(t, err)
			if err != nil {
				assert.ErrorIs(t, err, fixfmt.ErrInvalidConfig)
			}
		})
	}
}
