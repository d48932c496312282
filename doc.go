// Package fixfmt renders columns of values as fixed-width text and infers
// the narrowest format that shows a sample of the data without loss.
//
// There are four formatters, each a small immutable value:
//
//   - [Number]: integers and floats, right-aligned, with a fixed count of
//     fractional digits
//   - [TickTime]: raw integer time ticks as decimal seconds
//   - [Bool]: one of two labels
//   - [String]: text padded or elided to a fixed width
//
// Every formatter renders every value to a string of exactly [Formatter]
// Width cells, so values line up when stacked.
//
// # Inference
//
// [Infer] and the typed variants ([InferInts], [InferFloats],
// [InferTicks], ...) choose a formatter from a sample:
//
//	f, err := fixfmt.InferFloats([]float64{0.5, 12.25, 3})
//	// f.Size == 2, f.Precision == 2
//	s, err := f.Format(3) // " 3.00"
//
// Integers get as many digits as the largest magnitude. Floats get the
// fewest fractional digits that reproduce every value, capped by
// [WithMaxPrecision] (default [DefaultMaxPrecision]) so that values such as
// 1/3 do not demand seventeen digits. Times get the scale of their unit and
// the fractional digits of the smallest tick in the series.
//
// A formatter inferred from a sample always renders that sample. Values
// outside it may not fit; [Number.Format] then returns [ErrOverflow] rather
// than a truncated number. Re-infer from a wider sample to recover.
//
// # Tables
//
// A [Table] binds a formatter to each column and renders rows as lines of
// identical width:
//
//	t, err := fixfmt.InferTable(
//		[]string{"name", "price"},
//		[]any{[]string{"apple", "kiwi"}, []float64{1.25, 10}},
//	)
//	lines, err := t.Render([][]any{{"apple", 1.25}, {"kiwi", 10.0}})
//
// Columns are joined with a single space unless [Table] Separator or a
// [BorderStyle] says otherwise. [Table.WriteIter] and [Table.WriteChan]
// stream rows to an [io.Writer].
//
// # Layouts
//
// [Table.Layout] and [Layout.Table] convert a table to and from a YAML or
// JSON document, so an inferred layout can be stored and reused.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInsufficientData]: empty or all-missing sample
//   - [ErrNoVariation]: identical time samples, no tick to infer
//   - [ErrOverflow]: a value is too wide for its formatter
//   - [ErrSchemaMismatch]: row arity or value type disagrees with the columns
//   - [ErrUnsupportedKind]: unknown kind, unit or sample type
//   - [ErrInvalidConfig]: unusable formatter or layout configuration
package fixfmt
