package fixfmt

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
	"time"
)

// Column binds a header label to a formatter.
type Column struct {
	Header string
	Format Formatter
	// Align places the header label in the column. Cells keep the
	// alignment of their formatter: numbers and times to the right.
	Align Alignment
}

// Width returns the wider of the header label and the formatter output.
func (c Column) Width() int {
	if c.Format == nil {
		return StringWidth(c.Header)
	}
	return max(StringWidth(c.Header), c.Format.Width())
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderNone     BorderStyle = iota // Separator-joined columns
	BorderASCII                       // +-+|
	BorderRounded                     // ╭─╮╰╯│┬┴├┤┼
	BorderHeavy                       // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                      // ╔═╗╚╝║╦╩╠╣╬
	BorderMarkdown                    // | a | b | with an alignment rule
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// Table composes columns into fixed-width lines.
type Table struct {
	Columns []Column
	// Separator joins cells when Border is BorderNone. Empty means a single
	// space.
	Separator string
	Border    BorderStyle
}

// InferTable infers one column per header from the matching sample slice.
// Each sample slice is described with [DTypeOf].
func InferTable(headers []string, samples []any, opts ...InferOption) (Table, error) {
	if len(headers) != len(samples) {
		return Table{}, fmt.Errorf("%w: %d headers for %d sample columns", ErrSchemaMismatch, len(headers), len(samples))
	}
	cfg := newInferConfig(opts)
	t := Table{Columns: make([]Column, len(headers))}
	for i, header := range headers {
		dt, err := DTypeOf(samples[i])
		if err != nil {
			return Table{}, fmt.Errorf("column %d %q: %w", i, header, err)
		}
		f, err := Infer(samples[i], dt, append(slices.Clip(opts), WithLogger(cfg.log.WithValues("column", header)))...)
		if err != nil {
			return Table{}, fmt.Errorf("column %d %q: %w", i, header, err)
		}
		t.Columns[i] = Column{Header: header, Format: f}
	}
	return t, nil
}

// Validate reports an unknown border style or the first column without a
// usable formatter.
func (t Table) Validate() error {
	if t.Border < BorderNone || t.Border > BorderMarkdown {
		return fmt.Errorf("%w: border style %d", ErrInvalidConfig, t.Border)
	}
	for i, c := range t.Columns {
		if c.Format == nil {
			return fmt.Errorf("%w: column %d %q has no formatter", ErrInvalidConfig, i, c.Header)
		}
		if err := c.Format.Validate(); err != nil {
			return fmt.Errorf("column %d %q: %w", i, c.Header, err)
		}
	}
	return nil
}

// Widths returns the rendered width of each column.
func (t Table) Widths() []int {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = c.Width()
		if t.Border == BorderMarkdown && widths[i] < 3 {
			// Room for the ":-:" alignment marker.
			widths[i] = 3
		}
	}
	return widths
}

// Header returns the header line.
func (t Table) Header() string {
	widths := t.Widths()
	cells := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cells[i] = Pad(c.Header, widths[i], c.Align)
	}
	return t.joinCells(cells)
}

// Row renders one record. values must hold one value per column, of a Go
// type the column's formatter accepts; nil renders a blank cell.
func (t Table) Row(values ...any) (string, error) {
	if len(values) != len(t.Columns) {
		return "", fmt.Errorf("%w: row has %d values for %d columns", ErrSchemaMismatch, len(values), len(t.Columns))
	}
	widths := t.Widths()
	cells := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cell, align, err := formatCell(c.Format, values[i])
		if err != nil {
			return "", fmt.Errorf("column %d %q: %w", i, c.Header, err)
		}
		cells[i] = Pad(cell, widths[i], align)
	}
	return t.joinCells(cells), nil
}

// Render renders the header and every row, one line each, without
// newlines. Every line has the same width.
func (t Table) Render(rows [][]any) ([]string, error) {
	var lines []string
	emit := func(line string) error {
		lines = append(lines, line)
		return nil
	}
	if err := t.render(emit, slices.Values(rows)); err != nil {
		return nil, err
	}
	return lines, nil
}

// Write renders the table to w, one newline-terminated line at a time.
func (t Table) Write(w io.Writer, rows [][]any) error {
	return t.WriteIter(w, slices.Values(rows))
}

func (t Table) render(emit func(string) error, rows iter.Seq[[]any]) error {
	if len(t.Columns) == 0 {
		return nil
	}
	if err := t.Validate(); err != nil {
		return err
	}
	widths := t.Widths()
	bc, bordered := borderSets[t.Border]

	if bordered {
		if err := emit(hLine(widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight)); err != nil {
			return err
		}
	}
	if err := emit(t.Header()); err != nil {
		return err
	}
	switch {
	case bordered:
		if err := emit(hLine(widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee)); err != nil {
			return err
		}
	case t.Border == BorderMarkdown:
		if err := emit(t.markdownRule(widths)); err != nil {
			return err
		}
	}

	var rowErr error
	rows(func(values []any) bool {
		line, err := t.Row(values...)
		if err == nil {
			err = emit(line)
		}
		rowErr = err
		return err == nil
	})
	if rowErr != nil {
		return rowErr
	}

	if bordered {
		return emit(hLine(widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight))
	}
	return nil
}

func (t Table) joinCells(cells []string) string {
	switch t.Border {
	case BorderNone:
		sep := t.Separator
		if sep == "" {
			sep = " "
		}
		return strings.Join(cells, sep)
	case BorderMarkdown:
		return "| " + strings.Join(cells, " | ") + " |"
	}
	vert := borderSets[t.Border].vertical
	var sb strings.Builder
	sb.WriteString(vert)
	for i, cell := range cells {
		sb.WriteString(" ")
		sb.WriteString(cell)
		sb.WriteString(" ")
		if i < len(cells)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	return sb.String()
}

func hLine(widths []int, left, fill, mid, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	return sb.String()
}

// formatCell renders v with f and returns the alignment of the result
// within a wider column.
func formatCell(f Formatter, v any) (string, Alignment, error) {
	switch f := f.(type) {
	case Number:
		if v == nil {
			return strings.Repeat(" ", f.Width()), AlignRight, nil
		}
		s, err := formatNumber(f, v)
		return s, AlignRight, err
	case TickTime:
		if v == nil {
			return strings.Repeat(" ", f.Width()), AlignRight, nil
		}
		s, err := formatTicks(f, v)
		return s, AlignRight, err
	case Bool:
		switch b := v.(type) {
		case nil:
			return strings.Repeat(" ", f.Width()), f.Align, nil
		case bool:
			return f.Format(b), f.Align, nil
		}
	case String:
		switch s := v.(type) {
		case nil:
			return strings.Repeat(" ", f.Width()), f.Align, nil
		case string:
			return f.Format(s), f.Align, nil
		case fmt.Stringer:
			return f.Format(s.String()), f.Align, nil
		}
	default:
		return "", AlignLeft, fmt.Errorf("%w: unsupported formatter %T", ErrSchemaMismatch, f)
	}
	return "", AlignLeft, mismatch(f, v)
}

func formatNumber(f Number, v any) (string, error) {
	switch n := v.(type) {
	case int:
		return f.FormatInt(int64(n))
	case int8:
		return f.FormatInt(int64(n))
	case int16:
		return f.FormatInt(int64(n))
	case int32:
		return f.FormatInt(int64(n))
	case int64:
		return f.FormatInt(n)
	case uint:
		return f.FormatUint(uint64(n))
	case uint8:
		return f.FormatUint(uint64(n))
	case uint16:
		return f.FormatUint(uint64(n))
	case uint32:
		return f.FormatUint(uint64(n))
	case uint64:
		return f.FormatUint(n)
	case float32:
		if f.Precision == PrecisionNone {
			return "", mismatch(f, v)
		}
		return f.FormatFloat32(n)
	case float64:
		if f.Precision == PrecisionNone {
			return "", mismatch(f, v)
		}
		return f.Format(n)
	}
	return "", mismatch(f, v)
}

func formatTicks(f TickTime, v any) (string, error) {
	switch n := v.(type) {
	case int64:
		return f.Format(n)
	case int:
		return f.Format(int64(n))
	case time.Time:
		return f.FormatTime(n)
	case time.Duration:
		return f.FormatDuration(n)
	}
	return "", mismatch(f, v)
}

func mismatch(f Formatter, v any) error {
	return fmt.Errorf("%w: %T value for %s column", ErrSchemaMismatch, v, f.Kind())
}
