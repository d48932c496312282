package fixfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Layout is the serializable form of a [Table]. It lets an inferred table
// be stored and reused, so later data renders with the same widths.
//
// A layout document looks like:
//
//	border: none
//	columns:
//	  - header: price
//	    kind: float
//	    size: 4
//	    precision: 2
//	  - header: time
//	    kind: datetime
//	    unit: ms
//	    size: 10
//	    precision: 1
type Layout struct {
	Separator string         `yaml:"separator,omitempty" json:"separator,omitempty"`
	Border    string         `yaml:"border,omitempty" json:"border,omitempty"`
	Columns   []ColumnLayout `yaml:"columns" json:"columns"`
}

// ColumnLayout describes one column. Kind selects the formatter variant;
// the fields that do not apply to it are ignored.
type ColumnLayout struct {
	Header string `yaml:"header" json:"header"`
	Align  string `yaml:"align,omitempty" json:"align,omitempty"`
	Kind   Kind   `yaml:"kind" json:"kind"`

	Size      int    `yaml:"size,omitempty" json:"size,omitempty"`
	Precision *int   `yaml:"precision,omitempty" json:"precision,omitempty"`
	Signed    bool   `yaml:"signed,omitempty" json:"signed,omitempty"`
	NaN       string `yaml:"nan,omitempty" json:"nan,omitempty"`
	Inf       string `yaml:"inf,omitempty" json:"inf,omitempty"`

	Unit  TimeUnit `yaml:"unit,omitempty" json:"unit,omitempty"`
	Scale int64    `yaml:"scale,omitempty" json:"scale,omitempty"`
	NaT   string   `yaml:"nat,omitempty" json:"nat,omitempty"`

	True  string `yaml:"true,omitempty" json:"true,omitempty"`
	False string `yaml:"false,omitempty" json:"false,omitempty"`

	Ellipsis *string `yaml:"ellipsis,omitempty" json:"ellipsis,omitempty"`
	Elide    string  `yaml:"elide,omitempty" json:"elide,omitempty"`
	// CellAlign places bool and string cells; Align places the header.
	CellAlign string `yaml:"cell_align,omitempty" json:"cell_align,omitempty"`
}

var (
	alignNames  = []string{AlignLeft: "left", AlignCenter: "center", AlignRight: "right"}
	elideNames  = []string{ElideEnd: "end", ElideStart: "start", ElideMiddle: "middle"}
	borderNames = []string{
		BorderNone: "none", BorderASCII: "ascii", BorderRounded: "rounded",
		BorderHeavy: "heavy", BorderDouble: "double", BorderMarkdown: "markdown",
	}
)

// ReadLayout decodes a YAML layout document. JSON documents are valid YAML
// and decode too.
func ReadLayout(r io.Reader) (Layout, error) {
	var l Layout
	if err := yaml.NewDecoder(r).Decode(&l); err != nil {
		return Layout{}, fmt.Errorf("%w: decode layout: %s", ErrInvalidConfig, err)
	}
	return l, nil
}

// WriteLayout encodes l as a YAML document.
func WriteLayout(w io.Writer, l Layout) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return err
	}
	return enc.Close()
}

// WriteLayoutJSON encodes l as indented JSON.
func WriteLayoutJSON(w io.Writer, l Layout) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}

// Layout returns the serializable form of t.
func (t Table) Layout() Layout {
	l := Layout{
		Separator: t.Separator,
		Border:    nameOf(borderNames, int(t.Border)),
		Columns:   make([]ColumnLayout, len(t.Columns)),
	}
	for i, c := range t.Columns {
		cl := ColumnLayout{Header: c.Header, Align: nameOf(alignNames, int(c.Align))}
		switch f := c.Format.(type) {
		case Number:
			cl.Kind = f.Kind()
			cl.Size = f.Size
			cl.Signed = f.Signed
			cl.NaN = f.NaN
			cl.Inf = f.Inf
			if f.Precision >= 0 {
				cl.Precision = &f.Precision
			}
		case TickTime:
			cl.Kind = f.Kind()
			cl.Size = f.Size
			cl.Signed = f.Signed
			cl.NaT = f.NaT
			cl.Precision = &f.Precision
			if u, ok := unitForScale(f.Scale); ok {
				cl.Unit = u
			} else {
				cl.Scale = f.Scale
			}
		case Bool:
			cl.Kind = f.Kind()
			cl.True = f.True
			cl.False = f.False
			cl.CellAlign = nameOf(alignNames, int(f.Align))
		case String:
			cl.Kind = f.Kind()
			cl.Size = f.Size
			cl.Ellipsis = &f.Ellipsis
			cl.Elide = nameOf(elideNames, int(f.Elide))
			cl.CellAlign = nameOf(alignNames, int(f.Align))
		}
		l.Columns[i] = cl
	}
	return l
}

// Table builds and validates the table l describes.
func (l Layout) Table() (Table, error) {
	border, err := parseName(borderNames, l.Border, "border")
	if err != nil {
		return Table{}, err
	}
	t := Table{
		Separator: l.Separator,
		Border:    BorderStyle(border),
		Columns:   make([]Column, len(l.Columns)),
	}
	for i, cl := range l.Columns {
		c, err := cl.column()
		if err != nil {
			return Table{}, fmt.Errorf("column %d %q: %w", i, cl.Header, err)
		}
		t.Columns[i] = c
	}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

func (cl ColumnLayout) column() (Column, error) {
	align, err := parseName(alignNames, cl.Align, "align")
	if err != nil {
		return Column{}, err
	}
	cellAlign, err := parseName(alignNames, cl.CellAlign, "cell_align")
	if err != nil {
		return Column{}, err
	}
	c := Column{Header: cl.Header, Align: Alignment(align)}

	switch cl.Kind {
	case Int, Uint, Float:
		p := PrecisionNone
		if cl.Precision != nil {
			p = *cl.Precision
		} else if cl.Kind == Float {
			p = 0
		}
		c.Format = Number{Size: cl.Size, Precision: p, Signed: cl.Signed && cl.Kind != Uint, NaN: cl.NaN, Inf: cl.Inf}
	case Datetime, Duration:
		scale := cl.Scale
		if cl.Unit != "" {
			u, err := ParseTimeUnit(string(cl.Unit))
			if err != nil {
				return Column{}, err
			}
			scale = u.Scale()
		}
		p := 0
		if cl.Precision != nil {
			p = *cl.Precision
		}
		c.Format = TickTime{
			Scale:     scale,
			Precision: p,
			Size:      cl.Size,
			Signed:    cl.Signed,
			NaT:       cl.NaT,
			Duration:  cl.Kind == Duration,
		}
	case Boolean:
		b := NewBool()
		if cl.True != "" || cl.False != "" {
			b = Bool{True: cl.True, False: cl.False}
		}
		b.Align = Alignment(cellAlign)
		c.Format = b
	case Text:
		elide, err := parseName(elideNames, cl.Elide, "elide")
		if err != nil {
			return Column{}, err
		}
		s := NewString(cl.Size)
		if cl.Ellipsis != nil {
			s.Ellipsis = *cl.Ellipsis
		}
		s.Elide = ElidePosition(elide)
		s.Align = Alignment(cellAlign)
		c.Format = s
	default:
		if _, err := ParseKind(string(cl.Kind)); err != nil {
			return Column{}, err
		}
		return Column{}, fmt.Errorf("%w: no formatter for kind %q", ErrUnsupportedKind, cl.Kind)
	}
	return c, nil
}

func unitForScale(scale int64) (TimeUnit, bool) {
	for u, s := range timeUnits {
		if s == scale {
			return u, true
		}
	}
	return "", false
}

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return ""
	}
	return names[i]
}

// parseName returns the index of s in names. Empty selects the zero value.
func parseName(names []string, s, field string) (int, error) {
	if s == "" {
		return 0, nil
	}
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrInvalidConfig, field, s)
}
