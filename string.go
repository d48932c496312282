package fixfmt

import "fmt"

// String renders text in exactly Size cells. Longer text is elided at
// Elide and marked with Ellipsis; shorter text is padded per Align.
type String struct {
	Size     int
	Ellipsis string
	Elide    ElidePosition
	Align    Alignment
}

// NewString returns a left-aligned formatter that elides at the end with
// [Ellipsis].
func NewString(size int) String {
	return String{Size: size, Ellipsis: Ellipsis}
}

// Width returns Size.
func (s String) Width() int { return s.Size }

// Kind returns [Text].
func (s String) Kind() Kind { return Text }

// Validate reports an [ErrInvalidConfig] for a nonpositive size.
func (s String) Validate() error {
	if s.Size <= 0 {
		return fmt.Errorf("%w: nonpositive string size %d", ErrInvalidConfig, s.Size)
	}
	return nil
}

// Format renders v.
func (s String) Format(v string) string {
	return Palide(v, s.Size, s.Ellipsis, s.Elide, s.Align)
}
