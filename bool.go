package fixfmt

import "fmt"

// Bool renders booleans as one of two labels, padded to the wider one.
type Bool struct {
	True  string
	False string
	Align Alignment
}

// NewBool returns a formatter rendering "true" and "false".
func NewBool() Bool {
	return Bool{True: "true", False: "false"}
}

// Width returns the display width of the wider label.
func (b Bool) Width() int {
	return max(StringWidth(b.True), StringWidth(b.False))
}

// Kind returns [Boolean].
func (b Bool) Kind() Kind { return Boolean }

// Validate reports an [ErrInvalidConfig] if both labels are empty.
func (b Bool) Validate() error {
	if b.Width() == 0 {
		return fmt.Errorf("%w: empty bool labels", ErrInvalidConfig)
	}
	return nil
}

// Format renders v.
func (b Bool) Format(v bool) string {
	s := b.False
	if v {
		s = b.True
	}
	return Pad(s, b.Width(), b.Align)
}
