package fixfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis is the default marker for elided text.
const Ellipsis = "…"

// Alignment controls where text sits inside a wider field.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// ElidePosition controls which part of a string is dropped when it is too
// wide for its field.
type ElidePosition int

const (
	ElideEnd ElidePosition = iota // keep the start
	ElideStart                    // keep the end
	ElideMiddle                   // keep both ends
)

// StringWidth returns the number of terminal cells s occupies.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Pad pads s with spaces to width cells. Strings already at least width
// cells wide are returned unchanged.
func Pad(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// Center pads s on both sides to width cells. An odd leftover cell goes on
// the right.
func Center(s string, width int) string {
	return Pad(s, width, AlignCenter)
}

// Elide shortens s to at most width cells, replacing the dropped part with
// ellipsis. The ellipsis is omitted when it alone is wider than width.
func Elide(s string, width int, ellipsis string, pos ElidePosition) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if runewidth.StringWidth(ellipsis) > width {
		ellipsis = ""
	}
	avail := width - runewidth.StringWidth(ellipsis)
	switch pos {
	case ElideStart:
		return ellipsis + tail(s, avail)
	case ElideMiddle:
		right := avail / 2
		left := avail - right
		return head(s, left) + ellipsis + tail(s, right)
	default:
		return head(s, avail) + ellipsis
	}
}

// Palide elides s if it is too wide, then pads it, so that the result is
// exactly width cells.
func Palide(s string, width int, ellipsis string, pos ElidePosition, align Alignment) string {
	s = Elide(s, width, ellipsis, pos)
	// A wide rune straddling the cut leaves the result one cell short.
	return Pad(s, width, align)
}

// head returns the longest prefix of s that fits in width cells.
func head(s string, width int) string {
	n := 0
	for i, r := range s {
		w := runewidth.RuneWidth(r)
		if n+w > width {
			return s[:i]
		}
		n += w
	}
	return s
}

// tail returns the longest suffix of s that fits in width cells.
func tail(s string, width int) string {
	r := []rune(s)
	n := 0
	i := len(r)
	for i > 0 {
		w := runewidth.RuneWidth(r[i-1])
		if n+w > width {
			break
		}
		n += w
		i--
	}
	return string(r[i:])
}
