package fixfmt

import "strings"

// markdownRule returns the GitHub-flavored Markdown delimiter row. Number
// and time columns are marked right-aligned, others follow their header.
func (t Table) markdownRule(widths []int) string {
	sep := make([]string, len(widths))
	for i, width := range widths {
		switch markdownAlign(t.Columns[i]) {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	return "| " + strings.Join(sep, " | ") + " |"
}

func markdownAlign(c Column) Alignment {
	switch c.Format.(type) {
	case Number, TickTime:
		return AlignRight
	}
	return c.Align
}
