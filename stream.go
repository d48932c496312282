package fixfmt

import (
	"fmt"
	"io"
	"iter"
)

// WriteIter renders the table to w, writing each row as it arrives. The
// formatters are fixed, so no row is buffered; a row that fails to render
// stops the stream with the lines before it already written.
func (t Table) WriteIter(w io.Writer, seq iter.Seq[[]any]) error {
	return t.render(func(line string) error {
		_, err := fmt.Fprintln(w, line)
		return err
	}, seq)
}

// WriteChan renders rows received from ch until it is closed.
// It is a thin wrapper around [Table.WriteIter].
func (t Table) WriteChan(w io.Writer, ch <-chan []any) error {
	return t.WriteIter(w, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
