package strutil

import (
	"iter"
	"strings"
)

// Join works in the same way as the strings.Join does, except that it operates an iterator
// as opposed to greedy string slice. Empty elements are kept, so the result always has
// exactly one separator less than there were elements.
func Join(elems iter.Seq[string], sep string) string {
	var (
		b     strings.Builder
		first = true
	)

	for elem := range elems {
		if !first {
			b.WriteString(sep)
		}

		first = false
		b.WriteString(elem)
	}

	return b.String()
}
