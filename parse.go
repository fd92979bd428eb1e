package contentcoding

import (
	"iter"
	"strings"
)

// Parse returns an iterator over content coding layers of the Content-Encoding header
// field value (RFC 7231, section 3.1.2.2).
//
// Codings are listed in the header in the order they were applied, therefore they are
// yielded reversed: in the order they must be decoded, the outermost layer first and
// the innermost one last. The value is split by commas only, every field (including
// empty ones) produces exactly one layer, see New.
//
// Nothing is allocated while iterating. The iterator may be ranged over multiple times,
// including concurrently, every time starting over from the last layer.
func Parse(value string) iter.Seq[Encoding] {
	return func(yield func(Encoding) bool) {
		rest := value

		for {
			comma := strings.LastIndexByte(rest, ',')
			if comma == -1 {
				yield(New(rest))
				return
			}

			if !yield(New(rest[comma+1:])) {
				return
			}

			rest = rest[:comma]
		}
	}
}

// Layers collects all the layers, as Parse yields them.
func Layers(value string) []Encoding {
	layers := make([]Encoding, 0, Count(value))
	for layer := range Parse(value) {
		layers = append(layers, layer)
	}

	return layers
}

// Count returns the number of layers Parse yields.
func Count(value string) int {
	return strings.Count(value, ",") + 1
}
