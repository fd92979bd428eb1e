package contentcoding

import (
	"iter"

	"github.com/indigo-web/contentcoding/internal/strutil"
)

// Format renders layers, given in the decoding order (as Parse yields them), back into
// the Content-Encoding header field value. So the first passed layer becomes the last one
// in the value.
func Format(layers ...Encoding) string {
	return strutil.Join(backwards(layers), ", ")
}

func backwards(layers []Encoding) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := len(layers) - 1; i >= 0; i-- {
			if !yield(layers[i].String()) {
				return
			}
		}
	}
}
