package codec

import (
	"fmt"

	"github.com/andybalholm/brotli"
)

// NewBrotli returns the br codec. The level ranges from brotli.BestSpeed to
// brotli.BestCompression.
func NewBrotli(level int) Codec {
	if level < brotli.BestSpeed || level > brotli.BestCompression {
		panic(fmt.Errorf("brotli: invalid compression level: %d", level))
	}

	return newBaseCodec("br", func() Instance {
		writer := brotli.NewWriterLevel(nil, level)
		return newBaseInstance(writer, brotli.NewReader(nil), genericResetter)
	})
}
