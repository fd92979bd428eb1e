package codec

import (
	"github.com/klauspost/compress/zstd"
)

// NewZSTD returns the zstd codec (RFC 8878). Zstandard isn't in the list of standard
// encodings, so the layer is recognized as an unknown coding named "zstd".
func NewZSTD() Codec {
	return newBaseCodec("zstd", func() Instance {
		w, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
		if err != nil {
			panic(err)
		}

		// single-threaded decoder doesn't spawn goroutines, so it never needs to be closed
		r, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			panic(err)
		}

		return newBaseInstance(w, r, genericResetter)
	})
}
