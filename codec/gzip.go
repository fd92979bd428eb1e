package codec

import (
	"github.com/klauspost/compress/gzip"
)

// NewGZIP returns the gzip codec. The level must be in range from gzip.HuffmanOnly
// to gzip.BestCompression, otherwise the function panics.
func NewGZIP(level int) Codec {
	if _, err := gzip.NewWriterLevel(nil, level); err != nil {
		panic(err)
	}

	return newBaseCodec("gzip", func() Instance {
		writer, _ := gzip.NewWriterLevel(nil, level)
		return newBaseInstance(writer, new(gzip.Reader), genericResetter)
	})
}
