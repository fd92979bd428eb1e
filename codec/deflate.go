package codec

import (
	"io"

	"github.com/klauspost/compress/zlib"
)

// NewDeflate returns the deflate codec. HTTP "deflate" coding is the zlib data format
// (RFC 1950) wrapping the raw deflate stream (RFC 1951), see RFC 9110, section 8.4.1.2.
func NewDeflate(level int) Codec {
	if _, err := zlib.NewWriterLevel(nil, level); err != nil {
		panic(err)
	}

	return newBaseCodec("deflate", func() Instance {
		writer, _ := zlib.NewWriterLevel(nil, level)
		// zlib reader can't be created without reading the header first, so it's
		// constructed on the first reset
		return newBaseInstance(writer, nil, zlibResetter)
	})
}

func zlibResetter(decoder, source io.Reader) (io.Reader, error) {
	if decoder == nil {
		return zlib.NewReader(source)
	}

	return decoder, decoder.(zlib.Resetter).Reset(source, nil)
}
