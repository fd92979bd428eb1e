package config

import "math"

type (
	Decoding struct {
		// MaxLayers is a limit of how many non-identity encodings can be applied at the body.
		// Every layer costs a decompressor, so a value listing a lot of codings is rejected
		// before anything is allocated.
		MaxLayers int
		// BufferSize is the size of a buffer every decompressor reads into.
		BufferSize int
		// MaxSize limits the length of a decoded body, protecting against decompression
		// bombs. In order to disable the setting, use the math.MaxInt64 value.
		MaxSize int64
	}

	Encoding struct {
		// GzipLevel is passed to the gzip compressor. Ranges from 1 (best speed) to
		// 9 (best compression), -1 stands for the default one.
		GzipLevel int
		// DeflateLevel is the same as GzipLevel, but for the deflate (zlib) compressor.
		DeflateLevel int
		// BrotliLevel ranges from 0 (best speed) to 11 (best compression).
		BrotliLevel int
	}
)

// Config holds settings used by codecs and layered decoders, mainly restrictions and
// compression levels.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because zero limits reject every encoded body.
type Config struct {
	Decoding Decoding
	Encoding Encoding
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Decoding: Decoding{
			MaxLayers:  4,
			BufferSize: 4 * 1024,
			MaxSize:    math.MaxInt64,
		},
		Encoding: Encoding{
			GzipLevel:    -1,
			DeflateLevel: 5,
			BrotliLevel:  5,
		},
	}
}
