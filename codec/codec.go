package codec

import "io"

// Codec is a fabric of coding instances.
type Codec interface {
	// Token returns a coding token associated with the codec itself.
	Token() string
	// New returns a fresh instance. Instances aren't safe for concurrent use, so every
	// goroutine must have its own one.
	New() Instance
}

type Instance interface {
	Compressor
	Decompressor
}

// Compressor encodes everything written into it. It must be reset before the first use.
// Close finalizes the stream (e.g. writes a trailer) but never closes the destination
// writer itself.
type Compressor interface {
	io.WriteCloser
	ResetCompressor(w io.Writer)
}

// Decompressor decodes the data read from the source it was reset to. It must be
// reset before the first use. Resetting may read the stream header, therefore an
// error can be returned.
type Decompressor interface {
	io.Reader
	ResetDecompressor(source io.Reader) error
}
