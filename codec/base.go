package codec

import (
	"errors"
	"io"
)

var errNotReset = errors.New("decompressor is used before being reset")

var _ Codec = baseCodec{}

type instantiator = func() Instance

type baseCodec struct {
	token   string
	newInst instantiator
}

func newBaseCodec(token string, newInst instantiator) baseCodec {
	return baseCodec{
		token:   token,
		newInst: newInst,
	}
}

func (b baseCodec) Token() string {
	return b.token
}

func (b baseCodec) New() Instance {
	return b.newInst()
}

var _ Instance = new(baseInstance)

type (
	// decoderResetter resets the decoder to the new source. It returns the decoder back
	// in order to allow lazy construction of decoders, which read the stream header
	// while being constructed. In this case the passed decoder is nil.
	decoderResetter = func(decoder, source io.Reader) (io.Reader, error)

	writeResetter interface {
		io.WriteCloser
		Reset(dst io.Writer)
	}
)

type baseInstance struct {
	reset decoderResetter
	w     writeResetter // compressor
	r     io.Reader     // decompressor
}

func newBaseInstance(encoder writeResetter, decoder io.Reader, reset decoderResetter) *baseInstance {
	return &baseInstance{
		reset: reset,
		w:     encoder,
		r:     decoder,
	}
}

func (b *baseInstance) ResetCompressor(w io.Writer) {
	b.w.Reset(w)
}

func (b *baseInstance) Write(p []byte) (n int, err error) {
	return b.w.Write(p)
}

func (b *baseInstance) Close() error {
	return b.w.Close()
}

func (b *baseInstance) ResetDecompressor(source io.Reader) (err error) {
	b.r, err = b.reset(b.r, source)
	return err
}

func (b *baseInstance) Read(p []byte) (n int, err error) {
	if b.r == nil {
		return 0, errNotReset
	}

	return b.r.Read(p)
}

func genericResetter(decoder, source io.Reader) (io.Reader, error) {
	type resetter interface {
		Reset(r io.Reader) error
	}

	return decoder, decoder.(resetter).Reset(source)
}
