package transcode

import (
	"fmt"
	"io"

	"github.com/indigo-web/contentcoding"
	"github.com/indigo-web/contentcoding/codec"
	"github.com/indigo-web/contentcoding/internal/codecutil"
	"github.com/indigo-web/contentcoding/status"
)

// Encoder encodes bodies with one or more content codings, as the Content-Encoding
// header field value lists them. Just like Decoder, it isn't safe for concurrent use.
type Encoder struct {
	cache *codecutil.Cache
	chain chainWriter
}

func NewEncoder(registry *codec.Registry) *Encoder {
	return &Encoder{
		cache: codecutil.NewCache(registry),
	}
}

// NewWriter returns a writer encoding everything written into it and passing the result
// into dst. Codings are applied in the order they're listed in the value. Close must be
// called in order to finalize the streams; dst itself is never closed. Any writer returned
// before becomes invalid.
func (e *Encoder) NewWriter(value string, dst io.Writer) (io.WriteCloser, error) {
	e.cache.Release()
	e.chain.layers = e.chain.layers[:0]
	w := dst

	// the outermost layer is yielded first, so it's the one writing into dst
	for layer := range contentcoding.Parse(value) {
		if layer.IsIdentity() {
			continue
		}

		inst, found := e.cache.Get(layer)
		if !found {
			return nil, fmt.Errorf("%w: %s", status.ErrUnsupportedEncoding, layer)
		}

		inst.ResetCompressor(w)
		e.chain.layers = append(e.chain.layers, inst)
		w = inst
	}

	e.chain.w = w

	return &e.chain, nil
}

type chainWriter struct {
	w      io.Writer
	layers []codec.Compressor
}

func (c *chainWriter) Write(p []byte) (n int, err error) {
	return c.w.Write(p)
}

// Close finalizes the layers starting from the innermost one, as each of them flushes
// its trailer into the next one.
func (c *chainWriter) Close() error {
	for i := len(c.layers) - 1; i >= 0; i-- {
		if err := c.layers[i].Close(); err != nil {
			return err
		}
	}

	c.layers = c.layers[:0]
	return nil
}
