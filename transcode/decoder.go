package transcode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/indigo-web/contentcoding"
	"github.com/indigo-web/contentcoding/codec"
	"github.com/indigo-web/contentcoding/config"
	"github.com/indigo-web/contentcoding/internal/codecutil"
	"github.com/indigo-web/contentcoding/status"
)

// Decoder decodes bodies encoded with one or more content codings. It caches
// decompressors between calls, so it isn't safe for concurrent use. Usually there's one
// Decoder per connection.
type Decoder struct {
	cfg     *config.Config
	cache   *codecutil.Cache
	layers  []*layerReader
	buffers []*bufio.Reader
}

func NewDecoder(registry *codec.Registry, cfg *config.Config) *Decoder {
	return &Decoder{
		cfg:   cfg,
		cache: codecutil.NewCache(registry),
	}
}

// NewReader returns a reader decoding the body, encoded as the Content-Encoding header
// field value describes. Identity layers are skipped, so the body itself is returned
// if nothing else is left. Any reader returned before becomes invalid.
//
// Layers without a registered codec result in status.ErrUnsupportedEncoding, wrapped
// together with the layer name. Malformed streams are reported on read as
// status.ErrBadEncoding.
func (d *Decoder) NewReader(value string, body io.Reader) (io.Reader, error) {
	d.cache.Release()

	if err := d.checkLayers(value); err != nil {
		return nil, err
	}

	var (
		source = body
		depth  int
	)

	for layer := range contentcoding.Parse(value) {
		if layer.IsIdentity() {
			continue
		}

		inst, found := d.cache.Get(layer)
		if !found {
			return nil, fmt.Errorf("%w: %s", status.ErrUnsupportedEncoding, layer)
		}

		lr := d.layer(depth)
		lr.Reset(inst, d.buffer(depth, source))
		source = lr
		depth++
	}

	if limit := d.cfg.Decoding.MaxSize; limit != math.MaxInt64 {
		source = &limitReader{r: source, n: limit}
	}

	return source, nil
}

func (d *Decoder) checkLayers(value string) error {
	var n int
	for layer := range contentcoding.Parse(value) {
		if !layer.IsIdentity() {
			n++
		}

		if n > d.cfg.Decoding.MaxLayers {
			return status.ErrTooManyEncodingTokens
		}
	}

	return nil
}

func (d *Decoder) layer(i int) *layerReader {
	if i == len(d.layers) {
		d.layers = append(d.layers, new(layerReader))
	}

	return d.layers[i]
}

func (d *Decoder) buffer(i int, source io.Reader) *bufio.Reader {
	if i == len(d.buffers) {
		// the body may already be a bufio.Reader, which NewReaderSize would return as is
		d.buffers = append(d.buffers, bufio.NewReaderSize(nil, d.cfg.Decoding.BufferSize))
	}

	d.buffers[i].Reset(source)
	return d.buffers[i]
}

// layerReader resets the decompressor lazily, on the first read. This way an empty body
// is decoded into an empty body, whatever codings it claims to be encoded with.
type layerReader struct {
	dec    codec.Decompressor
	src    *bufio.Reader
	srcErr error
	ready  bool
	err    error
}

func (l *layerReader) Reset(dec codec.Decompressor, src *bufio.Reader) {
	*l = layerReader{dec: dec, src: src}
}

func (l *layerReader) Read(p []byte) (n int, err error) {
	if !l.ready {
		l.ready = true

		// peeking distinguishes an empty stream from a malformed one
		if _, err = l.src.Peek(1); err != nil {
			l.err = err
		} else if err = l.dec.ResetDecompressor(sourceTracker{l}); err != nil {
			l.err = l.wrap(err)
		}
	}

	if l.err != nil {
		return 0, l.err
	}

	n, err = l.dec.Read(p)
	return n, l.wrap(err)
}

// wrap marks errors caused by a malformed stream. Errors of the source are returned as is.
func (l *layerReader) wrap(err error) error {
	switch {
	case err == nil, err == io.EOF:
		return err
	case l.srcErr != nil && errors.Is(err, l.srcErr):
		return err
	case errors.Is(err, status.ErrBadEncoding):
		return err
	}

	return fmt.Errorf("%w: %w", status.ErrBadEncoding, err)
}

type sourceTracker struct {
	l *layerReader
}

func (s sourceTracker) Read(p []byte) (n int, err error) {
	n, err = s.l.src.Read(p)
	if err != nil && err != io.EOF {
		s.l.srcErr = err
	}

	return n, err
}

func (s sourceTracker) ReadByte() (c byte, err error) {
	c, err = s.l.src.ReadByte()
	if err != nil && err != io.EOF {
		s.l.srcErr = err
	}

	return c, err
}

// limitReader fails with status.ErrBodyTooLarge as soon as more than n bytes were read.
type limitReader struct {
	r io.Reader
	n int64
}

func (l *limitReader) Read(p []byte) (n int, err error) {
	if l.n < 0 {
		return 0, status.ErrBodyTooLarge
	}

	if int64(len(p)) > l.n+1 {
		p = p[:l.n+1]
	}

	n, err = l.r.Read(p)
	if int64(n) <= l.n {
		l.n -= int64(n)
		return n, err
	}

	n = int(l.n)
	l.n = -1

	return n, status.ErrBodyTooLarge
}
