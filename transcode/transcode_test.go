package transcode

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/indigo-web/contentcoding/codec"
	"github.com/indigo-web/contentcoding/config"
	"github.com/indigo-web/contentcoding/status"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

func gzipped(text string) []byte {
	buff := bytes.NewBuffer(nil)
	c := gzip.NewWriter(buff)
	_, err := c.Write([]byte(text))
	if err != nil {
		panic("unexpected error during gzipping")
	}
	if c.Close() != nil {
		panic("unexpected error during closing gzip writer")
	}

	return buff.Bytes()
}

func encode(t *testing.T, value, text string) []byte {
	var buff bytes.Buffer
	w, err := NewEncoder(codec.Default()).NewWriter(value, &buff)
	require.NoError(t, err)
	_, err = io.WriteString(w, text)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buff.Bytes()
}

func decode(value string, body io.Reader) (string, error) {
	return decodeWith(config.Default(), value, body)
}

func decodeWith(cfg *config.Config, value string, body io.Reader) (string, error) {
	r, err := NewDecoder(codec.Default(), cfg).NewReader(value, body)
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(r)
	return string(data), err
}

func TestDecoder(t *testing.T) {
	text := strings.Repeat("Hello, world! Lorem ipsum! ", 100)

	t.Run("single layer", func(t *testing.T) {
		result, err := decode("gzip", bytes.NewReader(gzipped(text)))
		require.NoError(t, err)
		require.Equal(t, text, result)
	})

	t.Run("identity", func(t *testing.T) {
		for _, value := range []string{"", "identity", " , IDENTITY,"} {
			body := strings.NewReader(text)
			r, err := NewDecoder(codec.Default(), config.Default()).NewReader(value, body)
			require.NoError(t, err)
			require.Same(t, body, r)
		}
	})

	t.Run("multiple layers", func(t *testing.T) {
		for _, value := range []string{
			"gzip, br", "br, gzip", "deflate, identity, zstd", "gzip, gzip", "x-gzip, deflate, br, zstd",
		} {
			result, err := decode(value, bytes.NewReader(encode(t, value, text)))
			require.NoError(t, err, value)
			require.Equal(t, text, result, value)
		}
	})

	t.Run("order matters", func(t *testing.T) {
		encoded := encode(t, "gzip, br", text)
		_, err := decode("br, gzip", bytes.NewReader(encoded))
		require.ErrorIs(t, err, status.ErrBadEncoding)
	})

	t.Run("scattered", func(t *testing.T) {
		encoded := encode(t, "deflate, gzip", text)
		result, err := decode("deflate, gzip", iotest.OneByteReader(bytes.NewReader(encoded)))
		require.NoError(t, err)
		require.Equal(t, text, result)
	})

	t.Run("empty body", func(t *testing.T) {
		result, err := decode("gzip, br", strings.NewReader(""))
		require.NoError(t, err)
		require.Empty(t, result)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := decode("gzip", strings.NewReader("definitely not a gzip stream"))
		require.ErrorIs(t, err, status.ErrBadEncoding)
	})

	t.Run("truncated", func(t *testing.T) {
		encoded := encode(t, "br, zstd", text)
		_, err := decode("br, zstd", bytes.NewReader(encoded[:len(encoded)/2]))
		require.ErrorIs(t, err, status.ErrBadEncoding)
	})

	t.Run("source error is passed as is", func(t *testing.T) {
		errNetwork := errors.New("connection reset")
		encoded := gzipped(text)
		body := io.MultiReader(bytes.NewReader(encoded[:len(encoded)/2]), iotest.ErrReader(errNetwork))
		_, err := decode("gzip", body)
		require.ErrorIs(t, err, errNetwork)
		require.False(t, errors.Is(err, status.ErrBadEncoding))
	})
}

func TestDecoderErrors(t *testing.T) {
	t.Run("unsupported", func(t *testing.T) {
		for _, value := range []string{"compress", "gzip, exi", "pack200-gzip", "x-custom, gzip"} {
			_, err := decode(value, strings.NewReader(""))
			require.ErrorIs(t, err, status.ErrUnsupportedEncoding, value)
		}

		_, err := decode("gzip, X-Custom", strings.NewReader(""))
		require.EqualError(t, err, "content encoding is not supported: X-Custom")
	})

	t.Run("too many layers", func(t *testing.T) {
		cfg := config.Default()
		cfg.Decoding.MaxLayers = 2

		_, err := decodeWith(cfg, "gzip, gzip, gzip", strings.NewReader(""))
		require.ErrorIs(t, err, status.ErrTooManyEncodingTokens)

		// identities don't count
		value := "gzip, identity, , br"
		result, err := decodeWith(cfg, value, bytes.NewReader(encode(t, value, "hello")))
		require.NoError(t, err)
		require.Equal(t, "hello", result)
	})

	t.Run("too large", func(t *testing.T) {
		cfg := config.Default()
		cfg.Decoding.MaxSize = 10

		_, err := decodeWith(cfg, "gzip", bytes.NewReader(gzipped(strings.Repeat("a", 11))))
		require.ErrorIs(t, err, status.ErrBodyTooLarge)

		result, err := decodeWith(cfg, "gzip", bytes.NewReader(gzipped(strings.Repeat("a", 10))))
		require.NoError(t, err)
		require.Equal(t, strings.Repeat("a", 10), result)
	})
}

func TestDecoderReuse(t *testing.T) {
	decoder := NewDecoder(codec.Default(), config.Default())

	for i, value := range []string{"gzip", "gzip, br", "br", "gzip, gzip, gzip", "gzip"} {
		text := strings.Repeat("reuse ", i+1)
		r, err := decoder.NewReader(value, bytes.NewReader(encode(t, value, text)))
		require.NoError(t, err)
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		require.Equal(t, text, string(data))
	}
}

func TestEncoder(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		var buff bytes.Buffer
		w, err := NewEncoder(codec.Default()).NewWriter("identity", &buff)
		require.NoError(t, err)
		_, err = io.WriteString(w, "plain")
		require.NoError(t, err)
		require.NoError(t, w.Close())
		require.Equal(t, "plain", buff.String())
	})

	t.Run("compatible with plain gzip", func(t *testing.T) {
		encoded := encode(t, "gzip", "Hello, world!")
		r, err := gzip.NewReader(bytes.NewReader(encoded))
		require.NoError(t, err)
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		require.Equal(t, "Hello, world!", string(data))
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := NewEncoder(codec.Default()).NewWriter("gzip, compress", io.Discard)
		require.ErrorIs(t, err, status.ErrUnsupportedEncoding)
	})

	t.Run("reuse", func(t *testing.T) {
		encoder := NewEncoder(codec.Default())

		for _, value := range []string{"br, gzip", "gzip", "zstd, zstd"} {
			var buff bytes.Buffer
			w, err := encoder.NewWriter(value, &buff)
			require.NoError(t, err)
			_, err = io.WriteString(w, value)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			result, err := decode(value, &buff)
			require.NoError(t, err)
			require.Equal(t, value, result)
		}
	})
}
