package codec

import (
	"slices"

	"github.com/indigo-web/contentcoding"
	"github.com/indigo-web/contentcoding/config"
	"github.com/indigo-web/contentcoding/internal/strutil"
)

type entry struct {
	token string
	codec Codec
}

// Registry associates coding tokens with codecs. Tokens are compared case-insensitively.
// It uses linear search, which is faster than a map on so few entries. Registry must be
// filled before being used concurrently.
type Registry struct {
	entries []entry
	tokens  []string
}

func NewRegistry(codecs ...Codec) *Registry {
	r := new(Registry)
	for _, c := range codecs {
		r.Add(c)
	}

	return r
}

// Default returns a registry with all the built-in codecs.
func Default() *Registry {
	return NewRegistryFromConfig(config.Default())
}

// NewRegistryFromConfig returns a registry with all the built-in codecs, configured
// from the passed config.
func NewRegistryFromConfig(cfg *config.Config) *Registry {
	return NewRegistry(
		NewGZIP(cfg.Encoding.GzipLevel),
		NewDeflate(cfg.Encoding.DeflateLevel),
		NewBrotli(cfg.Encoding.BrotliLevel),
		NewZSTD(),
	)
}

// Add registers the codec. Codecs added later take precedence over earlier ones with the
// same token. For gzip and compress the x-gzip and x-compress aliases are registered as well,
// see https://developer.mozilla.org/en-US/docs/Web/HTTP/Headers/Content-Encoding#directives
func (r *Registry) Add(c Codec) *Registry {
	token := c.Token()
	r.add(token, c)
	r.tokens = appendUnique(r.tokens, token)

	switch {
	case strutil.CmpFold(token, "gzip"):
		r.add("x-gzip", c)
	case strutil.CmpFold(token, "compress"):
		r.add("x-compress", c)
	}

	return r
}

func (r *Registry) add(token string, c Codec) {
	for i, e := range r.entries {
		if strutil.CmpFold(e.token, token) {
			r.entries[i].codec = c
			return
		}
	}

	r.entries = append(r.entries, entry{token: token, codec: c})
}

// Get returns a codec by its token.
func (r *Registry) Get(token string) (Codec, bool) {
	for _, e := range r.entries {
		if strutil.CmpFold(e.token, token) {
			return e.codec, true
		}
	}

	return nil, false
}

// Lookup returns a codec for the layer. Identity has no codec.
func (r *Registry) Lookup(layer contentcoding.Encoding) (Codec, bool) {
	if layer.IsIdentity() {
		return nil, false
	}

	return r.Get(layer.String())
}

// Acceptable lists the tokens of registered codecs, aliases excluded. In case no codecs
// are presented, identity is returned to notify a client that no encodings are accepted.
//
// WARNING: the returned slice is shared, copy it in order to modify.
func (r *Registry) Acceptable() []string {
	if len(r.tokens) == 0 {
		return []string{contentcoding.Identity.String()}
	}

	return r.tokens
}

// AcceptEncoding renders the Accept-Encoding header field value.
func (r *Registry) AcceptEncoding() string {
	return strutil.Join(slices.Values(r.Acceptable()), ", ")
}

func appendUnique(tokens []string, token string) []string {
	for _, t := range tokens {
		if strutil.CmpFold(t, token) {
			return tokens
		}
	}

	return append(tokens, token)
}
