package contentcoding

import "github.com/indigo-web/contentcoding/internal/strutil"

// StdEncoding is a content coding registered by IANA in the HTTP Content Coding Registry,
// see https://www.iana.org/assignments/http-parameters/http-parameters.xhtml#content-coding
type StdEncoding uint8

const (
	// Identity means no encoding. It is also a zero-value of the type.
	Identity StdEncoding = iota
	// Brotli compressed data format.
	Brotli
	// Compress is the UNIX "compress" data format (adaptive Lempel-Ziv-Welch).
	Compress
	// Deflate is the "zlib" data format wrapping the "deflate" compressed stream.
	Deflate
	// EfficientXML is the W3C Efficient XML Interchange.
	EfficientXML
	// Gzip compressed data format.
	Gzip
	// Pack200Gzip is the network transfer format for Java archives.
	Pack200Gzip
)

var stdTokens = [...]string{
	Identity:     "identity",
	Brotli:       "br",
	Compress:     "compress",
	Deflate:      "deflate",
	EfficientXML: "exi",
	Gzip:         "gzip",
	Pack200Gzip:  "pack200-gzip",
}

// StdEncodings lists all the standard encodings.
func StdEncodings() []StdEncoding {
	return []StdEncoding{Brotli, Compress, Deflate, EfficientXML, Gzip, Identity, Pack200Gzip}
}

// String returns the canonical (lowercase) coding token.
func (s StdEncoding) String() string {
	if int(s) >= len(stdTokens) {
		return "unknown"
	}

	return stdTokens[s]
}

// ParseStd looks the token up in the vocabulary of standard encodings. Coding values
// are case-insensitive (RFC 7231, section 3.1.2.1). The token must already be stripped
// of whitespaces. Empty token is considered identity (RFC 7231, section 5.3.4).
func ParseStd(token string) (StdEncoding, bool) {
	// only compress and identity share the length
	switch len(token) {
	case 0:
		return Identity, true
	case 2:
		if strutil.CmpFold(token, "br") {
			return Brotli, true
		}
	case 3:
		if strutil.CmpFold(token, "exi") {
			return EfficientXML, true
		}
	case 4:
		if strutil.CmpFold(token, "gzip") {
			return Gzip, true
		}
	case 7:
		if strutil.CmpFold(token, "deflate") {
			return Deflate, true
		}
	case 8:
		switch {
		case strutil.CmpFold(token, "compress"):
			return Compress, true
		case strutil.CmpFold(token, "identity"):
			return Identity, true
		}
	case 12:
		if strutil.CmpFold(token, "pack200-gzip") {
			return Pack200Gzip, true
		}
	}

	return Identity, false
}
