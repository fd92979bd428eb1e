package contentcoding

import "github.com/indigo-web/contentcoding/internal/strutil"

// Encoding is a single content coding layer. It is either a standard encoding (Other is
// empty) or an unknown one, in which case Other contains its name exactly as it appeared
// in the header value. Std is meaningful only when Other is empty: a non-empty Other
// always makes the layer unknown, whatever Std holds.
//
// Other is guaranteed to have no surrounding whitespaces. It is a substring of the parsed
// value and therefore shares its memory, which is safe as strings are immutable. Coding
// names are case-insensitive, so Other must be compared using Is rather than ==. The
// == operator (as well as using Encoding as a map key) compares Other byte-wise.
type Encoding struct {
	Std   StdEncoding
	Other string
}

// Std returns the Encoding of a standard coding.
func Std(enc StdEncoding) Encoding {
	return Encoding{Std: enc}
}

// OtherEncoding returns the Encoding of an unknown coding. The name is stored as is,
// so it must be non-empty and stripped of whitespaces. Use New for arbitrary input.
func OtherEncoding(name string) Encoding {
	return Encoding{Other: name}
}

// New classifies a single coding token. Surrounding whitespaces (any Unicode White_Space,
// \v, \f and NBSP included) are ignored. Empty token is treated as identity. The function
// never fails: any token, which isn't a standard one, results in an Other encoding.
func New(token string) Encoding {
	token = strutil.StripWS(token)

	if std, ok := ParseStd(token); ok {
		return Std(std)
	}

	return OtherEncoding(token)
}

// IsStd tells whether the encoding is a standard one.
func (e Encoding) IsStd() bool {
	return len(e.Other) == 0
}

// IsIdentity tells whether the layer leaves the content unchanged.
func (e Encoding) IsIdentity() bool {
	return e.IsStd() && e.Std == Identity
}

// Is compares the layer against a coding token case-insensitively.
func (e Encoding) Is(token string) bool {
	return strutil.CmpFold(e.String(), token)
}

// String returns the coding token. Standard encodings are rendered in their canonical
// form, while Other is returned as is.
func (e Encoding) String() string {
	if e.IsStd() {
		return e.Std.String()
	}

	return e.Other
}
