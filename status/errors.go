package status

// HTTPError is an error carrying the status code a server should respond with.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	// ErrUnsupportedEncoding is returned when none of the registered codecs can decode
	// (or encode) a layer. RFC 9110, section 8.4.1 suggests 415 in this case.
	ErrUnsupportedEncoding   = NewError(UnsupportedMediaType, "content encoding is not supported")
	ErrTooManyEncodingTokens = NewError(HeaderFieldsTooLarge, "too many encoding tokens specified")
	ErrBadEncoding           = NewError(BadRequest, "malformed encoded body")
	ErrBodyTooLarge          = NewError(RequestEntityTooLarge, "decoded body is too large")
)
