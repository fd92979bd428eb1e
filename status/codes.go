package status

type Code uint16

// HTTP status codes a content decoding failure may result in.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	BadRequest            Code = 400 // RFC 9110, 15.5.1
	RequestEntityTooLarge Code = 413 // RFC 9110, 15.5.14
	UnsupportedMediaType  Code = 415 // RFC 9110, 15.5.16
	HeaderFieldsTooLarge  Code = 431 // RFC 6585, 5
)

var statusText = map[Code]string{
	BadRequest:            "Bad Request",
	RequestEntityTooLarge: "Request Entity Too Large",
	UnsupportedMediaType:  "Unsupported Media Type",
	HeaderFieldsTooLarge:  "Request Header Fields Too Large",
}

// Text returns a text for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) string {
	return statusText[code]
}
