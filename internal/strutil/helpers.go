package strutil

import (
	"strings"
	"unicode"
)

// LStripWS strips leading whitespaces. Every Unicode White_Space character counts,
// including \v, \f and NBSP.
func LStripWS(str string) string {
	return strings.TrimLeftFunc(str, unicode.IsSpace)
}

// RStripWS strips trailing whitespaces, same as LStripWS does with leading ones.
func RStripWS(str string) string {
	return strings.TrimRightFunc(str, unicode.IsSpace)
}

// StripWS strips whitespaces from both sides. The result is always a substring of
// the passed string, so nothing is copied.
func StripWS(str string) string {
	return RStripWS(LStripWS(str))
}
