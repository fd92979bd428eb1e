package strutil

// CmpFold compares two strings ignoring the case of ASCII letters only. Bytes
// outside A-Z and a-z must match exactly, so multibyte sequences are compared as-is.
func CmpFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}

	return true
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c | 0x20
	}

	return c
}
