package utils

import "strings"

// RemoveNonNumeric strips every rune that is not an ASCII digit. The
// profile handlers compare the stripped length against the raw length
// to reject cellphone values containing separators or letters.
func RemoveNonNumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}
