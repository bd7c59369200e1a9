package util

import (
	"unicode"
	"unicode/utf8"
)

func RangeInt(to int) []int {
	retval := make([]int, to)
	for i := 0; i < to; i++ {
		retval[i] = i
	}
	return retval
}

// UpperFirst upper-cases the first rune of s.
func UpperFirst(s string) string {
	r, width := utf8.DecodeRuneInString(s)
	if width == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[width:]
}
