package logic

import (
	"unicode"
	"unicode/utf8"
)

// Capitalize uppercases the first character of name and leaves the rest unchanged
func Capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return name
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return name
	}
	return string(upper) + name[size:]
}
