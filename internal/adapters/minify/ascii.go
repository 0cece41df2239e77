package minify

import (
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// EscapeNonASCII rewrites every non-ASCII rune in src as a \uXXXX escape.
// Runes above U+FFFF become a UTF-16 surrogate pair. Invalid UTF-8 becomes U+FFFD.
// The escapes are valid in JavaScript strings, identifiers and regular expressions.
func EscapeNonASCII(src []byte) []byte {
	n := 0
	for _, b := range src {
		if b >= utf8.RuneSelf {
			n++
		}
	}
	if n == 0 {
		return src
	}

	out := make([]byte, 0, len(src)+n*6)
	for i := 0; i < len(src); {
		b := src[i]
		if b < utf8.RuneSelf {
			out = append(out, b)
			i++
			continue
		}

		r, size := utf8.DecodeRune(src[i:])
		i += size

		if r > 0xFFFF {
			r -= 0x10000
			out = appendEscape(out, 0xD800+(r>>10))
			out = appendEscape(out, 0xDC00+(r&0x3FF))
			continue
		}
		out = appendEscape(out, r)
	}
	return out
}

func appendEscape(dst []byte, r rune) []byte {
	return append(dst, '\\', 'u',
		hexDigits[(r>>12)&0xF],
		hexDigits[(r>>8)&0xF],
		hexDigits[(r>>4)&0xF],
		hexDigits[r&0xF],
	)
}
