package compare

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Ordinal orders strings by their bytes.
var Ordinal = New("ordinal", strings.Compare)

// OrdinalIgnoreCase orders strings rune by rune after folding each rune to
// upper case. "apple" and "APPLE" are equal under this order.
var OrdinalIgnoreCase = New("ordinal-ignore-case", compareIgnoreCase)

func compareIgnoreCase(a, b string) int {
	for len(a) > 0 && len(b) > 0 {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		ua, ub := unicode.ToUpper(ra), unicode.ToUpper(rb)
		if ua != ub {
			if ua < ub {
				return -1
			}
			return 1
		}
		a, b = a[na:], b[nb:]
	}
	switch {
	case len(a) == len(b):
		return 0
	case len(a) == 0:
		return -1
	}
	return 1
}
