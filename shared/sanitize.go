package shared

import "strings"

// Sanitize strips angle brackets as a basic HTML-injection guard, trims
// surrounding whitespace and truncates to max runes.
func Sanitize(s string, max int) string {
	s = strings.Map(func(r rune) rune {
		if r == '<' || r == '>' {
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)

	if max > 0 {
		runes := []rune(s)
		if len(runes) > max {
			s = string(runes[:max])
		}
	}
	return s
}
