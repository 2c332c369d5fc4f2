package utils

import (
	"strings"
	"unicode"
)

// UpperSnakeCase converts a CamelCase identifier to UPPER_SNAKE_CASE, the style of the TFLite builtin
// operator names: "FullyConnected" becomes "FULLY_CONNECTED" and "L2Normalization" becomes "L2_NORMALIZATION".
//
// A new word starts at an uppercase letter that follows a lowercase letter or a digit, or at the last
// letter of an acronym followed by lowercase ("HTTPServer" becomes "HTTP_SERVER").
// Digits stay with the word before them.
func UpperSnakeCase(s string) string {
	runes := []rune(s)
	var sb strings.Builder
	sb.Grow(len(s) + 4)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			acronymEnd := unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || acronymEnd {
				sb.WriteByte('_')
			}
		}
		sb.WriteRune(unicode.ToUpper(r))
	}
	return sb.String()
}
