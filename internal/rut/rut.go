package rut

import "strings"

// Normalize reduces a Chilean RUT to its digits and check character,
// upper-cased: "12.345.678-k" becomes "12345678K".
func Normalize(rut string) string {
	var b strings.Builder
	b.Grow(len(rut))
	for _, r := range rut {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == 'k' || r == 'K':
			b.WriteByte('K')
		}
	}
	return b.String()
}
