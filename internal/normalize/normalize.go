package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Name collapses inner whitespace and brings the string to NFC so
// visually identical names hit the same index key.
func Name(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}
