package extract

import "strings"

// Normalize turns the literal two-character `\n` escape sequences that OCR
// engines leave in serialized text into real newlines. It never fails; an
// empty input yields an empty string. No other cleanup happens here — every
// extraction pattern tolerates embedded whitespace on its own.
func Normalize(raw string) string {
	return strings.ReplaceAll(raw, `\n`, "\n")
}
