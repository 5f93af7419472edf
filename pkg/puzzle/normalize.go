package puzzle

import "strings"

// FoldQuote reduces free text to the cell alphabet a puzzle grid actually
// displays: uppercase letters and digits, single spaces, a single '-' for
// any dash variant, and everything else (quotes, brackets, most
// punctuation) dropped. Grounded on the original quote-to-cells pass,
// simplified to ASCII — full Unicode grapheme folding is out of scope.
func FoldQuote(s string) string {
	var b strings.Builder
	lastWasSpace := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 32)
			lastWasSpace = false
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasSpace = false
		case r == ' ', r == '\t', r == '\n':
			if !lastWasSpace {
				b.WriteByte(' ')
			}
			lastWasSpace = true
		case r == '-', r == '—', r == '–':
			b.WriteByte('-')
			lastWasSpace = false
		default:
			// dropped: punctuation, symbols, everything non-cell
		}
	}
	return strings.TrimSpace(b.String())
}
