package textutil

import (
	"fmt"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Keep reports whether the printable filter retains r. Printable follows
// unicode.IsPrint: letters, marks, numbers, punctuation, symbols and the ASCII
// space. Newline is the only other rune kept.
func Keep(r rune) bool {
	return r == '\n' || unicode.IsPrint(r)
}

// PrintableFilter returns a transformer that removes every rune Keep rejects.
// The transformer is stateless and may be reused.
func PrintableFilter() transform.Transformer {
	return runes.Remove(runes.Predicate(func(r rune) bool {
		return !Keep(r)
	}))
}

// FilterPrintable returns text with every rune Keep rejects removed. Removed
// runes are not replaced, so the result is never longer than the input.
func FilterPrintable(text string) (string, error) {
	out, _, err := transform.String(PrintableFilter(), text)
	if err != nil {
		return "", fmt.Errorf("filter printable: %w", err)
	}
	return out, nil
}
