package textutil

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is matched by every *LengthMismatchError.
var ErrLengthMismatch = errors.New("reference text shorter than working text")

// LengthMismatchError reports the first position of the working text that has
// no counterpart in the reference text.
type LengthMismatchError struct {
	Index        int
	WorkingLen   int
	ReferenceLen int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("reconcile quotes: index %d out of range (working text %d runes, reference text %d runes)", e.Index, e.WorkingLen, e.ReferenceLen)
}

// Is lets errors.Is match ErrLengthMismatch.
func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// IsQuote reports whether r is an ASCII single or double quote.
func IsQuote(r rune) bool {
	return r == '\'' || r == '"'
}

// QuoteStats summarizes a reconciliation pass.
type QuoteStats struct {
	// Replaced counts quote runes overwritten from the reference text.
	Replaced int
	// Tolerated counts mismatches left alone because the working rune was not a quote.
	Tolerated int
	// FirstReplaced is the index of the first replacement, or -1.
	FirstReplaced int
}

// ReconcileQuotes returns a copy of working in which every quote rune that
// differs from the rune at the same index of reference is replaced by the
// reference rune. Other mismatches are left as they are.
//
// Positions are walked in order over working. When reference runs out first the
// walk stops with a *LengthMismatchError at index len(reference); reference
// runes beyond len(working) are ignored.
func ReconcileQuotes(working, reference []rune) ([]rune, QuoteStats, error) {
	out := make([]rune, len(working))
	copy(out, working)
	stats := QuoteStats{FirstReplaced: -1}

	for i, r := range working {
		if i >= len(reference) {
			return nil, stats, &LengthMismatchError{Index: i, WorkingLen: len(working), ReferenceLen: len(reference)}
		}
		ref := reference[i]
		if r == ref {
			continue
		}
		if !IsQuote(r) {
			stats.Tolerated++
			continue
		}
		out[i] = ref
		stats.Replaced++
		if stats.FirstReplaced < 0 {
			stats.FirstReplaced = i
		}
	}
	return out, stats, nil
}
