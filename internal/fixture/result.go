package fixture

import "fixclean/internal/textutil"

// FileStats describes one document of a run. Lengths count runes.
type FileStats struct {
	Path     string
	Original int
	Filtered int
	// NewlinesTranslated is set when reading rewrote \r\n or \r line endings.
	NewlinesTranslated bool
}

// Dropped is the number of runes removed by the printable filter.
func (s FileStats) Dropped() int {
	return s.Original - s.Filtered
}

// Rewritten reports whether the filter phase changes the file on disk.
func (s FileStats) Rewritten() bool {
	return s.NewlinesTranslated || s.Dropped() > 0
}

// Result collects what a run or check observed.
type Result struct {
	Primary   FileStats
	Secondary FileStats
	Quotes    textutil.QuoteStats
	// Reconciled is true once the reconciled text has been computed.
	Reconciled bool
	// Mismatch is set by Check when reconciliation would fail.
	Mismatch *textutil.LengthMismatchError
	// Written lists the files rewritten, in write order.
	Written []string
}

// Lengths returns the pre-filter rune counts of the primary and secondary documents.
func (r *Result) Lengths() (int, int) {
	return r.Primary.Original, r.Secondary.Original
}

// Clean reports whether a run would leave both files unchanged. The secondary
// is only left alone when it already equals the filtered primary.
func (r *Result) Clean() bool {
	return r.Mismatch == nil &&
		!r.Primary.Rewritten() &&
		!r.Secondary.Rewritten() &&
		r.Quotes.Replaced == 0 &&
		r.Quotes.Tolerated == 0 &&
		r.Primary.Filtered == r.Secondary.Filtered
}
