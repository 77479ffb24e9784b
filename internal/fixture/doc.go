// Package fixture runs the clean pipeline over a pair of near-duplicate
// documents.
//
// A run has three phases executed strictly in order:
//
//  1. load: both files are read as UTF-8 text. Nothing is written if either
//     read fails.
//  2. filter: every rune that is neither printable nor a newline is dropped
//     from each text and each file is rewritten with its filtered text.
//  3. reconcile: quote runes of the primary text that differ from the
//     secondary text at the same position take the secondary rune. The result
//     is written over the secondary file; the primary file keeps its filtered
//     text.
//
// A length mismatch in phase 3 aborts after phase 2 has already been
// persisted. Check performs the same computation without touching the disk.
package fixture
