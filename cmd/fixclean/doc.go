// Package main hosts the fixclean CLI entrypoint and command graph.
//
// Running `fixclean` with no arguments cleans alice.md and alice2.md in the
// working directory: it prints their original lengths, strips non-printable
// runes from both, and overwrites alice2.md with the quote-reconciled text of
// alice.md. Subcommands expose the same pipeline explicitly (`clean`), as a
// read-only report (`check`), and configuration scaffolding (`config`).
//
// Keep this package lean: the pipeline lives in internal/fixture and the rune
// transformations in internal/textutil; commands here only resolve
// configuration, build the logger, and render results.
package main
