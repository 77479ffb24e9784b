// Package textutil provides the rune-level transformations fixclean applies to
// fixture documents.
//
// The primary use cases are:
//   - Dropping every rune that is neither printable nor a newline
//   - Translating \r\n and lone \r line endings to \n
//   - Copying quote characters from a reference text into a working text at
//     positions where the two disagree
//
// Texts are handled as []rune so positions and lengths count code points, not
// bytes.
package textutil
