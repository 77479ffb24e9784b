package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"fixclean/internal/textutil"
)

// ErrInvalidUTF8 is matched by every *DecodeError.
var ErrInvalidUTF8 = errors.New("invalid utf-8")

// DecodeError reports the byte offset of the first invalid UTF-8 sequence.
type DecodeError struct {
	Path   string
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: invalid utf-8 at byte %d", e.Path, e.Offset)
}

// Is lets errors.Is match ErrInvalidUTF8.
func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidUTF8
}

// ReadOptions controls how ReadText decodes a file.
type ReadOptions struct {
	// UniversalNewlines translates \r\n and lone \r to \n after decoding.
	UniversalNewlines bool
}

// Document is a decoded text file.
type Document struct {
	Text string
	// NewlinesTranslated is set when newline translation made Text differ
	// from the bytes on disk.
	NewlinesTranslated bool
}

// ReadText loads path as UTF-8 text.
func ReadText(path string, opts ReadOptions) (Document, error) {
	in, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	if offset := invalidOffset(data); offset >= 0 {
		return Document{}, &DecodeError{Path: path, Offset: offset}
	}
	doc := Document{Text: string(data)}
	if opts.UniversalNewlines {
		translated := textutil.TranslateNewlines(doc.Text)
		doc.NewlinesTranslated = translated != doc.Text
		doc.Text = translated
	}
	return doc, nil
}

func invalidOffset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for offset := 0; offset < len(data); {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size <= 1 {
			return offset
		}
		offset += size
	}
	return -1
}

// WriteText replaces the contents of path with text. An existing file keeps its
// permission bits; a new file is created with 0o644.
func WriteText(path, text string) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.WriteString(out, text); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}
