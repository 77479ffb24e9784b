package textutil

import (
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

func TestKeep(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"letter", 'a', true},
		{"digit", '7', true},
		{"ascii space", ' ', true},
		{"straight quote", '"', true},
		{"curly quote", '“', true},
		{"accented", 'é', true},
		{"newline", '\n', true},
		{"tab", '\t', false},
		{"carriage return", '\r', false},
		{"nul", 0, false},
		{"delete", 0x7f, false},
		{"zero width space", '\u200b', false},
		{"byte order mark", '\ufeff', false},
		{"no-break space", '\u00a0', false},
		{"line separator", '\u2028', false},
		{"private use", '\ue000', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Keep(tt.r); got != tt.want {
				t.Errorf("Keep(%U) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func mustFilter(t testing.TB, in string) string {
	t.Helper()
	out, err := FilterPrintable(in)
	if err != nil {
		t.Fatalf("FilterPrintable(%q): %v", in, err)
	}
	return out
}

func TestFilterPrintable(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"clean", "Alice was beginning\n", "Alice was beginning\n"},
		{"tabs and crlf", "a\tb\r\nc", "ab\nc"},
		{"zero width", "foo\u200bbar", "foobar"},
		{"bom", "\ufeff# Title\n", "# Title\n"},
		{"controls only", "\x00\x01\x1b", ""},
		{"keeps unicode quotes", "‘hi’", "‘hi’"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustFilter(t, tt.in); got != tt.want {
				t.Errorf("FilterPrintable(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

var filterCorpus = []string{
	"",
	"plain",
	"He said \"hi\"\n",
	"\t\tindent\r\n\r\nCRLF\n",
	"mixed \u00a0nbsp \u200b zw \u2028 ls \x07 bell",
	strings.Repeat("line\n", 50),
	"\ufeff\u202ertl override\u202c",
	"日本語\tテキスト\n",
}

func TestFilterPrintableProperties(t *testing.T) {
	for _, in := range filterCorpus {
		once := mustFilter(t, in)
		if twice := mustFilter(t, once); twice != once {
			t.Errorf("filter not idempotent for %q: %q then %q", in, once, twice)
		}
		if utf8.RuneCountInString(once) > utf8.RuneCountInString(in) {
			t.Errorf("filter grew %q to %q", in, once)
		}
		if strings.Count(once, "\n") != strings.Count(in, "\n") {
			t.Errorf("filter changed newline count for %q: %q", in, once)
		}
		var kept int
		for _, r := range in {
			if Keep(r) {
				kept++
			}
		}
		if got := utf8.RuneCountInString(once); got != kept {
			t.Errorf("filtered %q to %d runes, Keep accepts %d", in, got, kept)
		}
	}
}

func TestFilterPreservesNewlinePositions(t *testing.T) {
	in := "a\tb\nc\x00\nd\n"
	out := mustFilter(t, in)

	// Every kept rune keeps its relative order, so splitting on newlines must
	// give the per-line filter result.
	inLines := strings.Split(in, "\n")
	outLines := strings.Split(out, "\n")
	if len(inLines) != len(outLines) {
		t.Fatalf("line count changed: %d -> %d", len(inLines), len(outLines))
	}
	for i := range inLines {
		if want := mustFilter(t, inLines[i]); outLines[i] != want {
			t.Errorf("line %d = %q, want %q", i, outLines[i], want)
		}
	}
}

func TestPrintableFilterReusable(t *testing.T) {
	filter := PrintableFilter()
	for _, in := range []string{"a\tb", "\x00c\r\n"} {
		filter.Reset()
		got, _, err := transform.String(filter, in)
		if err != nil {
			t.Fatalf("transform %q: %v", in, err)
		}
		if want := mustFilter(t, in); got != want {
			t.Errorf("reused filter gave %q for %q, want %q", got, in, want)
		}
	}
}

func FuzzFilterPrintable(f *testing.F) {
	for _, seed := range filterCorpus {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, in string) {
		if !utf8.ValidString(in) {
			t.Skip()
		}
		once := mustFilter(t, in)
		if mustFilter(t, once) != once {
			t.Fatalf("not idempotent for %q", in)
		}
		if utf8.RuneCountInString(once) > utf8.RuneCountInString(in) {
			t.Fatalf("grew %q", in)
		}
		if strings.Count(once, "\n") != strings.Count(in, "\n") {
			t.Fatalf("newline count changed for %q", in)
		}
	})
}
