package textutil

import (
	"errors"
	"testing"
)

func TestReconcileQuotes(t *testing.T) {
	tests := []struct {
		name      string
		working   string
		reference string
		want      string
		replaced  int
		tolerated int
	}{
		{"double to single", `He said "hi"`, `He said 'hi'`, `He said 'hi'`, 2, 0},
		{"non quote mismatch kept", "abc", "xyz", "abc", 0, 3},
		{"identical", "same 'text'", "same 'text'", "same 'text'", 0, 0},
		{"straight to curly", `"x"`, "“x”", "“x”", 2, 0},
		{"only working quotes move", "it's", "it’s", "it’s", 1, 0},
		{"reference quote ignored", "it’s", "it's", "it’s", 0, 1},
		{"reference longer", `a"`, `a'bc`, `a'`, 1, 0},
		{"empty working", "", "anything", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stats, err := ReconcileQuotes([]rune(tt.working), []rune(tt.reference))
			if err != nil {
				t.Fatalf("ReconcileQuotes error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("ReconcileQuotes = %q, want %q", string(got), tt.want)
			}
			if stats.Replaced != tt.replaced || stats.Tolerated != tt.tolerated {
				t.Errorf("stats = %+v, want replaced=%d tolerated=%d", stats, tt.replaced, tt.tolerated)
			}
		})
	}
}

func TestReconcileQuotesDoesNotMutateInput(t *testing.T) {
	working := []rune(`"q"`)
	if _, _, err := ReconcileQuotes(working, []rune(`'q'`)); err != nil {
		t.Fatal(err)
	}
	if string(working) != `"q"` {
		t.Fatalf("input mutated: %q", string(working))
	}
}

func TestReconcileQuotesLengthMismatch(t *testing.T) {
	working := []rune("0123456789")
	reference := []rune("01234567")

	out, stats, err := ReconcileQuotes(working, reference)
	if out != nil {
		t.Fatalf("expected no output on failure, got %q", string(out))
	}
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
	var mismatch *LengthMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *LengthMismatchError, got %T", err)
	}
	if mismatch.Index != 8 || mismatch.WorkingLen != 10 || mismatch.ReferenceLen != 8 {
		t.Fatalf("unexpected mismatch detail: %+v", mismatch)
	}
	if stats.Replaced != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestReconcileQuotesLocality(t *testing.T) {
	pairs := [][2]string{
		{`He said "hi" and 'bye'`, `He said 'hi' and "bye"`},
		{`x"y'z"`, `abcdef`},
		{"\"\"''", "''\"\""},
		{"no quotes here", "NO QUOTES HERE"},
	}
	for _, pair := range pairs {
		working, reference := []rune(pair[0]), []rune(pair[1])
		got, stats, err := ReconcileQuotes(working, reference)
		if err != nil {
			t.Fatalf("ReconcileQuotes(%q, %q): %v", pair[0], pair[1], err)
		}
		changed := 0
		for i := range working {
			if got[i] == working[i] {
				continue
			}
			changed++
			if !IsQuote(working[i]) || working[i] == reference[i] || got[i] != reference[i] {
				t.Errorf("index %d changed %q -> %q without a quote mismatch", i, working[i], got[i])
			}
		}
		for i := range working {
			if !IsQuote(working[i]) && got[i] != working[i] {
				t.Errorf("non-quote at %d changed", i)
			}
		}
		if changed != stats.Replaced {
			t.Errorf("changed %d runes, stats report %d", changed, stats.Replaced)
		}
	}
}
