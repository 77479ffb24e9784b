package textutil

import "testing"

func TestTranslateNewlines(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"no breaks", "no breaks"},
		{"a\nb", "a\nb"},
		{"a\r\nb\r\n", "a\nb\n"},
		{"a\rb", "a\nb"},
		{"a\r\r\nb", "a\n\nb"},
		{"\n\r", "\n\n"},
	}

	for _, tt := range tests {
		if got := TranslateNewlines(tt.in); got != tt.want {
			t.Errorf("TranslateNewlines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
