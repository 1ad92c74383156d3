package tui

import "testing"

func TestWrapText(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "fits", in: "hello world", width: 20, want: "hello world"},
		{name: "breaks on space", in: "hello brave new world", width: 11, want: "hello brave\nnew world"},
		{name: "keeps paragraphs", in: "one\n\ntwo", width: 10, want: "one\n\ntwo"},
		{name: "splits long word", in: "abcdefgh", width: 3, want: "abc\ndef\ngh"},
		{name: "wide runes", in: "日本語 テキスト", width: 6, want: "日本語\nテキス\nト"},
		{name: "no width", in: "a b", width: 0, want: "a b"},
	}
	for _, tc := range cases {
		if got := wrapText(tc.in, tc.width); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestTruncateLine(t *testing.T) {
	if got := truncateLine("Portfolio", 6); got != "Por..." {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := truncateLine("Home", 6); got != "Home" {
		t.Fatalf("unexpected truncation: %q", got)
	}
}

func TestFitLines(t *testing.T) {
	got := fitLines("a\nb\nc", 2, 2)
	if got != "a \nb " {
		t.Fatalf("unexpected fit: %q", got)
	}
}
