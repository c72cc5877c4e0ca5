package render_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/goliatone/go-listgen/pkg/render"
)

func TestEllipsize(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short", "A short note", 0, "A short note"},
		{"exact limit", strings.Repeat("y", 50), 50, strings.Repeat("y", 50)},
		{"word boundary", "The quick brown fox jumps over the lazy dog while the cat sleeps", 50, "The quick brown fox jumps over the lazy dog while..."},
		{"punctuation kept", "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod", 50, "Lorem ipsum dolor sit amet, consectetur adipiscing..."},
		{"two long words", strings.Repeat("a", 25) + " " + strings.Repeat("b", 25), 50, strings.Repeat("a", 25) + "..."},
		{"single long word", strings.Repeat("x", 60), 50, strings.Repeat("x", 50) + "..."},
		{"custom limit", "alpha beta gamma", 10, "alpha beta..."},
		{"wide runes within limit", strings.Repeat("日", 30), 50, strings.Repeat("日", 30)},
		{"wide runes over limit", strings.Repeat("日", 60), 50, strings.Repeat("日", 50) + "..."},
		{"accented runes", strings.Repeat("é", 50), 50, strings.Repeat("é", 50)},
		{"embedded newline", "first line\nsecond " + strings.Repeat("x", 50), 50, "first line\nsecond..."},
		{"tab boundary", "alpha\tbeta gamma", 12, "alpha\tbeta..."},
		{"leading space only boundary", " " + strings.Repeat("q", 60), 50, " " + strings.Repeat("q", 49) + "..."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := render.Ellipsize(tc.in, tc.limit); got != tc.want {
				t.Fatalf("Ellipsize(%q, %d)\nwant: %q\n got: %q", tc.in, tc.limit, tc.want, got)
			}
		})
	}
}

func TestEllipsizeNeverExceedsLimit(t *testing.T) {
	inputs := []string{
		"The quick brown fox jumps over the lazy dog while the cat sleeps",
		strings.Repeat("word ", 40),
		strings.Repeat("z", 120),
		strings.Repeat("ü ", 40),
	}
	for _, in := range inputs {
		got := render.Ellipsize(in, render.DefaultTruncateLength)
		if !strings.HasSuffix(got, render.Ellipsis) {
			t.Fatalf("expected ellipsis on %q", got)
		}
		kept := strings.TrimSuffix(got, render.Ellipsis)
		if n := utf8.RuneCountInString(kept); n > render.DefaultTruncateLength {
			t.Fatalf("kept text longer than limit: %d", n)
		}
		if !strings.HasPrefix(in, kept) {
			t.Fatalf("kept text %q is not a prefix of the input", kept)
		}
	}
}
