package layout

import (
	"reflect"
	"testing"

	"github.com/ByLCY/bitpress/internal/fonttest"
)

func TestMeasure(t *testing.T) {
	f := fonttest.Times36()
	if got := Measure("Hello World", f); got != 177 {
		t.Fatalf("Measure(Hello World) = %g, want 177", got)
	}
	if got := Measure("", f); got != 0 {
		t.Fatalf("empty text should measure 0, got %g", got)
	}
	// 表外字节使用回退字形（空格，宽 9）。
	if got := Measure("\x01\xff", f); got != 18 {
		t.Fatalf("out-of-table bytes should use glyph 0, got %g", got)
	}
}

func TestWrap(t *testing.T) {
	unit := fonttest.New(1, 1, nil, 0xFF)
	cases := []struct {
		name     string
		font     string
		text     string
		maxWidth float64
		lines    []string
		width    float64
	}{
		{"fits", "times", "Hello World", 177, []string{"Hello World"}, 177},
		{"two words", "times", "Hello World", 176, []string{"Hello", "World"}, 88},
		{"greedy", "unit", "aaa bbb ccc", 7, []string{"aaa bbb", "ccc"}, 7},
		{"long word", "unit", "a bbbbbbbb c", 4, []string{"a", "bbbbbbbb", "c"}, 10},
		{"oversize first word", "unit", "bbbbbb a", 4, []string{"", "bbbbbb", "a"}, 6},
		{"oversize only word", "unit", "bbbbbb", 4, []string{"", "bbbbbb"}, 6},
		{"newline break", "unit", "ab\ncd", 4, []string{"ab", "cd"}, 3},
		{"newline kept on fast path", "unit", "a\nb", 10, []string{"a\nb"}, 3},
		{"double spaces", "unit", "aa  bb  cc", 5, []string{"aa bb", "cc"}, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := unit
			if tc.font == "times" {
				f = fonttest.Times36()
			}
			got := Wrap(tc.text, tc.maxWidth, f)
			if !reflect.DeepEqual(got.Lines, tc.lines) {
				t.Fatalf("lines = %q, want %q", got.Lines, tc.lines)
			}
			if got.Width != tc.width {
				t.Fatalf("width = %g, want %g", got.Width, tc.width)
			}
		})
	}
}

func TestWrapWidthBound(t *testing.T) {
	f := fonttest.Times36()
	text := "Hello World Hello World Hello World Hello World"
	split := Wrap(text, 200, f)
	if len(split.Lines) < 2 {
		t.Fatalf("expected several lines, got %q", split.Lines)
	}
	for _, line := range split.Lines {
		if w := Measure(line, f); w > 200 {
			t.Fatalf("line %q measures %g > 200", line, w)
		}
	}
	if split.Width > 200 {
		t.Fatalf("split width %g exceeds max", split.Width)
	}
}

func TestSanitize(t *testing.T) {
	if got := Sanitize("héllo\x7f wörld\n"); got != "hllo wrld\n" {
		t.Fatalf("Sanitize = %q", got)
	}
}
