package layout

import (
	"math"
	"testing"
)

// TestParseLength 覆盖各单位的解析与像素换算。
func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		dpi  float64
		unit Unit
		px   float64
	}{
		{"12", 0, UnitNone, 12},
		{"12px", 300, UnitPX, 12},
		{"72pt", 96, UnitPT, 96},
		{"1in", 300, UnitIN, 300},
		{"25.4mm", 96, UnitMM, 96},
		{" 10MM ", 254, UnitMM, 100},
	}
	for _, tc := range cases {
		l, err := ParseLength(tc.in)
		if err != nil {
			t.Fatalf("ParseLength(%q): %v", tc.in, err)
		}
		if l.Unit != tc.unit {
			t.Fatalf("ParseLength(%q) unit = %s, want %s", tc.in, UnitToString(l.Unit), UnitToString(tc.unit))
		}
		if got := l.Pixels(tc.dpi); math.Abs(got-tc.px) > 1e-9 {
			t.Fatalf("%q at %g dpi = %g px, want %g", tc.in, tc.dpi, got, tc.px)
		}
	}
}

func TestParseLengthInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "-3px", "12em"} {
		if _, err := ParseLength(in); err == nil {
			t.Fatalf("ParseLength(%q) 应当失败", in)
		}
	}
}
