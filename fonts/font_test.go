package fonts

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func uniformGlyphs(height, width int) [][]byte {
	glyphs := make([][]byte, GlyphCount)
	for i := range glyphs {
		glyphs[i] = make([]byte, height*width)
	}
	return glyphs
}

func TestNewRejectsMalformedTables(t *testing.T) {
	cases := map[string]struct {
		height float64
		glyphs [][]byte
	}{
		"zero height":     {0, uniformGlyphs(2, 3)},
		"negative height": {-4, uniformGlyphs(2, 3)},
		"short table":     {2, uniformGlyphs(2, 3)[:94]},
		"ragged glyph": {2, func() [][]byte {
			g := uniformGlyphs(2, 3)
			g[10] = make([]byte, 5)
			return g
		}()},
	}
	for name, tc := range cases {
		if _, err := New(tc.height, tc.glyphs); !errors.Is(err, ErrInvalidFontData) {
			t.Errorf("%s: expected ErrInvalidFontData, got %v", name, err)
		}
	}
}

func TestNewCopiesGlyphs(t *testing.T) {
	glyphs := uniformGlyphs(2, 3)
	f, err := New(2, glyphs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	glyphs[1][0] = 99
	if f.GlyphAt(1)[0] != 0 {
		t.Fatalf("font shares storage with the input table")
	}
}

func TestIndexFallsBack(t *testing.T) {
	cases := map[byte]int{
		' ':  0,
		'!':  1,
		'A':  33,
		'~':  94,
		'\n': 0,
		0x7F: 0,
		0xE9: 0,
	}
	for b, want := range cases {
		if got := Index(b); got != want {
			t.Errorf("Index(%#x) = %d, want %d", b, got, want)
		}
	}
}

func TestAdvance(t *testing.T) {
	glyphs := uniformGlyphs(4, 2)
	glyphs[Index('W')] = make([]byte, 4*7)
	f, err := New(4, glyphs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := f.Advance('W'); got != 7 {
		t.Errorf("Advance('W') = %g, want 7", got)
	}
	if got := f.Advance(0x80); got != 2 {
		t.Errorf("Advance(0x80) = %g, want fallback width 2", got)
	}
}

func TestFromFaceBasicFont(t *testing.T) {
	f, err := FromFace(basicfont.Face7x13)
	if err != nil {
		t.Fatalf("FromFace: %v", err)
	}
	if f.Height() != 13 {
		t.Fatalf("expected height 13, got %g", f.Height())
	}
	if got := len(f.Glyph('A')); got != 7*13 {
		t.Fatalf("expected 91 samples for 'A', got %d", got)
	}
	ink := 0
	for _, a := range f.Glyph('A') {
		if a != 0 {
			ink++
		}
	}
	if ink == 0 {
		t.Fatalf("glyph 'A' has no ink")
	}
	for _, a := range f.Glyph(' ') {
		if a != 0 {
			t.Fatalf("space glyph should be blank")
		}
	}
}

func TestLookupFallsBackToDefault(t *testing.T) {
	def, err := Lookup(DefaultName)
	if err != nil {
		t.Fatalf("Lookup default: %v", err)
	}
	unknown, err := Lookup("courier12")
	if err != nil {
		t.Fatalf("Lookup unknown: %v", err)
	}
	if unknown != def {
		t.Fatalf("unknown names should resolve to the memoised default font")
	}
	if Has("courier12") || !Has("GoMono18") {
		t.Fatalf("Has reports wrong catalogue membership")
	}
}

func TestLookupFamilyAliases(t *testing.T) {
	cases := map[string]string{
		"times36":   "goregular36",
		"Georgia24": "goregular24",
		"arial18":   "goregular18",
		"times30":   "goregular30",
	}
	for alias, name := range cases {
		want, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", name, err)
		}
		got, err := Lookup(alias)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", alias, err)
		}
		if got != want {
			t.Errorf("%s should resolve to %s", alias, name)
		}
		if !Has(alias) {
			t.Errorf("Has(%s) = false", alias)
		}
	}
}

func TestLookupBuiltins(t *testing.T) {
	for _, name := range Names() {
		f, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", name, err)
		}
		if f.Height() <= 0 || f.Advance('M') <= 0 {
			t.Fatalf("%s: unexpected metrics height=%g advance=%g", name, f.Height(), f.Advance('M'))
		}
	}
}

func TestTableRoundTrip(t *testing.T) {
	src, err := Lookup("basic13")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, src); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Height() != src.Height() || !bytes.Equal(got.Glyph('g'), src.Glyph('g')) {
		t.Fatalf("decoded table differs from the source")
	}
}

func TestDecodeValidates(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"height": 3, "glyphs": ["AAAA"]}`))
	if !errors.Is(err, ErrInvalidFontData) {
		t.Fatalf("expected ErrInvalidFontData, got %v", err)
	}
}

func TestResolverSources(t *testing.T) {
	r := Resolver{}
	def, _ := Lookup(DefaultName)
	mono, _ := Lookup("gomono18")

	cases := map[string]*Font{
		"":                  def,
		"builtin:gomono18":  mono,
		"built-in:gomono18": mono,
		"gomono18":          mono,
		"no-such-font":      def,
	}
	for src, want := range cases {
		got, err := r.Resolve(src, 0)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", src, err)
		}
		if got != want {
			t.Errorf("Resolve(%q) returned the wrong font", src)
		}
	}
	if _, err := r.Resolve("fonts/serif.ttf", 12); err == nil {
		t.Fatalf("relative paths without BaseDir should be rejected")
	}
	if _, err := (Resolver{BaseDir: t.TempDir()}).Resolve("serif.woff", 12); err == nil {
		t.Fatalf("unsupported extensions should be rejected")
	}
}
