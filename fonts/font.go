// Package fonts provides the bitmap glyph tables consumed by the layout and
// raster stages, plus the built-in catalogue and loaders for table files and
// TrueType faces.
package fonts

import (
	"errors"
	"fmt"
	"math"
)

// The table covers printable ASCII, '!'..'~' plus the space.
const (
	FirstChar  = 32
	GlyphCount = 95
)

// ErrInvalidFontData reports a glyph table that breaks the Font invariants.
var ErrInvalidFontData = errors.New("fonts: invalid font data")

// Font is an immutable bitmap font. Every glyph is a flat row-major slice of
// alpha samples whose length is a whole multiple of the row height; the
// glyph width is len(glyph)/height. Glyph 0 (the space) doubles as the
// fallback for bytes outside the table.
type Font struct {
	height float64
	glyphs [GlyphCount][]byte
}

// New validates and copies a glyph table.
func New(height float64, glyphs [][]byte) (*Font, error) {
	if math.IsNaN(height) || math.IsInf(height, 0) || height <= 0 {
		return nil, fmt.Errorf("%w: height %g", ErrInvalidFontData, height)
	}
	if len(glyphs) != GlyphCount {
		return nil, fmt.Errorf("%w: %d glyphs, want %d", ErrInvalidFontData, len(glyphs), GlyphCount)
	}
	f := &Font{height: height}
	for i, g := range glyphs {
		cols := float64(len(g)) / height
		if cols != math.Trunc(cols) {
			return nil, fmt.Errorf("%w: glyph %q has %d samples, not a multiple of height %g",
				ErrInvalidFontData, rune(FirstChar+i), len(g), height)
		}
		f.glyphs[i] = append([]byte(nil), g...)
	}
	return f, nil
}

// Height returns the glyph row height in pixels.
func (f *Font) Height() float64 { return f.height }

// Index maps a byte to its table slot, falling back to 0 outside [32, 127).
func Index(b byte) int {
	if b < FirstChar || b >= FirstChar+GlyphCount {
		return 0
	}
	return int(b - FirstChar)
}

// Glyph returns the alpha samples used for b. Callers must not modify them.
func (f *Font) Glyph(b byte) []byte { return f.glyphs[Index(b)] }

// GlyphAt returns the glyph in table slot i, or the fallback glyph when i is
// out of range.
func (f *Font) GlyphAt(i int) []byte {
	if i < 0 || i >= GlyphCount {
		i = 0
	}
	return f.glyphs[i]
}

// Advance returns the horizontal space b occupies, in pixels.
func (f *Font) Advance(b byte) float64 {
	return float64(len(f.Glyph(b))) / f.height
}
