package fonts

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultSize is the pixel size used when a TrueType source gives none.
const DefaultSize = 24

// FromFace bakes the printable ASCII range of face into a glyph table. Each
// glyph cell is ascent+descent rows tall and as wide as the rounded-up
// advance of its character, with the baseline at the ascent.
func FromFace(face font.Face) (*Font, error) {
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()
	if height <= 0 {
		return nil, fmt.Errorf("%w: face height %d", ErrInvalidFontData, height)
	}

	glyphs := make([][]byte, GlyphCount)
	for i := range glyphs {
		ch := rune(FirstChar + i)
		advance, ok := face.GlyphAdvance(ch)
		if !ok {
			// missing glyphs keep the width of the fallback slot
			advance, _ = face.GlyphAdvance(' ')
		}
		width := advance.Ceil()
		if width <= 0 {
			glyphs[i] = []byte{}
			continue
		}
		dst := image.NewAlpha(image.Rect(0, 0, width, height))
		d := font.Drawer{
			Dst:  dst,
			Src:  image.Opaque,
			Face: face,
			Dot:  fixed.P(0, ascent),
		}
		d.DrawString(string(ch))
		glyphs[i] = dst.Pix
	}
	return New(float64(height), glyphs)
}

// FromTrueType parses TTF/OTF data and bakes it at size pixels (72 DPI, so
// one point is one pixel).
func FromTrueType(data []byte, size float64) (*Font, error) {
	if size <= 0 {
		size = DefaultSize
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("解析 TrueType 字体失败: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 %gpx 字体面失败: %w", size, err)
	}
	defer face.Close()
	return FromFace(face)
}
