// Package fonttest builds small synthetic fonts for tests.
package fonttest

import "github.com/ByLCY/bitpress/fonts"

// New returns a font of the given row height where every glyph is width
// columns wide unless widths overrides it. All samples are ink, except the
// space glyph which stays blank.
func New(height, width int, widths map[byte]int, ink byte) *fonts.Font {
	glyphs := make([][]byte, fonts.GlyphCount)
	for i := range glyphs {
		ch := byte(fonts.FirstChar + i)
		w := width
		if v, ok := widths[ch]; ok {
			w = v
		}
		g := make([]byte, w*height)
		if ch != ' ' {
			for j := range g {
				g[j] = ink
			}
		}
		glyphs[i] = g
	}
	f, err := fonts.New(float64(height), glyphs)
	if err != nil {
		panic(err)
	}
	return f
}

// Times36 has the advances of the 36px Times New Roman table for the
// characters of "Hello World", which measures 177 pixels.
func Times36() *fonts.Font {
	return New(36, 10, map[byte]int{
		'H': 26, 'e': 16, 'l': 10, 'o': 18, ' ': 9,
		'W': 30, 'r': 12, 'd': 18,
	}, 0xFF)
}
