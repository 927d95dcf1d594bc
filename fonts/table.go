package fonts

import (
	"encoding/json"
	"fmt"
	"io"
)

// tableFile is the on-disk form of a glyph table. encoding/json writes the
// glyph byte slices as base64 strings.
type tableFile struct {
	Height float64  `json:"height"`
	Glyphs [][]byte `json:"glyphs"`
}

// Decode reads a JSON glyph table and validates it.
func Decode(r io.Reader) (*Font, error) {
	var tf tableFile
	if err := json.NewDecoder(r).Decode(&tf); err != nil {
		return nil, fmt.Errorf("读取字体表失败: %w", err)
	}
	return New(tf.Height, tf.Glyphs)
}

// Encode writes f as a JSON glyph table readable by Decode.
func Encode(w io.Writer, f *Font) error {
	tf := tableFile{
		Height: f.height,
		Glyphs: make([][]byte, GlyphCount),
	}
	for i := range f.glyphs {
		tf.Glyphs[i] = f.glyphs[i]
	}
	if err := json.NewEncoder(w).Encode(tf); err != nil {
		return fmt.Errorf("写入字体表失败: %w", err)
	}
	return nil
}
