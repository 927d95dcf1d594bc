package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// Buffer 是按行存储的像素网格，原点在左上角。Buffer 实现 image.Image，
// 可以直接交给 PNG/PDF 等编码器。
type Buffer struct {
	width, height int
	pix           []Pixel
}

// NewBuffer 创建 width x height 的画布，负数尺寸按 0 处理。
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	return &Buffer{width: width, height: height, pix: make([]Pixel, width*height)}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// PixelAt 返回 (x, y) 处的像素，越界时返回零值。
func (b *Buffer) PixelAt(x, y int) Pixel {
	if !b.in(x, y) {
		return Pixel{}
	}
	return b.pix[y*b.width+x]
}

// SetPixel 写入 (x, y)，越界写入被忽略。
func (b *Buffer) SetPixel(x, y int, p Pixel) {
	if b.in(x, y) {
		b.pix[y*b.width+x] = p
	}
}

// Row 返回第 y 行的像素切片（与缓冲区共享存储）。
func (b *Buffer) Row(y int) []Pixel {
	if y < 0 || y >= b.height {
		return nil
	}
	return b.pix[y*b.width : (y+1)*b.width]
}

// Fill 将所有像素设为 p。
func (b *Buffer) Fill(p Pixel) {
	for i := range b.pix {
		b.pix[i] = p
	}
}

func (b *Buffer) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.width, b.height) }

// At implements image.Image.
func (b *Buffer) At(x, y int) color.Color { return b.PixelAt(x, y).Color() }

// RGBA 复制为 *image.RGBA。
func (b *Buffer) RGBA() *image.RGBA {
	dst := image.NewRGBA(b.Bounds())
	draw.Draw(dst, dst.Bounds(), b, image.Point{}, draw.Src)
	return dst
}
