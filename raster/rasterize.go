// Package raster 将换行后的文本绘制到像素画布上。
package raster

import (
	"github.com/ByLCY/bitpress/fonts"
	"github.com/ByLCY/bitpress/layout"
)

// Rasterize 清洗 text、按 opts.Width 减去两侧留白换行，再绘制第 page 页
// （从 1 开始，0 表示全部行）。越界的页得到只有留白的画布。
func Rasterize(text string, page int, f *fonts.Font, opts layout.Options) *Buffer {
	text = layout.Sanitize(text)
	split := layout.Wrap(text, opts.Width-2*opts.Padding.Horizontal, f)
	return RasterizeLines(split, page, f, opts)
}

// RasterizeLines 使用已有的换行结果绘制第 page 页。
//
// 画布宽度为 opts.Width（ConstantWidth）或 split.Width 加两侧留白，高度为
// 行数乘字高加上下留白，两者都按 ceil 取整。每一行像素按
// (y-上留白)/字高 映射到文本行；列方向跟踪当前字形的起始列，列越过
// 起始列加字形宽度后切换到下一个字节，字节用完后其余列保持背景色。
func RasterizeLines(split layout.Split, page int, f *fonts.Font, opts layout.Options) *Buffer {
	lines := split.Lines
	if page >= 1 {
		lines = layout.Paginate(lines, page, opts.Lines)
	}

	padX, padY := opts.Padding.Horizontal, opts.Padding.Vertical
	width := opts.Width
	if !opts.ConstantWidth {
		width = split.Width + 2*padX
	}
	fontHeight := f.Height()
	height := float64(len(lines))*fontHeight + 2*padY

	buf := NewBuffer(ceil(width), ceil(height))
	buf.Fill(SplitColor(opts.BackgroundColor))
	ink := SplitColor(opts.TextColor)

	for y := int(padY); y < int(height-padY); y++ {
		offset := float64(y) - padY
		if offset < 0 {
			continue
		}
		lineIdx := int(offset / fontHeight)
		if lineIdx >= len(lines) {
			break
		}
		line := lines[lineIdx]
		rowInLine := offset - float64(lineIdx)*fontHeight
		row := buf.Row(y)

		var glyph []byte
		glyphWidth := 0.0
		glyphBase := padX
		next := 0
		for x := ceil(padX); x < int(width-padX); x++ {
			if float64(x) >= glyphBase+glyphWidth {
				next++
				if next > len(line) {
					break
				}
				glyphBase = float64(x)
				glyph = f.Glyph(line[next-1])
				glyphWidth = float64(len(glyph)) / fontHeight
			}

			idx := int(rowInLine*glyphWidth + (float64(x) - glyphBase))
			if idx < 0 || idx >= len(glyph) {
				continue
			}
			if alpha := glyph[idx]; alpha != 0 && x < len(row) {
				row[x] = blend(ink, alpha)
			}
		}
	}
	return buf
}

// ceil 截断后加一：整数也会多出一个像素。
func ceil(v float64) int {
	return int(v) + 1
}
