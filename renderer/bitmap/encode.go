// Package bitmap 将像素画布编码为无压缩的 24 位 BMP 文件。
package bitmap

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ByLCY/bitpress/raster"
)

const (
	headerSize     = 54
	infoHeaderSize = 40
	// 0x0B13 像素每米，约 72 DPI。
	resolution = 0x0B13
)

// RowSize 返回宽度为 width 的一行像素数据占用的字节数（补齐到 4 的倍数）。
func RowSize(width int) int {
	return (width*3 + 3) / 4 * 4
}

// FileSize 返回 width x height 画布编码后的总字节数。
func FileSize(width, height int) int {
	return headerSize + RowSize(width)*height
}

// Encode 返回 buf 的 BMP 编码。
func Encode(buf *raster.Buffer) []byte {
	out := make([]byte, 0, FileSize(buf.Width(), buf.Height()))
	out = appendHeader(out, buf.Width(), buf.Height())
	pad := make([]byte, RowSize(buf.Width())-buf.Width()*3)
	for y := buf.Height() - 1; y >= 0; y-- {
		out = appendRow(out, buf.Row(y))
		out = append(out, pad...)
	}
	return out
}

// Write 将 buf 的 BMP 编码写入 w。
func Write(w io.Writer, buf *raster.Buffer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(appendHeader(make([]byte, 0, headerSize), buf.Width(), buf.Height())); err != nil {
		return fmt.Errorf("写入 BMP 头失败: %w", err)
	}
	pad := make([]byte, RowSize(buf.Width())-buf.Width()*3)
	row := make([]byte, 0, RowSize(buf.Width()))
	for y := buf.Height() - 1; y >= 0; y-- {
		row = append(appendRow(row[:0], buf.Row(y)), pad...)
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("写入 BMP 像素失败: %w", err)
		}
	}
	return bw.Flush()
}

// appendHeader 追加文件头与 BITMAPINFOHEADER：1 个平面、24 位、无压缩。
func appendHeader(out []byte, width, height int) []byte {
	size := RowSize(width) * height
	out = append(out, 'B', 'M')
	out = binary.LittleEndian.AppendUint32(out, uint32(headerSize+size))
	out = binary.LittleEndian.AppendUint32(out, 0)
	out = binary.LittleEndian.AppendUint32(out, headerSize)
	out = binary.LittleEndian.AppendUint32(out, infoHeaderSize)
	out = binary.LittleEndian.AppendUint32(out, uint32(int32(width)))
	out = binary.LittleEndian.AppendUint32(out, uint32(int32(height)))
	out = binary.LittleEndian.AppendUint16(out, 1)
	out = binary.LittleEndian.AppendUint16(out, 24)
	out = binary.LittleEndian.AppendUint32(out, 0)
	out = binary.LittleEndian.AppendUint32(out, uint32(size))
	out = binary.LittleEndian.AppendUint32(out, resolution)
	out = binary.LittleEndian.AppendUint32(out, resolution)
	out = binary.LittleEndian.AppendUint32(out, 0)
	out = binary.LittleEndian.AppendUint32(out, 0)
	return out
}

func appendRow(out []byte, row []raster.Pixel) []byte {
	for _, p := range row {
		out = append(out, p[0], p[1], p[2])
	}
	return out
}
