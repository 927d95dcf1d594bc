package renderer

import (
	"github.com/ByLCY/bitpress/layout"
	"github.com/ByLCY/bitpress/raster"
)

// Renderer 将栅格化后的页面编码为输出文件，例如 BMP、PNG 或 PDF。
// Render 返回每个输出文件的字节：逐页格式每页一个，PDF 等文档格式只有一个。
type Renderer interface {
	Extension() string
	Render(pages []*raster.Buffer, meta layout.DocumentMeta) ([][]byte, error)
}
