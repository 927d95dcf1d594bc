// Package pngrenderer 将页面编码为 PNG，每页一个文件。
package pngrenderer

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/ByLCY/bitpress/layout"
	"github.com/ByLCY/bitpress/raster"
	"github.com/ByLCY/bitpress/renderer"
)

// Renderer encodes each page with image/png.
type Renderer struct {
	Compression png.CompressionLevel
}

var _ renderer.Renderer = Renderer{}

func (Renderer) Extension() string { return ".png" }

func (r Renderer) Render(pages []*raster.Buffer, _ layout.DocumentMeta) ([][]byte, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}
	enc := png.Encoder{CompressionLevel: r.Compression}
	out := make([][]byte, len(pages))
	for i, page := range pages {
		if page == nil {
			return nil, fmt.Errorf("第 %d 页为空", i+1)
		}
		var buf bytes.Buffer
		if err := enc.Encode(&buf, page.RGBA()); err != nil {
			return nil, fmt.Errorf("编码第 %d 页 PNG 失败: %w", i+1, err)
		}
		out[i] = buf.Bytes()
	}
	return out, nil
}
