package bitmap

import (
	"fmt"

	"github.com/ByLCY/bitpress/layout"
	"github.com/ByLCY/bitpress/raster"
	"github.com/ByLCY/bitpress/renderer"
)

// Renderer 为每一页输出一个 BMP 文件。
type Renderer struct{}

var _ renderer.Renderer = Renderer{}

func (Renderer) Extension() string { return ".bmp" }

// Render 按页编码；BMP 没有元信息，meta 被忽略。
func (Renderer) Render(pages []*raster.Buffer, _ layout.DocumentMeta) ([][]byte, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}
	out := make([][]byte, len(pages))
	for i, page := range pages {
		if page == nil {
			return nil, fmt.Errorf("第 %d 页为空", i+1)
		}
		out[i] = Encode(page)
	}
	return out, nil
}
