package layout

// 该文件定义 DSL 构建结果与资源描述，供栅格化、编码与调试 JSON 共用。

import "github.com/ByLCY/bitpress/fonts"

// PageEach 作为 TextBlock.Page 时表示逐页输出全部分页。
const PageEach = -1

// Result 保存构建后的文本块与资源信息。
type Result struct {
	Blocks    []TextBlock  `json:"blocks"`
	Resources ResourceSet  `json:"resources"`
	Meta      DocumentMeta `json:"meta"`
}

// ResourceSet 记录解析出的字体与颜色定义。
type ResourceSet struct {
	Fonts  map[string]FontResource `json:"fonts"`
	Colors map[string]uint32       `json:"colors"`
}

// FontResource 描述字体资源，src 可以是 builtin:* 名称、字体表 JSON 或 TTF/OTF 路径。
type FontResource struct {
	Name string  `json:"name"`
	Src  string  `json:"src"`
	Size float64 `json:"size,omitempty"` // 仅对 TTF/OTF 生效（像素）
}

// TextBlock 是一次完整的渲染任务：内容、参数、字体以及换行结果。
type TextBlock struct {
	Font    string      `json:"font"`
	Content string      `json:"content"`
	Page    int         `json:"page"` // 0 为全部行一张图，n 为第 n 页，PageEach 为逐页
	DPI     float64     `json:"dpi"`
	Options Options     `json:"options"`
	Split   Split       `json:"split"`
	Pages   int         `json:"pages"`
	Face    *fonts.Font `json:"-"`
}

// PageNumbers 返回需要渲染的页码；0 表示不分页。
func (b TextBlock) PageNumbers() []int {
	switch {
	case b.Page > 0:
		return []int{b.Page}
	case b.Page == PageEach && b.Options.Lines > 0:
		out := make([]int, b.Pages)
		for i := range out {
			out[i] = i + 1
		}
		return out
	default:
		return []int{0}
	}
}

// DocumentMeta 保存输出文件的元信息（PDF 使用）。
type DocumentMeta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords"`
}
