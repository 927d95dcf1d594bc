package layout

import "github.com/ByLCY/bitpress/fonts"

// Padding 为画布两侧对称的留白（像素）。
type Padding struct {
	Horizontal float64 `json:"horizontal"`
	Vertical   float64 `json:"vertical"`
}

// Options 是栅格化参数。颜色按低字节在前打包：字节 0 对应 BMP 的第一个
// 通道（蓝），字节 2 对应最后一个通道（红），因此 0xRRGGBB 在看图软件中
// 显示为预期颜色。
type Options struct {
	TextColor       uint32  `json:"textColor"`
	BackgroundColor uint32  `json:"backgroundColor"`
	Padding         Padding `json:"padding"`
	Width           float64 `json:"width"`         // 目标/最大画布宽度
	ConstantWidth   bool    `json:"constantWidth"` // false 时收缩到最长行加留白
	Lines           int     `json:"lines"`         // 每页最多行数，0 表示不分页
}

// DefaultOptions 返回黑字白底、20 像素留白、800 像素定宽、每页 60 行。
func DefaultOptions() Options {
	return Options{
		TextColor:       0x000000,
		BackgroundColor: 0xFFFFFF,
		Padding:         Padding{Horizontal: 20, Vertical: 20},
		Width:           800,
		ConstantWidth:   true,
		Lines:           60,
	}
}

// BuildOptions 配置布局阶段所需的依赖。
type BuildOptions struct {
	Fonts    FontResolver
	Defaults Options
	DPI      float64 // 长度单位换算使用的分辨率，0 表示 DefaultDPI
}

// FontResolver 负责按资源描述加载位图字体。
type FontResolver interface {
	Resolve(src string, size float64) (*fonts.Font, error)
}
