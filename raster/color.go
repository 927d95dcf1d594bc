package raster

import "image/color"

// Pixel 是按打包顺序排列的三个通道：字节 0 为颜色的最低字节（BMP 中的蓝），
// 字节 2 为最高字节（红）。
type Pixel [3]uint8

// SplitColor 将低字节在前的打包颜色拆成 Pixel。
func SplitColor(c uint32) Pixel {
	return Pixel{uint8(c & 0xFF), uint8((c >> 8) & 0xFF), uint8((c >> 16) & 0xFF)}
}

// Packed 是 SplitColor 的逆运算。
func (p Pixel) Packed() uint32 {
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16
}

// Color 按看图软件的解释返回颜色：通道 2 为红，通道 0 为蓝。
func (p Pixel) Color() color.RGBA {
	return color.RGBA{R: p[2], G: p[1], B: p[0], A: 0xFF}
}

// blend 按通道计算 min(255, c*a/255 + c*(1-a/255))。两项都使用文字颜色，
// 非零 alpha 等同于前景掩码。运算保持 float32 精度，显式转换防止融合乘加
// 改变舍入。
func blend(text Pixel, alpha uint8) Pixel {
	a := float32(alpha)
	var out Pixel
	for i, c := range text {
		cf := float32(c)
		v := float32(cf*a/255) + float32(cf*float32(1-a/255))
		if v >= 255 {
			out[i] = 255
			continue
		}
		out[i] = uint8(v)
	}
	return out
}
