// fontgen 将 TrueType/OpenType 字体或内置字体烘焙为 JSON 字体表，
// 供任务描述中的 `font X { src: "x.json" }` 使用。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/bitpress/fonts"
)

func main() {
	ttf := flag.String("ttf", "", "TTF/OTF 字体路径")
	builtin := flag.String("builtin", "", "内置字体名称，例如 goregular24")
	size := flag.Float64("size", fonts.DefaultSize, "像素大小（仅 -ttf）")
	output := flag.String("o", "", "字体表输出路径，为空时写到标准输出")
	dump := flag.Bool("dump", false, "以字符画预览 -sample 文本，不输出字体表")
	sample := flag.String("sample", "Hello World", "预览文本")
	list := flag.Bool("list", false, "列出内置字体")
	flag.Parse()

	if *list {
		for _, name := range fonts.Names() {
			fmt.Println(name)
		}
		return
	}

	f, err := load(*ttf, *builtin, *size)
	if err != nil {
		log.Fatalf("加载字体失败: %v", err)
	}

	if *dump {
		fmt.Print(preview(f, *sample))
		return
	}

	if err := write(f, *output); err != nil {
		log.Fatalf("输出字体表失败: %v", err)
	}
	if *output != "" {
		fmt.Printf("已生成字体表：%s（高 %g 像素）\n", *output, f.Height())
	}
}

func load(ttf, builtin string, size float64) (*fonts.Font, error) {
	switch {
	case ttf != "" && builtin != "":
		return nil, fmt.Errorf("-ttf 与 -builtin 只能指定一个")
	case ttf != "":
		data, err := os.ReadFile(ttf)
		if err != nil {
			return nil, err
		}
		return fonts.FromTrueType(data, size)
	case builtin != "":
		if !fonts.Has(builtin) {
			return nil, fmt.Errorf("未知的内置字体 %s，可用：%s", builtin, strings.Join(fonts.Names(), ", "))
		}
		return fonts.Lookup(builtin)
	default:
		return nil, fmt.Errorf("需要 -ttf 或 -builtin")
	}
}

func write(f *fonts.Font, output string) error {
	var w io.Writer = os.Stdout
	if output != "" {
		if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
			return err
		}
		file, err := os.Create(output)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}
	return fonts.Encode(w, f)
}

var shades = []byte(" .:-=+*#%@")

// preview 按字形排列 text，alpha 映射为字符明暗。
func preview(f *fonts.Font, text string) string {
	height := int(f.Height())
	var b strings.Builder
	for row := 0; row < height; row++ {
		for i := 0; i < len(text); i++ {
			glyph := f.Glyph(text[i])
			width := int(f.Advance(text[i]))
			for col := 0; col < width; col++ {
				idx := row*width + col
				if idx >= len(glyph) {
					b.WriteByte(' ')
					continue
				}
				b.WriteByte(shades[int(glyph[idx])*(len(shades)-1)/255])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
