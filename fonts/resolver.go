package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolver loads fonts named by job descriptions. A source is one of
//
//	builtin:goregular24   catalogue entry (also "built-in:")
//	goregular24           bare catalogue name, unknown names use DefaultName
//	tables/times36.json   glyph table written by Encode
//	fonts/serif.ttf       TrueType/OpenType file baked at the requested size
//
// Relative paths are resolved against BaseDir.
type Resolver struct {
	BaseDir string
}

// Resolve loads the font described by src. size only applies to TrueType
// sources.
func (r Resolver) Resolve(src string, size float64) (*Font, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return Lookup(DefaultName)
	}
	if strings.HasPrefix(src, "built-in:") || strings.HasPrefix(src, "builtin:") {
		return Lookup(strings.TrimPrefix(strings.TrimPrefix(src, "built-in:"), "builtin:"))
	}

	ext := strings.ToLower(filepath.Ext(src))
	if ext == "" {
		return Lookup(src)
	}

	path := src
	if !filepath.IsAbs(path) {
		if r.BaseDir == "" {
			return nil, fmt.Errorf("未指定资源目录时不允许直接使用字体路径：%s（请改用 builtin:）", src)
		}
		path = filepath.Join(r.BaseDir, path)
	}

	switch ext {
	case ".json":
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("打开字体表 %s 失败: %w", src, err)
		}
		defer file.Close()
		f, err := Decode(file)
		if err != nil {
			return nil, fmt.Errorf("字体表 %s: %w", src, err)
		}
		return f, nil
	case ".ttf", ".otf":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("读取字体 %s 失败: %w", src, err)
		}
		return FromTrueType(data, size)
	default:
		return nil, fmt.Errorf("不支持的字体格式：%s", src)
	}
}
