package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/bitpress/dsl"
	"github.com/ByLCY/bitpress/fonts"
	"github.com/ByLCY/bitpress/layout"
	"github.com/ByLCY/bitpress/raster"
	"github.com/ByLCY/bitpress/renderer"
	"github.com/ByLCY/bitpress/renderer/bitmap"
	canvasrenderer "github.com/ByLCY/bitpress/renderer/canvas"
	pngrenderer "github.com/ByLCY/bitpress/renderer/png"
)

// config 汇总命令行参数。
type config struct {
	input    string
	output   string
	format   string
	debug    string
	data     any
	text     string
	textFile string
	font     string
	size     float64
	page     int
	dpi      float64
	color    string
	bg       string
	opts     layout.Options
}

func main() {
	defaults := layout.DefaultOptions()
	cfg := config{}
	var dataJSON string
	flag.StringVar(&cfg.input, "in", "", "任务描述 DSL 文件路径")
	flag.StringVar(&cfg.output, "out", "output/page.bmp", "输出路径，多页时自动编号")
	flag.StringVar(&cfg.format, "format", "", "输出格式 bmp/png/pdf，默认按 -out 扩展名")
	flag.StringVar(&cfg.debug, "debug", "", "布局调试 JSON 输出路径")
	flag.StringVar(&dataJSON, "data", "", "绑定到 DSL 的 JSON 数据")
	flag.StringVar(&cfg.text, "text", "", "直接渲染的文本（不使用 DSL）")
	flag.StringVar(&cfg.textFile, "text-file", "", "从文件读取要渲染的文本（不使用 DSL）")
	flag.StringVar(&cfg.font, "font", fonts.DefaultName, "字体：内置名称、字体表 JSON 或 TTF/OTF 路径")
	flag.Float64Var(&cfg.size, "size", fonts.DefaultSize, "TTF/OTF 字体的像素大小")
	flag.IntVar(&cfg.page, "page", 0, "页码，0 为全部行一张图，-1 为逐页输出")
	flag.Float64Var(&cfg.dpi, "dpi", layout.DefaultDPI, "PDF 页面尺寸换算使用的 DPI")
	flag.StringVar(&cfg.color, "color", "#000000", "文字颜色")
	flag.StringVar(&cfg.bg, "background", "#FFFFFF", "背景颜色")
	flag.Float64Var(&cfg.opts.Width, "width", defaults.Width, "画布宽度（像素）")
	flag.IntVar(&cfg.opts.Lines, "lines", defaults.Lines, "每页行数")
	flag.Float64Var(&cfg.opts.Padding.Horizontal, "padding-x", defaults.Padding.Horizontal, "水平留白（像素）")
	flag.Float64Var(&cfg.opts.Padding.Vertical, "padding-y", defaults.Padding.Vertical, "垂直留白（像素）")
	flag.BoolVar(&cfg.opts.ConstantWidth, "constant-width", defaults.ConstantWidth, "固定画布宽度，false 时收缩到最长行")
	flag.Parse()

	if dataJSON != "" {
		if err := json.Unmarshal([]byte(dataJSON), &cfg.data); err != nil {
			log.Fatalf("解析 data JSON 失败: %v", err)
		}
	}

	written, err := run(context.Background(), cfg)
	if err != nil {
		log.Fatalf("生成失败: %v", err)
	}
	for _, path := range written {
		fmt.Printf("已生成：%s\n", path)
	}
}

// run 串联解析、布局、栅格化与编码，返回写出的文件路径。
func run(ctx context.Context, cfg config) ([]string, error) {
	var (
		result *layout.Result
		err    error
	)
	if cfg.text != "" || cfg.textFile != "" {
		result, err = composeText(cfg)
	} else {
		result, err = buildDocument(cfg)
	}
	if err != nil {
		return nil, err
	}

	// PDF 页面尺寸按第一个文本块的 DPI 换算。
	r, err := pickRenderer(cfg.format, cfg.output, result.Blocks[0].DPI)
	if err != nil {
		return nil, err
	}

	if cfg.debug != "" {
		if err := writeDebug(result, cfg.debug); err != nil {
			return nil, err
		}
	}

	var pages []*raster.Buffer
	for _, block := range result.Blocks {
		bufs, err := raster.RenderBlock(ctx, block)
		if err != nil {
			return nil, fmt.Errorf("栅格化失败: %w", err)
		}
		pages = append(pages, bufs...)
	}

	files, err := r.Render(pages, result.Meta)
	if err != nil {
		return nil, fmt.Errorf("编码失败: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.output), 0o755); err != nil {
		return nil, fmt.Errorf("创建输出目录失败: %w", err)
	}
	paths := outputPaths(cfg.output, r.Extension(), len(files))
	for i, data := range files {
		if err := os.WriteFile(paths[i], data, 0o644); err != nil {
			return nil, fmt.Errorf("写入文件 %s 失败: %w", paths[i], err)
		}
	}
	return paths, nil
}

func buildDocument(cfg config) (*layout.Result, error) {
	if cfg.input == "" {
		return nil, fmt.Errorf("需要 -in 指定 DSL 文件，或使用 -text/-text-file")
	}
	file, err := os.Open(cfg.input)
	if err != nil {
		return nil, fmt.Errorf("无法打开 DSL 文件 %s: %w", cfg.input, err)
	}
	defer file.Close()

	doc, err := dsl.ParseNamed(cfg.input, file)
	if err != nil {
		return nil, fmt.Errorf("解析 DSL 失败: %w", err)
	}

	result, err := layout.Build(doc, cfg.data, layout.BuildOptions{
		Fonts:    fonts.Resolver{BaseDir: filepath.Dir(cfg.input)},
		Defaults: layout.DefaultOptions(),
		DPI:      cfg.dpi,
	})
	if err != nil {
		return nil, fmt.Errorf("布局计算失败: %w", err)
	}
	return result, nil
}

// composeText 处理不使用 DSL 的单段文本。
func composeText(cfg config) (*layout.Result, error) {
	content := cfg.text
	if cfg.textFile != "" {
		raw, err := os.ReadFile(cfg.textFile)
		if err != nil {
			return nil, fmt.Errorf("读取文本文件失败: %w", err)
		}
		content = string(raw)
	}

	opts := cfg.opts
	var err error
	if opts.TextColor, err = layout.ParseColor(cfg.color); err != nil {
		return nil, err
	}
	if opts.BackgroundColor, err = layout.ParseColor(cfg.bg); err != nil {
		return nil, err
	}

	face, err := fonts.Resolver{BaseDir: "."}.Resolve(cfg.font, cfg.size)
	if err != nil {
		return nil, fmt.Errorf("加载字体失败: %w", err)
	}
	block := layout.Compose(content, cfg.font, face, cfg.page, cfg.dpi, opts)
	return &layout.Result{
		Blocks: []layout.TextBlock{block},
		Meta:   layout.DocumentMeta{Creator: "Bitpress"},
	}, nil
}

func pickRenderer(format, output string, dpi float64) (renderer.Renderer, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	}
	switch strings.ToLower(format) {
	case "bmp", "":
		return bitmap.Renderer{}, nil
	case "png":
		return pngrenderer.Renderer{}, nil
	case "pdf":
		return canvasrenderer.NewRenderer(dpi), nil
	default:
		return nil, fmt.Errorf("不支持的输出格式：%s", format)
	}
}

// outputPaths 为 n 个文件生成路径：单个文件沿用 output，多个时编号为
// name-001.ext。
func outputPaths(output, ext string, n int) []string {
	if filepath.Ext(output) == "" {
		output += ext
	}
	if n == 1 {
		return []string{output}
	}
	stem := strings.TrimSuffix(output, filepath.Ext(output))
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s-%03d%s", stem, i+1, ext)
	}
	return out
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
