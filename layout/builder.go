package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ByLCY/bitpress/binding"
	"github.com/ByLCY/bitpress/dsl"
	"github.com/ByLCY/bitpress/fonts"
)

// Build 根据 DSL AST 生成文本块：解析资源与元信息，按 page 段落的参数
// 插值、清洗并换行每个 text 语句。
func Build(doc *dsl.Document, data any, opts BuildOptions) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("文档为空")
	}
	if opts.Fonts == nil {
		return nil, fmt.Errorf("layout: 缺少字体解析器 FontResolver")
	}
	if opts.Defaults == (Options{}) {
		opts.Defaults = DefaultOptions()
	}

	res, err := collectResources(doc)
	if err != nil {
		return nil, err
	}
	meta := collectMeta(doc)

	b := &blockBuilder{
		res:   res,
		data:  data,
		opts:  opts,
		cache: map[string]*fonts.Font{},
	}
	pages := doc.Pages()
	if len(pages) == 0 {
		return nil, fmt.Errorf("文档中缺少 page 段落")
	}
	for _, section := range pages {
		if err := b.page(section); err != nil {
			return nil, err
		}
	}
	if len(b.blocks) == 0 {
		return nil, fmt.Errorf("文档中没有可渲染的 text 语句")
	}

	return &Result{
		Blocks:    b.blocks,
		Resources: res,
		Meta:      meta,
	}, nil
}

// Compose 对已经插值的文本做清洗与换行，生成单个文本块。
func Compose(content, fontName string, face *fonts.Font, page int, dpi float64, opts Options) TextBlock {
	content = Sanitize(content)
	split := Wrap(content, opts.Width-2*opts.Padding.Horizontal, face)
	return TextBlock{
		Font:    fontName,
		Content: content,
		Page:    page,
		DPI:     dpi,
		Options: opts,
		Split:   split,
		Pages:   PageCount(len(split.Lines), opts.Lines),
		Face:    face,
	}
}

type blockBuilder struct {
	res    ResourceSet
	data   any
	opts   BuildOptions
	cache  map[string]*fonts.Font
	blocks []TextBlock
}

func (b *blockBuilder) page(section *dsl.PageSection) error {
	if section.Block == nil {
		return fmt.Errorf("page 段落缺少内容")
	}
	dpi := b.opts.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	params, err := parseParams(section.Params)
	if err != nil {
		return fmt.Errorf("page 参数: %w", err)
	}
	dpi, err = pickDPI(params, dpi)
	if err != nil {
		return fmt.Errorf("page 参数: %w", err)
	}
	base := b.opts.Defaults
	if err := applyParams(&base, params, dpi, b.res); err != nil {
		return fmt.Errorf("page 参数: %w", err)
	}

	for _, stmt := range section.Block.Statements {
		if stmt.Command == nil {
			continue
		}
		cmd := stmt.Command
		switch cmd.Name {
		case "text":
			if err := b.text(cmd, base, dpi); err != nil {
				return fmt.Errorf("第 %d 行 text 语句: %w", cmd.Pos.Line, err)
			}
		default:
			return fmt.Errorf("第 %d 行：不支持的语句 %s", cmd.Pos.Line, cmd.Name)
		}
	}
	return nil
}

func (b *blockBuilder) text(cmd *dsl.Command, base Options, dpi float64) error {
	if cmd.Block == nil {
		return fmt.Errorf("缺少文本块")
	}
	content := cmd.Block.Texts()
	if content == "" {
		return fmt.Errorf("缺少文本内容")
	}

	args := cmd.Args
	fontName := ""
	if len(args) > 0 && args[0].Type == "Ident" && !isOptionKey(args[0].Value) {
		fontName = args[0].Value
		args = args[1:]
	}
	params, err := parseParams(args)
	if err != nil {
		return err
	}

	page := 0
	rest := params[:0:0]
	for _, p := range params {
		if p.key != "page" {
			rest = append(rest, p)
			continue
		}
		page, err = parsePage(p.values[0])
		if err != nil {
			return err
		}
	}
	opts := base
	if err := applyParams(&opts, rest, dpi, b.res); err != nil {
		return err
	}

	face, name, err := b.font(fontName)
	if err != nil {
		return err
	}
	content = binding.Interpolate(content, b.data)
	b.blocks = append(b.blocks, Compose(content, name, face, page, dpi, opts))
	return nil
}

// font 按资源名解析字体；未声明的名称直接交给解析器（内置字体名）。
func (b *blockBuilder) font(name string) (*fonts.Font, string, error) {
	if name == "" {
		if _, ok := b.res.Fonts["Body"]; ok {
			name = "Body"
		}
	}
	src, size := name, 0.0
	if fr, ok := b.res.Fonts[name]; ok {
		src, size = fr.Src, fr.Size
	}
	key := src + "@" + strconv.FormatFloat(size, 'f', -1, 64)
	if f, ok := b.cache[key]; ok {
		return f, name, nil
	}
	f, err := b.opts.Fonts.Resolve(src, size)
	if err != nil {
		return nil, "", fmt.Errorf("字体 %s: %w", name, err)
	}
	b.cache[key] = f
	return f, name, nil
}

type param struct {
	key    string
	values []string
}

var optionKeys = map[string]bool{
	"width": true, "padding": true, "padding-x": true, "padding-y": true,
	"lines": true, "constant-width": true, "dpi": true, "color": true,
	"background": true, "page": true,
}

func isOptionKey(key string) bool {
	return optionKeys[strings.ToLower(key)]
}

// parseParams 把 `key value` 形式的参数序列拆成键值对；padding 可以带一个
// 或两个数值（水平、垂直）。
func parseParams(args []*dsl.Lexeme) ([]param, error) {
	var out []param
	for i := 0; i < len(args); {
		key := strings.ToLower(args[i].Value)
		if !optionKeys[key] {
			return nil, fmt.Errorf("未知参数 %s", args[i].Value)
		}
		if i+1 >= len(args) {
			return nil, fmt.Errorf("参数 %s 缺少取值", key)
		}
		p := param{key: key, values: []string{args[i+1].Value}}
		i += 2
		if key == "padding" && i < len(args) && args[i].IsNumber() {
			p.values = append(p.values, args[i].Value)
			i++
		}
		out = append(out, p)
	}
	return out, nil
}

func pickDPI(params []param, dpi float64) (float64, error) {
	for _, p := range params {
		if p.key != "dpi" {
			continue
		}
		v, err := strconv.ParseFloat(p.values[0], 64)
		if err != nil || v <= 0 {
			return 0, fmt.Errorf("dpi %q 无效", p.values[0])
		}
		dpi = v
	}
	return dpi, nil
}

func applyParams(opts *Options, params []param, dpi float64, res ResourceSet) error {
	for _, p := range params {
		val := p.values[0]
		switch p.key {
		case "dpi":
		case "width":
			px, err := lengthPixels(val, dpi)
			if err != nil {
				return err
			}
			opts.Width = px
		case "padding":
			h, err := lengthPixels(val, dpi)
			if err != nil {
				return err
			}
			v := h
			if len(p.values) > 1 {
				if v, err = lengthPixels(p.values[1], dpi); err != nil {
					return err
				}
			}
			opts.Padding = Padding{Horizontal: h, Vertical: v}
		case "padding-x":
			px, err := lengthPixels(val, dpi)
			if err != nil {
				return err
			}
			opts.Padding.Horizontal = px
		case "padding-y":
			px, err := lengthPixels(val, dpi)
			if err != nil {
				return err
			}
			opts.Padding.Vertical = px
		case "lines":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return fmt.Errorf("lines %q 无效", val)
			}
			opts.Lines = n
		case "constant-width":
			v, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("constant-width %q 无效", val)
			}
			opts.ConstantWidth = v
		case "color":
			c, err := resolveColor(val, res)
			if err != nil {
				return err
			}
			opts.TextColor = c
		case "background":
			c, err := resolveColor(val, res)
			if err != nil {
				return err
			}
			opts.BackgroundColor = c
		default:
			return fmt.Errorf("参数 %s 不能用于此处", p.key)
		}
	}
	return nil
}

func lengthPixels(value string, dpi float64) (float64, error) {
	l, err := ParseLength(value)
	if err != nil {
		return 0, err
	}
	return l.Pixels(dpi), nil
}

// parsePage 解析 page 取值：页码、all（不分页）或 each（逐页）。
func parsePage(value string) (int, error) {
	switch strings.ToLower(value) {
	case "all":
		return 0, nil
	case "each":
		return PageEach, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("page %q 无效", value)
	}
	return n, nil
}

func collectResources(doc *dsl.Document) (ResourceSet, error) {
	res := ResourceSet{
		Fonts:  map[string]FontResource{},
		Colors: map[string]uint32{},
	}

	for _, section := range doc.Sections {
		if section.Resources == nil || section.Resources.Block == nil {
			continue
		}
		for _, stmt := range section.Resources.Block.Statements {
			if stmt.Command == nil {
				continue
			}
			switch stmt.Command.Name {
			case "font":
				font, err := parseFontResource(stmt.Command)
				if err != nil {
					return res, err
				}
				if font.Name != "" {
					res.Fonts[font.Name] = font
				}
			case "color":
				name, value := parseColorResource(stmt.Command)
				if name == "" || value == "" {
					continue
				}
				c, err := ParseColor(value)
				if err != nil {
					return res, fmt.Errorf("color %s: %w", name, err)
				}
				res.Colors[name] = c
			default:
				return res, fmt.Errorf("第 %d 行：resources 中不支持 %s", stmt.Command.Pos.Line, stmt.Command.Name)
			}
		}
	}
	return res, nil
}

func collectMeta(doc *dsl.Document) DocumentMeta {
	meta := DocumentMeta{
		Creator: "Bitpress",
	}
	for _, section := range doc.Sections {
		if section.Meta == nil || section.Meta.Block == nil {
			continue
		}
		for _, stmt := range section.Meta.Block.Statements {
			if stmt.Assignment == nil {
				continue
			}
			key := strings.ToLower(stmt.Assignment.Key)
			switch key {
			case "title":
				meta.Title = stmt.Assignment.Value.Text()
			case "author":
				meta.Author = stmt.Assignment.Value.Text()
			case "subject":
				meta.Subject = stmt.Assignment.Value.Text()
			case "creator":
				meta.Creator = stmt.Assignment.Value.Text()
			case "keywords":
				meta.Keywords = stmt.Assignment.Value.Strings()
			}
		}
	}
	return meta
}

func parseFontResource(cmd *dsl.Command) (FontResource, error) {
	if len(cmd.Args) == 0 {
		return FontResource{}, nil
	}
	font := FontResource{
		Name: cmd.Args[0].Value,
		Src:  "builtin:" + cmd.Args[0].Value,
	}

	if cmd.Block == nil {
		return font, nil
	}
	for _, stmt := range cmd.Block.Statements {
		if stmt.Assignment == nil {
			continue
		}
		switch stmt.Assignment.Key {
		case "src":
			if s := stmt.Assignment.Value.Text(); s != "" {
				font.Src = s
			}
		case "size":
			s := stmt.Assignment.Value.Text()
			px, err := lengthPixels(s, DefaultDPI)
			if err != nil {
				return font, fmt.Errorf("font %s size: %w", font.Name, err)
			}
			font.Size = px
		}
	}
	return font, nil
}

func parseColorResource(cmd *dsl.Command) (string, string) {
	if len(cmd.Args) == 0 {
		return "", ""
	}
	name := cmd.Args[0].Value
	value := ""
	if len(cmd.Args) > 1 {
		value = cmd.Args[len(cmd.Args)-1].Value
	}
	return name, value
}

func resolveColor(value string, res ResourceSet) (uint32, error) {
	if c, ok := res.Colors[value]; ok {
		return c, nil
	}
	return ParseColor(value)
}

// ParseColor 解析 #RGB、#RRGGBB 或 #RRGGBBAA（忽略透明度），返回 0xRRGGBB。
func ParseColor(value string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	case 8:
		hex = hex[:6]
	default:
		return 0, fmt.Errorf("颜色值 %s 无法解析", value)
	}
	c, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("颜色值 %s 无法解析", value)
	}
	return uint32(c), nil
}

