package layout

import (
	"strings"

	"github.com/ByLCY/bitpress/fonts"
)

// Split 是一次换行的结果：按顺序排列的行及其中最大的测量宽度（像素）。
type Split struct {
	Lines []string `json:"lines"`
	Width float64  `json:"width"`
}

// Measure 返回 text 在 font 下的像素宽度；每个字节按其字形宽度累加，
// 表外字节使用回退字形。
func Measure(text string, font *fonts.Font) float64 {
	width := 0.0
	for i := 0; i < len(text); i++ {
		width += font.Advance(text[i])
	}
	return width
}

// Sanitize 只保留 0x7F 以下的字节，去掉非 ASCII 内容。
func Sanitize(text string) string {
	var builder strings.Builder
	builder.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] < 0x7F {
			builder.WriteByte(text[i])
		}
	}
	return builder.String()
}

// Wrap 使用贪心算法将 text 拆成不超过 maxWidth 的行。
//
// 整段文本已经放得下时原样返回一行（保留其中的换行符）。否则先把 "\n"
// 改写为 "\n "，按单个空格切词并丢弃空词，再逐词累加：累加后的宽度超过
// maxWidth，或上一个词带有换行符时断行，断点处的词留给下一行重新测量。
// 单词不会被拆开，过宽的词独占一行；以过宽的词开头时第一行为空行。
func Wrap(text string, maxWidth float64, font *fonts.Font) Split {
	width := Measure(text, font)
	if width <= maxWidth {
		return Split{Lines: []string{text}, Width: width}
	}

	text = strings.ReplaceAll(text, "\n", "\n ")
	var tokens []string
	for _, token := range strings.Split(text, " ") {
		if token != "" {
			tokens = append(tokens, token)
		}
	}

	var lines []string
	base := 0
	maxLen, prevLen, curLen := 0.0, 0.0, 0.0
	for i := range tokens {
		prevLen = curLen
		curLen = Measure(strings.Join(tokens[base:i+1], " "), font)
		newline := i >= 1 && strings.Contains(tokens[i-1], "\n")
		// 首个词本身过宽时在 i == 0 断行，输出一个空行。
		if curLen > maxWidth || newline {
			lines = append(lines, strings.ReplaceAll(strings.Join(tokens[base:i], " "), "\n", ""))
			if prevLen > maxLen {
				maxLen = prevLen
			}
			base = i
		}
	}

	last := strings.Join(tokens[base:], " ")
	lines = append(lines, last)
	if lastLen := Measure(last, font); lastLen > maxLen {
		maxLen = lastLen
	}
	return Split{Lines: lines, Width: maxLen}
}
