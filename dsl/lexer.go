package dsl

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Colors must try the 8 and 6 digit forms first, the lexer takes the
// leftmost alternative that matches.
var dslLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Newline", Pattern: `\n+`},
	{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
	{Name: "LineComment", Pattern: `//[^\n]*`},
	{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})`},
	{Name: "Number", Pattern: `(?:\d+\.\d+|\d+)(?:px|pt|mm|in)?`},
	{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
	{Name: "RawString", Pattern: "`[^`]*`"},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
	{Name: "Symbol", Pattern: `[][(),.=:;]`},
	{Name: "LBrace", Pattern: `{`},
	{Name: "RBrace", Pattern: `}`},
})

// kinds maps lexer token types back to rule names.
var kinds = func() map[lexer.TokenType]string {
	out := map[lexer.TokenType]string{}
	for name, tt := range dslLexer.Symbols() {
		out[tt] = name
	}
	return out
}()

func kindOf(tok lexer.Token) string {
	if name, ok := kinds[tok.Type]; ok {
		return name
	}
	return fmt.Sprintf("#%d", tok.Type)
}

// Lexeme is one loose argument of a command or page header, eg. `width`,
// `800`, `#333` or `"x"`. Quoted strings are unquoted and reported as
// type "String".
type Lexeme struct {
	Type  string         `json:"type"`
	Value string         `json:"value"`
	Raw   string         `json:"raw"`
	Pos   lexer.Position `json:"-"`
}

// Parse implements participle.Parseable. Arguments end at a newline, a
// brace or ';'.
func (l *Lexeme) Parse(lex *lexer.PeekingLexer) error {
	tok := lex.Peek()
	if tok == nil || tok.EOF() || endsArgs(*tok) {
		return participle.NextMatch
	}
	tok = lex.Next()

	kind, value := kindOf(*tok), tok.Value
	if kind == "String" || kind == "RawString" {
		unquoted, err := strconv.Unquote(tok.Value)
		if err != nil {
			return participle.Errorf(tok.Pos, "字符串 %s 无法解析: %v", tok.Value, err)
		}
		kind, value = "String", unquoted
	}
	*l = Lexeme{Type: kind, Value: value, Raw: tok.Value, Pos: tok.Pos}
	return nil
}

// IsNumber reports whether the lexeme is a number, optionally with a unit.
func (l *Lexeme) IsNumber() bool { return l != nil && l.Type == "Number" }

func endsArgs(tok lexer.Token) bool {
	switch kindOf(tok) {
	case "Newline", "LBrace", "RBrace":
		return true
	case "Symbol":
		return tok.Value == ";"
	}
	return false
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}
