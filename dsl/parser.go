// Package dsl parses bitpress job descriptions.
package dsl

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
)

var documentParser = participle.MustBuild[Document](
	participle.Lexer(dslLexer),
	participle.Elide("Whitespace", "LineComment", "BlockComment"),
)

// Error is a syntax error with its source position.
type Error struct {
	Filename string
	Line     int
	Column   int
	Msg      string
}

func (e *Error) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("第 %d 行第 %d 列: %s", e.Line, e.Column, e.Msg)
}

// Parse parses a job description from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return ParseNamed("", r)
}

// ParseNamed parses r and reports errors against filename.
func ParseNamed(filename string, r io.Reader) (*Document, error) {
	doc, err := documentParser.Parse(filename, r)
	if err != nil {
		return nil, positioned(err)
	}
	return doc, nil
}

// ParseString parses a job description from a string.
func ParseString(input string) (*Document, error) {
	doc, err := documentParser.ParseString("", input)
	if err != nil {
		return nil, positioned(err)
	}
	return doc, nil
}

func positioned(err error) error {
	var perr participle.Error
	if !errors.As(err, &perr) {
		return err
	}
	pos := perr.Position()
	return &Error{Filename: pos.Filename, Line: pos.Line, Column: pos.Column, Msg: perr.Message()}
}
