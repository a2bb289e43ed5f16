//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of Orgmark.
//
// Orgmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package orgmark

import (
	"fmt"

	"t73f.de/r/org/ast"
	"t73f.de/r/org/input"
)

var mapRuneFormat = map[rune]ast.FormatKind{
	'*': ast.FormatBold,
	'/': ast.FormatItalic,
	'_': ast.FormatUnder,
	'+': ast.FormatStrike,
}

func (cp *omkP) parseEmphasis() (ast.InlineNode, bool) {
	kind, ok := mapRuneFormat[cp.inp.Ch]
	if !ok {
		return nil, false
	}
	span, ok := cp.scanSpan(cp.inp.Ch)
	if !ok {
		return nil, false
	}
	fn := &ast.FormatNode{Kind: kind, Inlines: cp.parseSubInlines(span, setEmphasis)}
	for _, in := range fn.Inlines {
		switch in.(type) {
		case *ast.TextNode, *ast.FormatNode:
		default:
			// The restricted grammar must not produce anything else.
			panic(fmt.Sprintf("emphasis resolver got a %T node", in))
		}
	}
	return fn, true
}

func (cp *omkP) parseCode() (ast.InlineNode, bool) {
	if cp.inp.Ch != '~' {
		return nil, false
	}
	span, ok := cp.scanSpan('~')
	if !ok {
		return nil, false
	}
	return &ast.LiteralNode{Kind: ast.LiteralCode, Content: append([]byte(nil), span...)}, true
}

func (cp *omkP) parseVerbatim() (ast.InlineNode, bool) {
	if cp.inp.Ch != '=' {
		return nil, false
	}
	span, ok := cp.scanSpan('=')
	if !ok {
		return nil, false
	}
	return &ast.LiteralNode{Kind: ast.LiteralVerbatim, Content: append([]byte(nil), span...)}, true
}

// scanSpan reads the text between two identical markup delimiters. The
// span must not start or end with a space, and the closing delimiter
// must be followed by end of input, a space, or closing punctuation.
// The previously seen character is threaded through the scan loop
// explicitly, never stored outside of it.
func (cp *omkP) scanSpan(delim rune) ([]byte, bool) {
	inp := cp.inp
	inp.Next()
	if input.IsEOLEOS(inp.Ch) || input.IsSpace(inp.Ch) || inp.Ch == delim {
		return nil, false
	}
	pos := inp.Pos
	prev := inp.Ch
	inp.Next()
	for {
		ch := inp.Ch
		if input.IsEOLEOS(ch) {
			return nil, false
		}
		if ch == delim {
			if input.IsSpace(prev) {
				return nil, false
			}
			span := inp.Src[pos:inp.Pos]
			inp.Next()
			if !isSpanEnd(inp.Ch) {
				return nil, false
			}
			return span, true
		}
		prev = ch
		inp.Next()
	}
}

func isSpanEnd(ch rune) bool {
	if input.IsEOLEOS(ch) || input.IsSpace(ch) {
		return true
	}
	switch ch {
	case '.', ',', '!', '?', '"', '\'', ')', '-', ':', ';', '[', '}':
		return true
	}
	return false
}

// parseSubSup parses "_{...}" and "^{...}" with a recursively parsed body.
func (cp *omkP) parseSubSup() (ast.InlineNode, bool) {
	inp := cp.inp
	var kind ast.FormatKind
	switch inp.Ch {
	case '_':
		kind = ast.FormatSub
	case '^':
		kind = ast.FormatSuper
	default:
		return nil, false
	}
	if inp.Peek() != '{' {
		return nil, false
	}
	inp.Next()
	inp.Next()
	pos := inp.Pos
	depth := 0
	for {
		switch inp.Ch {
		case input.EOS, '\n', '\r':
			return nil, false
		case '{':
			depth++
		case '}':
			if depth == 0 {
				span := inp.Src[pos:inp.Pos]
				if len(span) == 0 {
					return nil, false
				}
				inp.Next()
				return &ast.FormatNode{Kind: kind, Inlines: cp.parseSubInlines(span, setLabel)}, true
			}
			depth--
		}
		inp.Next()
	}
}
