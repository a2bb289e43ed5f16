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
	"strings"

	"t73f.de/r/org/ast"
	"t73f.de/r/org/entity"
	"t73f.de/r/org/input"
)

// parseLink parses "[[url]]" and "[[url][label]]".
func (cp *omkP) parseLink() (ast.InlineNode, bool) {
	inp := cp.inp
	if !inp.Accept("[[") {
		return nil, false
	}
	posU := inp.Pos
	for inp.Ch != ']' {
		if input.IsEOLEOS(inp.Ch) {
			return nil, false
		}
		inp.Next()
	}
	url := string(inp.Src[posU:inp.Pos])
	if url == "" {
		return nil, false
	}
	inp.Next()
	ref := ast.ParseReference(url)
	if inp.Ch == ']' {
		// No label: the url text doubles as the label.
		inp.Next()
		return &ast.LinkNode{
			Ref:     ref,
			Inlines: ast.InlineSlice{&ast.TextNode{Text: url}},
			OnlyRef: true,
		}, true
	}
	if inp.Ch != '[' {
		return nil, false
	}
	inp.Next()
	posL := inp.Pos
	for inp.Ch != ']' {
		if input.IsEOLEOS(inp.Ch) {
			return nil, false
		}
		inp.Next()
	}
	label := inp.Src[posL:inp.Pos]
	inp.Next()
	if inp.Ch != ']' || len(label) == 0 {
		return nil, false
	}
	inp.Next()
	return &ast.LinkNode{Ref: ref, Inlines: cp.parseSubInlines(label, setLabel)}, true
}

// parseBareLink parses an unbracketed "protocol://rest" link.
func (cp *omkP) parseBareLink() (ast.InlineNode, bool) {
	inp := cp.inp
	pos := inp.Pos
	if !input.IsLetter(inp.Ch) {
		return nil, false
	}
	for input.IsLetter(inp.Ch) {
		inp.Next()
	}
	protocol := string(inp.Src[pos:inp.Pos])
	if !inp.Accept("://") {
		return nil, false
	}
	posR := inp.Pos
	for !isBareLinkEnd(inp.Ch) {
		inp.Next()
	}
	if inp.Pos == posR {
		return nil, false
	}
	all := string(inp.Src[pos:inp.Pos])
	ref := &ast.Reference{
		Value:    all,
		Kind:     ast.RefComplex,
		Protocol: protocol,
		Link:     "//" + string(inp.Src[posR:inp.Pos]),
	}
	return &ast.LinkNode{
		Ref:     ref,
		Inlines: ast.InlineSlice{&ast.TextNode{Text: all}},
		OnlyRef: true,
	}, true
}

func isBareLinkEnd(ch rune) bool {
	if input.IsEOLEOS(ch) || input.IsSpace(ch) {
		return true
	}
	switch ch {
	case '[', ']', '<', '>', ',', ';', ')', '"', '\'':
		return true
	}
	return false
}

// parseFootnote parses "[fn:name]", "[fn:name:definition]" and the
// anonymous "[fn::definition]".
func (cp *omkP) parseFootnote() (ast.InlineNode, bool) {
	inp := cp.inp
	if !inp.Accept("[fn:") {
		return nil, false
	}
	if inp.Ch == ':' {
		inp.Next()
		def, ok := cp.scanFootnoteBody()
		if !ok {
			return nil, false
		}
		return &ast.FootnoteNode{
			Name:    cp.sess.NextFootnoteName(),
			Inlines: cp.parseSubInlines(def, setFootnote),
		}, true
	}
	pos := inp.Pos
	for isNameRune(inp.Ch) {
		inp.Next()
	}
	name := string(inp.Src[pos:inp.Pos])
	if name == "" {
		return nil, false
	}
	switch inp.Ch {
	case ']':
		inp.Next()
		return &ast.FootnoteNode{Name: name}, true
	case ':':
		inp.Next()
		def, ok := cp.scanFootnoteBody()
		if !ok {
			return nil, false
		}
		return &ast.FootnoteNode{Name: name, Inlines: cp.parseSubInlines(def, setFootnote)}, true
	}
	return nil, false
}

func (cp *omkP) scanFootnoteBody() ([]byte, bool) {
	inp := cp.inp
	pos := inp.Pos
	depth := 0
	for {
		switch inp.Ch {
		case input.EOS, '\n', '\r':
			return nil, false
		case '[':
			depth++
		case ']':
			if depth == 0 {
				body := inp.Src[pos:inp.Pos]
				inp.Next()
				return body, true
			}
			depth--
		}
		inp.Next()
	}
}

// parseCookie parses statistics cookies like "[3/10]" and "[50%]". The
// scanner first accepts any run of digits, '/' and '%' and only then
// interprets it; anything that fails interpretation degrades to text.
func (cp *omkP) parseCookie() (ast.InlineNode, bool) {
	inp := cp.inp
	if inp.Ch != '[' {
		return nil, false
	}
	inp.Next()
	pos := inp.Pos
	for inp.Ch != ']' {
		switch {
		case input.IsDigit(inp.Ch), inp.Ch == '/', inp.Ch == '%':
			inp.Next()
		default:
			return nil, false
		}
	}
	body := string(inp.Src[pos:inp.Pos])
	if body == "" {
		return nil, false
	}
	inp.Next()
	if current, max, ok := scanAbsoluteCookie(body); ok {
		return &ast.CookieNode{Kind: ast.CookieAbsolute, Current: current, Max: max}, true
	}
	if percent, ok := scanPercentCookie(body); ok {
		return &ast.CookieNode{Kind: ast.CookiePercent, Percent: percent}, true
	}
	return nil, false
}

func scanAbsoluteCookie(body string) (current, max int, ok bool) {
	sep := strings.IndexByte(body, '/')
	if sep < 0 || strings.IndexByte(body[sep+1:], '/') >= 0 {
		return 0, 0, false
	}
	current, ok = scanCookieNumber(body[:sep])
	if !ok {
		return 0, 0, false
	}
	max, ok = scanCookieNumber(body[sep+1:])
	if !ok {
		return 0, 0, false
	}
	return current, max, true
}

func scanPercentCookie(body string) (int, bool) {
	if len(body) < 2 || body[len(body)-1] != '%' {
		return 0, false
	}
	return scanCookieNumber(body[:len(body)-1])
}

func scanCookieNumber(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if !input.IsDigit(rune(s[i])) {
			return 0, false
		}
		n = 10*n + int(s[i]-'0')
	}
	return n, true
}

// parseMacro parses "{{{name}}}" and "{{{name(arg1, arg2)}}}".
func (cp *omkP) parseMacro() (ast.InlineNode, bool) {
	inp := cp.inp
	if !inp.Accept("{{{") {
		return nil, false
	}
	pos := inp.Pos
	for isNameRune(inp.Ch) {
		inp.Next()
	}
	name := string(inp.Src[pos:inp.Pos])
	if name == "" {
		return nil, false
	}
	if inp.Accept("}}}") {
		return &ast.MacroNode{Name: name}, true
	}
	if inp.Ch != '(' {
		return nil, false
	}
	inp.Next()
	posA := inp.Pos
	for {
		if input.IsEOLEOS(inp.Ch) {
			return nil, false
		}
		if inp.Ch == ')' {
			end := inp.Pos
			if inp.Accept(")}}}") {
				return &ast.MacroNode{Name: name, Args: splitMacroArgs(string(inp.Src[posA:end]))}, true
			}
		}
		inp.Next()
	}
}

func splitMacroArgs(s string) []string {
	if s == "" {
		return nil
	}
	args := strings.Split(s, ",")
	for i, arg := range args {
		args[i] = strings.TrimSpace(arg)
	}
	return args
}

// parseMath parses the four LaTeX fragment forms: "$...$", "$$...$$",
// "\(...\)" and "\[...\]".
func (cp *omkP) parseMath() (ast.InlineNode, bool) {
	inp := cp.inp
	switch inp.Ch {
	case '$':
		if inp.Peek() == '$' {
			return cp.scanMath("$$", "$$", true)
		}
		return cp.scanMath("$", "$", false)
	case '\\':
		switch inp.Peek() {
		case '(':
			return cp.scanMath(`\(`, `\)`, false)
		case '[':
			return cp.scanMath(`\[`, `\]`, true)
		}
	}
	return nil, false
}

func (cp *omkP) scanMath(opener, closer string, display bool) (ast.InlineNode, bool) {
	inp := cp.inp
	if !inp.Accept(opener) {
		return nil, false
	}
	pos := inp.Pos
	for {
		if input.IsEOLEOS(inp.Ch) {
			return nil, false
		}
		if inp.Ch == rune(closer[0]) {
			end := inp.Pos
			if inp.Accept(closer) {
				if end == pos {
					return nil, false
				}
				return &ast.MathNode{
					Display: display,
					Content: append([]byte(nil), inp.Src[pos:end]...),
				}, true
			}
		}
		inp.Next()
	}
}

// parseTarget parses "<<name>>" and the radio form "<<<name>>>".
func (cp *omkP) parseTarget() (ast.InlineNode, bool) {
	inp := cp.inp
	if !inp.Accept("<<") {
		return nil, false
	}
	radio := false
	if inp.Ch == '<' {
		inp.Next()
		radio = true
	}
	pos := inp.Pos
	for {
		switch inp.Ch {
		case input.EOS, '\n', '\r', '<':
			return nil, false
		case '>':
			text := string(inp.Src[pos:inp.Pos])
			if text == "" {
				return nil, false
			}
			if radio {
				if !inp.Accept(">>>") {
					return nil, false
				}
			} else if !inp.Accept(">>") {
				return nil, false
			}
			return &ast.TargetNode{Text: text, Radio: radio}, true
		}
		inp.Next()
	}
}

// parseSnippet parses an export snippet "@@backend:content@@".
func (cp *omkP) parseSnippet() (ast.InlineNode, bool) {
	inp := cp.inp
	if !inp.Accept("@@") {
		return nil, false
	}
	pos := inp.Pos
	for inp.Ch != ':' {
		if !isNameRune(inp.Ch) {
			return nil, false
		}
		inp.Next()
	}
	backend := string(inp.Src[pos:inp.Pos])
	if backend == "" {
		return nil, false
	}
	inp.Next()
	posC := inp.Pos
	for {
		if input.IsEOLEOS(inp.Ch) {
			return nil, false
		}
		if inp.Ch == '@' && inp.Peek() == '@' {
			content := string(inp.Src[posC:inp.Pos])
			inp.Next()
			inp.Next()
			return &ast.SnippetNode{Backend: backend, Content: content}, true
		}
		inp.Next()
	}
}

// parseEntity parses "\name". An unresolved name degrades to its text,
// with the backslash dropped.
func (cp *omkP) parseEntity() (ast.InlineNode, bool) {
	inp := cp.inp
	if inp.Ch != '\\' {
		return nil, false
	}
	inp.Next()
	pos := inp.Pos
	for input.IsLetter(inp.Ch) {
		inp.Next()
	}
	if pos == inp.Pos {
		return nil, false
	}
	name := string(inp.Src[pos:inp.Pos])
	if e, found := entity.Lookup(name); found {
		return &ast.EntityNode{Entity: e}, true
	}
	return &ast.TextNode{Text: name}, true
}
