//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of Orgmark.
//
// Orgmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package markdown provides a parser for markdown inline markup.
package markdown

import (
	"fmt"
	"strings"

	gm "github.com/yuin/goldmark"
	gmAst "github.com/yuin/goldmark/ast"
	gmText "github.com/yuin/goldmark/text"

	"t73f.de/r/org/ast"
	"t73f.de/r/org/input"
	"t73f.de/r/org/parser"
)

func init() {
	parser.Register(&parser.Info{
		Name:         "markdown",
		AltNames:     []string{"md"},
		IsASTParser:  true,
		ParseInlines: parseInlines,
	})
}

func parseInlines(inp *input.Input, _ *parser.Session, _ string) ast.InlineSlice {
	source := inp.Src[inp.Pos:]
	for inp.Ch != input.EOS {
		inp.Next()
	}
	docNode := gm.DefaultParser().Parse(gmText.NewReader(source))
	p := mdP{source: source}
	ins := p.acceptDocument(docNode)
	mergeTextNodes(&ins)
	return ins
}

// mergeTextNodes joins adjacent text nodes. Goldmark splits text at
// escape sequences, Org inline sequences never contain two adjacent
// text nodes.
func mergeTextNodes(is *ast.InlineSlice) {
	ins := *is
	fromPos, toPos := 0, 0
	for fromPos < len(ins) {
		ins[toPos] = ins[fromPos]
		fromPos++
		switch in := ins[toPos].(type) {
		case *ast.TextNode:
			for fromPos < len(ins) {
				if tn, ok := ins[fromPos].(*ast.TextNode); ok {
					in.Text += tn.Text
					fromPos++
				} else {
					break
				}
			}
			if in.Text == "" {
				continue
			}
		case *ast.FormatNode:
			mergeTextNodes(&in.Inlines)
		case *ast.LinkNode:
			mergeTextNodes(&in.Inlines)
		}
		toPos++
	}
	for pos := toPos; pos < len(ins); pos++ {
		ins[pos] = nil
	}
	*is = ins[:toPos:toPos]
}

type mdP struct {
	source []byte
}

// acceptDocument flattens all paragraph-like blocks of the document
// into one inline sequence. Blocks are separated by a line break.
func (p *mdP) acceptDocument(docNode gmAst.Node) ast.InlineSlice {
	if docNode.Type() != gmAst.TypeDocument {
		panic(fmt.Sprintf("Expected document, but got node type %v", docNode.Type()))
	}
	var result ast.InlineSlice
	for child := docNode.FirstChild(); child != nil; child = child.NextSibling() {
		ins := p.acceptBlock(child)
		if len(ins) == 0 {
			continue
		}
		if len(result) > 0 {
			result = append(result, &ast.BreakNode{})
		}
		result = append(result, ins...)
	}
	return result
}

func (p *mdP) acceptBlock(node gmAst.Node) ast.InlineSlice {
	if node.Type() != gmAst.TypeBlock {
		panic(fmt.Sprintf("Expected block node, but got node type %v", node.Type()))
	}
	switch n := node.(type) {
	case *gmAst.Paragraph, *gmAst.TextBlock, *gmAst.Heading:
		return p.acceptChildren(node)
	case *gmAst.CodeBlock:
		return p.acceptRawText(n)
	case *gmAst.FencedCodeBlock:
		return p.acceptRawText(n)
	case *gmAst.Blockquote, *gmAst.List, *gmAst.ListItem:
		var result ast.InlineSlice
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			result = append(result, p.acceptBlock(child)...)
		}
		return result
	case *gmAst.ThematicBreak, *gmAst.HTMLBlock:
		return nil
	}
	panic(fmt.Sprintf("Unhandled block node of kind %v", node.Kind()))
}

func (p *mdP) acceptRawText(node gmAst.Node) ast.InlineSlice {
	lines := node.Lines()
	var content []byte
	for i := 0; i < lines.Len(); i++ {
		s := lines.At(i)
		line := s.Value(p.source)
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		if i > 0 {
			content = append(content, '\n')
		}
		content = append(content, line...)
	}
	if len(content) == 0 {
		return nil
	}
	return ast.InlineSlice{&ast.LiteralNode{Kind: ast.LiteralCode, Content: content}}
}

func (p *mdP) acceptChildren(node gmAst.Node) ast.InlineSlice {
	var result ast.InlineSlice
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		result = append(result, p.acceptInline(child)...)
	}
	return result
}

func (p *mdP) acceptInline(node gmAst.Node) ast.InlineSlice {
	if node.Type() != gmAst.TypeInline {
		panic(fmt.Sprintf("Expected inline node, but got %v", node.Type()))
	}
	switch n := node.(type) {
	case *gmAst.Text:
		return p.acceptText(n)
	case *gmAst.String:
		return ast.InlineSlice{&ast.TextNode{Text: string(n.Value)}}
	case *gmAst.CodeSpan:
		return p.acceptCodeSpan(n)
	case *gmAst.Emphasis:
		return p.acceptEmphasis(n)
	case *gmAst.Link:
		return p.acceptLink(n)
	case *gmAst.Image:
		return p.acceptImage(n)
	case *gmAst.AutoLink:
		return p.acceptAutoLink(n)
	case *gmAst.RawHTML:
		return nil
	}
	panic(fmt.Sprintf("Unhandled inline node %v", node.Kind()))
}

func (p *mdP) acceptText(node *gmAst.Text) ast.InlineSlice {
	text := string(node.Segment.Value(p.source))
	if !node.IsRaw() {
		text = cleanText(text)
	}
	result := make(ast.InlineSlice, 0, 2)
	if text != "" {
		result = append(result, &ast.TextNode{Text: text})
	}
	if node.HardLineBreak() || node.SoftLineBreak() {
		result = append(result, &ast.BreakNode{})
	}
	return result
}

var ignoreAfterBS = map[byte]bool{
	'!': true, '"': true, '#': true, '$': true, '%': true, '&': true,
	'\'': true, '(': true, ')': true, '*': true, '+': true, ',': true,
	'-': true, '.': true, '/': true, ':': true, ';': true, '<': true,
	'=': true, '>': true, '?': true, '@': true, '[': true, '\\': true,
	']': true, '^': true, '_': true, '`': true, '{': true, '|': true,
	'}': true, '~': true,
}

// cleanText removes markdown backslash escapes.
func cleanText(text string) string {
	lastPos := 0
	var sb strings.Builder
	for pos := 0; pos < len(text); pos++ {
		if text[pos] == '\\' && pos < len(text)-1 && ignoreAfterBS[text[pos+1]] {
			sb.WriteString(text[lastPos:pos])
			sb.WriteByte(text[pos+1])
			pos++
			lastPos = pos + 1
		}
	}
	if lastPos == 0 {
		return text
	}
	if lastPos < len(text) {
		sb.WriteString(text[lastPos:])
	}
	return sb.String()
}

func (p *mdP) acceptCodeSpan(node *gmAst.CodeSpan) ast.InlineSlice {
	return ast.InlineSlice{
		&ast.LiteralNode{
			Kind:    ast.LiteralCode,
			Content: []byte(cleanCodeSpan(string(node.Text(p.source)))),
		},
	}
}

func cleanCodeSpan(text string) string {
	if text == "" {
		return ""
	}
	lastPos := 0
	var sb strings.Builder
	for pos, ch := range text {
		if ch == '\n' {
			sb.WriteString(text[lastPos:pos])
			if pos < len(text)-1 {
				sb.WriteByte(' ')
			}
			lastPos = pos + 1
		}
	}
	if lastPos == 0 {
		return text
	}
	sb.WriteString(text[lastPos:])
	return sb.String()
}

func (p *mdP) acceptEmphasis(node *gmAst.Emphasis) ast.InlineSlice {
	kind := ast.FormatItalic
	if node.Level == 2 {
		kind = ast.FormatBold
	}
	return ast.InlineSlice{
		&ast.FormatNode{Kind: kind, Inlines: p.acceptChildren(node)},
	}
}

func (p *mdP) acceptLink(node *gmAst.Link) ast.InlineSlice {
	ref := ast.ParseReference(cleanText(string(node.Destination)))
	return ast.InlineSlice{
		&ast.LinkNode{Ref: ref, Inlines: p.acceptChildren(node)},
	}
}

// acceptImage maps an image to a link on the image file, labelled with
// the alternate text.
func (p *mdP) acceptImage(node *gmAst.Image) ast.InlineSlice {
	ref := ast.ParseReference(cleanText(string(node.Destination)))
	inlines := p.acceptChildren(node)
	if len(inlines) == 0 {
		inlines = ast.InlineSlice{&ast.TextNode{Text: ref.Value}}
		return ast.InlineSlice{&ast.LinkNode{Ref: ref, Inlines: inlines, OnlyRef: true}}
	}
	return ast.InlineSlice{&ast.LinkNode{Ref: ref, Inlines: inlines}}
}

func (p *mdP) acceptAutoLink(node *gmAst.AutoLink) ast.InlineSlice {
	url := node.URL(p.source)
	if node.AutoLinkType == gmAst.AutoLinkEmail && !strings.HasPrefix(string(url), "mailto:") {
		url = append([]byte("mailto:"), url...)
	}
	ref := ast.ParseReference(cleanText(string(url)))
	label := node.Label(p.source)
	if len(label) == 0 {
		label = url
	}
	return ast.InlineSlice{
		&ast.LinkNode{
			Ref:     ref,
			Inlines: ast.InlineSlice{&ast.TextNode{Text: string(label)}},
			OnlyRef: true,
		},
	}
}
