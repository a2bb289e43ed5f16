//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of Orgmark.
//
// Orgmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package orgenc encodes the abstract syntax tree back into Org markup.
package orgenc

import (
	"io"
	"strconv"
	"strings"

	"t73f.de/r/org/ast"
	"t73f.de/r/org/encoder"
)

func init() {
	encoder.Register("org", func() encoder.Encoder { return Create() })
}

// Create an Org encoder.
func Create() *Encoder { return &myOE }

type Encoder struct{}

var myOE Encoder

// WriteInlines writes an inline slice to the writer.
func (*Encoder) WriteInlines(w io.Writer, is *ast.InlineSlice) (int, error) {
	v := visitor{b: encoder.NewBufWriter(w)}
	v.acceptInlineSlice(*is)
	return v.b.Flush()
}

type visitor struct {
	b encoder.BufWriter
}

func (v *visitor) acceptInlineSlice(ins ast.InlineSlice) {
	for _, in := range ins {
		ast.Walk(v, in)
	}
}

var mapFormatDelim = map[ast.FormatKind]byte{
	ast.FormatBold:   '*',
	ast.FormatItalic: '/',
	ast.FormatUnder:  '_',
	ast.FormatStrike: '+',
}

func (v *visitor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.TextNode:
		v.b.WriteString(n.Text)
	case *ast.BreakNode:
		v.b.WriteByte('\n')
	case *ast.FormatNode:
		v.visitFormat(n)
	case *ast.LiteralNode:
		v.visitLiteral(n)
	case *ast.LinkNode:
		v.visitLink(n)
	case *ast.TargetNode:
		if n.Radio {
			v.b.WriteStrings("<<<", n.Text, ">>>")
		} else {
			v.b.WriteStrings("<<", n.Text, ">>")
		}
	case *ast.FootnoteNode:
		v.b.WriteStrings("[fn:", n.Name)
		if n.Inlines != nil {
			v.b.WriteByte(':')
			v.acceptInlineSlice(n.Inlines)
		}
		v.b.WriteByte(']')
	case *ast.CookieNode:
		v.visitCookie(n)
	case *ast.MathNode:
		if n.Display {
			v.b.WriteString("$$")
			v.b.Write(n.Content)
			v.b.WriteString("$$")
		} else {
			v.b.WriteByte('$')
			v.b.Write(n.Content)
			v.b.WriteByte('$')
		}
	case *ast.MacroNode:
		v.b.WriteStrings("{{{", n.Name)
		if n.Args != nil {
			v.b.WriteStrings("(", strings.Join(n.Args, ","), ")")
		}
		v.b.WriteString("}}}")
	case *ast.EntityNode:
		v.b.WriteStrings("\\", n.Entity.Name)
	case *ast.TimestampNode:
		v.visitTimestamp(n)
	case *ast.SnippetNode:
		v.b.WriteStrings("@@", n.Backend, ":", n.Content, "@@")
	}
	return nil
}

func (v *visitor) visitFormat(fn *ast.FormatNode) {
	switch fn.Kind {
	case ast.FormatSuper:
		v.b.WriteString("^{")
		v.acceptInlineSlice(fn.Inlines)
		v.b.WriteByte('}')
	case ast.FormatSub:
		v.b.WriteString("_{")
		v.acceptInlineSlice(fn.Inlines)
		v.b.WriteByte('}')
	default:
		delim := mapFormatDelim[fn.Kind]
		v.b.WriteByte(delim)
		v.acceptInlineSlice(fn.Inlines)
		v.b.WriteByte(delim)
	}
}

func (v *visitor) visitLiteral(ln *ast.LiteralNode) {
	delim := byte('~')
	if ln.Kind == ast.LiteralVerbatim {
		delim = '='
	}
	v.b.WriteByte(delim)
	v.b.Write(ln.Content)
	v.b.WriteByte(delim)
}

func (v *visitor) visitLink(ln *ast.LinkNode) {
	v.b.WriteStrings("[[", ln.Ref.String(), "]")
	if !ln.OnlyRef {
		v.b.WriteByte('[')
		v.acceptInlineSlice(ln.Inlines)
		v.b.WriteByte(']')
	}
	v.b.WriteByte(']')
}

func (v *visitor) visitCookie(cn *ast.CookieNode) {
	if cn.Kind == ast.CookieAbsolute {
		v.b.WriteStrings("[", strconv.Itoa(cn.Current), "/", strconv.Itoa(cn.Max), "]")
	} else {
		v.b.WriteStrings("[", strconv.Itoa(cn.Percent), "%]")
	}
}

var mapTimestampKeyword = map[ast.TimestampKind]string{
	ast.TimestampScheduled: "SCHEDULED: ",
	ast.TimestampDeadline:  "DEADLINE: ",
	ast.TimestampClosed:    "CLOSED: ",
	ast.TimestampClock:     "CLOCK: ",
}

func (v *visitor) visitTimestamp(tn *ast.TimestampNode) {
	if keyword, ok := mapTimestampKeyword[tn.Kind]; ok {
		v.b.WriteString(keyword)
	}
	v.writeStamp(&tn.Start)
	if tn.Stop != nil {
		v.b.WriteString("--")
		v.writeStamp(tn.Stop)
	}
}

func (v *visitor) writeStamp(stamp *ast.Stamp) {
	opener, closer := byte('['), byte(']')
	if stamp.Active {
		opener, closer = '<', '>'
	}
	v.b.WriteByte(opener)
	v.b.WriteStrings(stamp.Date.String(), " ", stamp.Date.WeekdayName())
	if stamp.Clock != nil {
		v.b.WriteStrings(" ", stamp.Clock.String())
	}
	if stamp.Rep != nil {
		v.b.WriteStrings(" ", stamp.Rep.String())
	}
	v.b.WriteByte(closer)
}
