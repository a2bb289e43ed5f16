//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of Orgmark.
//
// Orgmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package textenc encodes the abstract syntax tree into its text.
package textenc

import (
	"io"

	"t73f.de/r/org/ast"
	"t73f.de/r/org/encoder"
)

func init() {
	encoder.Register("text", func() encoder.Encoder { return Create() })
}

// Create a text encoder.
func Create() *Encoder { return &myTE }

type Encoder struct{}

var myTE Encoder

// WriteInlines writes an inline slice to the writer.
//
// Only nodes that render as readable text contribute to the result.
// Verbatim text, inline LaTeX and the unicode form of an entity count
// as readable; source code, timestamps, targets, macros, snippets,
// cookies, displayed LaTeX and line breaks do not.
func (*Encoder) WriteInlines(w io.Writer, is *ast.InlineSlice) (int, error) {
	v := textVisitor{b: encoder.NewBufWriter(w)}
	ast.WalkInlineSlice(&v, *is)
	return v.b.Flush()
}

type textVisitor struct {
	b encoder.BufWriter
}

func (v *textVisitor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.TextNode:
		v.b.WriteString(n.Text)
		return nil
	case *ast.LiteralNode:
		if n.Kind == ast.LiteralVerbatim {
			v.b.Write(n.Content)
		}
		return nil
	case *ast.MathNode:
		if !n.Display {
			v.b.Write(n.Content)
		}
		return nil
	case *ast.EntityNode:
		v.b.WriteString(n.Entity.Unicode)
		return nil
	case *ast.FormatNode:
		return v
	case *ast.LinkNode:
		return v
	case *ast.FootnoteNode:
		return v
	}
	return nil
}
