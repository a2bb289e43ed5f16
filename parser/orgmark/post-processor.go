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

import "t73f.de/r/org/ast"

// postProcessInlines is the entry point for post-processing a list of
// inline nodes.
func postProcessInlines(is *ast.InlineSlice) {
	pp := postProcessor{}
	ast.Walk(&pp, is)
}

// postProcessor is a visitor that cleans the abstract syntax tree.
type postProcessor struct{}

func (pp *postProcessor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.InlineSlice:
		pp.visitInlineSlice(n)
	case *ast.FormatNode:
		pp.visitInlineSlice(&n.Inlines)
	case *ast.LinkNode:
		pp.visitInlineSlice(&n.Inlines)
	case *ast.FootnoteNode:
		pp.visitInlineSlice(&n.Inlines)
	}
	return nil
}

// visitInlineSlice merges adjacent text nodes and drops empty ones, so
// that no two text nodes touch in the result. It then descends into
// the remaining nodes.
func (pp *postProcessor) visitInlineSlice(is *ast.InlineSlice) {
	ins := *is
	maxPos := len(ins)
	fromPos, toPos := 0, 0
	for fromPos < maxPos {
		ins[toPos] = ins[fromPos]
		fromPos++
		if in, ok := ins[toPos].(*ast.TextNode); ok {
			for fromPos < maxPos {
				if tn, ok2 := ins[fromPos].(*ast.TextNode); ok2 {
					in.Text += tn.Text
					fromPos++
				} else {
					break
				}
			}
			if in.Text == "" {
				continue
			}
		}
		toPos++
	}
	for pos := toPos; pos < maxPos; pos++ {
		ins[pos] = nil // Allow excess nodes to be garbage collected.
	}
	*is = ins[:toPos:toPos]
	for _, in := range *is {
		ast.Walk(pp, in)
	}
}
