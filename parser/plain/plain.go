//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of Orgmark.
//
// Orgmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package plain provides a parser for plain text data.
package plain

import (
	"t73f.de/r/org/ast"
	"t73f.de/r/org/input"
	"t73f.de/r/org/parser"
)

func init() {
	parser.Register(&parser.Info{
		Name:         "txt",
		AltNames:     []string{"plain", "text"},
		IsASTParser:  false,
		ParseInlines: parseInlines,
	})
}

func parseInlines(inp *input.Input, _ *parser.Session, _ string) ast.InlineSlice {
	pos := inp.Pos
	inp.SkipToEOL()
	if pos == inp.Pos {
		return nil
	}
	return ast.InlineSlice{&ast.TextNode{Text: string(inp.Src[pos:inp.Pos])}}
}
