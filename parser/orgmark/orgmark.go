//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of Orgmark.
//
// Orgmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package orgmark provides a parser for Org-mode inline markup.
package orgmark

import (
	"unicode"

	"t73f.de/r/org/ast"
	"t73f.de/r/org/input"
	"t73f.de/r/org/parser"
)

func init() {
	parser.Register(&parser.Info{
		Name:         "org",
		AltNames:     []string{"orgmode", "org-mode"},
		IsASTParser:  true,
		ParseInlines: parseInlines,
	})
}

func parseInlines(inp *input.Input, sess *parser.Session, _ string) ast.InlineSlice {
	if sess == nil {
		sess = parser.NewSession()
	}
	cp := omkP{inp: inp, sess: sess}
	is := cp.parseInlineSlice(setFull)
	postProcessInlines(&is)
	return is
}

// omkP is the working state of one parse run. Everything that outlives
// a run lives in the session.
type omkP struct {
	inp          *input.Input    // Input stream
	sess         *parser.Session // Owner of the anonymous footnote counter
	nestingLevel int             // Count nesting of inline elements
}

const maxNestingLevel = 50

func (cp *omkP) skipSpace() {
	for inp := cp.inp; inp.Ch == ' ' || inp.Ch == '\t'; {
		inp.Next()
	}
}

func isNameRune(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '-' || ch == '_'
}
