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
	"t73f.de/r/org/ast"
	"t73f.de/r/org/input"
)

// grammarSet selects which grammar trials the dispatcher may use.
// Recursive contexts (emphasis interiors, link labels, footnote
// definitions) run with restricted sets.
type grammarSet uint

const (
	gBreak grammarSet = 1 << iota
	gTimestamp
	gCookie
	gFootnote
	gLink
	gMath
	gTarget
	gSnippet
	gMacro
	gSubSup
	gEntity
	gEmphasis
	gCode
	gVerbatim
	gBareLink
)

const (
	// setFull is used at the top level of the dispatcher.
	setFull = gBreak | gTimestamp | gCookie | gFootnote | gLink | gMath |
		gTarget | gSnippet | gMacro | gSubSup | gEntity | gEmphasis |
		gCode | gVerbatim | gBareLink
	// setEmphasis restricts the interior of styled spans.
	setEmphasis = gEmphasis
	// setLabel restricts link labels and sub-/superscript bodies.
	setLabel = gEmphasis | gMath | gEntity | gCode | gSubSup
	// setFootnote restricts footnote definitions.
	setFootnote = setLabel | gLink | gBareLink | gTarget
)

type trial struct {
	name  string
	set   grammarSet
	parse func(*omkP) (ast.InlineNode, bool)
}

// dispatchTable lists all grammar trials in precedence order. The order
// is part of the external contract: timestamps lead because they claim
// '<' and '[' that targets, cookies, footnotes and links want too; the
// cookie wins over the link forms on '['; LaTeX fragments claim '\'
// before entities do; the line break is tried before any markup span so
// a bare newline is never swallowed. Changing the order changes which
// construct wins on ambiguous prefixes, so it is pinned by a test.
//
// The table is filled in init() because some trials recurse through
// the dispatcher, which would form an initialization cycle.
var dispatchTable []trial

func init() {
	dispatchTable = []trial{
		{"break", gBreak, (*omkP).parseBreak},
		{"timestamp", gTimestamp, (*omkP).parseTimestamp},
		{"cookie", gCookie, (*omkP).parseCookie},
		{"footnote", gFootnote, (*omkP).parseFootnote},
		{"link", gLink, (*omkP).parseLink},
		{"math", gMath, (*omkP).parseMath},
		{"target", gTarget, (*omkP).parseTarget},
		{"snippet", gSnippet, (*omkP).parseSnippet},
		{"macro", gMacro, (*omkP).parseMacro},
		{"subsup", gSubSup, (*omkP).parseSubSup},
		{"entity", gEntity, (*omkP).parseEntity},
		{"emphasis", gEmphasis, (*omkP).parseEmphasis},
		{"code", gCode, (*omkP).parseCode},
		{"verbatim", gVerbatim, (*omkP).parseVerbatim},
		{"bare-link", gBareLink, (*omkP).parseBareLink},
	}
}

// parseInlineSlice parses a sequence of inlines until EOS.
func (cp *omkP) parseInlineSlice(set grammarSet) ast.InlineSlice {
	inp := cp.inp
	var ins ast.InlineSlice
	for inp.Ch != input.EOS {
		in := cp.parseInline(set)
		if in == nil {
			break
		}
		ins = append(ins, in)
	}
	return ins
}

func (cp *omkP) parseInline(set grammarSet) ast.InlineNode {
	inp := cp.inp
	if inp.Ch == input.EOS {
		return nil
	}
	pos := inp.Pos
	if cp.nestingLevel <= maxNestingLevel {
		cp.nestingLevel++
		defer func() { cp.nestingLevel-- }()

		for _, tr := range dispatchTable {
			if set&tr.set == 0 {
				continue
			}
			if in, success := tr.parse(cp); success {
				return in
			}
			inp.SetPos(pos)
		}
	}
	inp.SetPos(pos)
	return cp.parseText()
}

// parseText is the always-succeeding fallback. It consumes at least one
// character, so the dispatcher always makes progress, and stops before
// the next character that may start a trial.
func (cp *omkP) parseText() *ast.TextNode {
	inp := cp.inp
	pos := inp.Pos
	if inp.Ch == ' ' || inp.Ch == '\t' {
		for inp.Ch == ' ' || inp.Ch == '\t' {
			inp.Next()
		}
		return &ast.TextNode{Text: string(inp.Src[pos:inp.Pos])}
	}
	for {
		inp.Next()
		switch inp.Ch {
		// The following case must contain all runes that may start a trial,
		// plus the closing brackets ] } >.
		case input.EOS, '\n', '\r', ' ', '\t', '<', '>', '[', ']', '{', '}',
			'$', '\\', '@', '_', '^', '*', '/', '+', '~', '=':
			return &ast.TextNode{Text: string(inp.Src[pos:inp.Pos])}
		}
	}
}

func (cp *omkP) parseBreak() (ast.InlineNode, bool) {
	inp := cp.inp
	switch inp.Ch {
	case '\n', '\r':
		inp.EatEOL()
		return &ast.BreakNode{}, true
	}
	return nil, false
}

// parseSubInlines parses a strict substring of the input with a
// restricted grammar and normalizes the result. The session is shared,
// so generated footnote names stay unique.
func (cp *omkP) parseSubInlines(src []byte, set grammarSet) ast.InlineSlice {
	sub := omkP{inp: input.NewInput(src), sess: cp.sess, nestingLevel: cp.nestingLevel}
	ins := sub.parseInlineSlice(set)
	postProcessInlines(&ins)
	return ins
}
