//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of Orgmark.
//
// Orgmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package sexprenc

import (
	"fmt"
	"log"

	"codeberg.org/t73fde/sxpf"

	"t73f.de/r/org/ast"
)

// NewTransformer returns a new transformer to create s-expressions from AST nodes.
func NewTransformer() *Transformer {
	smk := sxpf.NewTrivialSymbolMaker()
	t := Transformer{smk: smk}
	t.symText = smk.MakeSymbol("TEXT")
	t.symSoft = smk.MakeSymbol("SOFT")
	t.symLink = smk.MakeSymbol("LINK")
	t.symTarget = smk.MakeSymbol("TARGET")
	t.symRadioTarget = smk.MakeSymbol("RADIO-TARGET")
	t.symFootnote = smk.MakeSymbol("FOOTNOTE")
	t.symMacro = smk.MakeSymbol("MACRO")
	t.symEntity = smk.MakeSymbol("ENTITY")
	t.symSnippet = smk.MakeSymbol("SNIPPET")
	t.symMathInline = smk.MakeSymbol("MATH-INLINE")
	t.symMathDisplay = smk.MakeSymbol("MATH-DISPLAY")
	t.symCookiePercent = smk.MakeSymbol("COOKIE-PERCENT")
	t.symCookieAbsolute = smk.MakeSymbol("COOKIE-ABSOLUTE")
	t.symStamp = smk.MakeSymbol("STAMP")
	t.symActive = smk.MakeSymbol("ACTIVE")
	t.symInactive = smk.MakeSymbol("INACTIVE")
	t.symClock = smk.MakeSymbol("CLOCK")
	t.symRep = smk.MakeSymbol("REPEAT")

	t.mapFormatKindS = map[ast.FormatKind]*sxpf.Symbol{
		ast.FormatBold:   smk.MakeSymbol("FORMAT-BOLD"),
		ast.FormatItalic: smk.MakeSymbol("FORMAT-ITALIC"),
		ast.FormatUnder:  smk.MakeSymbol("FORMAT-UNDER"),
		ast.FormatStrike: smk.MakeSymbol("FORMAT-STRIKE"),
		ast.FormatSuper:  smk.MakeSymbol("FORMAT-SUPER"),
		ast.FormatSub:    smk.MakeSymbol("FORMAT-SUB"),
	}
	t.mapLiteralKindS = map[ast.LiteralKind]*sxpf.Symbol{
		ast.LiteralCode:     smk.MakeSymbol("LITERAL-CODE"),
		ast.LiteralVerbatim: smk.MakeSymbol("LITERAL-VERBATIM"),
	}
	t.mapRefKindS = map[ast.RefKind]*sxpf.Symbol{
		ast.RefInvalid: smk.MakeSymbol("REF-INVALID"),
		ast.RefFile:    smk.MakeSymbol("REF-FILE"),
		ast.RefSearch:  smk.MakeSymbol("REF-SEARCH"),
		ast.RefComplex: smk.MakeSymbol("REF-COMPLEX"),
	}
	t.mapTimestampKindS = map[ast.TimestampKind]*sxpf.Symbol{
		ast.TimestampDate:      smk.MakeSymbol("TIMESTAMP-DATE"),
		ast.TimestampScheduled: smk.MakeSymbol("TIMESTAMP-SCHEDULED"),
		ast.TimestampDeadline:  smk.MakeSymbol("TIMESTAMP-DEADLINE"),
		ast.TimestampClosed:    smk.MakeSymbol("TIMESTAMP-CLOSED"),
		ast.TimestampClock:     smk.MakeSymbol("TIMESTAMP-CLOCK"),
		ast.TimestampRange:     smk.MakeSymbol("TIMESTAMP-RANGE"),
	}
	return &t
}

// Transformer maps AST nodes to s-expressions.
type Transformer struct {
	smk               sxpf.SymbolMaker
	symText           *sxpf.Symbol
	symSoft           *sxpf.Symbol
	symLink           *sxpf.Symbol
	symTarget         *sxpf.Symbol
	symRadioTarget    *sxpf.Symbol
	symFootnote       *sxpf.Symbol
	symMacro          *sxpf.Symbol
	symEntity         *sxpf.Symbol
	symSnippet        *sxpf.Symbol
	symMathInline     *sxpf.Symbol
	symMathDisplay    *sxpf.Symbol
	symCookiePercent  *sxpf.Symbol
	symCookieAbsolute *sxpf.Symbol
	symStamp          *sxpf.Symbol
	symActive         *sxpf.Symbol
	symInactive       *sxpf.Symbol
	symClock          *sxpf.Symbol
	symRep            *sxpf.Symbol
	mapFormatKindS    map[ast.FormatKind]*sxpf.Symbol
	mapLiteralKindS   map[ast.LiteralKind]*sxpf.Symbol
	mapRefKindS       map[ast.RefKind]*sxpf.Symbol
	mapTimestampKindS map[ast.TimestampKind]*sxpf.Symbol
}

// GetSexpr returns the s-expression of the given AST node.
func (t *Transformer) GetSexpr(node ast.Node) *sxpf.Pair {
	switch n := node.(type) {
	case *ast.InlineSlice:
		return t.getInlineSlice(*n)
	case *ast.TextNode:
		return sxpf.NewPairFromValues(t.symText, sxpf.NewString(n.Text))
	case *ast.BreakNode:
		return sxpf.NewPairFromValues(t.symSoft)
	case *ast.FormatNode:
		return sxpf.NewPair(
			mapGetS(t, t.mapFormatKindS, n.Kind),
			t.getInlineSlice(n.Inlines),
		)
	case *ast.LiteralNode:
		return sxpf.NewPairFromValues(
			mapGetS(t, t.mapLiteralKindS, n.Kind),
			sxpf.NewString(string(n.Content)),
		)
	case *ast.LinkNode:
		return sxpf.NewPair(
			t.symLink,
			sxpf.NewPair(t.getReference(n.Ref), t.getInlineSlice(n.Inlines)),
		)
	case *ast.TargetNode:
		sym := t.symTarget
		if n.Radio {
			sym = t.symRadioTarget
		}
		return sxpf.NewPairFromValues(
			sym,
			sxpf.NewString(n.Text),
			sxpf.NewString(n.Slug),
			sxpf.NewString(n.Fragment),
		)
	case *ast.FootnoteNode:
		return sxpf.NewPair(
			t.symFootnote,
			sxpf.NewPair(sxpf.NewString(n.Name), t.getInlineSlice(n.Inlines)),
		)
	case *ast.CookieNode:
		if n.Kind == ast.CookieAbsolute {
			return sxpf.NewPairFromValues(
				t.symCookieAbsolute,
				sxpf.NewInteger(int64(n.Current)),
				sxpf.NewInteger(int64(n.Max)),
			)
		}
		return sxpf.NewPairFromValues(t.symCookiePercent, sxpf.NewInteger(int64(n.Percent)))
	case *ast.MathNode:
		sym := t.symMathInline
		if n.Display {
			sym = t.symMathDisplay
		}
		return sxpf.NewPairFromValues(sym, sxpf.NewString(string(n.Content)))
	case *ast.MacroNode:
		macroVals := make([]sxpf.Value, 0, len(n.Args)+2)
		macroVals = append(macroVals, t.symMacro, sxpf.NewString(n.Name))
		for _, arg := range n.Args {
			macroVals = append(macroVals, sxpf.NewString(arg))
		}
		return sxpf.NewPairFromSlice(macroVals)
	case *ast.EntityNode:
		return sxpf.NewPairFromValues(
			t.symEntity,
			sxpf.NewString(n.Entity.Name),
			sxpf.NewString(n.Entity.Unicode),
		)
	case *ast.TimestampNode:
		return t.getTimestamp(n)
	case *ast.SnippetNode:
		return sxpf.NewPairFromValues(
			t.symSnippet,
			sxpf.NewString(n.Backend),
			sxpf.NewString(n.Content),
		)
	}
	log.Printf("SEXPR %T %v\n", node, node)
	return sxpf.NewPairFromValues(
		t.smk.MakeSymbol("UNKNOWN"),
		sxpf.NewString(fmt.Sprintf("%T %v", node, node)),
	)
}

func (t *Transformer) getInlineSlice(ins ast.InlineSlice) *sxpf.Pair {
	if len(ins) == 0 {
		return sxpf.Nil()
	}
	vals := make([]sxpf.Value, len(ins))
	for i, in := range ins {
		vals[i] = t.GetSexpr(in)
	}
	return sxpf.NewPairFromSlice(vals)
}

func (t *Transformer) getReference(ref *ast.Reference) *sxpf.Pair {
	return sxpf.NewPairFromValues(
		mapGetS(t, t.mapRefKindS, ref.Kind),
		sxpf.NewString(ref.Value),
	)
}

func (t *Transformer) getTimestamp(tn *ast.TimestampNode) *sxpf.Pair {
	vals := make([]sxpf.Value, 0, 3)
	vals = append(vals, mapGetS(t, t.mapTimestampKindS, tn.Kind), t.getStamp(&tn.Start))
	if tn.Stop != nil {
		vals = append(vals, t.getStamp(tn.Stop))
	}
	return sxpf.NewPairFromSlice(vals)
}

func (t *Transformer) getStamp(stamp *ast.Stamp) *sxpf.Pair {
	symActive := t.symInactive
	if stamp.Active {
		symActive = t.symActive
	}
	vals := make([]sxpf.Value, 0, 5)
	vals = append(vals, t.symStamp, symActive, sxpf.NewString(stamp.Date.String()))
	if stamp.Clock != nil {
		vals = append(vals, sxpf.NewPairFromValues(t.symClock, sxpf.NewString(stamp.Clock.String())))
	}
	if stamp.Rep != nil {
		vals = append(vals, sxpf.NewPairFromValues(t.symRep, sxpf.NewString(stamp.Rep.String())))
	}
	return sxpf.NewPairFromSlice(vals)
}

func mapGetS[T comparable](t *Transformer, m map[T]*sxpf.Symbol, k T) *sxpf.Symbol {
	if result, found := m[k]; found {
		return result
	}
	log.Println("MISS", k, m)
	return t.smk.MakeSymbol(fmt.Sprintf("**%v:NOT-FOUND**", k))
}
