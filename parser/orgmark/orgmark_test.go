//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of Orgmark.
//
// Orgmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package orgmark_test provides some tests for the Org inline parser.
package orgmark_test

import (
	"fmt"
	"strings"
	"testing"

	"t73f.de/r/org/ast"
	"t73f.de/r/org/input"
	"t73f.de/r/org/parser"

	_ "t73f.de/r/org/parser/orgmark" // Allow to use the Org parser.
	_ "t73f.de/r/org/parser/plain"   // Allow to use the plain text parser.
)

type TestCase struct{ source, want string }
type TestCases []TestCase

func checkTcs(t *testing.T, tcs TestCases) {
	t.Helper()

	for tcn, tc := range tcs {
		t.Run(fmt.Sprintf("TC=%02d,src=%q", tcn, tc.source), func(st *testing.T) {
			st.Helper()
			inp := input.NewInput([]byte(tc.source))
			ins := parser.ParseInlines(inp, nil, "org")
			var tv TestVisitor
			ast.Walk(&tv, &ins)
			got := strings.TrimPrefix(tv.String(), " ")
			if tc.want != got {
				st.Errorf("\nwant=%q\n got=%q", tc.want, got)
			}
		})
	}
}

func TestEOL(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"", ""},
		{"\n", "SB"},
		{"\r", "SB"},
		{"\r\n", "SB"},
	})
}

func TestText(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"abcd", "abcd"},
		{"ab cd", "ab cd"},
		{"ab  cd", "ab  cd"},
		{"x\ny", "x SB y"},
		{"[abc]", "[abc]"},
		{"{name}", "{name}"},
		{"a > b", "a > b"},
	})
}

func TestEmphasis(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"*bold*", "{* bold}"},
		{"/italic/", "{/ italic}"},
		{"_under_", "{_ under}"},
		{"+strike+", "{+ strike}"},
		{"*bold*.", "{* bold} ."},
		{"*bold*x", "*bold*x"},
		{"* bold*", "* bold*"},
		{"*bold *", "*bold *"},
		{"**", "**"},
		{"*b*", "{* b}"},
		{"a *b* c", "a  {* b}  c"},
		{"*bold /italic/ bold*", "{* bold  {/ italic}  bold}"},
		{"/a *b* c/", "{/ a  {* b}  c}"},
	})
}

func TestLiteral(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"~code~", "{~ code}"},
		{"=verb=", "{= verb}"},
		{"~code~x", "~code~x"},
		{"~a *b* c~", "{~ a *b* c}"},
		{"=<tag>=", "{= <tag>}"},
	})
}

func TestSubSup(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"a_{ij}", "a {, ij}"},
		{"x^{2}", "x {^ 2}"},
		{"x^{}", "x^{}"},
		{"x^2", "x^2"},
		{"a_{b_{c}}", "a {, b {, c}}"},
	})
}

func TestLink(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"[[./a.png]]", "(LINK FILE ./a.png ./a.png)"},
		{"[[/etc/motd]]", "(LINK FILE /etc/motd /etc/motd)"},
		{"[[https://x.org][label]]", "(LINK COMPLEX https://x.org label)"},
		{"[[https://x.org][*b*]]", "(LINK COMPLEX https://x.org {* b})"},
		{"[[term]]", "(LINK SEARCH term term)"},
		{"[[mailto:x@y.z]]", "(LINK COMPLEX mailto:x@y.z mailto:x@y.z)"},
		{"[[a][]]", "[[a][]]"},
		{"[[]]", "[[]]"},
	})
}

func TestBareLink(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"https://x.org", "(LINK COMPLEX https://x.org https://x.org)"},
		{"see https://x.org now", "see  (LINK COMPLEX https://x.org https://x.org)  now"},
		{"(https://x.org)", "(https://x.org)"},
		{"https://", "https://"},
	})
}

func TestTarget(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"<<target>>", "(TARGET target #target)"},
		{"<<<radio>>>", "(RADIO radio #radio)"},
		{"<<a>> <<a>>", "(TARGET a #a)   (TARGET a #a-1)"},
		{"<<>>", "<<>>"},
		{"<<a", "<<a"},
	})
}

func TestFootnote(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"[fn:note]", "(FN note)"},
		{"[fn:note:the def]", "(FN note the def)"},
		{"[fn::an anon]", "(FN _anon_1 an anon)"},
		{"[fn::a] [fn::b]", "(FN _anon_1 a)   (FN _anon_2 b)"},
		{"[fn:]", "[fn:]"},
		{"[fn:a b]", "[fn:a b]"},
	})
}

func TestCookie(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"[50%]", "(COOKIE 50%)"},
		{"[3/10]", "(COOKIE 3/10)"},
		{"[0/0]", "(COOKIE 0/0)"},
		{"[100%]", "(COOKIE 100%)"},
		{"[%]", "[%]"},
		{"[/]", "[/]"},
		{"[5/10/15]", "[5/10/15]"},
	})
}

func TestMath(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"$x^2$", "{$ x^2}"},
		{"$$E=mc^2$$", "{$$ E=mc^2}"},
		{`\(a+b\)`, "{$ a+b}"},
		{`\[a+b\]`, "{$$ a+b}"},
		{"$$", "$$"},
		{"$x", "$x"},
	})
}

func TestMacro(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"{{{date}}}", "(MACRO date)"},
		{"{{{poem(a,b)}}}", "(MACRO poem a b)"},
		{"{{{poem( a , b )}}}", "(MACRO poem a b)"},
		{"{{{poem()}}}", "(MACRO poem)"},
		{"{{{}}}", "{{{}}}"},
	})
}

func TestEntity(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{`\alpha`, "(ENTITY alpha α)"},
		{`\rarr`, "(ENTITY rarr →)"},
		{`\nosuchentity`, "nosuchentity"},
		{`\`, `\`},
	})
}

func TestSnippet(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"@@html:<b>@@", "(SNIP html <b>)"},
		{"@@latex:\\em@@", "(SNIP latex \\em)"},
		{"@@html<b>@@", "@@html<b>@@"},
	})
}

func TestTimestamp(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"<2018-10-16 Tue>", "(DATE <2018-10-16 Tue>)"},
		{"<2018-10-16>", "(DATE <2018-10-16 Tue>)"},
		{"[2018-10-16 Tue]", "(DATE [2018-10-16 Tue])"},
		{"SCHEDULED: <2008-02-10 Sun +1w>", "(SCHEDULED <2008-02-10 Sun +1w>)"},
		{"DEADLINE: <2008-02-10 Sun ++1y>", "(DEADLINE <2008-02-10 Sun ++1y>)"},
		{"CLOSED: [2019-03-04 Mon 10:00]", "(CLOSED [2019-03-04 Mon 10:00])"},
		{"CLOCK: [2019-03-04 Mon 10:00]", "(CLOCK [2019-03-04 Mon 10:00])"},
		{"CLOCK: [2019-03-04 Mon 10:00]--[2019-03-04 Mon 11:30]",
			"(CLOCK [2019-03-04 Mon 10:00]--[2019-03-04 Mon 11:30])"},
		{"<2019-03-04 Mon>--<2019-03-06 Wed>", "(RANGE <2019-03-04 Mon>--<2019-03-06 Wed>)"},
		{"<2018-02-31 Sat>", "<2018-02-31 Sat>"},
		{"<not a date>", "<not a date>"},
	})
}

// --------------------------------------------------------------------------

// TestVisitor serializes the abstract syntax tree to a string.
type TestVisitor struct {
	sb strings.Builder
}

func (tv *TestVisitor) String() string { return tv.sb.String() }

func (tv *TestVisitor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.InlineSlice:
		tv.walkInlines(*n)
	case *ast.TextNode:
		tv.sb.WriteString(n.Text)
	case *ast.BreakNode:
		tv.sb.WriteString("SB")
	case *ast.FormatNode:
		fmt.Fprintf(&tv.sb, "{%c", mapFormatKind[n.Kind])
		tv.walkInlines(n.Inlines)
		tv.sb.WriteByte('}')
	case *ast.LiteralNode:
		tv.sb.WriteByte('{')
		if n.Kind == ast.LiteralCode {
			tv.sb.WriteByte('~')
		} else {
			tv.sb.WriteByte('=')
		}
		tv.sb.WriteByte(' ')
		tv.sb.Write(n.Content)
		tv.sb.WriteByte('}')
	case *ast.LinkNode:
		fmt.Fprintf(&tv.sb, "(LINK %s %v", mapRefKind[n.Ref.Kind], n.Ref)
		tv.walkInlines(n.Inlines)
		tv.sb.WriteByte(')')
	case *ast.TargetNode:
		if n.Radio {
			tv.sb.WriteString("(RADIO ")
		} else {
			tv.sb.WriteString("(TARGET ")
		}
		tv.sb.WriteString(n.Text)
		if n.Fragment != "" {
			tv.sb.WriteString(" #")
			tv.sb.WriteString(n.Fragment)
		}
		tv.sb.WriteByte(')')
	case *ast.FootnoteNode:
		tv.sb.WriteString("(FN ")
		tv.sb.WriteString(n.Name)
		tv.walkInlines(n.Inlines)
		tv.sb.WriteByte(')')
	case *ast.CookieNode:
		if n.Kind == ast.CookieAbsolute {
			fmt.Fprintf(&tv.sb, "(COOKIE %d/%d)", n.Current, n.Max)
		} else {
			fmt.Fprintf(&tv.sb, "(COOKIE %d%%)", n.Percent)
		}
	case *ast.MathNode:
		if n.Display {
			tv.sb.WriteString("{$$ ")
		} else {
			tv.sb.WriteString("{$ ")
		}
		tv.sb.Write(n.Content)
		tv.sb.WriteByte('}')
	case *ast.MacroNode:
		tv.sb.WriteString("(MACRO ")
		tv.sb.WriteString(n.Name)
		for _, arg := range n.Args {
			tv.sb.WriteByte(' ')
			tv.sb.WriteString(arg)
		}
		tv.sb.WriteByte(')')
	case *ast.EntityNode:
		fmt.Fprintf(&tv.sb, "(ENTITY %s %s)", n.Entity.Name, n.Entity.Unicode)
	case *ast.TimestampNode:
		tv.visitTimestamp(n)
	case *ast.SnippetNode:
		fmt.Fprintf(&tv.sb, "(SNIP %s %s)", n.Backend, n.Content)
	default:
		return tv
	}
	return nil
}

func (tv *TestVisitor) walkInlines(ins ast.InlineSlice) {
	for _, in := range ins {
		tv.sb.WriteByte(' ')
		ast.Walk(tv, in)
	}
}

var mapFormatKind = map[ast.FormatKind]rune{
	ast.FormatBold:   '*',
	ast.FormatItalic: '/',
	ast.FormatUnder:  '_',
	ast.FormatStrike: '+',
	ast.FormatSuper:  '^',
	ast.FormatSub:    ',',
}

var mapRefKind = map[ast.RefKind]string{
	ast.RefInvalid: "INVALID",
	ast.RefFile:    "FILE",
	ast.RefSearch:  "SEARCH",
	ast.RefComplex: "COMPLEX",
}

var mapTimestampKind = map[ast.TimestampKind]string{
	ast.TimestampDate:      "DATE",
	ast.TimestampScheduled: "SCHEDULED",
	ast.TimestampDeadline:  "DEADLINE",
	ast.TimestampClosed:    "CLOSED",
	ast.TimestampClock:     "CLOCK",
	ast.TimestampRange:     "RANGE",
}

func (tv *TestVisitor) visitTimestamp(tn *ast.TimestampNode) {
	fmt.Fprintf(&tv.sb, "(%s ", mapTimestampKind[tn.Kind])
	tv.writeStamp(&tn.Start)
	if tn.Stop != nil {
		tv.sb.WriteString("--")
		tv.writeStamp(tn.Stop)
	}
	tv.sb.WriteByte(')')
}

func (tv *TestVisitor) writeStamp(stamp *ast.Stamp) {
	if stamp.Active {
		tv.sb.WriteByte('<')
	} else {
		tv.sb.WriteByte('[')
	}
	tv.sb.WriteString(stamp.Date.String())
	tv.sb.WriteByte(' ')
	tv.sb.WriteString(stamp.Date.WeekdayName())
	if stamp.Clock != nil {
		tv.sb.WriteByte(' ')
		tv.sb.WriteString(stamp.Clock.String())
	}
	if stamp.Rep != nil {
		tv.sb.WriteByte(' ')
		tv.sb.WriteString(stamp.Rep.String())
	}
	if stamp.Active {
		tv.sb.WriteByte('>')
	} else {
		tv.sb.WriteByte(']')
	}
}
