//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of Orgmark.
//
// Orgmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast

import (
	"t73f.de/r/org/datetime"
	"t73f.de/r/org/entity"
)

// Definitions of inline nodes.

// TextNode just contains some text.
type TextNode struct {
	Text string // The text itself.
}

func (*TextNode) inlineNode() {}

// WalkChildren does nothing.
func (*TextNode) WalkChildren(Visitor) { /* No children*/ }

// --------------------------------------------------------------------------

// BreakNode signals an explicit line break.
type BreakNode struct{}

func (*BreakNode) inlineNode() {}

// WalkChildren does nothing.
func (*BreakNode) WalkChildren(Visitor) { /* No children*/ }

// --------------------------------------------------------------------------

// FormatNode specifies a styled span of inline markup.
type FormatNode struct {
	Kind    FormatKind
	Inlines InlineSlice
}

// FormatKind specifies the format that is applied to the inline nodes.
type FormatKind int

// Constants for FormatKind.
const (
	_            FormatKind = iota
	FormatBold              // Bold text.
	FormatItalic            // Italic text.
	FormatUnder             // Underlined text.
	FormatStrike            // Struck-through text.
	FormatSuper             // Superscripted text.
	FormatSub               // Subscripted text.
)

func (*FormatNode) inlineNode() {}

// WalkChildren walks to the formatted text.
func (fn *FormatNode) WalkChildren(v Visitor) { WalkInlineSlice(v, fn.Inlines) }

// --------------------------------------------------------------------------

// LiteralNode specifies some uninterpreted text.
type LiteralNode struct {
	Kind    LiteralKind
	Content []byte
}

// LiteralKind specifies the kind of literal inline nodes.
type LiteralKind int

// Constants for LiteralKind.
const (
	_               LiteralKind = iota
	LiteralCode                 // Inline code, rendered in monospace.
	LiteralVerbatim             // Verbatim text, emitted as-is.
)

func (*LiteralNode) inlineNode() {}

// WalkChildren does nothing.
func (*LiteralNode) WalkChildren(Visitor) { /* No children*/ }

// --------------------------------------------------------------------------

// LinkNode contains the specified link.
type LinkNode struct {
	Ref     *Reference
	Inlines InlineSlice // The text associated with the link.
	OnlyRef bool        // True if no label was specified.
}

func (*LinkNode) inlineNode() {}

// WalkChildren walks to the link label.
func (ln *LinkNode) WalkChildren(v Visitor) { WalkInlineSlice(v, ln.Inlines) }

// --------------------------------------------------------------------------

// TargetNode contains a named anchor point inside the text. A radio target
// is additionally auto-linked from every other occurrence of its text.
type TargetNode struct {
	Text     string
	Radio    bool
	Slug     string // Computed slug of Text, set by the cleaner.
	Fragment string // Unique form of Slug, set by the cleaner.
}

func (*TargetNode) inlineNode() {}

// WalkChildren does nothing.
func (*TargetNode) WalkChildren(Visitor) { /* No children*/ }

// --------------------------------------------------------------------------

// FootnoteNode contains a footnote reference, optionally with an inline
// definition. An anonymous reference gets a session-unique generated name.
type FootnoteNode struct {
	Name    string
	Inlines InlineSlice // The definition text, nil if not given inline.
}

func (*FootnoteNode) inlineNode() {}

// WalkChildren walks to the footnote definition.
func (fn *FootnoteNode) WalkChildren(v Visitor) { WalkInlineSlice(v, fn.Inlines) }

// --------------------------------------------------------------------------

// CookieNode contains a statistics cookie, i.e. a progress indicator.
type CookieNode struct {
	Kind         CookieKind
	Current, Max int // Set for CookieAbsolute.
	Percent      int // Set for CookiePercent.
}

// CookieKind distinguishes the two cookie forms.
type CookieKind int

// Constants for CookieKind.
const (
	_              CookieKind = iota
	CookiePercent             // [50%]
	CookieAbsolute            // [3/10]
)

func (*CookieNode) inlineNode() {}

// WalkChildren does nothing.
func (*CookieNode) WalkChildren(Visitor) { /* No children*/ }

// --------------------------------------------------------------------------

// MathNode contains a LaTeX fragment.
type MathNode struct {
	Display bool // Displayed fragment, in contrast to an inline one.
	Content []byte
}

func (*MathNode) inlineNode() {}

// WalkChildren does nothing.
func (*MathNode) WalkChildren(Visitor) { /* No children*/ }

// --------------------------------------------------------------------------

// MacroNode contains a macro call. Only recognition is done here, macro
// expansion is up to the caller.
type MacroNode struct {
	Name string
	Args []string
}

func (*MacroNode) inlineNode() {}

// WalkChildren does nothing.
func (*MacroNode) WalkChildren(Visitor) { /* No children*/ }

// --------------------------------------------------------------------------

// EntityNode contains a named entity resolved to its glyph record.
// An unresolved name never reaches the tree: it degrades to a TextNode.
type EntityNode struct {
	Entity *entity.Entity
}

func (*EntityNode) inlineNode() {}

// WalkChildren does nothing.
func (*EntityNode) WalkChildren(Visitor) { /* No children*/ }

// --------------------------------------------------------------------------

// Stamp is one parsed point in time inside a timestamp node. Range
// endpoints are stamps, never full timestamp nodes.
type Stamp struct {
	Date   datetime.Date
	Clock  *datetime.Clock      // Optional time of day.
	Rep    *datetime.Repetition // Optional repeater.
	Active bool                 // Angle-bracket form, visible on agendas.
}

// TimestampNode contains a date, optionally with a time and a repetition
// rule.
type TimestampNode struct {
	Kind  TimestampKind
	Start Stamp
	Stop  *Stamp // Set for TimestampRange and for a stopped clock.
}

// TimestampKind specifies the role of a timestamp.
type TimestampKind int

// Constants for TimestampKind.
const (
	_                  TimestampKind = iota
	TimestampDate                    // Bare timestamp.
	TimestampScheduled               // SCHEDULED: keyword.
	TimestampDeadline                // DEADLINE: keyword.
	TimestampClosed                  // CLOSED: keyword.
	TimestampClock                   // CLOCK: keyword; Stop != nil if the clock was stopped.
	TimestampRange                   // timestamp--timestamp.
)

func (*TimestampNode) inlineNode() {}

// WalkChildren does nothing.
func (*TimestampNode) WalkChildren(Visitor) { /* No children*/ }

// --------------------------------------------------------------------------

// SnippetNode contains an export snippet for a specific backend.
type SnippetNode struct {
	Backend string
	Content string
}

func (*SnippetNode) inlineNode() {}

// WalkChildren does nothing.
func (*SnippetNode) WalkChildren(Visitor) { /* No children*/ }
