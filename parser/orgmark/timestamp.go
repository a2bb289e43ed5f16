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
	"strings"

	"t73f.de/r/org/ast"
	"t73f.de/r/org/datetime"
	"t73f.de/r/org/input"
)

// parseTimestamp dispatches on the planning keyword, if any, and falls
// back to a bare stamp or stamp range.
func (cp *omkP) parseTimestamp() (ast.InlineNode, bool) {
	inp := cp.inp
	switch inp.Ch {
	case 'S':
		if inp.Accept("SCHEDULED:") {
			return cp.parseStampAfterKeyword(ast.TimestampScheduled)
		}
	case 'D':
		if inp.Accept("DEADLINE:") {
			return cp.parseStampAfterKeyword(ast.TimestampDeadline)
		}
	case 'C':
		if inp.Accept("CLOSED:") {
			return cp.parseStampAfterKeyword(ast.TimestampClosed)
		}
		if inp.Accept("CLOCK:") {
			return cp.parseClock()
		}
	case '<', '[':
		return cp.parseStampOrRange()
	}
	return nil, false
}

func (cp *omkP) parseStampAfterKeyword(kind ast.TimestampKind) (ast.InlineNode, bool) {
	cp.skipSpace()
	stamp, ok := cp.scanStamp()
	if !ok {
		return nil, false
	}
	return &ast.TimestampNode{Kind: kind, Start: stamp}, true
}

func (cp *omkP) parseClock() (ast.InlineNode, bool) {
	cp.skipSpace()
	start, ok := cp.scanStamp()
	if !ok {
		return nil, false
	}
	tn := &ast.TimestampNode{Kind: ast.TimestampClock, Start: start}
	if cp.inp.Accept("--") {
		stop, ok2 := cp.scanStamp()
		if !ok2 {
			return nil, false
		}
		tn.Stop = &stop
	}
	return tn, true
}

func (cp *omkP) parseStampOrRange() (ast.InlineNode, bool) {
	start, ok := cp.scanStamp()
	if !ok {
		return nil, false
	}
	if cp.inp.Accept("--") {
		stop, ok2 := cp.scanStamp()
		if !ok2 {
			return nil, false
		}
		return &ast.TimestampNode{Kind: ast.TimestampRange, Start: start, Stop: &stop}, true
	}
	return &ast.TimestampNode{Kind: ast.TimestampDate, Start: start}, true
}

// scanStamp scans one "<...>" or "[...]" stamp.
func (cp *omkP) scanStamp() (ast.Stamp, bool) {
	inp := cp.inp
	var closer rune
	active := false
	switch inp.Ch {
	case '<':
		closer, active = '>', true
	case '[':
		closer = ']'
	default:
		return ast.Stamp{}, false
	}
	inp.Next()
	pos := inp.Pos
	for inp.Ch != closer {
		if input.IsEOLEOS(inp.Ch) {
			return ast.Stamp{}, false
		}
		inp.Next()
	}
	body := string(inp.Src[pos:inp.Pos])
	inp.Next()
	stamp, ok := scanStampBody(body)
	if !ok {
		return ast.Stamp{}, false
	}
	stamp.Active = active
	return stamp, true
}

// scanStampBody interprets the inside of a stamp: a date, an ignored
// day name, and up to two of clock / repeater.
func scanStampBody(body string) (ast.Stamp, bool) {
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return ast.Stamp{}, false
	}
	date, ok := datetime.ParseDate(fields[0])
	if !ok {
		return ast.Stamp{}, false
	}
	stamp := ast.Stamp{Date: date}
	var extras []string
	for _, field := range fields[1:] {
		if field[0] == '+' || field[0] == '.' {
			extras = append(extras, field)
			continue
		}
		if _, isClock := datetime.ParseClock(field); isClock {
			extras = append(extras, field)
		}
		// Anything else is taken as a day name and ignored.
	}
	switch len(extras) {
	case 0:
		return stamp, true
	case 1:
		if extras[0][0] == '+' || extras[0][0] == '.' {
			rep, ok2 := datetime.ParseRepetition(extras[0])
			if !ok2 {
				return ast.Stamp{}, false
			}
			stamp.Rep = &rep
			return stamp, true
		}
		clock, ok2 := datetime.ParseClock(extras[0])
		if !ok2 {
			return ast.Stamp{}, false
		}
		stamp.Clock = &clock
		return stamp, true
	case 2:
		clock, ok2 := datetime.ParseClock(extras[0])
		if !ok2 {
			return ast.Stamp{}, false
		}
		rep, ok3 := datetime.ParseRepetition(extras[1])
		if !ok3 {
			return ast.Stamp{}, false
		}
		stamp.Clock = &clock
		stamp.Rep = &rep
		return stamp, true
	}
	return ast.Stamp{}, false
}
