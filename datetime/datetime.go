//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of Orgmark.
//
// Orgmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package datetime provides the date, time and repeater values used by
// timestamps. All functions are pure, the timestamp grammar itself lives
// in the inline parser.
package datetime

import (
	"fmt"
	"time"
)

// Date is a calendar date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate scans a date of the form "2006-01-02". Anything else fails.
func ParseDate(s string) (Date, bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return Date{}, false
	}
	year, ok := scanNumber(s[0:4])
	if !ok {
		return Date{}, false
	}
	month, ok := scanNumber(s[5:7])
	if !ok {
		return Date{}, false
	}
	day, ok := scanNumber(s[8:10])
	if !ok {
		return Date{}, false
	}
	// Reject dates like 2018-02-31 that the calendar would normalize away.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}

// String returns the canonical "2006-01-02" form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// WeekdayName returns the three-letter English day name, as written
// inside timestamps.
func (d Date) WeekdayName() string {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return t.Weekday().String()[:3]
}

// IsZero returns true if the date was not set.
func (d Date) IsZero() bool { return d == Date{} }

// Clock is a time of day.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock scans a clock time of the form "15:04" or "9:04".
func ParseClock(s string) (Clock, bool) {
	sep := -1
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			sep = i
			break
		}
	}
	if sep < 1 || sep > 2 || len(s)-sep != 3 {
		return Clock{}, false
	}
	hour, ok := scanNumber(s[:sep])
	if !ok || hour > 23 {
		return Clock{}, false
	}
	minute, ok := scanNumber(s[sep+1:])
	if !ok || minute > 59 {
		return Clock{}, false
	}
	return Clock{Hour: hour, Minute: minute}, true
}

// String returns the canonical "15:04" form.
func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

// RepetitionKind describes how a repeater advances the date.
type RepetitionKind int

// Constants for RepetitionKind.
const (
	_             RepetitionKind = iota
	RepeatCumulate               // "+": shift by the interval.
	RepeatCatchUp                // "++": shift by the interval until the date is in the future.
	RepeatRestart                // ".+": restart from today.
)

// Repetition is a rule for advancing a timestamp on each occurrence.
type Repetition struct {
	Kind  RepetitionKind
	Value int
	Unit  byte // One of 'h', 'd', 'w', 'm', 'y'.
}

// ParseRepetition scans a repeater token like "+1w", "++2d" or ".+3m".
func ParseRepetition(s string) (Repetition, bool) {
	var kind RepetitionKind
	switch {
	case len(s) > 1 && s[0] == '+' && s[1] == '+':
		kind, s = RepeatCatchUp, s[2:]
	case len(s) > 1 && s[0] == '.' && s[1] == '+':
		kind, s = RepeatRestart, s[2:]
	case len(s) > 0 && s[0] == '+':
		kind, s = RepeatCumulate, s[1:]
	default:
		return Repetition{}, false
	}
	if len(s) < 2 {
		return Repetition{}, false
	}
	unit := s[len(s)-1]
	switch unit {
	case 'h', 'd', 'w', 'm', 'y':
	default:
		return Repetition{}, false
	}
	value, ok := scanNumber(s[:len(s)-1])
	if !ok || value == 0 {
		return Repetition{}, false
	}
	return Repetition{Kind: kind, Value: value, Unit: unit}, true
}

// String returns the canonical repeater token.
func (r Repetition) String() string {
	var lead string
	switch r.Kind {
	case RepeatCumulate:
		lead = "+"
	case RepeatCatchUp:
		lead = "++"
	case RepeatRestart:
		lead = ".+"
	}
	return fmt.Sprintf("%s%d%c", lead, r.Value, r.Unit)
}

func scanNumber(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || '9' < ch {
			return 0, false
		}
		n = 10*n + int(ch-'0')
	}
	return n, true
}
