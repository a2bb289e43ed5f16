//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of Orgmark.
//
// Orgmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package datetime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"t73f.de/r/org/datetime"
)

func TestParseDate(t *testing.T) {
	t.Parallel()
	d, ok := datetime.ParseDate("2018-10-16")
	assert.True(t, ok)
	assert.Equal(t, datetime.Date{Year: 2018, Month: 10, Day: 16}, d)
	assert.Equal(t, "2018-10-16", d.String())
	assert.Equal(t, "Tue", d.WeekdayName())
	assert.False(t, d.IsZero())
	assert.True(t, datetime.Date{}.IsZero())

	for _, s := range []string{
		"", "2018", "2018-10", "2018-10-1", "2018-10-161",
		"2018/10/16", "2018-13-01", "2018-02-31", "20x8-10-16",
	} {
		_, ok := datetime.ParseDate(s)
		assert.False(t, ok, "input %q", s)
	}
}

func TestParseClock(t *testing.T) {
	t.Parallel()
	c, ok := datetime.ParseClock("12:30")
	assert.True(t, ok)
	assert.Equal(t, datetime.Clock{Hour: 12, Minute: 30}, c)
	assert.Equal(t, "12:30", c.String())

	c, ok = datetime.ParseClock("9:05")
	assert.True(t, ok)
	assert.Equal(t, "09:05", c.String())

	for _, s := range []string{"", "12", "12:", "12:3", "12:345", "24:00", "12:60", "ab:cd"} {
		_, ok := datetime.ParseClock(s)
		assert.False(t, ok, "input %q", s)
	}
}

func TestParseRepetition(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		token string
		kind  datetime.RepetitionKind
		value int
		unit  byte
	}{
		{"+1w", datetime.RepeatCumulate, 1, 'w'},
		{"++2d", datetime.RepeatCatchUp, 2, 'd'},
		{".+3m", datetime.RepeatRestart, 3, 'm'},
		{"+12h", datetime.RepeatCumulate, 12, 'h'},
		{"+1y", datetime.RepeatCumulate, 1, 'y'},
	}
	for _, tc := range testcases {
		r, ok := datetime.ParseRepetition(tc.token)
		assert.True(t, ok, "token %q", tc.token)
		assert.Equal(t, datetime.Repetition{Kind: tc.kind, Value: tc.value, Unit: tc.unit}, r)
		assert.Equal(t, tc.token, r.String())
	}

	for _, s := range []string{"", "+", "++", ".+", "+w", "+1", "+0w", "+1x", "-1w", "1w"} {
		_, ok := datetime.ParseRepetition(s)
		assert.False(t, ok, "token %q", s)
	}
}
