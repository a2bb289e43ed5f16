//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of Orgmark.
//
// Orgmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package entity_test

import (
	"testing"

	"t73f.de/r/org/entity"
)

func TestLookup(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		name  string
		glyph string
	}{
		{"alpha", "α"},
		{"Omega", "Ω"},
		{"rarr", "→"},
		{"to", "→"},
		{"nbsp", " "},
		{"euro", "€"},
		{"neq", "≠"},
	}
	for _, tc := range testcases {
		e, found := entity.Lookup(tc.name)
		if !found {
			t.Errorf("name %q not found", tc.name)
			continue
		}
		if e.Unicode != tc.glyph {
			t.Errorf("name %q: expected glyph %q, but got %q", tc.name, tc.glyph, e.Unicode)
		}
		if e.Name != tc.name {
			t.Errorf("record for %q carries name %q", tc.name, e.Name)
		}
	}
}

func TestLookupMiss(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"", "nosuchentity", "ALPHA", "alphaa"} {
		if e, found := entity.Lookup(name); found {
			t.Errorf("name %q unexpectedly resolved to %v", name, e)
		}
	}
}
