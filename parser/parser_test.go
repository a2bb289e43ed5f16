//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of Orgmark.
//
// Orgmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package parser_test provides tests for the parser registry.
package parser_test

import (
	"testing"

	"t73f.de/r/org/parser"

	_ "t73f.de/r/org/parser/markdown" // Allow to use markdown parser.
	_ "t73f.de/r/org/parser/orgmark"  // Allow to use the Org parser.
	_ "t73f.de/r/org/parser/plain"    // Allow to use plain parser.
)

func TestParserType(t *testing.T) {
	syntaxSet := map[string]bool{}
	for _, syntax := range parser.GetSyntaxes() {
		syntaxSet[syntax] = true
	}
	testCases := []struct {
		syntax string
		isAST  bool
	}{
		{"org", true},
		{"orgmode", true},
		{"org-mode", true},
		{"markdown", true},
		{"md", true},
		{"txt", false},
		{"plain", false},
		{"text", false},
	}
	for _, tc := range testCases {
		delete(syntaxSet, tc.syntax)
		if got := parser.IsASTParser(tc.syntax); got != tc.isAST {
			t.Errorf("Syntax %q is AST: %v, but got %v", tc.syntax, tc.isAST, got)
		}
	}
	for syntax := range syntaxSet {
		t.Errorf("Forgot to test syntax %q", syntax)
	}
	if parser.IsASTParser("no-such-syntax") {
		t.Error("An unregistered syntax must not be an AST parser")
	}
}

func TestGetFallback(t *testing.T) {
	pi := parser.Get("no-such-syntax")
	if pi == nil || pi.Name != "txt" {
		t.Errorf("Expected the plain text parser as fallback, got %v", pi)
	}
}
