//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of Orgmark.
//
// Orgmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast_test

import (
	"testing"

	"t73f.de/r/org/ast"
)

func TestParseReference(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		link string
		kind ast.RefKind
	}{
		{"", ast.RefSearch},
		{"12345678901234", ast.RefSearch},
		{"some term", ast.RefSearch},
		{"12345678901234#local", ast.RefSearch},
		{"http://t73f.de/r/org", ast.RefComplex},
		{"https://x.org", ast.RefComplex},
		{"mailto:me@example.com", ast.RefComplex},
		{"/hosted", ast.RefFile},
		{"./file.png", ast.RefFile},
		{"../dir/file.org", ast.RefFile},
		{"100:200", ast.RefSearch},
	}
	for i, tc := range testcases {
		ref := ast.ParseReference(tc.link)
		if ref.Kind != tc.kind {
			t.Errorf("%d: %q has kind %v, but expected %v", i, tc.link, ref.Kind, tc.kind)
		}
		if got := ref.String(); got != tc.link {
			t.Errorf("%d: %q has string representation %q", i, tc.link, got)
		}
		if !ref.IsValid() {
			t.Errorf("%d: %q must be a valid reference", i, tc.link)
		}
	}
	var nilRef *ast.Reference
	if nilRef.IsValid() {
		t.Error("A nil reference must not be valid")
	}
}

func TestReferenceProtocol(t *testing.T) {
	t.Parallel()
	ref := ast.ParseReference("https://x.org/path")
	if ref.Protocol != "https" {
		t.Errorf("protocol is %q, but expected %q", ref.Protocol, "https")
	}
	if ref.Link != "//x.org/path" {
		t.Errorf("link is %q, but expected %q", ref.Link, "//x.org/path")
	}
}
