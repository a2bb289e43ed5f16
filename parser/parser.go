//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of Orgmark.
//
// Orgmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package parser provides a generic interface to a range of different parsers.
package parser

import (
	"fmt"

	"t73f.de/r/org/ast"
	"t73f.de/r/org/input"
	"t73f.de/r/org/parser/cleaner"
)

// Info describes a single parser.
//
// Before ParseInlines() is called, ensure the input stream to be valid.
// This can be achieved on calling inp.Next() after the input stream
// was created.
type Info struct {
	Name         string
	AltNames     []string
	IsASTParser  bool
	ParseInlines func(*input.Input, *Session, string) ast.InlineSlice
}

var registry = map[string]*Info{}

// Register the parser (info) for later retrieval.
func Register(pi *Info) {
	if _, ok := registry[pi.Name]; ok {
		panic(fmt.Sprintf("Parser %q already registered", pi.Name))
	}
	registry[pi.Name] = pi
	for _, alt := range pi.AltNames {
		if _, ok := registry[alt]; ok {
			panic(fmt.Sprintf("Parser %q already registered", alt))
		}
		registry[alt] = pi
	}
}

// GetSyntaxes returns a list of syntaxes implemented by all registered parsers.
func GetSyntaxes() []string {
	result := make([]string, 0, len(registry))
	for syntax := range registry {
		result = append(result, syntax)
	}
	return result
}

// Get the parser (info) by name. If name not found, use the plain text parser.
func Get(name string) *Info {
	if pi := registry[name]; pi != nil {
		return pi
	}
	if pi := registry["txt"]; pi != nil {
		return pi
	}
	panic(fmt.Sprintf("No parser for %q found", name))
}

// IsASTParser returns whether the given syntax parses text into a real AST.
func IsASTParser(syntax string) bool {
	pi, ok := registry[syntax]
	if !ok {
		return false
	}
	return pi.IsASTParser
}

// Session owns all parse state that outlives a single grammar call.
// Independent sessions may run concurrently; one session must not.
type Session struct {
	anonFootnote int
}

// NewSession creates parse state for one sequence of related parse calls.
func NewSession() *Session { return &Session{} }

// NextFootnoteName returns a fresh generated name for an anonymous
// footnote reference. Names are never reused within a session; a user
// choosing the same pattern is not defended against.
func (s *Session) NextFootnoteName() string {
	s.anonFootnote++
	return fmt.Sprintf("_anon_%d", s.anonFootnote)
}

// ParseInlines parses some input and returns a slice of inline nodes.
// A nil session is allowed and behaves like a fresh one.
func ParseInlines(inp *input.Input, sess *Session, syntax string) ast.InlineSlice {
	if sess == nil {
		sess = NewSession()
	}
	is := Get(syntax).ParseInlines(inp, sess, syntax)
	cleaner.CleanInlineSlice(&is)
	return is
}
