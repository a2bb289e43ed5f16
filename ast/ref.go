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

// Reference is the classified url of a link.
type Reference struct {
	Value    string  // Verbatim url text.
	Kind     RefKind // How the url is to be interpreted.
	Protocol string  // Protocol of a complex url.
	Link     string  // Rest of a complex url, after the colon.
}

// RefKind indicates how the url of a reference is to be interpreted.
type RefKind int

// Constants for RefKind.
const (
	RefInvalid RefKind = iota // Invalid reference.
	RefFile                   // Reference into the file system.
	RefSearch                 // Search term inside the document.
	RefComplex                // protocol:rest, e.g. an external url.
)

// ParseReference classifies a string and returns it as a reference.
func ParseReference(s string) *Reference {
	if len(s) > 0 && (s[0] == '/' || s[0] == '.') {
		return &Reference{Value: s, Kind: RefFile}
	}
	if protocol, link, ok := scanProtocol(s); ok {
		return &Reference{Value: s, Kind: RefComplex, Protocol: protocol, Link: link}
	}
	return &Reference{Value: s, Kind: RefSearch}
}

// scanProtocol splits "protocol:rest". The protocol must start with a
// letter; a failed scan degrades the url to a search term.
func scanProtocol(s string) (protocol, link string, ok bool) {
	if len(s) == 0 || !isProtocolStart(s[0]) {
		return "", "", false
	}
	for i := 1; i < len(s); i++ {
		ch := s[i]
		if ch == ':' {
			return s[:i], s[i+1:], true
		}
		if !isProtocolRune(ch) {
			return "", "", false
		}
	}
	return "", "", false
}

func isProtocolStart(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isProtocolRune(ch byte) bool {
	return isProtocolStart(ch) || ('0' <= ch && ch <= '9') || ch == '+' || ch == '-' || ch == '.'
}

// String returns the verbatim url text.
func (r *Reference) String() string {
	if r == nil {
		return ""
	}
	return r.Value
}

// IsValid returns true if the reference was classified.
func (r *Reference) IsValid() bool { return r != nil && r.Kind != RefInvalid }
