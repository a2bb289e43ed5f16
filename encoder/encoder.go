//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of Orgmark.
//
// Orgmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package encoder provides a generic interface to encode the abstract syntax
// tree into some text form.
package encoder

import (
	"fmt"
	"io"
	"sort"

	"t73f.de/r/org/ast"
)

// Encoder is an interface that allows to encode an inline sequence.
type Encoder interface {
	WriteInlines(io.Writer, *ast.InlineSlice) (int, error)
}

// Create builds a new encoder for the given encoding name.
func Create(encoding string) Encoder {
	if create, ok := registry[encoding]; ok {
		return create()
	}
	return nil
}

var registry = map[string]func() Encoder{}

// Register the encoder for later retrieval.
func Register(encoding string, create func() Encoder) {
	if _, ok := registry[encoding]; ok {
		panic(fmt.Sprintf("Encoder %q already registered", encoding))
	}
	registry[encoding] = create
}

// GetEncodings returns all registered encodings, sorted by name.
func GetEncodings() []string {
	result := make([]string, 0, len(registry))
	for encoding := range registry {
		result = append(result, encoding)
	}
	sort.Strings(result)
	return result
}
