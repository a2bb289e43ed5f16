//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of Orgmark.
//
// Orgmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package sexprenc encodes the abstract syntax tree into a s-expr.
package sexprenc

import (
	"io"

	"t73f.de/r/org/ast"
	"t73f.de/r/org/encoder"
)

func init() {
	encoder.Register("sexpr", func() encoder.Encoder { return Create() })
}

// Create a S-expr encoder.
func Create() *Encoder { return &Encoder{t: NewTransformer()} }

type Encoder struct {
	t *Transformer
}

// WriteInlines writes an inline slice to the writer.
func (se *Encoder) WriteInlines(w io.Writer, is *ast.InlineSlice) (int, error) {
	b := encoder.NewBufWriter(w)
	if err := se.t.GetSexpr(is).Print(&b); err != nil {
		return 0, err
	}
	return b.Flush()
}
