//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of Orgmark.
//
// Orgmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package cleaner provides functions to clean up the parsed AST.
package cleaner

import (
	"strconv"

	"t73f.de/r/org/ast"
	"t73f.de/r/org/strfun"
)

// CleanInlineSlice gives every link target in the slice a slug and a
// fragment that is unique within the slice.
func CleanInlineSlice(is *ast.InlineSlice) {
	cv := cleanVisitor{}
	ast.Walk(&cv, is)
}

type cleanVisitor struct {
	ids map[string]ast.Node
}

func (cv *cleanVisitor) Visit(node ast.Node) ast.Visitor {
	if n, ok := node.(*ast.TargetNode); ok {
		cv.visitTarget(n)
		return nil
	}
	return cv
}

func (cv *cleanVisitor) visitTarget(tn *ast.TargetNode) {
	if tn.Slug == "" {
		tn.Slug = strfun.Slugify(tn.Text)
	}
	if tn.Slug != "" {
		tn.Fragment = cv.addIdentifier(tn.Slug, tn)
	}
}

func (cv *cleanVisitor) addIdentifier(id string, node ast.Node) string {
	if cv.ids == nil {
		cv.ids = map[string]ast.Node{id: node}
		return id
	}
	if n, ok := cv.ids[id]; ok && n != node {
		prefix := id + "-"
		for count := 1; ; count++ {
			newID := prefix + strconv.Itoa(count)
			if n, ok := cv.ids[newID]; !ok || n == node {
				cv.ids[newID] = node
				return newID
			}
		}
	}
	cv.ids[id] = node
	return id
}
