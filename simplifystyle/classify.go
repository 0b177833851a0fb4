// Copyright 2026 The Stylelint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplifystyle

import (
	"go/ast"

	"go/types"
	astutil "golang.org/x/tools/go/ast/astutil"
)

// shape is the closed set of expression forms the analyzer knows how
// to simplify. Anything else is shapeOther and is never touched.
type shape int

const (
	shapeOther  shape = iota
	shapeEmpty        // predeclared nil: the cascade identity
	shapeList         // slice- or array-typed composite literal
	shapeCall         // call to the composition function
	shapeObject       // map- or struct-typed composite literal
)

func (s shape) String() string {
	switch s {
	case shapeEmpty:
		return "empty"
	case shapeList:
		return "list"
	case shapeCall:
		return "call"
	case shapeObject:
		return "object"
	default:
		return "other"
	}
}

// classify maps an expression to its shape. It is a pure function of
// the node and the type information; unrecognized forms (conditionals
// behind function calls, selectors, literals of other types) are
// shapeOther.
func classify(info *types.Info, e ast.Expr) shape {
	e = astutil.Unparen(e)

	if tv, ok := info.Types[e]; ok && tv.IsNil() {
		return shapeEmpty
	}

	switch e := e.(type) {
	case *ast.CallExpr:
		if isStyleCall(e) {
			return shapeCall
		}
	case *ast.CompositeLit:
		tv, ok := info.Types[e]
		if !ok || tv.Type == nil {
			break
		}
		switch tv.Type.Underlying().(type) {
		case *types.Slice, *types.Array:
			return shapeList
		case *types.Map, *types.Struct:
			return shapeObject
		}
	}
	return shapeOther
}

// isStyleCall reports whether call invokes the composition function.
// The match is by callee name, like the attribute match: the rule is
// configured per codebase, not per package path.
func isStyleCall(call *ast.CallExpr) bool {
	switch fun := astutil.Unparen(call.Fun).(type) {
	case *ast.Ident:
		return fun.Name == mergeFunc
	case *ast.SelectorExpr:
		return fun.Sel.Name == mergeFunc
	}
	return false
}

// isSingleton reports whether e is a one-element list or a
// one-argument call. A call spreading a slice argument has an
// unknowable length and is never a singleton.
func isSingleton(e ast.Expr) bool {
	switch e := astutil.Unparen(e).(type) {
	case *ast.CompositeLit:
		return len(e.Elts) == 1
	case *ast.CallExpr:
		return len(e.Args) == 1 && !e.Ellipsis.IsValid()
	}
	return false
}
