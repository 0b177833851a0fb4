// Copyright 2026 The Stylelint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplifystyle

import (
	"go/ast"

	"go/token"
	astutil "golang.org/x/tools/go/ast/astutil"

	"golang.org/x/tools/go/analysis"

	"github.com/styledgo/stylelint/internal/tokenutil"
)

// This file plans the textual edits for each simplification. Every
// recipe returns edits with pairwise disjoint spans that touch only
// delimiter and separator tokens owned by the node it was given, so
// fixes emitted for different nodes in one pass can never collide.
// A recipe whose separator the Stream cannot resolve declines rather
// than guess at offsets; the edits that are emitted always leave the
// source well formed.

// removeSpan deletes [pos, end) and, if one lies before limit, the
// trailing separator after it. When the span is followed by another
// element that separator is mandatory, so without a token stream to
// find it no removal is planned at all.
func removeSpan(sep *tokenutil.Stream, pos, end, limit token.Pos) []analysis.TextEdit {
	if sep == nil {
		return nil
	}
	edits := []analysis.TextEdit{{Pos: pos, End: end}}
	if c, ok := sep.Between(end, limit, tokenutil.Is(token.COMMA)); ok {
		edits = append(edits, analysis.TextEdit{Pos: c.Pos, End: c.End()})
	}
	return edits
}

// collapseList reduces a one-element list literal to its element by
// deleting the surrounding type, braces, and any dangling separator.
func collapseList(lit *ast.CompositeLit) []analysis.TextEdit {
	elt := lit.Elts[0]
	return []analysis.TextEdit{
		{Pos: lit.Pos(), End: elt.Pos()},
		{Pos: elt.End(), End: lit.Rbrace + 1},
	}
}

// collapseCall reduces a one-argument composition call to its
// argument by deleting the callee, parentheses, and any dangling
// separator.
func collapseCall(call *ast.CallExpr) []analysis.TextEdit {
	arg := call.Args[0]
	return []analysis.TextEdit{
		{Pos: call.Pos(), End: arg.Pos()},
		{Pos: arg.End(), End: call.Rparen + 1},
	}
}

// callToList rewrites a multi-argument composition call as a list
// literal with the same elements, qualified the way the callee was.
// It returns nil when the callee qualifier cannot be derived or the
// call spreads a slice.
func callToList(call *ast.CallExpr) []analysis.TextEdit {
	if call.Ellipsis.IsValid() {
		return nil
	}
	qual, ok := listQualifier(call)
	if !ok {
		return nil
	}
	return []analysis.TextEdit{
		{Pos: call.Fun.Pos(), End: call.Lparen + 1, NewText: []byte(qual + listType + "{")},
		{Pos: call.Rparen, End: call.Rparen + 1, NewText: []byte("}")},
	}
}

// listQualifier returns the package qualifier ("styled." or "") that
// the replacement list literal must carry to resolve the same way the
// rewritten callee did.
func listQualifier(call *ast.CallExpr) (string, bool) {
	switch fun := astutil.Unparen(call.Fun).(type) {
	case *ast.Ident:
		return "", true
	case *ast.SelectorExpr:
		if x, ok := fun.X.(*ast.Ident); ok {
			return x.Name + ".", true
		}
	}
	return "", false
}

// mergeObjects fuses adjacent object fragments a and b by deleting
// a's closing brace and b's type and opening brace, so a's properties
// run directly into b's. The separator between a and b takes over as
// the property separator; when a already ends with a trailing comma,
// the list separator is deleted instead, since a comma pair would not
// parse. Without a token stream the trailing comma is unknowable, so
// no merge is planned at all.
func mergeObjects(sep *tokenutil.Stream, a, b *ast.CompositeLit) []analysis.TextEdit {
	if sep == nil {
		return nil
	}
	edits := []analysis.TextEdit{{Pos: a.Rbrace, End: a.Rbrace + 1}}
	if hasTrailingComma(sep, a) {
		if c, ok := sep.Between(a.End(), b.Pos(), tokenutil.Is(token.COMMA)); ok {
			edits = append(edits, analysis.TextEdit{Pos: c.Pos, End: c.End()})
		}
	}
	return append(edits, analysis.TextEdit{Pos: b.Pos(), End: b.Lbrace + 1})
}

// hasTrailingComma reports whether the last token inside lit's braces
// is a comma.
func hasTrailingComma(sep *tokenutil.Stream, lit *ast.CompositeLit) bool {
	t, ok := sep.Before(lit.Rbrace, func(token.Token) bool { return true })
	return ok && t.Kind == token.COMMA
}
