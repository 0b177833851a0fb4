// Copyright 2026 The Stylelint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplifystyle

import (
	"go/ast"

	"go/token"
	astutil "golang.org/x/tools/go/ast/astutil"
)

// simplifyList walks the items of a style list left to right and
// reports one simplification per finding. close is the position of
// the container's closing delimiter, bounding separator queries for
// the last item.
//
// The merge case looks exactly one item ahead and consumes both items
// it fuses; a run of three or more mergeable fragments converges over
// repeated applications of the fixes, not in one pass.
func (c *checker) simplifyList(items []ast.Expr, close token.Pos) {
	info := c.pass.TypesInfo
	for i := 0; i < len(items); i++ {
		inner := astutil.Unparen(items[i])
		limit := close
		if i+1 < len(items) {
			limit = items[i+1].Pos()
		}

		switch classify(info, inner) {
		case shapeList:
			lit := inner.(*ast.CompositeLit)
			if len(lit.Elts) == 1 {
				c.report(lit.Pos(), lit.End(), msgSingletonList, fixSingletonList, collapseList(lit))
			}
			// A multi-element nested list keeps its own children;
			// they are not re-entered from here.

		case shapeCall:
			call := inner.(*ast.CallExpr)
			if isSingleton(call) {
				c.report(call.Pos(), call.End(), msgSingletonCall(), fixSingletonCall, collapseCall(call))
			}

		case shapeObject:
			obj := inner.(*ast.CompositeLit)
			if len(obj.Elts) == 0 {
				if len(items) == 1 {
					// Sole element: a collapse of the enclosing
					// singleton container targets the same spot, and
					// deleting both would leave no expression at all.
					// The leftover empty container is removed on the
					// next pass.
					continue
				}
				c.report(items[i].Pos(), items[i].End(), msgEmptyFragment, fixEmptyFragment,
					removeSpan(c.stream(obj.Pos()), items[i].Pos(), items[i].End(), limit))
				continue
			}
			if i+1 == len(items) {
				continue
			}
			// Parenthesized operands own their parentheses; fusing
			// across them would strand an unmatched pair.
			if items[i] != inner || items[i+1] != astutil.Unparen(items[i+1]) {
				continue
			}
			next, ok := items[i+1].(*ast.CompositeLit)
			if !ok || classify(info, next) != shapeObject || len(next.Elts) == 0 {
				continue
			}
			if !canMerge(info, obj, next) {
				continue
			}
			if edits := mergeObjects(c.stream(obj.Pos()), obj, next); len(edits) > 0 {
				c.report(obj.Pos(), next.End(), msgMergeObjects, fixMergeObjects, edits)
				i++ // the fused neighbor is consumed
			}
		}
	}
}
