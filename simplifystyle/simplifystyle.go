// Copyright 2026 The Stylelint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplifystyle

import (
	"fmt"
	"go/ast"

	"go/token"
	"go/types"
	astutil "golang.org/x/tools/go/ast/astutil"
	"os"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/styledgo/stylelint/internal/tokenutil"
)

const Doc = `simplify style cascade expressions

This analyzer reports style attributes and composition calls that can
be written more directly without changing which style wins: empty
fragments and attributes, one-element lists and one-argument calls,
composition calls that are just list literals in disguise, and
adjacent object fragments with provably distinct keys. Each report
carries a suggested fix.`

var Analyzer = &analysis.Analyzer{
	Name:     "simplifystyle",
	Doc:      Doc,
	URL:      "https://pkg.go.dev/github.com/styledgo/stylelint/simplifystyle",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// The designated names are per-codebase configuration, not type
// information: the rule matches them syntactically wherever they
// appear.
var (
	mergeFunc  = "Merge"
	styleField = "Style"
	listType   = "List"
)

func init() {
	Analyzer.Flags.StringVar(&mergeFunc, "func", mergeFunc, "name of the style composition function")
	Analyzer.Flags.StringVar(&styleField, "field", styleField, "name of the style attribute field")
	Analyzer.Flags.StringVar(&listType, "list", listType, "name of the style list type")
}

// Diagnostic and fix messages, one pair per simplification.
const (
	msgEmptyAttr     = "empty style attribute can be removed"
	fixEmptyAttr     = "Remove empty style attribute"
	msgEmptyFragment = "empty style fragment can be removed"
	fixEmptyFragment = "Remove empty style fragment"
	msgSingletonList = "style list with a single element can be reduced to that element"
	fixSingletonList = "Replace list with its element"
	fixSingletonCall = "Replace call with its argument"
	fixCallToList    = "Replace call with list literal"
	msgMergeObjects  = "adjacent style objects with distinct keys can be merged"
	fixMergeObjects  = "Merge adjacent style objects"
)

func msgSingletonCall() string {
	return fmt.Sprintf("%s call with a single argument can be reduced to that argument", mergeFunc)
}

func msgCallToList() string {
	return fmt.Sprintf("%s call can be written as a %s literal", mergeFunc, listType)
}

func run(pass *analysis.Pass) (any, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	c := &checker{
		pass:    pass,
		streams: make(map[*token.File]*tokenutil.Stream),
	}

	nodeFilter := []ast.Node{
		(*ast.CompositeLit)(nil),
		(*ast.CallExpr)(nil),
	}
	inspect.Preorder(nodeFilter, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.CompositeLit:
			c.checkAttributes(n)
		case *ast.CallExpr:
			// The call entry point: any composition call, wherever
			// it appears, has its argument list simplified.
			if isStyleCall(n) {
				c.simplifyList(n.Args, n.Rparen)
			}
		}
	})
	return nil, nil
}

// A checker carries one pass's state: the host pass itself and the
// lazily scanned token stream of each file.
type checker struct {
	pass    *analysis.Pass
	streams map[*token.File]*tokenutil.Stream
}

// stream returns the token stream of the file containing pos, or nil
// if the source cannot be read back. Recipes that need a separator
// decline on a nil stream, so the finding goes unreported rather than
// carrying a corrupting fix.
func (c *checker) stream(pos token.Pos) *tokenutil.Stream {
	tf := c.pass.Fset.File(pos)
	if tf == nil {
		return nil
	}
	if s, ok := c.streams[tf]; ok {
		return s
	}
	var s *tokenutil.Stream
	readFile := c.pass.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}
	if content, err := readFile(tf.Name()); err == nil && len(content) == tf.Size() {
		s = tokenutil.Scan(tf, content)
	}
	c.streams[tf] = s
	return s
}

func (c *checker) report(pos, end token.Pos, msg, fixMsg string, edits []analysis.TextEdit) {
	if len(edits) == 0 {
		return // recipe declined; nothing worth reporting without a fix
	}
	c.pass.Report(analysis.Diagnostic{
		Pos:     pos,
		End:     end,
		Message: msg,
		SuggestedFixes: []analysis.SuggestedFix{{
			Message:   fixMsg,
			TextEdits: edits,
		}},
	})
}

// checkAttributes is the attribute entry point: for each struct
// literal, every field named like the style attribute has its value
// examined as a style expression.
func (c *checker) checkAttributes(lit *ast.CompositeLit) {
	tv, ok := c.pass.TypesInfo.Types[lit]
	if !ok || tv.Type == nil {
		return
	}
	if _, ok := tv.Type.Underlying().(*types.Struct); !ok {
		return
	}
	for i, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		key, ok := kv.Key.(*ast.Ident)
		if !ok || key.Name != styleField {
			continue
		}
		limit := lit.Rbrace
		if i+1 < len(lit.Elts) {
			limit = lit.Elts[i+1].Pos()
		}
		c.checkAttribute(kv, limit)
	}
}

func (c *checker) checkAttribute(kv *ast.KeyValueExpr, limit token.Pos) {
	value := astutil.Unparen(kv.Value)
	switch classify(c.pass.TypesInfo, value) {
	case shapeEmpty:
		c.removeAttribute(kv, limit)

	case shapeList:
		list := value.(*ast.CompositeLit)
		switch len(list.Elts) {
		case 0:
			c.removeAttribute(kv, limit)
		case 1:
			c.report(list.Pos(), list.End(), msgSingletonList, fixSingletonList, collapseList(list))
		default:
			c.simplifyList(list.Elts, list.Rbrace)
		}

	case shapeCall:
		call := value.(*ast.CallExpr)
		switch {
		case len(call.Args) == 0:
			c.removeAttribute(kv, limit)
		case isSingleton(call):
			c.report(call.Pos(), call.End(), msgSingletonCall(), fixSingletonCall, collapseCall(call))
		default:
			c.report(call.Pos(), call.End(), msgCallToList(), fixCallToList, callToList(call))
		}

	case shapeObject:
		if obj := value.(*ast.CompositeLit); len(obj.Elts) == 0 {
			c.removeAttribute(kv, limit)
		}
	}
}

func (c *checker) removeAttribute(kv *ast.KeyValueExpr, limit token.Pos) {
	c.report(kv.Pos(), kv.End(), msgEmptyAttr, fixEmptyAttr,
		removeSpan(c.stream(kv.Pos()), kv.Pos(), kv.End(), limit))
}
