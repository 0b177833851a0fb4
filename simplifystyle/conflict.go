// Copyright 2026 The Stylelint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplifystyle

import (
	"go/ast"
	"go/types"
)

// effectiveKeys returns the ordered, statically-known keys of an
// object fragment: constant key values for map literals, field names
// for struct literals. It reports false as soon as any element's key
// cannot be determined statically (a computed key or an unkeyed
// element); such fragments must never take part in a merge.
func effectiveKeys(info *types.Info, lit *ast.CompositeLit) ([]string, bool) {
	tv, ok := info.Types[lit]
	if !ok || tv.Type == nil {
		return nil, false
	}
	_, isStruct := tv.Type.Underlying().(*types.Struct)

	keys := make([]string, 0, len(lit.Elts))
	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			return nil, false
		}
		if isStruct {
			id, ok := kv.Key.(*ast.Ident)
			if !ok {
				return nil, false
			}
			keys = append(keys, id.Name)
			continue
		}
		ktv, ok := info.Types[kv.Key]
		if !ok || ktv.Value == nil {
			return nil, false
		}
		keys = append(keys, ktv.Value.ExactString())
	}
	return keys, true
}

// canMerge reports whether two adjacent object fragments may be
// fused into one without changing which value wins for any key.
// It errs on the side of false: fragments of different types, with
// computed keys, or sharing any key are left alone.
func canMerge(info *types.Info, a, b *ast.CompositeLit) bool {
	ta, tb := info.Types[a].Type, info.Types[b].Type
	if ta == nil || tb == nil || !types.Identical(ta, tb) {
		return false
	}
	ka, ok := effectiveKeys(info, a)
	if !ok {
		return false
	}
	kb, ok := effectiveKeys(info, b)
	if !ok {
		return false
	}
	seen := make(map[string]bool, len(ka))
	for _, k := range ka {
		seen[k] = true
	}
	for _, k := range kb {
		if seen[k] {
			return false
		}
	}
	return true
}
