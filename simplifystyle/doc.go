// Copyright 2026 The Stylelint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simplifystyle defines an Analyzer that simplifies style
// cascade expressions written against styled-component DSLs.
//
// # Analyzer simplifystyle
//
// simplifystyle: simplify style cascade expressions
//
// A style cascade is an ordered list of style fragments in which
// later fragments override earlier ones on shared keys: a slice
// literal of fragments, or a call to a composition function (by
// default named Merge) whose arguments form the same kind of list.
// The analyzer recognizes a fixed set of redundant forms in such
// cascades and offers a fix for each. Given
//
//	Box{Style: styled.List{}}            // empty attribute
//	Box{Style: styled.List{x}}           // one-element list
//	Box{Style: styled.Merge(a, b)}       // composition call
//	styled.List{styled.Attrs{"color": "red"}, styled.Attrs{"margin": "4px"}}
//
// it suggests, respectively, removing the Style field, writing
// Style: x, writing Style: styled.List{a, b}, and fusing the two
// fragments into one styled.Attrs literal. A fusion is offered only
// when every key on both sides is statically known and the two key
// sets are disjoint; computed keys, unkeyed elements, differing
// fragment types, and any shared key all rule it out, because the
// merged object could otherwise change which fragment's value wins.
//
// Fixes never reorder fragments. Each one deletes or replaces only
// the delimiter and separator tokens of the node it was reported on,
// so all fixes from one run can be applied together. The fragment
// fusion looks a single item ahead; longer runs of mergeable
// fragments reach their fixed point after applying the fixes and
// running the analyzer again.
//
// Conditional style expressions and nested selector-keyed objects
// are deliberately left untouched.
//
// The designated names are configurable:
//
//	-func  name of the composition function (default "Merge")
//	-field name of the style attribute field (default "Style")
//	-list  name of the style list type (default "List")
package simplifystyle
