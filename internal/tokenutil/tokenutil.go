// Copyright 2026 The Stylelint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tokenutil answers nearest-token queries against the raw
// token stream of a parsed file.
//
// The go/ast package records the positions of braces, parentheses,
// and brackets, but not of the separator tokens between elements.
// Edit planners that must delete a comma next to a node ask a Stream
// for it instead of guessing at offsets.
package tokenutil

import (
	"go/scanner"
	"go/token"
	"sort"
)

// A Tok is one lexical token of a scanned file. Pos is expressed in
// the coordinate space of the token.File the Stream was built from.
type Tok struct {
	Pos  token.Pos
	Kind token.Token
	Lit  string
}

// End returns the position immediately after the token.
func (t Tok) End() token.Pos {
	n := len(t.Lit)
	if n == 0 {
		n = len(t.Kind.String())
	}
	return t.Pos + token.Pos(n)
}

// A Stream is the ordered token stream of a single file.
// A nil Stream is valid and matches nothing.
type Stream struct {
	toks []Tok
}

// Scan tokenizes src, which must be the exact content of the file
// represented by tf. Comments are dropped. Scanning never mutates tf
// or its file set; positions in the returned Stream are translated
// back into tf's coordinate space.
func Scan(tf *token.File, src []byte) *Stream {
	fset := token.NewFileSet()
	f := fset.AddFile(tf.Name(), -1, len(src))

	var s scanner.Scanner
	s.Init(f, src, nil, 0) // nil error handler: keep scanning malformed input

	st := new(Stream)
	for {
		pos, kind, lit := s.Scan()
		if kind == token.EOF {
			break
		}
		st.toks = append(st.toks, Tok{
			Pos:  tf.Pos(f.Offset(pos)),
			Kind: kind,
			Lit:  lit,
		})
	}
	return st
}

// Before returns the last token starting strictly before pos
// satisfying pred.
func (s *Stream) Before(pos token.Pos, pred func(token.Token) bool) (Tok, bool) {
	if s == nil {
		return Tok{}, false
	}
	for i := s.search(pos) - 1; i >= 0; i-- {
		if pred(s.toks[i].Kind) {
			return s.toks[i], true
		}
	}
	return Tok{}, false
}

// Between returns the first token in [lo, hi) satisfying pred.
func (s *Stream) Between(lo, hi token.Pos, pred func(token.Token) bool) (Tok, bool) {
	if s == nil {
		return Tok{}, false
	}
	for i := s.search(lo); i < len(s.toks) && s.toks[i].Pos < hi; i++ {
		if pred(s.toks[i].Kind) {
			return s.toks[i], true
		}
	}
	return Tok{}, false
}

// search returns the index of the first token at or after pos.
func (s *Stream) search(pos token.Pos) int {
	return sort.Search(len(s.toks), func(i int) bool {
		return s.toks[i].Pos >= pos
	})
}

// Is returns a predicate matching exactly one token kind.
func Is(kind token.Token) func(token.Token) bool {
	return func(k token.Token) bool { return k == kind }
}
