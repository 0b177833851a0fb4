// Copyright 2026 The Stylelint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The simplifystyle command applies the
// github.com/styledgo/stylelint/simplifystyle analysis to the
// specified packages of Go source code.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/styledgo/stylelint/simplifystyle"
)

func main() { singlechecker.Main(simplifystyle.Analyzer) }
