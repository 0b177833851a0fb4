// Package styled is a minimal styled-component DSL used by the
// analyzer tests.
package styled

// A Style is one fragment of a style cascade. Later fragments
// override earlier ones on shared attributes.
type Style interface{ style() }

// Attrs is a fragment of attribute/value pairs.
type Attrs map[string]any

// List is an ordered cascade of fragments.
type List []Style

// Shadow is a fragment with fixed fields.
type Shadow struct {
	Blur   int
	Spread int
}

func (Attrs) style()  {}
func (List) style()   {}
func (Shadow) style() {}

// Merge composes fragments; Merge(a, b) is equivalent to List{a, b}.
func Merge(fragments ...Style) Style { return List(fragments) }
