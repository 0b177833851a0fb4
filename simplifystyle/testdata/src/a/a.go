package a

import "styled"

type Box struct {
	Width int
	Style styled.Style
}

var (
	x    styled.Style
	y    styled.Style
	more []styled.Style
	key  = "color"
)

// Empty containers contribute nothing; the whole attribute goes away.
var (
	e1 = Box{Style: styled.List{}}            // want `empty style attribute can be removed`
	e2 = Box{Width: 1, Style: styled.Merge()} // want `empty style attribute can be removed`
	e3 = Box{Style: styled.Attrs{}, Width: 2} // want `empty style attribute can be removed`
	e4 = Box{Style: nil}                      // want `empty style attribute can be removed`
)

// A one-element cascade is the element itself.
var (
	s1 = Box{Style: styled.List{x}}  // want `style list with a single element can be reduced to that element`
	s2 = Box{Style: styled.Merge(x)} // want `Merge call with a single argument can be reduced to that argument`
	s3 = Box{Style: styled.Merge(more...)}
	s4 = Box{Style: (styled.List{y})} // want `style list with a single element can be reduced to that element`
)

// A composition call is a list literal in disguise.
var c1 = Box{Style: styled.Merge(x, y)} // want `Merge call can be written as a List literal`

var (
	l1 = Box{Style: styled.List{styled.Attrs{}, styled.Attrs{"color": "red"}}}                         // want `empty style fragment can be removed`
	l2 = Box{Style: styled.List{styled.Attrs{"color": "red"}, styled.Attrs{"background": "blue"}}}     // want `adjacent style objects with distinct keys can be merged`
	l3 = Box{Style: styled.List{styled.Attrs{"color": "red"}, styled.Attrs{"color": "blue"}}}          // later fragment overrides: no merge
	l4 = Box{Style: styled.List{styled.Attrs{key: "red"}, styled.Attrs{"background": "blue"}}}         // computed key: no merge
	l5 = Box{Style: styled.List{styled.List{x}, y}}                                                    // want `style list with a single element can be reduced to that element`
	l6 = Box{Style: styled.Merge(x, styled.Merge(y))}                                                  // want `Merge call can be written as a List literal` `Merge call with a single argument can be reduced to that argument`
)

// Fixed-field fragments merge like keyed ones.
var (
	m1 = Box{Style: styled.List{styled.Shadow{Blur: 1}, styled.Shadow{Spread: 2}}} // want `adjacent style objects with distinct keys can be merged`
	m2 = Box{Style: styled.List{styled.Shadow{Blur: 1}, styled.Shadow{Blur: 2}}}
	m3 = Box{Style: styled.List{styled.Shadow{Blur: 1}, styled.Attrs{"color": "red"}}}
	m4 = Box{Style: styled.List{styled.Shadow{1, 2}, styled.Shadow{Spread: 2}}}
)

var tall = Box{
	Style: styled.List{
		styled.Attrs{"color": "red"}, // want `adjacent style objects with distinct keys can be merged`
		styled.Attrs{"background": "blue"},
	},
}

// The composition function is simplified wherever it is called, not
// only behind the attribute.
func themed() styled.Style {
	return styled.Merge(styled.Attrs{"color": "red"}, styled.Attrs{"font": "bold"}, x) // want `adjacent style objects with distinct keys can be merged`
}

func pick(ok bool) styled.Style {
	if ok {
		return styled.Attrs{"color": "red"}
	}
	return nil
}

// Conditionals and plain fragments are out of scope.
var (
	u1 = Box{Style: pick(true)}
	u2 = Box{Style: styled.Attrs{"color": "red"}}
)
