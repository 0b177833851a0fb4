package b

import "styled"

type Box struct {
	Width int
	Style styled.Style
}

var (
	x styled.Style
	y styled.Style
)

// Everything here is already in its simplest form; the analyzer must
// stay quiet.
var (
	ok1 = Box{Style: x}
	ok2 = Box{Style: styled.Attrs{"color": "red"}}
	ok3 = Box{Style: styled.List{x, y}}
	ok4 = Box{Style: styled.List{styled.Attrs{"color": "red"}, styled.Attrs{"color": "blue"}}}
	ok5 = Box{Style: pick(true)}
	ok6 = Box{Width: 3}
)

func pick(ok bool) styled.Style {
	if ok {
		return styled.Attrs{"color": "red"}
	}
	return nil
}

func themed() styled.Style {
	return styled.Merge(x, y)
}
